package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/npcwander/ecs"
	"github.com/milk9111/npcwander/ecs/component"
	"github.com/milk9111/npcwander/wander"
)

const agentSize = 8

var (
	idleColor   color.Color = colornames.Lightgrey
	movingColor color.Color = colornames.Orange
)

// DrawAgents draws every wandering entity as a square tinted by state.
func DrawAgents(w *ecs.World, screen *ebiten.Image, view View) {
	if w == nil || screen == nil {
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.WanderComponent.Kind(), func(_ ecs.Entity, t *component.Transform, wd *component.Wander) {
		clr := idleColor
		if wd.Controller != nil && wd.Controller.State() == wander.Moving {
			clr = movingColor
		}
		sx, sy := view.Project(t.X, t.Y)
		vector.FillRect(screen, sx-agentSize/2, sy-agentSize/2, agentSize, agentSize, clr, false)
	})
}
