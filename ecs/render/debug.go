package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/npcwander/ecs"
	"github.com/milk9111/npcwander/ecs/component"
	"github.com/milk9111/npcwander/ecs/system"
	"github.com/milk9111/npcwander/wander"
)

const headingLength = 0.5

var (
	boundsColor  color.Color = colornames.Blue
	headingColor color.Color = colornames.Yellow
)

// DrawWanderBounds strokes the wander rectangle of every agent, once per
// distinct rectangle.
func DrawWanderBounds(w *ecs.World, screen *ebiten.Image, view View) {
	if w == nil || screen == nil {
		return
	}

	for _, b := range distinctBounds(w) {
		x, y, wdt, hgt := view.ProjectBounds(b)
		vector.StrokeRect(screen, x, y, wdt, hgt, 1.0, boundsColor, false)
	}
}

// DrawWanderDebug overlays headings of moving agents and a state summary.
func DrawWanderDebug(w *ecs.World, screen *ebiten.Image, view View) {
	if w == nil || screen == nil {
		return
	}

	idle, moving := 0, 0
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.WanderComponent.Kind(), func(_ ecs.Entity, t *component.Transform, wd *component.Wander) {
		if wd.Controller == nil {
			return
		}
		if wd.Controller.State() != wander.Moving {
			idle++
			return
		}
		moving++
		d := wd.Controller.Direction()
		x0, y0 := view.Project(t.X, t.Y)
		x1, y1 := view.Project(t.X+d.X*headingLength, t.Y+d.Y*headingLength)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, headingColor, true)
	})

	clock := w.Clock()
	text := fmt.Sprintf("Frame: %d  Time: %.2fs\nIdle: %d  Moving: %d", clock.Frame, clock.Elapsed, idle, moving)
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

func distinctBounds(w *ecs.World) []wander.Bounds {
	seen := make(map[wander.Bounds]struct{})
	var out []wander.Bounds
	ecs.ForEach(w, component.WanderComponent.Kind(), func(_ ecs.Entity, wd *component.Wander) {
		if wd.Controller == nil {
			return
		}
		b := wd.Controller.Bounds()
		if _, ok := seen[b]; ok {
			return
		}
		seen[b] = struct{}{}
		out = append(out, b)
	})
	return out
}

// WorldBounds returns the union of every agent's wander rectangle, or the
// default rectangle when the world has no agents.
func WorldBounds(w *ecs.World) wander.Bounds {
	if b, ok := system.WanderBounds(w); ok {
		return b
	}
	return wander.DefaultConfig().Bounds
}
