package system

import (
	"github.com/milk9111/npcwander/ecs"
	"github.com/milk9111/npcwander/ecs/component"
	"github.com/milk9111/npcwander/wander"
)

// WanderBounds returns the union of the rectangles the live controllers
// clamp into. It reports false when no entity has a controller.
func WanderBounds(w *ecs.World) (wander.Bounds, bool) {
	var u wander.Bounds
	found := false
	ecs.ForEach(w, component.WanderComponent.Kind(), func(_ ecs.Entity, wd *component.Wander) {
		if wd.Controller == nil {
			return
		}
		b := wd.Controller.Bounds()
		if !found {
			u, found = b, true
			return
		}
		u.MinX = min(u.MinX, b.MinX)
		u.MaxX = max(u.MaxX, b.MaxX)
		u.MinY = min(u.MinY, b.MinY)
		u.MaxY = max(u.MaxY, b.MaxY)
	})
	return u, found
}
