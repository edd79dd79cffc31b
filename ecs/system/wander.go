package system

import (
	"log"

	"github.com/milk9111/npcwander/ecs"
	"github.com/milk9111/npcwander/ecs/component"
	"github.com/milk9111/npcwander/wander"
)

// WanderSystem steps every wandering controller by the world's frame delta
// and writes the result back into the entity's Transform.
type WanderSystem struct{}

func NewWanderSystem() *WanderSystem {
	return &WanderSystem{}
}

func (s *WanderSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := ecs.DeltaTime(w)
	if err := wander.CheckDelta(dt); err != nil {
		log.Printf("wander: skipping frame %d: %v (dt=%v)", w.Clock().Frame, err, dt)
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.WanderComponent.Kind(), func(e ecs.Entity, t *component.Transform, wd *component.Wander) {
		if wd.Controller == nil {
			return
		}

		pos := wander.Vec3{X: t.X, Y: t.Y, Z: t.Z}
		tr, err := wd.Controller.Update(dt, &pos)
		if err != nil {
			log.Printf("wander: entity %s: %v", e, err)
			return
		}
		t.X, t.Y, t.Z = pos.X, pos.Y, pos.Z

		if tr == nil {
			return
		}
		w.Events().Push(ecs.Event{
			Type: component.WanderTransitionEventType,
			Data: component.WanderTransition{
				Entity:   uint64(e),
				From:     tr.From,
				To:       tr.To,
				Duration: tr.Duration,
				X:        t.X,
				Y:        t.Y,
			},
		})
	})
}

// WanderTransitions filters the wander transition payloads out of a drained
// event batch.
func WanderTransitions(events []ecs.Event) []component.WanderTransition {
	var out []component.WanderTransition
	for _, evt := range events {
		if evt.Type != component.WanderTransitionEventType {
			continue
		}
		if tr, ok := evt.Data.(component.WanderTransition); ok {
			out = append(out, tr)
		}
	}
	return out
}
