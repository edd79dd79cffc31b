package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/npcwander/ecs"
	"github.com/milk9111/npcwander/ecs/component"
	"github.com/milk9111/npcwander/prefabs"
	"github.com/milk9111/npcwander/wander"
)

// ReloadSystem rebuilds wandering controllers when their prefab changes on
// disk. Changed paths arrive on a channel, usually prefabs.Watcher.Events.
// A spec that fails to load or validate leaves the running controllers alone.
// Agents that end up outside new, smaller bounds are pulled back onto them.
type ReloadSystem struct {
	changes <-chan string
	rng     wander.Sampler
}

func NewReloadSystem(changes <-chan string, rng wander.Sampler) *ReloadSystem {
	return &ReloadSystem{changes: changes, rng: rng}
}

func (s *ReloadSystem) Update(w *ecs.World) {
	if w == nil || s.changes == nil {
		return
	}

	for {
		select {
		case path, ok := <-s.changes:
			if !ok {
				s.changes = nil
				return
			}
			s.reload(w, prefabs.Name(path))
		default:
			return
		}
	}
}

func (s *ReloadSystem) reload(w *ecs.World, name string) {
	spec, err := prefabs.LoadNPCSpec(name)
	if err != nil {
		log.Printf("reload: %s: %v (keeping previous controllers)", name, err)
		return
	}
	cfg := spec.WanderConfig()

	rebuilt := 0
	ecs.ForEach(w, component.WanderComponent.Kind(), func(e ecs.Entity, wd *component.Wander) {
		if wd.Spec != name {
			return
		}
		ctrl, err := wander.New(cfg, s.rng)
		if err != nil {
			log.Printf("reload: %s: entity %s: %v", name, e, err)
			return
		}
		wd.Controller = ctrl
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			clamped := cfg.Bounds.Clamp(cp.Vector{X: t.X, Y: t.Y})
			t.X, t.Y = clamped.X, clamped.Y
		}
		rebuilt++
	})
	log.Printf("reload: %s: rebuilt %d controllers", name, rebuilt)
}
