// Package sim wires prefab loading, NPC spawning and the ECS systems into a
// runnable wander world shared by the graphical, terminal and headless
// front ends.
package sim

import (
	"fmt"
	"log"

	"github.com/milk9111/npcwander/ecs"
	"github.com/milk9111/npcwander/ecs/component"
	"github.com/milk9111/npcwander/ecs/entity"
	"github.com/milk9111/npcwander/ecs/system"
	"github.com/milk9111/npcwander/prefabs"
	"github.com/milk9111/npcwander/wander"
)

type Options struct {
	// Spec is the prefab name, prefabs.DefaultNPC when empty.
	Spec  string
	Count int
	Seed  uint64
	// Watch enables hot reload of prefabs from prefabs.Dir.
	Watch bool
}

// World owns the ECS world, its scheduler and the optional prefab watcher.
type World struct {
	ECS       *ecs.World
	Scheduler *ecs.Scheduler
	// Spec is the prefab the world was started from. Hot reloads replace the
	// controllers, not this value; use Bounds for the live rectangle.
	Spec *prefabs.NPCSpec
	NPCs []ecs.Entity

	watcher *prefabs.Watcher
}

// New loads the requested prefab and spawns Count NPCs from it.
func New(opts Options) (*World, error) {
	if opts.Spec == "" {
		opts.Spec = prefabs.DefaultNPC
	}
	if opts.Count <= 0 {
		return nil, fmt.Errorf("sim: npc count must be positive, got %d", opts.Count)
	}

	spec, err := prefabs.LoadNPCSpec(opts.Spec)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	rng := wander.NewRNG(opts.Seed)
	w := &World{
		ECS:       ecs.NewWorld(),
		Scheduler: ecs.NewScheduler(),
		Spec:      spec,
	}

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			return nil, fmt.Errorf("sim: watch %s: %w", prefabs.Dir, err)
		}
		w.watcher = watcher
		w.Scheduler.Add(system.NewReloadSystem(watcher.Events, rng))
	}
	w.Scheduler.Add(system.NewWanderSystem())

	npcs, err := entity.SpawnNPCs(w.ECS, spec, opts.Count, rng)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("sim: %w", err)
	}
	w.NPCs = npcs

	return w, nil
}

// Step advances the world by dt seconds and returns the state changes that
// happened during the frame.
func (w *World) Step(dt float64) []component.WanderTransition {
	if w.watcher != nil {
		select {
		case err, ok := <-w.watcher.Errors:
			if ok {
				log.Printf("sim: prefab watcher: %v", err)
			}
		default:
		}
	}

	w.Scheduler.Tick(w.ECS, dt)
	return system.WanderTransitions(w.ECS.Events().Drain())
}

// Run steps the world frames times with a fixed dt, handing each transition
// to fn.
func (w *World) Run(frames int, dt float64, fn func(frame uint64, tr component.WanderTransition)) {
	for i := 0; i < frames; i++ {
		for _, tr := range w.Step(dt) {
			if fn != nil {
				fn(w.ECS.Clock().Frame, tr)
			}
		}
	}
}

// Position returns the current transform of an NPC.
func (w *World) Position(e ecs.Entity) (component.Transform, bool) {
	t, ok := ecs.Get(w.ECS, e, component.TransformComponent.Kind())
	if !ok {
		return component.Transform{}, false
	}
	return *t, true
}

// State returns the wander state of an NPC.
func (w *World) State(e ecs.Entity) (wander.State, bool) {
	wd, ok := ecs.Get(w.ECS, e, component.WanderComponent.Kind())
	if !ok || wd.Controller == nil {
		return wander.Idle, false
	}
	return wd.Controller.State(), true
}

// Bounds returns the rectangle covering every NPC's current wander bounds,
// following hot reloads. It falls back to the starting spec's bounds.
func (w *World) Bounds() wander.Bounds {
	if b, ok := system.WanderBounds(w.ECS); ok {
		return b
	}
	return w.Spec.WanderConfig().Bounds
}

func (w *World) Close() error {
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	w.watcher = nil
	return err
}
