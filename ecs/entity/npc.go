package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/npcwander/ecs"
	"github.com/milk9111/npcwander/ecs/component"
	"github.com/milk9111/npcwander/prefabs"
	"github.com/milk9111/npcwander/wander"
)

// NewNPC spawns a wandering NPC at the spec's transform.
func NewNPC(w *ecs.World, spec *prefabs.NPCSpec, rng wander.Sampler) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("npc: spec is nil")
	}
	pos := wander.Vec3{X: spec.Transform.X, Y: spec.Transform.Y, Z: spec.Transform.Z}
	return NewNPCAt(w, spec, pos, rng)
}

// NewNPCAt spawns a wandering NPC at pos, pulled onto the wander bounds when
// it lies outside them. Nothing is left in the world when an error is
// returned.
func NewNPCAt(w *ecs.World, spec *prefabs.NPCSpec, pos wander.Vec3, rng wander.Sampler) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("npc: spec is nil")
	}

	ctrl, err := wander.New(spec.WanderConfig(), rng)
	if err != nil {
		return 0, fmt.Errorf("npc: %s: %w", spec.Name, err)
	}
	clamped := ctrl.Bounds().Clamp(cp.Vector{X: pos.X, Y: pos.Y})
	pos.X, pos.Y = clamped.X, clamped.Y

	entity := ecs.CreateEntity(w)
	if err := addNPCComponents(w, entity, spec, pos, ctrl); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, err
	}
	return entity, nil
}

func addNPCComponents(w *ecs.World, entity ecs.Entity, spec *prefabs.NPCSpec, pos wander.Vec3, ctrl *wander.Wanderer) error {
	if err := ecs.Add(w, entity, component.NPCTagComponent.Kind(), &component.NPCTag{Name: spec.Name}); err != nil {
		return fmt.Errorf("npc: add tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{
		X: pos.X,
		Y: pos.Y,
		Z: pos.Z,
	}); err != nil {
		return fmt.Errorf("npc: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.WanderComponent.Kind(), &component.Wander{
		Spec:       spec.Source,
		Controller: ctrl,
	}); err != nil {
		return fmt.Errorf("npc: add wander: %w", err)
	}

	return nil
}

// SpawnNPCs creates n NPCs from one spec. A single NPC starts at the spec's
// transform; a crowd is scattered uniformly inside the wander bounds.
func SpawnNPCs(w *ecs.World, spec *prefabs.NPCSpec, n int, rng wander.Sampler) ([]ecs.Entity, error) {
	if n == 1 {
		e, err := NewNPC(w, spec, rng)
		if err != nil {
			return nil, err
		}
		return []ecs.Entity{e}, nil
	}
	if spec == nil {
		return nil, fmt.Errorf("npc: spec is nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("npc: %w", &wander.ConfigError{Field: "sampler", Reason: "must not be nil"})
	}

	b := spec.WanderConfig().Bounds
	out := make([]ecs.Entity, 0, n)
	for i := 0; i < n; i++ {
		pos := wander.Vec3{
			X: rng.Range(b.MinX, b.MaxX),
			Y: rng.Range(b.MinY, b.MaxY),
			Z: spec.Transform.Z,
		}
		e, err := NewNPCAt(w, spec, pos, rng)
		if err != nil {
			for _, spawned := range out {
				ecs.DestroyEntity(w, spawned)
			}
			return nil, fmt.Errorf("npc: spawn %d of %d: %w", i+1, n, err)
		}
		out = append(out, e)
	}
	return out, nil
}
