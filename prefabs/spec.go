package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/npcwander/wander"
)

// DefaultNPC is the prefab spawned when no other spec is requested.
const DefaultNPC = "npc.yaml"

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type DurationRangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type BoundsSpec struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

type NPCSpec struct {
	Name      string            `yaml:"name"`
	MoveSpeed float64           `yaml:"move_speed"`
	IdleTime  DurationRangeSpec `yaml:"idle_time"`
	MoveTime  DurationRangeSpec `yaml:"move_time"`
	Bounds    BoundsSpec        `yaml:"bounds"`
	Transform TransformSpec     `yaml:"transform"`

	// Source is the prefab name the spec was loaded from.
	Source string `yaml:"-"`
}

// DefaultNPCSpec returns a spec carrying wander.DefaultConfig. Decoding on top
// of it leaves omitted fields at their defaults.
func DefaultNPCSpec() NPCSpec {
	cfg := wander.DefaultConfig()
	return NPCSpec{
		Name:      "npc",
		MoveSpeed: cfg.MoveSpeed,
		IdleTime:  DurationRangeSpec{Min: cfg.MinIdleTime, Max: cfg.MaxIdleTime},
		MoveTime:  DurationRangeSpec{Min: cfg.MinMoveTime, Max: cfg.MaxMoveTime},
		Bounds: BoundsSpec{
			MinX: cfg.Bounds.MinX,
			MaxX: cfg.Bounds.MaxX,
			MinY: cfg.Bounds.MinY,
			MaxY: cfg.Bounds.MaxY,
		},
	}
}

// WanderConfig converts the spec into controller configuration.
func (s *NPCSpec) WanderConfig() wander.Config {
	return wander.Config{
		MoveSpeed:   s.MoveSpeed,
		MinIdleTime: s.IdleTime.Min,
		MaxIdleTime: s.IdleTime.Max,
		MinMoveTime: s.MoveTime.Min,
		MaxMoveTime: s.MoveTime.Max,
		Bounds: wander.Bounds{
			MinX: s.Bounds.MinX,
			MaxX: s.Bounds.MaxX,
			MinY: s.Bounds.MinY,
			MaxY: s.Bounds.MaxY,
		},
	}
}

// LoadNPCSpec loads, schema-checks and validates an NPC prefab.
func LoadNPCSpec(name string) (*NPCSpec, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	spec, err := DecodeNPCSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	spec.Source = cleanPrefabPath(name)
	return spec, nil
}

// DecodeNPCSpec parses YAML, checks it against the NPC schema and validates
// the resulting wander configuration. Configuration problems match
// wander.ErrInvalidConfig.
func DecodeNPCSpec(data []byte) (*NPCSpec, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := validateNPCDocument(doc); err != nil {
		return nil, err
	}

	spec := DefaultNPCSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := spec.WanderConfig().Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
