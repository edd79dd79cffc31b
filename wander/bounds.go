package wander

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Bounds is the axis-aligned rectangle an agent is clamped into while moving.
type Bounds struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Validate reports a ConfigError when an axis is inverted or not finite.
func (b Bounds) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"bounds.min_x", b.MinX},
		{"bounds.max_x", b.MaxX},
		{"bounds.min_y", b.MinY},
		{"bounds.max_y", b.MaxY},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ConfigError{Field: f.name, Reason: "must be finite"}
		}
	}
	if b.MinX > b.MaxX {
		return &ConfigError{Field: "bounds.x", Reason: "min_x is greater than max_x"}
	}
	if b.MinY > b.MaxY {
		return &ConfigError{Field: "bounds.y", Reason: "min_y is greater than max_y"}
	}
	return nil
}

// Clamp returns v with each axis clamped into the rectangle.
func (b Bounds) Clamp(v cp.Vector) cp.Vector {
	return cp.Vector{
		X: cp.Clamp(v.X, b.MinX, b.MaxX),
		Y: cp.Clamp(v.Y, b.MinY, b.MaxY),
	}
}

// Contains reports whether v lies inside the rectangle, edges included.
func (b Bounds) Contains(v cp.Vector) bool {
	return v.X >= b.MinX && v.X <= b.MaxX && v.Y >= b.MinY && v.Y <= b.MaxY
}

func (b Bounds) Center() cp.Vector {
	return cp.Vector{X: (b.MinX + b.MaxX) * 0.5, Y: (b.MinY + b.MaxY) * 0.5}
}

func (b Bounds) Size() cp.Vector {
	return cp.Vector{X: b.MaxX - b.MinX, Y: b.MaxY - b.MinY}
}

// BB converts the rectangle to a chipmunk bounding box for debug drawing.
func (b Bounds) BB() cp.BB {
	return cp.BB{L: b.MinX, B: b.MinY, R: b.MaxX, T: b.MaxY}
}
