package wander

import "math"

const (
	sampleLowFactor  = 0.5
	sampleHighFactor = 2.0
)

// Config holds the tunables of a wandering agent. It is immutable once a
// Wanderer has been built from it.
type Config struct {
	MoveSpeed   float64
	MinIdleTime float64
	MaxIdleTime float64
	MinMoveTime float64
	MaxMoveTime float64
	Bounds      Bounds
}

// DefaultConfig returns the stock NPC tuning.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:   5,
		MinIdleTime: 1,
		MaxIdleTime: 4,
		MinMoveTime: 1,
		MaxMoveTime: 3,
		Bounds:      Bounds{MinX: -3, MaxX: 3, MinY: -3, MaxY: 3},
	}
}

// Validate checks every field and returns the first violation as a
// *ConfigError. Nothing is clamped or swapped.
func (c Config) Validate() error {
	if err := nonNegative("move_speed", c.MoveSpeed); err != nil {
		return err
	}
	if err := timeRange("idle_time", c.MinIdleTime, c.MaxIdleTime); err != nil {
		return err
	}
	if err := timeRange("move_time", c.MinMoveTime, c.MaxMoveTime); err != nil {
		return err
	}
	return c.Bounds.Validate()
}

// IdleRange is the interval idle durations are drawn from. Only the minimum
// idle time participates; MaxIdleTime is validated but not sampled.
func (c Config) IdleRange() (lo, hi float64) {
	return c.MinIdleTime * sampleLowFactor, c.MinIdleTime * sampleHighFactor
}

// MoveRange is the interval move durations are drawn from. Only the minimum
// move time participates; MaxMoveTime is validated but not sampled.
func (c Config) MoveRange() (lo, hi float64) {
	return c.MinMoveTime * sampleLowFactor, c.MinMoveTime * sampleHighFactor
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ConfigError{Field: field, Reason: "must be finite"}
	}
	if v < 0 {
		return &ConfigError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

func timeRange(field string, lo, hi float64) error {
	if err := nonNegative(field+".min", lo); err != nil {
		return err
	}
	if err := nonNegative(field+".max", hi); err != nil {
		return err
	}
	if lo > hi {
		return &ConfigError{Field: field, Reason: "min is greater than max"}
	}
	return nil
}
