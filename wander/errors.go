package wander

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("wander: invalid configuration")
	ErrInvalidDelta  = errors.New("wander: delta time must be finite and non-negative")
	ErrNilPosition   = errors.New("wander: position is nil")
)

// ConfigError describes a rejected configuration field. It matches
// ErrInvalidConfig under errors.Is.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("wander: invalid configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
