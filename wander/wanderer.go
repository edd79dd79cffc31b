// Package wander implements a bounded idle/move wandering controller for a
// single agent. The host supplies delta time, a random Sampler and the
// agent's position; the controller owns its state machine and timer.
package wander

import (
	"math"

	"github.com/jakecoffman/cp"
)

// maxDirectionAttempts bounds how often a degenerate (0,0) direction draw is
// retried before the agent holds still for the interval.
const maxDirectionAttempts = 4

type State int

const (
	Idle State = iota
	Moving
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	default:
		return "unknown"
	}
}

// Vec3 is the agent position. Only X and Y are ever written by a Wanderer.
type Vec3 struct {
	X, Y, Z float64
}

// Transition records a state change fired during an Update.
type Transition struct {
	From      State
	To        State
	Duration  float64
	Direction cp.Vector
}

// Wanderer alternates an agent between Idle and Moving with randomized
// durations and keeps it inside Config.Bounds while it moves.
type Wanderer struct {
	cfg       Config
	rng       Sampler
	state     State
	remaining float64
	direction cp.Vector
}

// New validates cfg and returns a Wanderer in the Idle state with a freshly
// sampled idle timer.
func New(cfg Config, rng Sampler) (*Wanderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, &ConfigError{Field: "sampler", Reason: "must not be nil"}
	}
	w := &Wanderer{cfg: cfg, rng: rng, state: Idle}
	w.remaining = w.rng.Range(cfg.IdleRange())
	return w, nil
}

// Update advances the controller by dt seconds. While Moving it writes the
// clamped position into pos; while Idle pos is left alone. The returned
// Transition is nil unless the state flipped during this call.
func (w *Wanderer) Update(dt float64, pos *Vec3) (*Transition, error) {
	if err := CheckDelta(dt); err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, ErrNilPosition
	}

	switch w.state {
	case Moving:
		return w.advanceMoving(dt, pos), nil
	default:
		return w.advanceIdle(dt), nil
	}
}

// CheckDelta rejects frame deltas that are negative, NaN or infinite.
func CheckDelta(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return ErrInvalidDelta
	}
	return nil
}

func (w *Wanderer) advanceMoving(dt float64, pos *Vec3) *Transition {
	step := w.direction.Mult(w.cfg.MoveSpeed * dt)
	next := w.cfg.Bounds.Clamp(cp.Vector{X: pos.X, Y: pos.Y}.Add(step))
	pos.X, pos.Y = next.X, next.Y

	w.remaining -= dt
	if w.remaining >= 0 {
		return nil
	}

	w.state = Idle
	w.remaining = w.rng.Range(w.cfg.IdleRange())
	return &Transition{From: Moving, To: Idle, Duration: w.remaining}
}

func (w *Wanderer) advanceIdle(dt float64) *Transition {
	w.remaining -= dt
	if w.remaining >= 0 {
		return nil
	}

	w.state = Moving
	w.remaining = w.rng.Range(w.cfg.MoveRange())
	w.direction = w.sampleDirection()
	return &Transition{From: Idle, To: Moving, Duration: w.remaining, Direction: w.direction}
}

// sampleDirection draws a unit vector. An exact (0,0) draw cannot be
// normalized; it is retried and, if it keeps happening, the zero vector is
// used so the agent stays put until its move timer expires.
func (w *Wanderer) sampleDirection() cp.Vector {
	for range maxDirectionAttempts {
		v := cp.Vector{X: w.rng.Range(-1, 1), Y: w.rng.Range(-1, 1)}
		if l := v.Length(); l > 0 {
			return v.Mult(1 / l)
		}
	}
	return cp.Vector{}
}

func (w *Wanderer) State() State {
	return w.state
}

// Remaining is the time left in the current state, in seconds.
func (w *Wanderer) Remaining() float64 {
	return w.remaining
}

// Direction is the current heading. It is only meaningful while Moving.
func (w *Wanderer) Direction() cp.Vector {
	return w.direction
}

func (w *Wanderer) Config() Config {
	return w.cfg
}

// Bounds exposes the configured rectangle for debug rendering.
func (w *Wanderer) Bounds() Bounds {
	return w.cfg.Bounds
}
