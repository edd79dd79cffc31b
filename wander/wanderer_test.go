package wander

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

// scriptedSampler maps each call onto lo+f*(hi-lo) using a repeating list of
// fractions, and records the requested ranges.
type scriptedSampler struct {
	fractions []float64
	next      int
	calls     [][2]float64
}

func (s *scriptedSampler) Range(lo, hi float64) float64 {
	s.calls = append(s.calls, [2]float64{lo, hi})
	f := 0.5
	if len(s.fractions) > 0 {
		f = s.fractions[s.next%len(s.fractions)]
		s.next++
	}
	return lo + f*(hi-lo)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"inverted_idle", func(c *Config) { c.MinIdleTime, c.MaxIdleTime = 5, 1 }, "idle_time"},
		{"inverted_move", func(c *Config) { c.MinMoveTime, c.MaxMoveTime = 3, 2 }, "move_time"},
		{"negative_speed", func(c *Config) { c.MoveSpeed = -1 }, "move_speed"},
		{"negative_min_idle", func(c *Config) { c.MinIdleTime = -0.5 }, "idle_time.min"},
		{"negative_max_move", func(c *Config) { c.MinMoveTime, c.MaxMoveTime = 0, -1 }, "move_time.max"},
		{"nan_speed", func(c *Config) { c.MoveSpeed = math.NaN() }, "move_speed"},
		{"inverted_bounds_x", func(c *Config) { c.Bounds.MinX, c.Bounds.MaxX = 4, -4 }, "bounds.x"},
		{"inverted_bounds_y", func(c *Config) { c.Bounds.MinY, c.Bounds.MaxY = 1, 0 }, "bounds.y"},
		{"infinite_bounds", func(c *Config) { c.Bounds.MaxX = math.Inf(1) }, "bounds.max_x"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)

			w, err := New(cfg, NewRNG(1))
			if w != nil {
				t.Fatalf("expected no wanderer for invalid config")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			if cfgErr.Field != c.field {
				t.Fatalf("expected field %q, got %q", c.field, cfgErr.Field)
			}
		})
	}

	t.Run("nil_sampler", func(t *testing.T) {
		if _, err := New(DefaultConfig(), nil); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig for nil sampler, got %v", err)
		}
	})
}

func TestNewStartsIdle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinIdleTime = 2
	cfg.MaxIdleTime = 10

	for _, f := range []float64{0, 0.25, 0.999} {
		s := &scriptedSampler{fractions: []float64{f}}
		w, err := New(cfg, s)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if w.State() != Idle {
			t.Fatalf("expected idle, got %v", w.State())
		}
		if len(s.calls) != 1 || s.calls[0] != [2]float64{1, 4} {
			t.Fatalf("expected one idle draw over [1,4], got %v", s.calls)
		}
		if r := w.Remaining(); r < 1 || r > 4 {
			t.Fatalf("initial idle time %v outside [1,4]", r)
		}
	}
}

func TestMovingClampsToBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MoveSpeed = 5
	cfg.Bounds = Bounds{MinX: -3, MaxX: 3, MinY: -3, MaxY: 3}

	w, err := New(cfg, &scriptedSampler{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.state = Moving
	w.remaining = 10
	w.direction = cp.Vector{X: 1, Y: 0}

	pos := Vec3{X: 2.9, Y: 0, Z: 7}
	tr, err := w.Update(1.0, &pos)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if tr != nil {
		t.Fatalf("unexpected transition %+v", tr)
	}
	if pos != (Vec3{X: 3, Y: 0, Z: 7}) {
		t.Fatalf("expected (3,0,7), got %+v", pos)
	}
}

func TestIdleExpiryStartsMoving(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinMoveTime = 2
	cfg.MaxMoveTime = 2

	w, err := New(cfg, NewRNG(42))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.remaining = 0.05

	pos := Vec3{X: 1, Y: 1}
	tr, err := w.Update(0.1, &pos)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if w.State() != Moving {
		t.Fatalf("expected moving, got %v", w.State())
	}
	if tr == nil || tr.From != Idle || tr.To != Moving {
		t.Fatalf("expected idle->moving transition, got %+v", tr)
	}
	if r := w.Remaining(); r < 1 || r > 4 {
		t.Fatalf("move time %v outside [1,4]", r)
	}
	if l := w.Direction().Length(); math.Abs(l-1) > 1e-6 {
		t.Fatalf("direction length %v, want 1", l)
	}
	if pos != (Vec3{X: 1, Y: 1}) {
		t.Fatalf("position changed on the transition tick: %+v", pos)
	}
}

func TestMovingExpiryGoesIdle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinIdleTime = 3

	s := &scriptedSampler{fractions: []float64{0}}
	w, err := New(cfg, s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w.state = Moving
	w.remaining = 0.01
	w.direction = cp.Vector{X: 0, Y: 1}

	pos := Vec3{}
	tr, err := w.Update(0.02, &pos)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if tr == nil || tr.From != Moving || tr.To != Idle {
		t.Fatalf("expected moving->idle transition, got %+v", tr)
	}
	if w.Remaining() != 1.5 {
		t.Fatalf("expected idle time 1.5, got %v", w.Remaining())
	}
	if math.Abs(pos.Y-0.1) > 1e-9 {
		t.Fatalf("expected the final move step to apply, got %+v", pos)
	}
}

func TestUpdateRejectsInvalidDelta(t *testing.T) {
	cases := []struct {
		name string
		dt   float64
	}{
		{"negative", -0.1},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, err := New(DefaultConfig(), NewRNG(7))
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			before := w.Remaining()
			pos := Vec3{}
			if _, err := w.Update(c.dt, &pos); !errors.Is(err, ErrInvalidDelta) {
				t.Fatalf("expected ErrInvalidDelta, got %v", err)
			}
			if w.Remaining() != before || w.State() != Idle {
				t.Fatalf("state mutated by rejected update")
			}
		})
	}

	t.Run("nil_position", func(t *testing.T) {
		w, err := New(DefaultConfig(), NewRNG(7))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if _, err := w.Update(0.1, nil); !errors.Is(err, ErrNilPosition) {
			t.Fatalf("expected ErrNilPosition, got %v", err)
		}
	})
}

func TestZeroDirectionDraw(t *testing.T) {
	t.Run("retried", func(t *testing.T) {
		// idle draw, move draw, then (0,0), then (0.5,-0.5) after mapping.
		s := &scriptedSampler{fractions: []float64{0.5, 0.5, 0.5, 0.5, 0.75, 0.25}}
		w, err := New(DefaultConfig(), s)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		w.remaining = 0
		if _, err := w.Update(0.01, &Vec3{}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		d := w.Direction()
		if math.Abs(d.Length()-1) > 1e-6 {
			t.Fatalf("expected unit direction, got %+v", d)
		}
		if d.X <= 0 || d.Y >= 0 {
			t.Fatalf("expected the second draw to be used, got %+v", d)
		}
	})

	t.Run("exhausted", func(t *testing.T) {
		s := &scriptedSampler{fractions: []float64{0.5}}
		w, err := New(DefaultConfig(), s)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		w.remaining = 0
		if _, err := w.Update(0.01, &Vec3{}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if w.State() != Moving {
			t.Fatalf("expected moving, got %v", w.State())
		}
		if w.Direction() != (cp.Vector{}) {
			t.Fatalf("expected zero direction, got %+v", w.Direction())
		}

		pos := Vec3{X: 1, Y: -1}
		if _, err := w.Update(0.1, &pos); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if pos != (Vec3{X: 1, Y: -1}) {
			t.Fatalf("zero direction must not move the agent, got %+v", pos)
		}
	})
}

func TestSamplingIgnoresMaxFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinIdleTime, cfg.MaxIdleTime = 1, 100
	cfg.MinMoveTime, cfg.MaxMoveTime = 2, 100

	s := &scriptedSampler{}
	w, err := New(cfg, s)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	pos := Vec3{}
	for i := 0; i < 200; i++ {
		if _, err := w.Update(0.25, &pos); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	for _, call := range s.calls {
		switch call {
		case [2]float64{0.5, 2}, [2]float64{1, 4}, [2]float64{-1, 1}:
		default:
			t.Fatalf("unexpected sampling range %v", call)
		}
	}
}

func TestWanderProperties(t *testing.T) {
	configs := []struct {
		name string
		cfg  Config
	}{
		{"default", DefaultConfig()},
		{"fast_small_box", Config{MoveSpeed: 400, MinIdleTime: 0.1, MaxIdleTime: 0.2, MinMoveTime: 0.2, MaxMoveTime: 1, Bounds: Bounds{MinX: 0, MaxX: 1, MinY: -1, MaxY: 0}}},
		{"degenerate_box", Config{MoveSpeed: 3, MinIdleTime: 0.5, MaxIdleTime: 0.5, MinMoveTime: 0.5, MaxMoveTime: 0.5, Bounds: Bounds{MinX: 2, MaxX: 2, MinY: 2, MaxY: 2}}},
		{"zero_times", Config{MoveSpeed: 1, Bounds: Bounds{MinX: -10, MaxX: 10, MinY: -10, MaxY: 10}}},
	}
	deltas := []float64{0, 1.0 / 60, 0.1, 0.5, 3, 50}

	for _, c := range configs {
		t.Run(c.name, func(t *testing.T) {
			rng := NewRNG(99)
			w, err := New(c.cfg, rng)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			idleLo, idleHi := c.cfg.IdleRange()
			moveLo, moveHi := c.cfg.MoveRange()

			pos := Vec3{X: c.cfg.Bounds.Center().X, Y: c.cfg.Bounds.Center().Y, Z: 1.5}
			for i := 0; i < 5000; i++ {
				dt := deltas[i%len(deltas)]
				before := w.State()
				prev := pos

				tr, err := w.Update(dt, &pos)
				if err != nil {
					t.Fatalf("Update: %v", err)
				}
				after := w.State()

				// bounds containment
				if !c.cfg.Bounds.Contains(cp.Vector{X: pos.X, Y: pos.Y}) {
					t.Fatalf("step %d: position %+v escaped %+v", i, pos, c.cfg.Bounds)
				}
				if pos.Z != 1.5 {
					t.Fatalf("step %d: z changed to %v", i, pos.Z)
				}

				// strict alternation
				if tr != nil {
					if tr.From != before || tr.To != after || tr.From == tr.To {
						t.Fatalf("step %d: bad transition %+v (%v -> %v)", i, tr, before, after)
					}
				} else if before != after {
					t.Fatalf("step %d: state changed without a transition", i)
				}

				// no motion while idle
				if before == Idle && after == Idle && pos != prev {
					t.Fatalf("step %d: idle agent moved from %+v to %+v", i, prev, pos)
				}

				if tr == nil {
					continue
				}
				switch tr.To {
				case Idle:
					if tr.Duration < idleLo || tr.Duration > idleHi {
						t.Fatalf("step %d: idle duration %v outside [%v,%v]", i, tr.Duration, idleLo, idleHi)
					}
				case Moving:
					if tr.Duration < moveLo || tr.Duration > moveHi {
						t.Fatalf("step %d: move duration %v outside [%v,%v]", i, tr.Duration, moveLo, moveHi)
					}
					if l := tr.Direction.Length(); l != 0 && math.Abs(l-1) > 1e-6 {
						t.Fatalf("step %d: direction length %v", i, l)
					}
				}
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Moving.String() != "moving" || State(9).String() != "unknown" {
		t.Fatalf("unexpected state names")
	}
}
