package ecs

// Clock is the world's frame time source. Systems read the delta of the
// current frame from it instead of a global timer.
type Clock struct {
	Delta   float64
	Elapsed float64
	Frame   uint64
}

func (c *Clock) advance(dt float64) {
	c.Delta = dt
	c.Elapsed += dt
	c.Frame++
}

// Clock returns the world clock.
func (w *World) Clock() Clock {
	if w == nil {
		return Clock{}
	}
	return w.clock
}

// DeltaTime is the elapsed time of the current frame, in seconds.
func DeltaTime(w *World) float64 {
	if w == nil {
		return 0
	}
	return w.clock.Delta
}
