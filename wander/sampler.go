package wander

import "math/rand/v2"

// Sampler draws uniform floats in [lo, hi). When lo == hi it returns lo.
type Sampler interface {
	Range(lo, hi float64) float64
}

// RNG is a seeded Sampler backed by a PCG source, so runs are reproducible.
type RNG struct {
	r *rand.Rand
}

func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (g *RNG) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Float64()*(hi-lo)
}
