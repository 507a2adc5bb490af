package engine

import (
	"math/rand/v2"
	"time"
)

// Rand is the single randomness source shared by the engine and its
// trackers.
type Rand interface {
	// Next returns a uniformly distributed value in [lo, hi).
	Next(lo, hi int) int
}

type pcgRand struct {
	r *rand.Rand
}

// NewRand returns a Rand seeded from the clock.
func NewRand() Rand {
	seed := uint64(time.Now().UnixNano())
	return NewSeededRand(seed)
}

// NewSeededRand returns a reproducible Rand.
func NewSeededRand(seed uint64) Rand {
	return &pcgRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (p *pcgRand) Next(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.r.IntN(hi-lo)
}
