// Package random provides the seedable random source every generator and
// solver draws from.
package random

import (
	"math/rand/v2"
	"time"
)

// Source is a thin wrapper around math/rand/v2 for deterministic seeding
type Source struct {
	seed int64
	r    *rand.Rand
}

// New creates a deterministic source from seed. A zero seed is replaced by
// the current time.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{seed: seed, r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed returns the seed the source was built from
func (s *Source) Seed() int64 {
	return s.seed
}

// IntN returns a random int in [0, n). n must be positive.
func (s *Source) IntN(n int) int {
	return s.r.IntN(n)
}

// Between returns a random int in [lo, hi], both inclusive
func (s *Source) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

// Float64 returns a random float in [0, 1)
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// Weighted draws an index from weights with probability proportional to
// its weight. Negative weights count as zero; when all weights are zero the
// draw is uniform. weights must not be empty.
func (s *Source) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return s.r.IntN(len(weights))
	}

	target := s.r.Float64() * total
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if target < w {
			return i
		}
		target -= w
	}
	// rounding can leave target marginally above the final bucket
	return last
}
