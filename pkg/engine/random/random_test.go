package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestNew_ZeroSeedIsReplaced(t *testing.T) {
	assert.NotZero(t, New(0).Seed())
}

func TestBetween_Inclusive(t *testing.T) {
	s := New(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := s.Between(2, 4)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 5, s.Between(5, 5))
}

func TestWeighted_ZeroWeightNeverDrawn(t *testing.T) {
	s := New(3)
	for i := 0; i < 1000; i++ {
		assert.NotEqual(t, 1, s.Weighted([]float64{1, 0, 2}))
	}
}

func TestWeighted_AllZeroFallsBackToUniform(t *testing.T) {
	s := New(11)
	counts := make([]int, 3)
	for i := 0; i < 3000; i++ {
		counts[s.Weighted([]float64{0, 0, 0})]++
	}
	for i, c := range counts {
		assert.Greater(t, c, 800, "index %d drawn %d times", i, c)
	}
}

func TestWeighted_Proportions(t *testing.T) {
	s := New(5)
	counts := make([]int, 2)
	const n = 20000
	for i := 0; i < n; i++ {
		counts[s.Weighted([]float64{1, 3})]++
	}
	assert.InDelta(t, 0.75, float64(counts[1])/n, 0.02)
}
