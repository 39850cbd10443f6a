package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRadialGrid_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 8}, {4, 0}, {4, 2}} {
		_, err := NewRadialGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "NewRadialGrid(%d, %d)", dims[0], dims[1])
	}
}

func TestRadialGrid_RingBoundaries(t *testing.T) {
	r, err := NewRadialGrid(4, 8)
	require.NoError(t, err)
	for s := 0; s < r.Spokes(); s++ {
		assert.True(t, r.IsBoundary(Coord{Row: 0, Col: s}, Out), "ring 0 spoke %d", s)
		assert.True(t, r.IsBoundary(Coord{Row: 3, Col: s}, In), "ring 3 spoke %d", s)
		assert.False(t, r.IsBoundary(Coord{Row: 1, Col: s}, Left), "ring 1 spoke %d", s)
		assert.False(t, r.IsBoundary(Coord{Row: 1, Col: s}, Right), "ring 1 spoke %d", s)
	}
}

func TestRadialGrid_SpokesWrap(t *testing.T) {
	r, err := NewRadialGrid(2, 8)
	require.NoError(t, err)
	assert.Equal(t, Coord{Row: 1, Col: 0}, r.Neighbor(Coord{Row: 1, Col: 7}, Left))
	assert.Equal(t, Coord{Row: 1, Col: 7}, r.Neighbor(Coord{Row: 1, Col: 0}, Right))

	r.Open(Coord{Row: 0, Col: 0}, Right)
	assert.True(t, r.Get(0, 7).IsOpen(Left))
}

func TestRadialGrid_StartAndEndScenario(t *testing.T) {
	r, err := NewRadialGrid(4, 8)
	require.NoError(t, err)
	OpenStartAndEnd(r)
	assert.True(t, r.Get(0, 0).IsOpen(Out))
	assert.True(t, r.Get(3, 4).IsOpen(In))
	assert.False(t, r.Get(0, 1).IsOpen(Out), "spoke 1 opened as a side effect")
}

func TestRadialGrid_AdjacentIgnoresWrap(t *testing.T) {
	r, err := NewRadialGrid(2, 8)
	require.NoError(t, err)
	assert.False(t, r.Adjacent(Coord{Row: 0, Col: 0}, Coord{Row: 0, Col: 7}))
	assert.True(t, r.Adjacent(Coord{Row: 0, Col: 3}, Coord{Row: 1, Col: 3}))
}
