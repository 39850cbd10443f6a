package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_Dimensions(t *testing.T) {
	g, err := NewGrid(10, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 10, g.Height())
	assert.Equal(t, 100, g.Len())
}

func TestNewGrid_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "NewGrid(%d, %d)", dims[0], dims[1])
	}
}

func TestGrid_FreshCellsFullyWalled(t *testing.T) {
	g := MustGrid(3, 4)
	g.ForEachCell(func(c Coord, cell Cell) {
		assert.Equal(t, AllWalls, cell.Walls, "cell %v", c)
		assert.False(t, cell.InSolution, "cell %v", c)
	})
}

func TestGrid_SetAndResetScenario(t *testing.T) {
	g := MustGrid(10, 10)

	g.OpenBoundary(At(0, 0), Up)
	assert.True(t, g.Get(0, 0).IsOpen(Up))
	assert.False(t, g.Get(0, 0).IsOpen(Left), "Left opened as a side effect")

	g.OpenBoundary(At(9, 9), Down)
	g.MarkSolution(At(0, 0))
	g.Reset()
	assert.True(t, g.Get(9, 9).HasWall(Down))
	assert.False(t, g.Get(0, 0).InSolution)
}

func TestGrid_Boundaries(t *testing.T) {
	g := MustGrid(4, 3)
	tests := []struct {
		c    Coord
		d    Direction
		want bool
	}{
		{At(0, 0), Up, true},
		{At(0, 0), Left, true},
		{At(0, 0), Right, false},
		{At(0, 0), Down, false},
		{At(3, 2), Right, true},
		{At(3, 2), Down, true},
		{At(1, 1), Up, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.IsBoundary(tt.c, tt.d), "IsBoundary(%v, %v)", tt.c, tt.d)
	}
}

func TestGrid_OpenIsSymmetric(t *testing.T) {
	g := MustGrid(3, 3)
	center := At(1, 1)
	for _, d := range AllDirections() {
		g.Open(center, d)
		n := g.Neighbor(center, d)
		assert.True(t, g.IsOpen(center, d), "center %v", d)
		assert.True(t, g.IsOpen(n, d.Opposite()), "neighbor %v %v", n, d.Opposite())
	}
}

func TestGrid_NeighborPanicsAtBoundary(t *testing.T) {
	g := MustGrid(2, 2)
	assert.Panics(t, func() { g.Neighbor(At(0, 0), Up) })
}

func TestGrid_OpenBoundaryPanicsOnInterior(t *testing.T) {
	g := MustGrid(3, 3)
	assert.Panics(t, func() { g.OpenBoundary(At(1, 1), Up) })
}

func TestGrid_EntranceExit(t *testing.T) {
	g := MustGrid(5, 4)
	OpenStartAndEnd(g)
	assert.True(t, g.Get(0, 0).IsOpen(Up))
	assert.True(t, g.Get(4, 3).IsOpen(Down))
}

func TestGrid_OpenAllAndClearSolution(t *testing.T) {
	g := MustGrid(2, 2)
	g.OpenAll()
	g.MarkSolution(At(1, 1))
	g.ClearSolution()
	g.ForEachCell(func(c Coord, cell Cell) {
		assert.Zero(t, cell.Walls, "cell %v", c)
		assert.False(t, cell.InSolution, "cell %v", c)
	})
}

func TestDirection_OppositeAndAxis(t *testing.T) {
	for _, d := range AllDirections() {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, d.Axis(), d.Opposite().Axis(), "%v", d)
		assert.NotEqual(t, d.Favored(), d.Opposite().Favored(), "%v", d)
	}
}
