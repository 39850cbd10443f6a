// Package generator tests backtracker carving over both topologies:
// spanning, connectivity, symmetry, weighting and option validation.
package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/pkg/engine/random"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/audit"
)

// countAxisPassages returns the open interior walls crossed by row-axis and
// column-axis moves.
func countAxisPassages(t world.Topology) (row, column int) {
	t.ForEachCell(func(c world.Coord, cell world.Cell) {
		if !t.IsBoundary(c, world.Right) && cell.IsOpen(world.Right) {
			row++
		}
		if !t.IsBoundary(c, world.Down) && cell.IsOpen(world.Down) {
			column++
		}
	})
	return row, column
}

func TestBacktracker_RectIsPerfect(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := world.MustGrid(12, 9)
		stats, err := NewBacktracker(WithSource(random.New(seed))).Generate(g)
		require.NoError(t, err)

		r := audit.Inspect(g)
		assert.True(t, r.Perfect(), "seed %d: %+v", seed, r)
		assert.Equal(t, g.Len()-1, r.Passages, "seed %d", seed)
		assert.Equal(t, g.Len()-1, stats.Passages, "seed %d", seed)
		assert.Equal(t, g.Len(), stats.Visited, "seed %d", seed)
		assert.Equal(t, g.Len(), audit.Reachable(g, world.At(0, 0)), "seed %d", seed)
	}
}

func TestBacktracker_RadialIsPerfect(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r, err := world.NewRadialGrid(5, 12)
		require.NoError(t, err)
		_, err = NewBacktracker(WithSource(random.New(seed)), WithWeights(Weights{Bias: 0.3, LengthBias: 0.4})).Generate(r)
		require.NoError(t, err)

		rep := audit.Inspect(r)
		assert.True(t, rep.Perfect(), "seed %d: %+v", seed, rep)
		assert.Equal(t, r.Len()-1, rep.Passages)
	}
}

func TestBacktracker_RadialBoundariesStayClosed(t *testing.T) {
	r, _ := world.NewRadialGrid(4, 8)
	_, err := NewBacktracker(WithSource(random.New(9))).Generate(r)
	require.NoError(t, err)
	for s := 0; s < r.Spokes(); s++ {
		assert.True(t, r.Get(0, s).HasWall(world.Out), "ring 0 spoke %d Out open", s)
		assert.True(t, r.Get(3, s).HasWall(world.In), "ring 3 spoke %d In open", s)
	}
}

func TestBacktracker_SameSeedSameMaze(t *testing.T) {
	a, b := world.MustGrid(15, 15), world.MustGrid(15, 15)
	_, _ = NewBacktracker(WithSource(random.New(77))).Generate(a)
	_, _ = NewBacktracker(WithSource(random.New(77))).Generate(b)
	a.ForEachCell(func(c world.Coord, cell world.Cell) {
		assert.Equal(t, cell, b.Cell(c), "cell %v", c)
	})
}

func TestBacktracker_RegenerateResets(t *testing.T) {
	g := world.MustGrid(6, 6)
	g.OpenAll()
	g.MarkSolution(world.At(2, 2))
	_, err := NewBacktracker(WithSource(random.New(4))).Generate(g)
	require.NoError(t, err)
	assert.True(t, audit.Inspect(g).Perfect())
	assert.False(t, g.Get(2, 2).InSolution)
	assert.True(t, g.Get(0, 0).HasWall(world.Up))
}

func TestBacktracker_SingleCell(t *testing.T) {
	g := world.MustGrid(1, 1)
	stats, err := NewBacktracker(WithSource(random.New(1))).Generate(g)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Passages)
	assert.Equal(t, 1, stats.Visited)
}

func TestBacktracker_AxisBiasFavorsColumnMoves(t *testing.T) {
	var row, column int
	for seed := int64(1); seed <= 30; seed++ {
		g := world.MustGrid(20, 20)
		_, err := NewBacktracker(
			WithSource(random.New(seed)),
			WithWeights(Weights{Bias: 1, LengthBias: 0}),
		).Generate(g)
		require.NoError(t, err)
		r, c := countAxisPassages(g)
		row += r
		column += c
	}
	assert.Greater(t, column, row)
}

func TestBacktracker_AxisBiasFavorsRowMoves(t *testing.T) {
	var row, column int
	for seed := int64(1); seed <= 30; seed++ {
		g := world.MustGrid(20, 20)
		_, err := NewBacktracker(
			WithSource(random.New(seed)),
			WithWeights(Weights{Bias: 0, LengthBias: 0}),
		).Generate(g)
		require.NoError(t, err)
		r, c := countAxisPassages(g)
		row += r
		column += c
	}
	assert.Greater(t, row, column)
}

func TestBacktracker_InvalidBias(t *testing.T) {
	g := world.MustGrid(4, 4)
	for _, w := range []Weights{{Bias: -0.1}, {Bias: 1.5}, {Bias: 0.5, LengthBias: 2}} {
		_, err := NewBacktracker(WithWeights(w)).Generate(g)
		assert.True(t, errors.Is(err, ErrInvalidBias), "weights %+v: %v", w, err)
	}
}

func TestBacktracker_OriginOutOfBounds(t *testing.T) {
	g := world.MustGrid(4, 4)
	_, err := NewBacktracker(WithOrigin(world.At(9, 9))).Generate(g)
	assert.ErrorIs(t, err, world.ErrOutOfBounds)
}

func TestWeights_For(t *testing.T) {
	w := Weights{Bias: 0.8, LengthBias: 0.1}
	assert.InDelta(t, 0.9, w.For(world.Up), 1e-9)
	assert.InDelta(t, 0.8, w.For(world.Down), 1e-9)
	assert.InDelta(t, 0.3, w.For(world.Left), 1e-9)
	assert.InDelta(t, 0.2, w.For(world.Right), 1e-9)

	u := DefaultWeights()
	for _, d := range world.AllDirections() {
		assert.InDelta(t, 0.5, u.For(d), 1e-9)
	}
}
