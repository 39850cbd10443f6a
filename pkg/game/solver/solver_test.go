package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/pkg/engine/random"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
)

func carved(t *testing.T, topo world.Topology, seed int64) {
	t.Helper()
	_, err := generator.NewBacktracker(generator.WithSource(random.New(seed))).Generate(topo)
	require.NoError(t, err)
	world.OpenStartAndEnd(topo)
}

func TestSolve_GridCornerToCorner(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := world.MustGrid(10, 10)
		carved(t, g, seed)

		path, err := Solve(g, world.At(0, 0), world.At(9, 9), WithSource(random.New(seed)))
		require.NoError(t, err)
		assert.Equal(t, world.At(0, 0), path.Start())
		assert.Equal(t, world.At(9, 9), path.Stop())
		assert.NoError(t, path.Validate(g), "seed %d", seed)

		marked := 0
		g.ForEachCell(func(c world.Coord, cell world.Cell) {
			if cell.InSolution {
				marked++
				assert.True(t, path.Contains(c))
			}
		})
		assert.Equal(t, len(path), marked)
	}
}

func TestSolve_RadialEntranceToExit(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r, err := world.NewRadialGrid(4, 8)
		require.NoError(t, err)
		carved(t, r, seed)

		start, _ := r.Entrance()
		stop, _ := r.Exit()
		path, err := Solve(r, start, stop, WithSource(random.New(seed)))
		require.NoError(t, err)
		assert.Equal(t, world.Coord{Row: 0, Col: 0}, path.Start())
		assert.Equal(t, world.Coord{Row: 3, Col: 4}, path.Stop())
		assert.NoError(t, path.Validate(r))
	}
}

func TestSolve_PerfectMazePathIsUnique(t *testing.T) {
	g := world.MustGrid(12, 8)
	carved(t, g, 5)

	a, err := Solve(g, world.At(0, 0), world.At(11, 7), WithSource(random.New(1)))
	require.NoError(t, err)
	g.ClearSolution()
	b, err := Solve(g, world.At(0, 0), world.At(11, 7), WithSource(random.New(2)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSolve_SameCell(t *testing.T) {
	g := world.MustGrid(3, 3)
	path, err := Solve(g, world.At(1, 1), world.At(1, 1))
	require.NoError(t, err)
	assert.Equal(t, Path{world.At(1, 1)}, path)
	assert.True(t, g.Get(1, 1).InSolution)
}

func TestSolve_Unreachable(t *testing.T) {
	g := world.MustGrid(3, 3)
	_, err := Solve(g, world.At(0, 0), world.At(2, 2))
	assert.ErrorIs(t, err, ErrUnreachable)

	g.ForEachCell(func(c world.Coord, cell world.Cell) {
		assert.False(t, cell.InSolution, "cell %v", c)
	})
}

func TestSolve_OutOfBounds(t *testing.T) {
	g := world.MustGrid(3, 3)
	_, err := Solve(g, world.At(-1, 0), world.At(2, 2))
	assert.ErrorIs(t, err, world.ErrOutOfBounds)
	_, err = Solve(g, world.At(0, 0), world.At(3, 0))
	assert.ErrorIs(t, err, world.ErrOutOfBounds)
}

func TestSolve_AdjacencyOnCorridor(t *testing.T) {
	g := world.MustGrid(6, 1)
	for x := 0; x < 5; x++ {
		g.Open(world.At(x, 0), world.Right)
	}
	path, err := Solve(g, world.At(0, 0), world.At(5, 0), WithMode(Adjacency))
	require.NoError(t, err)
	require.Len(t, path, 6)
	for x, c := range path {
		assert.Equal(t, world.At(x, 0), c)
	}
	assert.NoError(t, path.Validate(g))
}

func TestSolve_ModesAgreeOnSerpentine(t *testing.T) {
	g := world.MustGrid(4, 3)
	// rows alternate direction, joined at the ends
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Open(world.At(x, y), world.Right)
		}
	}
	g.Open(world.At(3, 0), world.Down)
	g.Open(world.At(0, 1), world.Down)

	pred, err := Solve(g, world.At(0, 0), world.At(3, 2))
	require.NoError(t, err)
	adj, err := Solve(g, world.At(0, 0), world.At(3, 2), WithMode(Adjacency))
	require.NoError(t, err)
	assert.Equal(t, pred, adj)
	assert.Len(t, pred, 12)
}

func TestPath_ValidateRejectsWalls(t *testing.T) {
	g := world.MustGrid(3, 1)
	g.Open(world.At(0, 0), world.Right)

	assert.NoError(t, Path{world.At(0, 0), world.At(1, 0)}.Validate(g))
	assert.ErrorIs(t, Path{world.At(0, 0), world.At(1, 0), world.At(2, 0)}.Validate(g), ErrInvalidPath)
	assert.ErrorIs(t, Path{world.At(0, 0), world.At(2, 0)}.Validate(g), ErrInvalidPath)
	assert.ErrorIs(t, Path{}.Validate(g), ErrInvalidPath)
	assert.ErrorIs(t, Path{world.At(4, 0)}.Validate(g), world.ErrOutOfBounds)
}

func TestPath_RadialWrapStep(t *testing.T) {
	r, err := world.NewRadialGrid(1, 5)
	require.NoError(t, err)
	r.Open(world.Coord{Row: 0, Col: 4}, world.Left)

	p := Path{{Row: 0, Col: 4}, {Row: 0, Col: 0}}
	assert.NoError(t, p.Validate(r))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "predecessor", Predecessor.String())
	assert.Equal(t, "adjacency", Adjacency.String())
	assert.Equal(t, "unknown", Mode(7).String())
}
