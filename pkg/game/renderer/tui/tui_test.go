package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/pkg/engine/random"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/generator"
	"mazegen/pkg/game/renderer"
	"mazegen/pkg/game/solver"
)

func TestRender_TwoCells(t *testing.T) {
	g := world.MustGrid(2, 1)
	g.Open(world.At(0, 0), world.Right)
	world.OpenStartAndEnd(g)

	out, err := String(g)
	require.NoError(t, err)
	assert.Equal(t, "┌   ┬---┐\n│       │\n└---┴   ┘\n", out)

	g.MarkSolution(world.At(0, 0))
	g.MarkSolution(world.At(1, 0))
	out, err = String(g)
	require.NoError(t, err)
	assert.Equal(t, "┌   ┬---┐\n│ x   x │\n└---┴   ┘\n", out)
}

func TestRender_FreshGridIsClosed(t *testing.T) {
	out, err := String(world.MustGrid(3, 2))
	require.NoError(t, err)
	want := strings.Join([]string{
		"┌---┬---┬---┐",
		"│   │   │   │",
		"├---┼---┼---┤",
		"│   │   │   │",
		"└---┴---┴---┘",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRender_LineWidths(t *testing.T) {
	g := world.MustGrid(10, 10)
	_, err := generator.NewBacktracker(generator.WithSource(random.New(6))).Generate(g)
	require.NoError(t, err)
	world.OpenStartAndEnd(g)
	_, err = solver.Solve(g, world.At(0, 0), world.At(9, 9), solver.WithSource(random.New(6)))
	require.NoError(t, err)

	out, err := String(g)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 21)
	for i, line := range lines {
		assert.Equal(t, Width(10), len([]rune(line)), "line %d", i)
	}
	assert.Contains(t, out, IconSolution)
}

func TestRender_ColorWrapsSolution(t *testing.T) {
	g := world.MustGrid(1, 1)
	g.MarkSolution(world.At(0, 0))
	var sb strings.Builder
	require.NoError(t, New(true).Render(&sb, g))
	assert.Contains(t, sb.String(), IconSolution)
}

func TestRender_RadialUnsupported(t *testing.T) {
	r, err := world.NewRadialGrid(2, 4)
	require.NoError(t, err)
	_, err = String(r)
	assert.ErrorIs(t, err, renderer.ErrUnsupported)
}

func TestRegistered(t *testing.T) {
	r, err := renderer.Lookup("text")
	require.NoError(t, err)
	assert.Equal(t, "text", r.Name())
}
