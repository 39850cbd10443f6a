package renderer

import (
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazegen/pkg/engine/world"
)

func TestGeometry_RectWalls(t *testing.T) {
	g := world.MustGrid(2, 1)
	l := DefaultGeometry().Build(g)
	assert.Len(t, l.Walls, 7)
	assert.InDelta(t, 30, l.Width, 1e-9)
	assert.InDelta(t, 20, l.Height, 1e-9)

	g.Open(world.At(0, 0), world.Right)
	g.MarkSolution(world.At(1, 0))
	l = DefaultGeometry().Build(g)
	assert.Len(t, l.Walls, 6)
	require.Len(t, l.Marks, 1)
	assert.Equal(t, Mark{X: 15, Y: 5, W: 10, H: 10}, l.Marks[0])
	for _, w := range l.Walls {
		assert.False(t, w.IsArc())
	}
}

func TestGeometry_RadialWalls(t *testing.T) {
	r, err := world.NewRadialGrid(1, 3)
	require.NoError(t, err)

	l := DefaultGeometry().Build(r)
	assert.Len(t, l.Walls, 9)
	arcs := 0
	for _, w := range l.Walls {
		if w.IsArc() {
			arcs++
			assert.InDelta(t, 2*math.Pi/3, w.End-w.Start, 1e-9)
		}
	}
	assert.Equal(t, 6, arcs)
	assert.Equal(t, Point{25, 25}, l.Center)

	geo := DefaultGeometry()
	geo.InnerRadius = 0
	assert.Len(t, geo.Build(r).Walls, 6)
}

func TestGeometry_RadialSpokeZeroIsOnTop(t *testing.T) {
	r, err := world.NewRadialGrid(2, 4)
	require.NoError(t, err)
	r.MarkSolution(world.Coord{Row: 0, Col: 0})

	l := DefaultGeometry().Build(r)
	require.Len(t, l.Marks, 1)
	m := l.Marks[0]
	assert.True(t, m.Sector)
	assert.InDelta(t, -math.Pi/2, (m.Start+m.End)/2, 1e-9)
	assert.InDelta(t, 30, m.Outer, 1e-9)
	assert.InDelta(t, 20, m.Inner, 1e-9)

	c := l.SectorCorners(m)
	assert.Less(t, c[0].Y, l.Center.Y)
	assert.Less(t, c[0].X, c[1].X)
}

type stubRenderer struct{}

func (stubRenderer) Name() string { return "Stub" }
func (stubRenderer) Render(io.Writer, world.Topology) error { return nil }

func TestRegistry(t *testing.T) {
	Register(stubRenderer{})
	r, err := Lookup("stub")
	require.NoError(t, err)
	assert.Equal(t, "Stub", r.Name())
	assert.Contains(t, Names(), "stub")

	_, err = Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknown)
}
