package world

import (
	"fmt"
)

// MinSpokes is the smallest spoke count a radial grid accepts. With fewer
// spokes Left and Right would reach the same cell.
const MinSpokes = 3

// RadialGrid is the ring/spoke topology. Ring 0 is the outermost ring and
// ring Rings()-1 the innermost; both are hard boundaries. Spokes wrap:
// Left is spoke+1 and Right is spoke-1, modulo the spoke count.
type RadialGrid struct {
	cellStore
}

var _ Topology = (*RadialGrid)(nil)

// NewRadialGrid creates a fully walled grid of rings x spokes cells
func NewRadialGrid(rings, spokes int) (*RadialGrid, error) {
	if rings < 1 || spokes < MinSpokes {
		return nil, fmt.Errorf("%w: radial %d rings x %d spokes", ErrInvalidDimensions, rings, spokes)
	}
	return &RadialGrid{cellStore: newCellStore(rings, spokes)}, nil
}

// Kind returns KindRadial
func (r *RadialGrid) Kind() Kind {
	return KindRadial
}

// Rings returns the number of rings
func (r *RadialGrid) Rings() int {
	return r.rows
}

// Spokes returns the number of spokes
func (r *RadialGrid) Spokes() int {
	return r.cols
}

// Get returns the cell at the given ring and spoke
func (r *RadialGrid) Get(ring, spoke int) Cell {
	return r.Cell(Coord{Row: ring, Col: spoke})
}

// IsBoundary reports whether d leaves the ring range. The angular
// directions never do.
func (r *RadialGrid) IsBoundary(c Coord, d Direction) bool {
	switch d {
	case Out:
		return c.Row == 0
	case In:
		return c.Row == r.rows-1
	case Left, Right:
		return false
	default:
		panic(fmt.Sprintf("world: invalid direction %d", d))
	}
}

// Neighbor returns the adjacent coordinate in direction d, wrapping spokes
func (r *RadialGrid) Neighbor(c Coord, d Direction) Coord {
	if !r.Contains(c) || r.IsBoundary(c, d) {
		panic(fmt.Sprintf("world: %v has no neighbor %v", c, d.RadialString()))
	}
	switch d {
	case Out:
		return Coord{Row: c.Row - 1, Col: c.Col}
	case In:
		return Coord{Row: c.Row + 1, Col: c.Col}
	case Left:
		return Coord{Row: c.Row, Col: (c.Col + 1) % r.cols}
	default:
		return Coord{Row: c.Row, Col: (c.Col - 1 + r.cols) % r.cols}
	}
}

// Open removes the wall between c and its neighbor in direction d
func (r *RadialGrid) Open(c Coord, d Direction) {
	n := r.Neighbor(c, d)
	r.clear(c, d)
	r.clear(n, d.Opposite())
}

// OpenBoundary removes the outer or inner wall of a ring-edge cell
func (r *RadialGrid) OpenBoundary(c Coord, d Direction) {
	if !r.IsBoundary(c, d) {
		panic(fmt.Sprintf("world: %v %v is not a boundary", c, d.RadialString()))
	}
	r.clear(c, d)
}

// Entrance returns spoke 0 of the outermost ring and its Out wall
func (r *RadialGrid) Entrance() (Coord, Direction) {
	return Coord{Row: 0, Col: 0}, Out
}

// Exit returns the innermost cell opposite the entrance and its In wall
func (r *RadialGrid) Exit() (Coord, Direction) {
	return Coord{Row: r.rows - 1, Col: r.cols / 2}, In
}
