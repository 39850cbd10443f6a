package world

import (
	"fmt"
)

// Grid is the rectangular topology. Row 0 is the top edge and column 0 is
// the left edge; there is no wraparound.
type Grid struct {
	cellStore
}

var _ Topology = (*Grid)(nil)

// NewGrid creates a fully walled width x height grid
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Grid{cellStore: newCellStore(height, width)}, nil
}

// MustGrid is like NewGrid but panics on invalid dimensions
func MustGrid(width, height int) *Grid {
	g, err := NewGrid(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

// Kind returns KindRect
func (g *Grid) Kind() Kind {
	return KindRect
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.cols
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.rows
}

// At returns the coordinate of column x, row y
func At(x, y int) Coord {
	return Coord{Row: y, Col: x}
}

// Get returns the cell at column x, row y
func (g *Grid) Get(x, y int) Cell {
	return g.Cell(At(x, y))
}

// delta returns the row and column offsets for a direction
func delta(d Direction) (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// IsBoundary reports whether d leads off the edge of the grid
func (g *Grid) IsBoundary(c Coord, d Direction) bool {
	switch d {
	case Up:
		return c.Row == 0
	case Down:
		return c.Row == g.rows-1
	case Left:
		return c.Col == 0
	case Right:
		return c.Col == g.cols-1
	default:
		panic(fmt.Sprintf("world: invalid direction %d", d))
	}
}

// Neighbor returns the adjacent coordinate in direction d
func (g *Grid) Neighbor(c Coord, d Direction) Coord {
	if !g.Contains(c) || g.IsBoundary(c, d) {
		panic(fmt.Sprintf("world: %v has no neighbor %v", c, d))
	}
	rowRel, colRel := delta(d)
	return Coord{Row: c.Row + rowRel, Col: c.Col + colRel}
}

// Open removes the wall between c and its neighbor in direction d
func (g *Grid) Open(c Coord, d Direction) {
	n := g.Neighbor(c, d)
	g.clear(c, d)
	g.clear(n, d.Opposite())
}

// OpenBoundary removes the outer wall of an edge cell
func (g *Grid) OpenBoundary(c Coord, d Direction) {
	if !g.IsBoundary(c, d) {
		panic(fmt.Sprintf("world: %v %v is not a boundary", c, d))
	}
	g.clear(c, d)
}

// Entrance returns the top-left cell and its Up wall
func (g *Grid) Entrance() (Coord, Direction) {
	return Coord{Row: 0, Col: 0}, Up
}

// Exit returns the bottom-right cell and its Down wall
func (g *Grid) Exit() (Coord, Direction) {
	return Coord{Row: g.rows - 1, Col: g.cols - 1}, Down
}
