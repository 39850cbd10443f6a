package world

import "fmt"

// Kind identifies a topology variant
type Kind int

// Kind constants
const (
	KindRect Kind = iota
	KindRadial
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindRadial:
		return "radial"
	default:
		return "unknown"
	}
}

// Coord addresses a cell. On the rectangular grid Row is y and Col is x;
// on the radial grid Row is the ring and Col is the spoke.
type Coord struct {
	Row int
	Col int
}

// String returns "(row,col)"
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Topology is the contract shared by every maze grid. Implementations own
// a fixed-size set of cells; only Open and OpenBoundary clear walls, which
// keeps the two sides of every interior wall in agreement.
type Topology interface {
	Kind() Kind
	Rows() int
	Cols() int
	Len() int
	Contains(c Coord) bool
	Cell(c Coord) Cell

	// IsBoundary reports whether moving from c in direction d leaves the
	// addressable space.
	IsBoundary(c Coord, d Direction) bool
	// Neighbor returns the cell reached from c in direction d, applying
	// wraparound where the topology defines it. It panics at a boundary.
	Neighbor(c Coord, d Direction) Coord
	// Open removes the wall between c and its neighbor in direction d on
	// both sides. It panics at a boundary.
	Open(c Coord, d Direction)
	// OpenBoundary removes a boundary-facing wall. It panics if d is not a
	// boundary of c.
	OpenBoundary(c Coord, d Direction)
	IsOpen(c Coord, d Direction) bool

	MarkSolution(c Coord)
	ClearSolution()
	Reset()
	OpenAll()

	Entrance() (Coord, Direction)
	Exit() (Coord, Direction)

	// Adjacent reports whether a and b are at Manhattan distance exactly
	// one in raw coordinate space, ignoring any wraparound.
	Adjacent(a, b Coord) bool
	ForEachCell(fn func(c Coord, cell Cell))
}

// OpenStartAndEnd opens the entrance and exit walls of t
func OpenStartAndEnd(t Topology) {
	c, d := t.Entrance()
	t.OpenBoundary(c, d)
	c, d = t.Exit()
	t.OpenBoundary(c, d)
}

// cellStore is the row-major cell storage shared by the topologies
type cellStore struct {
	rows  int
	cols  int
	cells []Cell
}

func newCellStore(rows, cols int) cellStore {
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = NewCell()
	}
	return cellStore{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows
func (s *cellStore) Rows() int {
	return s.rows
}

// Cols returns the number of columns
func (s *cellStore) Cols() int {
	return s.cols
}

// Len returns the number of cells
func (s *cellStore) Len() int {
	return len(s.cells)
}

// Contains checks if a coordinate is within bounds
func (s *cellStore) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < s.rows && c.Col >= 0 && c.Col < s.cols
}

func (s *cellStore) index(c Coord) int {
	if !s.Contains(c) {
		panic(fmt.Sprintf("world: coordinate %v outside %dx%d", c, s.rows, s.cols))
	}
	return c.Row*s.cols + c.Col
}

// Cell returns a copy of the cell at c
func (s *cellStore) Cell(c Coord) Cell {
	return s.cells[s.index(c)]
}

// IsOpen returns true if the cell at c has no wall in direction d
func (s *cellStore) IsOpen(c Coord, d Direction) bool {
	return s.cells[s.index(c)].IsOpen(d)
}

// MarkSolution flags the cell at c as part of the solution
func (s *cellStore) MarkSolution(c Coord) {
	s.cells[s.index(c)].InSolution = true
}

// ClearSolution removes every solution mark, leaving walls untouched
func (s *cellStore) ClearSolution() {
	for i := range s.cells {
		s.cells[i].InSolution = false
	}
}

// Reset restores every cell to fully walled and unmarked
func (s *cellStore) Reset() {
	for i := range s.cells {
		s.cells[i] = NewCell()
	}
}

// OpenAll removes every wall of every cell
func (s *cellStore) OpenAll() {
	for i := range s.cells {
		s.cells[i].Walls = 0
	}
}

// Adjacent reports Manhattan distance one without wraparound
func (s *cellStore) Adjacent(a, b Coord) bool {
	return abs(a.Row-b.Row)+abs(a.Col-b.Col) == 1
}

// ForEachCell iterates over all cells in row-major order
func (s *cellStore) ForEachCell(fn func(c Coord, cell Cell)) {
	for i, cell := range s.cells {
		fn(Coord{Row: i / s.cols, Col: i % s.cols}, cell)
	}
}

func (s *cellStore) clear(c Coord, d Direction) {
	i := s.index(c)
	s.cells[i].Walls = s.cells[i].Walls.Without(d)
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
