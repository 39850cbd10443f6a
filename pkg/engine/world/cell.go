// Package world provides the cell topologies mazes are carved into:
// a rectangular grid and a radial ring/spoke grid sharing one Topology
// contract, a bitset wall representation and the per-cell solution mark.
package world

// Walls is a bitset with one bit per Direction. A set bit means the wall
// is present.
type Walls uint8

// AllWalls is the state of a freshly built cell
const AllWalls Walls = 1<<Up | 1<<Down | 1<<Left | 1<<Right

// Has reports whether the wall in direction d is present
func (w Walls) Has(d Direction) bool {
	return w&d.bit() != 0
}

// Without returns w with the wall in direction d removed
func (w Walls) Without(d Direction) Walls {
	return w &^ d.bit()
}

// Count returns the number of walls present
func (w Walls) Count() int {
	n := 0
	for _, d := range AllDirections() {
		if w.Has(d) {
			n++
		}
	}
	return n
}

// Cell represents a single addressable position of a topology
type Cell struct {
	Walls      Walls
	InSolution bool
}

// NewCell creates a fully walled, unmarked cell
func NewCell() Cell {
	return Cell{Walls: AllWalls}
}

// IsOpen returns true if there is no wall in the given direction
func (c Cell) IsOpen(dir Direction) bool {
	return !c.Walls.Has(dir)
}

// HasWall returns true if there is a wall in the given direction
func (c Cell) HasWall(dir Direction) bool {
	return c.Walls.Has(dir)
}

// OpenCount returns how many of the four walls are open
func (c Cell) OpenCount() int {
	return 4 - c.Walls.Count()
}

// IsDeadEnd returns true if exactly one wall is open
func (c Cell) IsDeadEnd() bool {
	return c.OpenCount() == 1
}
