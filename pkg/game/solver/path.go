package solver

import (
	"errors"
	"fmt"

	"mazegen/pkg/engine/world"
)

// ErrInvalidPath indicates a path with a step that does not follow an open
// passage.
var ErrInvalidPath = errors.New("solver: invalid path")

// Path is a sequence of cells ordered from start to stop
type Path []world.Coord

// Start returns the first cell. The path must not be empty.
func (p Path) Start() world.Coord {
	return p[0]
}

// Stop returns the last cell. The path must not be empty.
func (p Path) Stop() world.Coord {
	return p[len(p)-1]
}

// Contains reports whether c lies on the path
func (p Path) Contains(c world.Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Validate checks that every consecutive pair of cells is joined by a
// passage open on both sides
func (p Path) Validate(t world.Topology) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	for i, c := range p {
		if !t.Contains(c) {
			return fmt.Errorf("%w: step %d %v: %w", ErrInvalidPath, i, c, world.ErrOutOfBounds)
		}
		if i == 0 {
			continue
		}
		if !joined(t, p[i-1], c) {
			return fmt.Errorf("%w: step %d %v to %v is not a passage", ErrInvalidPath, i, p[i-1], c)
		}
	}
	return nil
}

// joined reports whether an open passage connects a and b
func joined(t world.Topology, a, b world.Coord) bool {
	for _, d := range world.AllDirections() {
		if t.IsBoundary(a, d) || t.Neighbor(a, d) != b {
			continue
		}
		if t.IsOpen(a, d) && t.IsOpen(b, d.Opposite()) {
			return true
		}
	}
	return false
}
