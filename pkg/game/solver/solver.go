// Package solver finds a path between two cells of a carved topology with a
// randomized depth-first search over open passages. The returned path is
// valid but not necessarily the shortest.
package solver

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"mazegen/pkg/engine/logging"
	"mazegen/pkg/engine/random"
	"mazegen/pkg/engine/world"
)

// ErrUnreachable indicates that the search exhausted every reachable cell
// without visiting the stop cell.
var ErrUnreachable = errors.New("solver: stop cell unreachable from start")

// Mode selects how the path is rebuilt once the stop cell is found
type Mode int

// Mode constants
const (
	// Predecessor follows the recorded parent of each visited cell back to
	// the start.
	Predecessor Mode = iota
	// Adjacency scans the visit order backwards and keeps every cell
	// adjacent to the current tail. It ignores walls and wraparound, so on
	// some mazes the result is not a valid path.
	Adjacency
)

// String returns the string representation of a mode
func (m Mode) String() string {
	switch m {
	case Predecessor:
		return "predecessor"
	case Adjacency:
		return "adjacency"
	default:
		return "unknown"
	}
}

// Option configures a solve
type Option func(*options)

type options struct {
	mode Mode
	rng  *random.Source
	log  logrus.FieldLogger
}

// WithMode sets the reconstruction mode
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithSource sets the random source used to order neighbor choices
func WithSource(rng *random.Source) Option {
	return func(o *options) { o.rng = rng }
}

// WithLogger sets the logger used for run summaries
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) { o.log = log }
}

// Solve searches from start to stop through open passages of t, marks every
// cell of the resulting path as part of the solution and returns it ordered
// from start to stop. Solution marks from earlier solves are not cleared.
func Solve(t world.Topology, start, stop world.Coord, opts ...Option) (Path, error) {
	o := options{mode: Predecessor, log: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = random.New(0)
	}

	if !t.Contains(start) {
		return nil, fmt.Errorf("%w: start %v", world.ErrOutOfBounds, start)
	}
	if !t.Contains(stop) {
		return nil, fmt.Errorf("%w: stop %v", world.ErrOutOfBounds, stop)
	}

	order, parent, found := search(t, start, stop, o.rng)
	if !found {
		o.log.WithFields(logrus.Fields{
			"start":   start.String(),
			"stop":    stop.String(),
			"visited": len(order),
		}).Debug("solve failed")
		return nil, fmt.Errorf("%w: %v to %v after %d cells", ErrUnreachable, start, stop, len(order))
	}

	var path Path
	switch o.mode {
	case Adjacency:
		path = fromAdjacency(t, order)
	default:
		path = fromPredecessors(parent, start, stop)
	}

	for _, c := range path {
		t.MarkSolution(c)
	}

	o.log.WithFields(logrus.Fields{
		"start":   start.String(),
		"stop":    stop.String(),
		"mode":    o.mode.String(),
		"visited": len(order),
		"length":  len(path),
	}).Debug("maze solved")

	return path, nil
}

// search runs the depth-first walk and returns the visit order, the parent
// of every visited cell other than start, and whether stop was reached.
func search(t world.Topology, start, stop world.Coord, rng *random.Source) ([]world.Coord, map[world.Coord]world.Coord, bool) {
	visited := mapset.New[world.Coord]()
	parent := make(map[world.Coord]world.Coord)
	order := []world.Coord{start}

	st := stack.New[world.Coord]()
	visited.Put(start)
	st.Push(start)

	if start == stop {
		return order, parent, true
	}

	var next [4]world.Coord
	for st.Size() > 0 {
		c := st.Pop()

		n := 0
		for _, d := range world.AllDirections() {
			if t.IsBoundary(c, d) || !t.IsOpen(c, d) {
				continue
			}
			nb := t.Neighbor(c, d)
			if visited.Has(nb) {
				continue
			}
			next[n] = nb
			n++
		}
		if n == 0 {
			continue
		}

		nb := next[rng.IntN(n)]
		st.Push(c)
		visited.Put(nb)
		parent[nb] = c
		order = append(order, nb)
		if nb == stop {
			return order, parent, true
		}
		st.Push(nb)
	}
	return order, parent, false
}

func fromPredecessors(parent map[world.Coord]world.Coord, start, stop world.Coord) Path {
	path := Path{stop}
	for c := stop; c != start; {
		c = parent[c]
		path = append(path, c)
	}
	slices.Reverse(path)
	return path
}

// fromAdjacency rebuilds a path from the visit order alone. order ends
// with the stop cell.
func fromAdjacency(t world.Topology, order []world.Coord) Path {
	path := Path{order[len(order)-1]}
	for i := len(order) - 2; i >= 0; i-- {
		if t.Adjacent(order[i], path[len(path)-1]) {
			path = append(path, order[i])
		}
	}
	slices.Reverse(path)
	return path
}
