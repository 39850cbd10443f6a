package generator

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"mazegen/pkg/engine/world"
)

// BacktrackerGenerator carves a perfect maze with an explicit-stack
// depth-first search
type BacktrackerGenerator struct {
	opts []Option
}

// NewBacktracker creates a backtracker with the given options
func NewBacktracker(opts ...Option) *BacktrackerGenerator {
	return &BacktrackerGenerator{opts: opts}
}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Backtracker"
}

// Generate resets t and carves a spanning tree over every cell.
// Afterwards t has exactly t.Len()-1 open passages.
func (g *BacktrackerGenerator) Generate(t world.Topology) (Stats, error) {
	o := buildOptions(g.opts)
	if err := o.weights.Validate(); err != nil {
		return Stats{}, err
	}
	if !t.Contains(o.origin) {
		return Stats{}, fmt.Errorf("%w: origin %v", world.ErrOutOfBounds, o.origin)
	}

	t.Reset()
	stats := carve(t, o)

	o.log.WithFields(logrus.Fields{
		"generator": g.Name(),
		"topology":  t.Kind().String(),
		"cells":     t.Len(),
		"passages":  stats.Passages,
		"deadEnds":  stats.DeadEnds,
		"maxDepth":  stats.MaxStackDepth,
		"seed":      o.rng.Seed(),
	}).Debug("maze carved")

	return stats, nil
}

// carve runs the backtracker over t from o.origin without resetting it.
// Walls that are already open (rooms) are not treated as visited.
func carve(t world.Topology, o options) Stats {
	var stats Stats

	visited := mapset.New[world.Coord]()
	st := stack.New[world.Coord]()

	visited.Put(o.origin)
	st.Push(o.origin)
	stats.MaxStackDepth = 1

	var (
		dirs    [4]world.Direction
		weights [4]float64
	)

	for st.Size() > 0 {
		c := st.Pop()

		n := 0
		for _, d := range world.AllDirections() {
			if t.IsBoundary(c, d) {
				continue
			}
			if visited.Has(t.Neighbor(c, d)) {
				continue
			}
			dirs[n] = d
			weights[n] = o.weights.For(d)
			n++
		}

		if n == 0 {
			// nothing left to carve from c: backtrack
			continue
		}

		st.Push(c)
		d := dirs[o.rng.Weighted(weights[:n])]
		next := t.Neighbor(c, d)
		t.Open(c, d)
		stats.Passages++

		visited.Put(next)
		st.Push(next)
		if st.Size() > stats.MaxStackDepth {
			stats.MaxStackDepth = st.Size()
		}
	}

	stats.Visited = visited.Size()
	t.ForEachCell(func(_ world.Coord, cell world.Cell) {
		if cell.IsDeadEnd() {
			stats.DeadEnds++
		}
	})
	return stats
}
