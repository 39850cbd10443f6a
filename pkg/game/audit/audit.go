// Package audit checks the structural properties of a carved topology:
// connectivity, absence of cycles and wall symmetry.
package audit

import (
	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"mazegen/pkg/engine/world"
)

// Report summarizes the passage structure of a topology
type Report struct {
	Cells      int
	Passages   int // interior walls open on both sides
	Components int // connected regions via passages
	Cycles     int // passages joining cells that were already connected
	Asymmetric int // interior walls open on exactly one side
}

// Perfect reports whether the passages form a spanning tree with every
// wall in agreement with its neighbor
func (r Report) Perfect() bool {
	return r.Components == 1 && r.Cycles == 0 && r.Asymmetric == 0
}

// Inspect walks every interior wall of t once and classifies it. Each wall
// is seen as the Down or Right wall of exactly one cell.
func Inspect(t world.Topology) Report {
	r := Report{Cells: t.Len()}

	sets := make([]*disjoint.Element, t.Len())
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}
	index := func(c world.Coord) int { return c.Row*t.Cols() + c.Col }

	t.ForEachCell(func(c world.Coord, _ world.Cell) {
		for _, d := range []world.Direction{world.Down, world.Right} {
			if t.IsBoundary(c, d) {
				continue
			}
			n := t.Neighbor(c, d)
			here, there := t.IsOpen(c, d), t.IsOpen(n, d.Opposite())
			if here != there {
				r.Asymmetric++
				continue
			}
			if !here {
				continue
			}
			r.Passages++
			a, b := sets[index(c)], sets[index(n)]
			if a.Find() == b.Find() {
				r.Cycles++
				continue
			}
			disjoint.Union(a, b)
		}
	})

	roots := mapset.New[*disjoint.Element]()
	for _, e := range sets {
		roots.Put(e.Find())
	}
	r.Components = roots.Size()

	return r
}

// Reachable returns the number of cells reachable from start through open
// passages, start included
func Reachable(t world.Topology, start world.Coord) int {
	if !t.Contains(start) {
		return 0
	}
	visited := mapset.New[world.Coord]()
	q := queue.New[world.Coord]()
	visited.Put(start)
	q.Enqueue(start)

	for !q.Empty() {
		c := q.Dequeue()
		for _, d := range world.AllDirections() {
			if t.IsBoundary(c, d) || !t.IsOpen(c, d) {
				continue
			}
			n := t.Neighbor(c, d)
			if visited.Has(n) {
				continue
			}
			visited.Put(n)
			q.Enqueue(n)
		}
	}
	return visited.Size()
}

// Symmetric reports whether every interior wall agrees on both sides
func Symmetric(t world.Topology) bool {
	return Inspect(t).Asymmetric == 0
}
