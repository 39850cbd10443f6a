// Package renderer defines the output backends for carved mazes and the
// vector geometry shared by the graphical ones.
package renderer

import (
	"math"

	"mazegen/pkg/engine/world"
)

// Point is a position in output units, y growing downwards
type Point struct {
	X, Y float64
}

// Wall is one wall stroke. When Radius is non-zero the wall is an arc about
// the layout center from angle Start to End (radians, increasing clockwise
// on screen); otherwise it is the straight segment From-To.
type Wall struct {
	From, To   Point
	Radius     float64
	Start, End float64
}

// IsArc reports whether the wall is an arc
func (w Wall) IsArc() bool {
	return w.Radius > 0
}

// Mark is the area of one solution cell. Rect marks use X, Y, W and H;
// sector marks span radii Inner to Outer between angles Start and End.
type Mark struct {
	Sector     bool
	X, Y, W, H float64

	Inner, Outer float64
	Start, End   float64
}

// Geometry configures the layout scale
type Geometry struct {
	CellSize    float64 // side of a rect cell, thickness of a ring
	Margin      float64 // blank border, in cells
	InnerRadius float64 // radius of the central hole, in rings
}

// DefaultGeometry returns 10-unit cells with a half-cell margin and a
// one-ring central hole
func DefaultGeometry() Geometry {
	return Geometry{CellSize: 10, Margin: 0.5, InnerRadius: 1}
}

// Layout is the vector form of a topology
type Layout struct {
	Width, Height float64
	Center        Point // radial only
	Walls         []Wall
	Marks         []Mark
}

// Build computes the layout of t. Each interior wall is emitted once.
func (g Geometry) Build(t world.Topology) Layout {
	if t.Kind() == world.KindRadial {
		return g.radial(t)
	}
	return g.rect(t)
}

func (g Geometry) rect(t world.Topology) Layout {
	s := g.CellSize
	m := g.Margin * s
	l := Layout{
		Width:  float64(t.Cols())*s + 2*m,
		Height: float64(t.Rows())*s + 2*m,
	}

	t.ForEachCell(func(c world.Coord, cell world.Cell) {
		x0 := float64(c.Col)*s + m
		y0 := float64(c.Row)*s + m
		x1, y1 := x0+s, y0+s

		if cell.HasWall(world.Up) {
			l.Walls = append(l.Walls, Wall{From: Point{x0, y0}, To: Point{x1, y0}})
		}
		if cell.HasWall(world.Right) {
			l.Walls = append(l.Walls, Wall{From: Point{x1, y0}, To: Point{x1, y1}})
		}
		if t.IsBoundary(c, world.Down) && cell.HasWall(world.Down) {
			l.Walls = append(l.Walls, Wall{From: Point{x0, y1}, To: Point{x1, y1}})
		}
		if t.IsBoundary(c, world.Left) && cell.HasWall(world.Left) {
			l.Walls = append(l.Walls, Wall{From: Point{x0, y0}, To: Point{x0, y1}})
		}

		if cell.InSolution {
			l.Marks = append(l.Marks, Mark{X: x0, Y: y0, W: s, H: s})
		}
	})
	return l
}

// radial lays ring 0 on the outside. Spoke s spans the angles
// [a(s), a(s+1)) with spoke 0 centered on the top.
func (g Geometry) radial(t world.Topology) Layout {
	s := g.CellSize
	rings, spokes := float64(t.Rows()), float64(t.Cols())
	inner := g.InnerRadius * s
	half := (rings*s + inner) + g.Margin*s

	l := Layout{
		Width:  2 * half,
		Height: 2 * half,
		Center: Point{half, half},
	}
	at := func(r, a float64) Point {
		return Point{l.Center.X + r*math.Cos(a), l.Center.Y + r*math.Sin(a)}
	}
	arc := func(r, a0, a1 float64) Wall {
		return Wall{From: at(r, a0), To: at(r, a1), Radius: r, Start: a0, End: a1}
	}
	step := 2 * math.Pi / spokes

	t.ForEachCell(func(c world.Coord, cell world.Cell) {
		a0 := float64(c.Col)*step - math.Pi/2 - step/2
		a1 := a0 + step
		outer := (rings-float64(c.Row))*s + inner
		in := outer - s

		if cell.HasWall(world.Out) {
			l.Walls = append(l.Walls, arc(outer, a0, a1))
		}
		if cell.HasWall(world.Left) {
			l.Walls = append(l.Walls, Wall{From: at(outer, a1), To: at(in, a1)})
		}
		if t.IsBoundary(c, world.In) && cell.HasWall(world.In) && in > 0 {
			l.Walls = append(l.Walls, arc(in, a0, a1))
		}

		if cell.InSolution {
			l.Marks = append(l.Marks, Mark{Sector: true, Inner: in, Outer: outer, Start: a0, End: a1})
		}
	})
	return l
}

// SectorCorners returns the four corners of a sector mark: outer start,
// outer end, inner end, inner start
func (l Layout) SectorCorners(m Mark) [4]Point {
	at := func(r, a float64) Point {
		return Point{l.Center.X + r*math.Cos(a), l.Center.Y + r*math.Sin(a)}
	}
	return [4]Point{at(m.Outer, m.Start), at(m.Outer, m.End), at(m.Inner, m.End), at(m.Inner, m.Start)}
}
