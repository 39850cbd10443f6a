// Package svg renders rectangular and radial mazes as SVG documents.
package svg

import (
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo/float"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/renderer"
)

// SVGRenderer draws walls as black strokes and fills solution cells with
// translucent red
type SVGRenderer struct {
	Geometry renderer.Geometry
	Stroke   float64 // wall line thickness in output units
	Opacity  float64 // solution fill opacity in [0, 1]
}

var _ renderer.Renderer = (*SVGRenderer)(nil)

// New creates an SVG renderer with the default geometry
func New() *SVGRenderer {
	return &SVGRenderer{
		Geometry: renderer.DefaultGeometry(),
		Stroke:   1,
		Opacity:  0.5,
	}
}

// Name returns "svg"
func (r *SVGRenderer) Name() string {
	return "svg"
}

// Render writes t to w as a standalone SVG document
func (r *SVGRenderer) Render(w io.Writer, t world.Topology) error {
	ew := &errWriter{w: w}
	l := r.Geometry.Build(t)

	canvas := svgo.New(ew)
	canvas.Startview(l.Width, l.Height, 0, 0, l.Width, l.Height)
	canvas.Title(fmt.Sprintf("%s maze %dx%d", t.Kind(), t.Rows(), t.Cols()))

	if len(l.Marks) > 0 {
		canvas.Group(fmt.Sprintf(`fill="red" fill-opacity="%.2f" stroke="none"`, r.Opacity))
		for _, m := range l.Marks {
			if m.Sector {
				canvas.Path(sectorPath(l, m))
			} else {
				canvas.Rect(m.X, m.Y, m.W, m.H)
			}
		}
		canvas.Gend()
	}

	canvas.Group(fmt.Sprintf(`fill="none" stroke="black" stroke-width="%.2f" stroke-linecap="square"`, r.Stroke))
	for _, wall := range l.Walls {
		if wall.IsArc() {
			canvas.Arc(wall.From.X, wall.From.Y, wall.Radius, wall.Radius, 0, false, true, wall.To.X, wall.To.Y)
		} else {
			canvas.Line(wall.From.X, wall.From.Y, wall.To.X, wall.To.Y)
		}
	}
	canvas.Gend()
	canvas.End()

	return ew.err
}

// sectorPath returns path data for an annular sector: outer arc clockwise,
// inner arc back counter-clockwise
func sectorPath(l renderer.Layout, m renderer.Mark) string {
	c := l.SectorCorners(m)
	return fmt.Sprintf("M%.2f,%.2f A%.2f,%.2f 0 0 1 %.2f,%.2f L%.2f,%.2f A%.2f,%.2f 0 0 0 %.2f,%.2f Z",
		c[0].X, c[0].Y,
		m.Outer, m.Outer, c[1].X, c[1].Y,
		c[2].X, c[2].Y,
		m.Inner, m.Inner, c[3].X, c[3].Y)
}

// errWriter keeps the first write error, since the svgo drawing calls
// do not return one
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func init() {
	renderer.Register(New())
}
