// Package tui renders rectangular mazes as box-drawing text. Each cell is
// three characters wide; solution cells carry an "x".
package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/renderer"
)

// Glyphs used for walls and marks
const (
	IconSolution   = "x"
	SegmentWall    = "---"
	SegmentOpen    = "   "
	WallVertical   = "│"
	OpenVertical   = " "
	CellBlank      = "   "
	CellWidthChars = 4 // one cell plus its right wall
)

// corner glyphs indexed by [row position][column position], where position
// 0 is the first line/column, 1 an interior one and 2 the last
var corners = [3][3]string{
	{"┌", "┬", "┐"},
	{"├", "┼", "┤"},
	{"└", "┴", "┘"},
}

// TUIRenderer is the text renderer implementation
type TUIRenderer struct {
	// Color enables ANSI styling of walls and solution marks
	Color bool

	colorWall     color.Style
	colorSolution color.Style
}

var _ renderer.Renderer = (*TUIRenderer)(nil)

// New creates a new text renderer
func New(useColor bool) *TUIRenderer {
	return &TUIRenderer{
		Color:         useColor,
		colorWall:     color.Style{color.FgGray},
		colorSolution: color.Style{color.FgRed, color.OpBold},
	}
}

// Name returns "text"
func (t *TUIRenderer) Name() string {
	return "text"
}

// Width returns the number of characters in each line of the rendering
func Width(cols int) int {
	return cols*CellWidthChars + 1
}

// Render writes the maze to w, one wall line and one cell line per row plus
// the closing wall line
func (t *TUIRenderer) Render(w io.Writer, topo world.Topology) error {
	if topo.Kind() != world.KindRect {
		return fmt.Errorf("%w: %s renderer needs a rect grid, got %s", renderer.ErrUnsupported, t.Name(), topo.Kind())
	}

	bw := bufio.NewWriter(w)
	rows := topo.Rows()
	for row := 0; row < rows; row++ {
		bw.WriteString(t.wallLine(topo, row))
		bw.WriteByte('\n')
		bw.WriteString(t.cellLine(topo, row))
		bw.WriteByte('\n')
	}
	bw.WriteString(t.wallLine(topo, rows))
	bw.WriteByte('\n')
	return bw.Flush()
}

// String renders topo to a string, ignoring color
func String(topo world.Topology) (string, error) {
	var sb strings.Builder
	err := New(false).Render(&sb, topo)
	return sb.String(), err
}

// wallLine draws the horizontal walls above row. row == Rows() draws the
// bottom edge.
func (t *TUIRenderer) wallLine(topo world.Topology, row int) string {
	rows, cols := topo.Rows(), topo.Cols()
	vpos := position(row, rows+1)

	var sb strings.Builder
	for col := 0; col <= cols; col++ {
		sb.WriteString(t.wall(corners[vpos][position(col, cols+1)]))
		if col == cols {
			break
		}

		closed := false
		if row < rows {
			closed = topo.Cell(world.At(col, row)).HasWall(world.Up)
		} else {
			closed = topo.Cell(world.At(col, row-1)).HasWall(world.Down)
		}
		if closed {
			sb.WriteString(t.wall(SegmentWall))
		} else {
			sb.WriteString(SegmentOpen)
		}
	}
	return sb.String()
}

// cellLine draws the cells of row with the vertical walls between them
func (t *TUIRenderer) cellLine(topo world.Topology, row int) string {
	var sb strings.Builder
	first := topo.Cell(world.At(0, row))
	if first.HasWall(world.Left) {
		sb.WriteString(t.wall(WallVertical))
	} else {
		sb.WriteString(OpenVertical)
	}

	for col := 0; col < topo.Cols(); col++ {
		cell := topo.Cell(world.At(col, row))
		if cell.InSolution {
			sb.WriteString(" " + t.solution(IconSolution) + " ")
		} else {
			sb.WriteString(CellBlank)
		}
		if cell.HasWall(world.Right) {
			sb.WriteString(t.wall(WallVertical))
		} else {
			sb.WriteString(OpenVertical)
		}
	}
	return sb.String()
}

func (t *TUIRenderer) wall(s string) string {
	if !t.Color {
		return s
	}
	return t.colorWall.Sprint(s)
}

func (t *TUIRenderer) solution(s string) string {
	if !t.Color {
		return s
	}
	return t.colorSolution.Sprint(s)
}

// position maps i in [0, n) to 0 for the first index, 2 for the last and 1
// otherwise
func position(i, n int) int {
	switch {
	case i == 0:
		return 0
	case i == n-1:
		return 2
	default:
		return 1
	}
}

func init() {
	renderer.Register(New(false))
}
