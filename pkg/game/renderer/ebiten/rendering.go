package ebiten

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"mazegen/pkg/engine/i18n"
	"mazegen/pkg/game/renderer"
)

// transform maps layout units to screen pixels
type transform struct {
	scale, offX, offY float64
}

func (t transform) point(p renderer.Point) (float32, float32) {
	return float32(p.X*t.scale + t.offX), float32(p.Y*t.scale + t.offY)
}

func (t transform) length(v float64) float32 {
	return float32(v * t.scale)
}

// Draw renders the maze, its solution when shown and the HUD
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	maze := v.session.Maze
	l := v.geometry.Build(maze.Topology)

	areaW := float64(v.width - 2*mapPadding)
	areaH := float64(v.height - hudHeight - 3*mapPadding)
	if areaW <= 0 || areaH <= 0 {
		return
	}
	scale := math.Min(areaW/l.Width, areaH/l.Height) * v.zoom
	tr := transform{
		scale: scale,
		offX:  mapPadding + (areaW-l.Width*scale)/2,
		offY:  mapPadding + (areaH-l.Height*scale)/2,
	}

	x, y := tr.point(renderer.Point{})
	vector.DrawFilledRect(screen, x, y, tr.length(l.Width), tr.length(l.Height), colorMapBackground, false)

	if v.session.ShowSolution {
		v.drawMarks(screen, l, tr)
	}
	v.drawWalls(screen, l, tr)
	v.drawHUD(screen)
}

func (v *Viewer) drawMarks(screen *ebiten.Image, l renderer.Layout, tr transform) {
	var path vector.Path
	for _, m := range l.Marks {
		if !m.Sector {
			x, y := tr.point(renderer.Point{X: m.X, Y: m.Y})
			vector.DrawFilledRect(screen, x, y, tr.length(m.W), tr.length(m.H), colorSolution, true)
			continue
		}
		appendSector(&path, l, m, tr)
	}

	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(colorSolution)
	vector.FillPath(screen, &path, nil, drawOpts)
}

// appendSector adds a closed annular sector: outer arc clockwise, inner arc
// back counter-clockwise
func appendSector(p *vector.Path, l renderer.Layout, m renderer.Mark, tr transform) {
	corners := l.SectorCorners(m)
	cx, cy := tr.point(l.Center)
	a0, a1 := float32(m.Start), float32(m.End)

	p.MoveTo(tr.point(corners[0]))
	p.Arc(cx, cy, tr.length(m.Outer), a0, a1, vector.Clockwise)
	p.LineTo(tr.point(corners[2]))
	if m.Inner > 0 {
		p.Arc(cx, cy, tr.length(m.Inner), a1, a0, vector.CounterClockwise)
	}
	p.Close()
}

func (v *Viewer) drawWalls(screen *ebiten.Image, l renderer.Layout, tr transform) {
	var path vector.Path
	cx, cy := tr.point(l.Center)
	for _, w := range l.Walls {
		path.MoveTo(tr.point(w.From))
		if w.IsArc() {
			path.Arc(cx, cy, tr.length(w.Radius), float32(w.Start), float32(w.End), vector.Clockwise)
			continue
		}
		path.LineTo(tr.point(w.To))
	}

	strokeOpts := &vector.StrokeOptions{Width: wallStrokeWidth, MiterLimit: 10, LineCap: vector.LineCapSquare}
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(colorWall)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

type hudLine struct {
	text  string
	color color.Color
}

// drawHUD draws the message log and key help in a panel along the bottom
func (v *Viewer) drawHUD(screen *ebiten.Image) {
	x := float32(mapPadding)
	y := float32(v.height - hudHeight - mapPadding)
	w := float32(v.width - 2*mapPadding)
	drawPanel(screen, x, y, w, hudHeight)

	maze := v.session.Maze
	lines := []hudLine{
		{i18n.T("SUMMARY", maze.Shape.String(), maze.Topology.Len(), maze.Stats.Passages, maze.Stats.DeadEnds, maze.Seed), colorText},
	}
	if v.session.ShowSolution && maze.Solved() {
		lines = append(lines, hudLine{i18n.T("PATH_LENGTH", len(maze.Path)), colorText})
	}
	for _, msg := range v.session.Messages {
		lines = append(lines, hudLine{msg, colorSubtle})
	}

	ty := float64(y) + 10
	for _, line := range lines {
		if ty > float64(y+hudHeight)-2*lineSpacing {
			break
		}
		drawText(screen, line.text, v.face, float64(x)+12, ty, line.color)
		ty += lineSpacing
	}

	help := i18n.T("VIEWER_HELP")
	hw, _ := text.Measure(help, v.face, 0)
	drawText(screen, help, v.face, float64(x+w)-hw-12, float64(y+hudHeight)-lineSpacing-6, colorSubtle)
	drawText(screen, fmt.Sprintf("%.0f%%", v.zoom*100), v.face, float64(x)+12, float64(y+hudHeight)-lineSpacing-6, colorSubtle)
}

func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, face, op)
}

// drawPanel draws a rounded, bordered panel
func drawPanel(screen *ebiten.Image, x, y, w, h float32) {
	var path vector.Path
	appendRoundedRect(&path, x, y, w, h, hudCornerRadius)
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(colorPanelBackground)
	vector.FillPath(screen, &path, nil, drawOpts)

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, hudCornerRadius)
	strokeOpts := &vector.StrokeOptions{Width: hudBorderWidth, MiterLimit: 10}
	drawOpts = &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(colorPanelBorder)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
// Uses clockwise arcs so the path winds correctly for fill.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	r = min(r, w/2, h/2)
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, vector.Clockwise)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, vector.Clockwise)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, vector.Clockwise)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, vector.Clockwise)
	p.Close()
}
