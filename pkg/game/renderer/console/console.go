// Package console shows a session's maze full-screen in the terminal using
// tcell. Rectangular topologies only, since it reuses the text layout.
package console

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"mazegen/pkg/engine/i18n"
	"mazegen/pkg/engine/world"
	"mazegen/pkg/game/renderer"
	"mazegen/pkg/game/renderer/tui"
	"mazegen/pkg/game/state"
)

const (
	statusLines = 2
	panStep     = 4
)

var (
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSolution = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleMessage  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
)

// Console draws the session's maze on a tcell screen
type Console struct {
	screen  tcell.Screen
	session *state.Session
	log     logrus.FieldLogger

	offX, offY int
}

// New creates a console viewer. The screen is initialized by Run.
func New(screen tcell.Screen, s *state.Session, log logrus.FieldLogger) (*Console, error) {
	if k := s.Maze.Topology.Kind(); k != world.KindRect {
		return nil, fmt.Errorf("%w: console needs a rect grid, got %s", renderer.ErrUnsupported, k)
	}
	return &Console{screen: screen, session: s, log: log}, nil
}

// Run takes over the terminal until the user quits
func (c *Console) Run() error {
	if err := c.screen.Init(); err != nil {
		return err
	}
	defer c.screen.Fini()

	if err := c.draw(); err != nil {
		return err
	}
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return nil
		}
		running, err := c.handleEvent(ev)
		if err != nil || !running {
			return err
		}
		if err := c.draw(); err != nil {
			return err
		}
	}
}

// handleEvent applies one event and reports whether to keep running
func (c *Console) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false, nil
		case tcell.KeyUp:
			c.offY = max(c.offY-panStep/2, 0)
		case tcell.KeyDown:
			c.offY += panStep / 2
		case tcell.KeyLeft:
			c.offX = max(c.offX-panStep, 0)
		case tcell.KeyRight:
			c.offX += panStep
		case tcell.KeyRune:
			return c.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		c.screen.Sync()
	}
	return true, nil
}

func (c *Console) handleRune(r rune) (bool, error) {
	switch r {
	case 'q', 'Q':
		return false, nil
	case 'r', 'R', ' ':
		if err := c.session.Regenerate(); err != nil {
			return false, err
		}
		c.offX, c.offY = 0, 0
		c.log.WithFields(logrus.Fields{
			"seed":       c.session.Maze.Seed,
			"generation": c.session.Generation,
		}).Debug("console regenerated maze")
	case 's', 'S':
		if err := c.session.ToggleSolution(); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (c *Console) draw() error {
	text, err := tui.String(c.session.Maze.Topology)
	if err != nil {
		return err
	}

	c.screen.Clear()
	_, height := c.screen.Size()
	mapHeight := height - statusLines

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	c.offY = min(c.offY, max(len(lines)-mapHeight, 0))
	for y, line := range lines {
		sy := y - c.offY
		if sy < 0 {
			continue
		}
		if sy >= mapHeight {
			break
		}
		x := 0
		for _, r := range line {
			if sx := x - c.offX; sx >= 0 {
				g, style := c.glyph(r)
				c.screen.SetContent(sx, sy, g, nil, style)
			}
			x++
		}
	}

	maze := c.session.Maze
	status := i18n.T("SUMMARY", maze.Shape.String(), maze.Topology.Len(), maze.Stats.Passages, maze.Stats.DeadEnds, maze.Seed)
	if c.session.ShowSolution && maze.Solved() {
		status += "  " + i18n.T("PATH_LENGTH", len(maze.Path))
	}
	c.putString(0, height-2, status, styleStatus)

	footer := i18n.T("CONSOLE_HELP")
	if n := len(c.session.Messages); n > 0 {
		footer = c.session.Messages[n-1] + "  |  " + footer
	}
	c.putString(0, height-1, footer, styleMessage)

	c.screen.Show()
	return nil
}

// glyph returns the rune and style for one character of the text layout.
// Solution marks are blanked while the solution is hidden.
func (c *Console) glyph(r rune) (rune, tcell.Style) {
	switch {
	case r == ' ':
		return r, tcell.StyleDefault
	case string(r) == tui.IconSolution:
		if !c.session.ShowSolution {
			return ' ', tcell.StyleDefault
		}
		return r, styleSolution
	default:
		return r, styleWall
	}
}

func (c *Console) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
