// Package ebiten provides an interactive window that draws the current maze
// of a session and lets the user regenerate it or toggle its solution.
package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/gomono"

	"mazegen/pkg/game/renderer"
	"mazegen/pkg/game/state"
)

// Viewer implements ebiten.Game over a maze session
type Viewer struct {
	session  *state.Session
	geometry renderer.Geometry
	log      logrus.FieldLogger

	zoom          float64
	width, height int

	fontSource *text.GoTextFaceSource
	face       *text.GoTextFace
}

var _ ebiten.Game = (*Viewer)(nil)

// New creates a viewer for s
func New(s *state.Session, log logrus.FieldLogger) (*Viewer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Viewer{
		session:    s,
		geometry:   renderer.DefaultGeometry(),
		log:        log,
		zoom:       1,
		width:      defaultWindowWidth,
		height:     defaultWindowHeight,
		fontSource: src,
		face:       &text.GoTextFace{Source: src, Size: uiFontSize},
	}, nil
}

// Run opens the window and blocks until it is closed
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(defaultWindowWidth, defaultWindowHeight)
	ebiten.SetWindowTitle(fmt.Sprintf("mazegen - %s", v.session.Maze.Shape))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}

// Layout returns the logical screen size, which follows the window
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.width, v.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
