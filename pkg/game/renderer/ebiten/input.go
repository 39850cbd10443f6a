package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"mazegen/pkg/engine/i18n"
)

// Update handles keyboard input. Errors from rebuilding end the loop.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := v.session.Regenerate(); err != nil {
			return err
		}
		v.log.WithFields(logrus.Fields{
			"seed":       v.session.Maze.Seed,
			"generation": v.session.Generation,
		}).Debug("viewer regenerated maze")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := v.session.ToggleSolution(); err != nil {
			return err
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		name, err := v.saveSnapshot()
		if err != nil {
			v.log.WithError(err).Warn("snapshot failed")
			v.session.AddMessage(err.Error())
		} else {
			v.session.AddMessage(i18n.T("OUTPUT_WRITTEN", name))
		}
	}

	// Zoom controls
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		v.setZoom(v.zoom * zoomStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		v.setZoom(v.zoom / zoomStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key0) || inpututil.IsKeyJustPressed(ebiten.KeyNumpad0) {
		v.setZoom(1)
	}
	return nil
}

func (v *Viewer) setZoom(z float64) {
	v.zoom = min(max(z, minZoom), maxZoom)
}
