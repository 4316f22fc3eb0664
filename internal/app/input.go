//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	panRepeatDelay    = 15
	panRepeatInterval = 3
)

func isQuitJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func isSimulateToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func isStepJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyS)
}

func isClearJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC)
}

func isReseedJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

func isRecenterJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyHome)
}

func isGridToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyG)
}

func isHUDToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyH)
}

func isHelpToggleJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF1)
}

// isRepeating reports a key press on the first tick and then every few
// ticks while the key stays held.
func isRepeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= panRepeatDelay && (d-panRepeatDelay)%panRepeatInterval == 0
}

// panInput returns the requested pan in cells for this tick. Up moves the
// window towards larger y.
func panInput() (dx, dy int64) {
	if isRepeating(ebiten.KeyLeft) {
		dx--
	}
	if isRepeating(ebiten.KeyRight) {
		dx++
	}
	if isRepeating(ebiten.KeyDown) {
		dy--
	}
	if isRepeating(ebiten.KeyUp) {
		dy++
	}
	return dx, dy
}
