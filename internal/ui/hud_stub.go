//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct {
	Visible  bool
	ShowHelp bool
}

// NewHUD returns an inert HUD in the headless build.
func NewHUD() *HUD { return &HUD{} }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, Status) {}
