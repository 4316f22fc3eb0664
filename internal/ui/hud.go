//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 15
)

// HUD renders the status panel in the top-left corner of the window.
type HUD struct {
	Visible  bool
	ShowHelp bool

	fg   color.Color
	dim  color.Color
	back color.Color
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{
		Visible:  true,
		ShowHelp: true,
		fg:       color.RGBA{R: 220, G: 220, B: 230, A: 255},
		dim:      color.RGBA{R: 150, G: 150, B: 160, A: 255},
		back:     color.RGBA{R: 0, G: 0, B: 0, A: 170},
	}
}

// Draw paints the status panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil || !h.Visible {
		return
	}
	lines := s.PanelLines(h.ShowHelp)
	statusCount := len(s.Lines())

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		width = max(width, text.BoundString(face, l).Dx())
	}
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*hudPadding), float32(len(lines)*hudLineHeight+hudPadding), h.back, false)

	y := hudPadding + face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		clr := h.fg
		if i >= statusCount {
			clr = h.dim
		}
		text.Draw(screen, l, face, hudPadding, y, clr)
		y += hudLineHeight
	}
}
