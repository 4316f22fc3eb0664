//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"infinite-life/internal/render"
	"infinite-life/internal/session"
	"infinite-life/internal/ui"
	"infinite-life/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	vp      view.Viewport
	painter *render.GridPainter
	hud     *ui.HUD

	background color.Color
}

// New constructs a Game showing s through vp.
func New(s *session.Session, vp view.Viewport) *Game {
	return &Game{
		session:    s,
		vp:         vp,
		painter:    render.NewGridPainter(vp.Cols, vp.Rows),
		hud:        ui.NewHUD(),
		background: color.Black,
	}
}

// Update handles per-frame input and advances the board when due.
func (g *Game) Update() error {
	if isQuitJustPressed() {
		return ebiten.Termination
	}

	g.handlePointer()

	if isSimulateToggleJustPressed() {
		g.session.ToggleSimulate()
	}
	if isStepJustPressed() {
		g.session.RequestStep()
	}
	if isClearJustPressed() {
		g.session.Clear()
	}
	if isReseedJustPressed() {
		if err := g.session.Reset(); err != nil {
			return fmt.Errorf("reseed board: %w", err)
		}
	}
	if isRecenterJustPressed() {
		if minC, maxC, ok := g.session.Board().Bounds(); ok {
			g.vp.CenterOn(minC, maxC)
		}
	}
	if isGridToggleJustPressed() {
		g.painter.ShowLines = !g.painter.ShowLines
	}
	if isHUDToggleJustPressed() {
		g.hud.Visible = !g.hud.Visible
	}
	if isHelpToggleJustPressed() {
		g.hud.ShowHelp = !g.hud.ShowHelp
	}
	if dx, dy := panInput(); dx != 0 || dy != 0 {
		g.vp.Pan(dx, dy)
	}

	g.session.Tick(time.Now())
	return nil
}

func (g *Game) handlePointer() {
	cell, ok := g.vp.CellAt(ebiten.CursorPosition())
	if !ok {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.PointerPressed(cell)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.session.PointerHeld(cell)
	}
}

// Draw renders the visible live cells and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Draw(screen, g.session.Board().LiveCells(), g.vp)
	g.hud.Draw(screen, ui.Status{
		Generation: g.session.Generation(),
		Population: g.session.Population(),
		Simulating: g.session.Simulating(),
		Erasing:    g.session.Erasing(),
		Origin:     g.vp.Origin,
		Pattern:    g.session.Pattern(),
		Interval:   g.session.Interval(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.vp.Size()
}
