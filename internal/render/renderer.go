//go:build ebiten

package render

import (
	"image/color"
	"iter"

	"infinite-life/internal/core"
	"infinite-life/internal/view"
	"infinite-life/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter rasterizes the visible part of the board into a single image
// with one pixel per cell and scales it up to the window.
type GridPainter struct {
	grid *core.ByteGrid
	img  *ebiten.Image
	buf  []byte

	On, Off   color.Color
	LineColor color.Color
	ShowLines bool
}

// NewGridPainter allocates a painter for a window of cols x rows cells.
func NewGridPainter(cols, rows int) *GridPainter {
	gp := &GridPainter{
		On:        color.White,
		Off:       color.Black,
		LineColor: color.RGBA{R: 40, G: 40, B: 40, A: 255},
	}
	gp.resize(cols, rows)
	return gp
}

func (gp *GridPainter) resize(cols, rows int) {
	gp.grid = core.NewByteGrid(cols, rows)
	gp.buf = make([]byte, 4*gp.grid.W*gp.grid.H)
	gp.img = ebiten.NewImage(gp.grid.W, gp.grid.H)
}

// Draw paints the live cells visible through vp onto dst and returns how
// many were drawn.
func (gp *GridPainter) Draw(dst *ebiten.Image, cells iter.Seq[life.Cell], vp view.Viewport) int {
	if gp.grid.W != vp.Cols || gp.grid.H != vp.Rows {
		gp.resize(vp.Cols, vp.Rows)
	}
	drawn := Rasterize(cells, vp, gp.grid)
	fillBinaryRGBA(gp.buf, gp.grid.Cells(), gp.On, gp.Off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(vp.CellW), float64(vp.CellH))
	dst.DrawImage(gp.img, op)

	if gp.ShowLines {
		gp.drawLines(dst, vp)
	}
	return drawn
}

func (gp *GridPainter) drawLines(dst *ebiten.Image, vp view.Viewport) {
	w, h := vp.Size()
	for col := 1; col < vp.Cols; col++ {
		x := float32(col * vp.CellW)
		vector.StrokeLine(dst, x, 0, x, float32(h), 1, gp.LineColor, false)
	}
	for row := 1; row < vp.Rows; row++ {
		y := float32(row * vp.CellH)
		vector.StrokeLine(dst, 0, y, float32(w), y, 1, gp.LineColor, false)
	}
}
