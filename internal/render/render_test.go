package render

import (
	"image/color"
	"slices"
	"testing"

	"infinite-life/internal/core"
	"infinite-life/internal/view"
	"infinite-life/pkg/life"

	"github.com/stretchr/testify/assert"
)

func TestRasterizeSkipsOffscreenCells(t *testing.T) {
	vp := view.New(4, 3, 10, 10)
	grid := core.NewByteGrid(vp.Cols, vp.Rows)
	grid.Set(2, 2, 1)

	cells := []life.Cell{
		{X: 0, Y: 0},
		{X: 3, Y: 2},
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 4, Y: 0},
		{X: 0, Y: 3},
	}
	drawn := Rasterize(slices.Values(cells), vp, grid)

	assert.Equal(t, 2, drawn)
	assert.Equal(t, uint8(1), grid.At(0, 2), "origin is the bottom-left slot")
	assert.Equal(t, uint8(1), grid.At(3, 0), "top row holds the highest y")
	assert.Equal(t, uint8(0), grid.At(2, 2), "stale pixels are cleared")

	total := 0
	for _, v := range grid.Cells() {
		total += int(v)
	}
	assert.Equal(t, 2, total)
}

func TestRasterizeNegativeCellsAfterPan(t *testing.T) {
	vp := view.New(5, 5, 1, 1)
	vp.Pan(-5, -5)
	grid := core.NewByteGrid(vp.Cols, vp.Rows)

	b := life.New()
	b.Set(-1, -1, true)
	b.Set(0, 0, true)
	drawn := Rasterize(b.LiveCells(), vp, grid)

	assert.Equal(t, 1, drawn)
	assert.Equal(t, uint8(1), grid.At(4, 0))
}

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.White, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	assert.Equal(t, []byte{255, 255, 255, 255, 1, 2, 3, 255}, buf)
}
