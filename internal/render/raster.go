// Package render turns the live cells inside a viewport into pixels.
package render

import (
	"iter"

	"infinite-life/internal/core"
	"infinite-life/internal/view"
	"infinite-life/pkg/life"
)

// Rasterize clears grid and marks every live cell that falls inside vp with
// 1. Cells outside the window are skipped. grid must be vp.Cols x vp.Rows.
// It returns the number of cells marked.
func Rasterize(cells iter.Seq[life.Cell], vp view.Viewport, grid *core.ByteGrid) int {
	grid.Clear()
	drawn := 0
	for c := range cells {
		col, row, ok := vp.Local(c)
		if !ok || !grid.In(col, row) {
			continue
		}
		grid.Set(col, row, 1)
		drawn++
	}
	return drawn
}
