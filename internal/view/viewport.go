// Package view maps between window pixels and board cells.
//
// The window shows Cols x Rows cells. Origin is the board cell in the
// bottom-left slot; board y grows upwards on screen while pixel y grows
// downwards.
package view

import "infinite-life/pkg/life"

// Viewport describes the visible window onto the board.
type Viewport struct {
	Cols, Rows   int
	CellW, CellH int
	Origin       life.Cell
}

// New returns a viewport anchored at the board origin. Non-positive
// dimensions are raised to 1.
func New(cols, rows, cellW, cellH int) Viewport {
	return Viewport{
		Cols:  max(cols, 1),
		Rows:  max(rows, 1),
		CellW: max(cellW, 1),
		CellH: max(cellH, 1),
	}
}

// Size returns the window size in pixels.
func (v Viewport) Size() (w, h int) {
	return v.Cols * v.CellW, v.Rows * v.CellH
}

// CellAt returns the board cell under pixel (px, py). ok is false when the
// pixel is outside the window.
func (v Viewport) CellAt(px, py int) (c life.Cell, ok bool) {
	w, h := v.Size()
	if px < 0 || py < 0 || px >= w || py >= h {
		return life.Cell{}, false
	}
	col := px / v.CellW
	up := (h - 1 - py) / v.CellH
	return life.Cell{X: v.Origin.X + int64(col), Y: v.Origin.Y + int64(up)}, true
}

// Local returns the raster slot of c, with row 0 at the top of the window.
// ok is false when c is outside the window.
func (v Viewport) Local(c life.Cell) (col, row int, ok bool) {
	dx, okX := offset(c.X, v.Origin.X, v.Cols)
	dy, okY := offset(c.Y, v.Origin.Y, v.Rows)
	if !okX || !okY {
		return 0, 0, false
	}
	return dx, v.Rows - 1 - dy, true
}

// Visible reports whether c falls inside the window.
func (v Viewport) Visible(c life.Cell) bool {
	_, _, ok := v.Local(c)
	return ok
}

// Pan shifts the window by (dx, dy) cells.
func (v *Viewport) Pan(dx, dy int64) {
	v.Origin.X += dx
	v.Origin.Y += dy
}

// CenterOn moves the window so the rectangle [minC, maxC] sits in the middle.
func (v *Viewport) CenterOn(minC, maxC life.Cell) {
	v.Origin.X = midpoint(minC.X, maxC.X) - int64(v.Cols/2)
	v.Origin.Y = midpoint(minC.Y, maxC.Y) - int64(v.Rows/2)
}

// offset returns p - origin when it lies in [0, n). The subtraction is done
// in uint64 so cells near the int64 limits cannot wrap into view.
func offset(p, origin int64, n int) (int, bool) {
	if p < origin {
		return 0, false
	}
	d := uint64(p) - uint64(origin)
	if d >= uint64(n) {
		return 0, false
	}
	return int(d), true
}

func midpoint(a, b int64) int64 {
	return a/2 + b/2 + (a%2+b%2)/2
}
