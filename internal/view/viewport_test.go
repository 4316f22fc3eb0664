package view

import (
	"math"
	"testing"

	"infinite-life/pkg/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClampsDimensions(t *testing.T) {
	v := New(0, -4, 0, 3)
	assert.Equal(t, 1, v.Cols)
	assert.Equal(t, 1, v.Rows)
	assert.Equal(t, 1, v.CellW)
	assert.Equal(t, 3, v.CellH)
}

func TestCellAt(t *testing.T) {
	v := New(60, 60, 10, 10)
	w, h := v.Size()
	require.Equal(t, 600, w)
	require.Equal(t, 600, h)

	tests := []struct {
		name   string
		px, py int
		want   life.Cell
		ok     bool
	}{
		{"bottom left", 0, 599, life.Cell{X: 0, Y: 0}, true},
		{"top left", 0, 0, life.Cell{X: 0, Y: 59}, true},
		{"bottom right", 599, 599, life.Cell{X: 59, Y: 0}, true},
		{"inside cell", 25, 585, life.Cell{X: 2, Y: 1}, true},
		{"left of window", -1, 10, life.Cell{}, false},
		{"above window", 10, -1, life.Cell{}, false},
		{"right of window", 600, 10, life.Cell{}, false},
		{"below window", 10, 600, life.Cell{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.CellAt(tt.px, tt.py)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCellAtFollowsOrigin(t *testing.T) {
	v := New(10, 10, 4, 4)
	v.Pan(-20, -5)
	got, ok := v.CellAt(0, 39)
	require.True(t, ok)
	assert.Equal(t, life.Cell{X: -20, Y: -5}, got)
}

func TestLocalRoundTrip(t *testing.T) {
	v := New(8, 6, 5, 5)
	v.Pan(-3, 2)
	for row := 0; row < v.Rows; row++ {
		for col := 0; col < v.Cols; col++ {
			c, ok := v.CellAt(col*v.CellW+2, row*v.CellH+2)
			require.True(t, ok)
			gotCol, gotRow, ok := v.Local(c)
			require.True(t, ok)
			assert.Equal(t, col, gotCol)
			assert.Equal(t, row, gotRow)
		}
	}
}

func TestVisible(t *testing.T) {
	v := New(4, 4, 1, 1)
	assert.True(t, v.Visible(life.Cell{X: 0, Y: 0}))
	assert.True(t, v.Visible(life.Cell{X: 3, Y: 3}))
	assert.False(t, v.Visible(life.Cell{X: -1, Y: 0}))
	assert.False(t, v.Visible(life.Cell{X: 0, Y: 4}))
	assert.False(t, v.Visible(life.Cell{X: math.MaxInt64, Y: 0}))

	v.Origin = life.Cell{X: math.MinInt64, Y: math.MinInt64}
	assert.False(t, v.Visible(life.Cell{X: math.MaxInt64, Y: math.MaxInt64}), "distance must not wrap")
	assert.True(t, v.Visible(life.Cell{X: math.MinInt64 + 1, Y: math.MinInt64}))
}

func TestCenterOn(t *testing.T) {
	v := New(10, 10, 1, 1)
	v.CenterOn(life.Cell{X: -4, Y: 100}, life.Cell{X: 4, Y: 110})
	assert.Equal(t, life.Cell{X: -5, Y: 100}, v.Origin)
	assert.True(t, v.Visible(life.Cell{X: 0, Y: 105}))

	v.CenterOn(life.Cell{X: math.MinInt64, Y: 0}, life.Cell{X: math.MaxInt64, Y: 0})
	assert.Equal(t, int64(-6), v.Origin.X)
}
