package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPainter map[[2]int64]bool

func (r recordingPainter) Set(x, y int64, alive bool) { r[[2]int64{x, y}] = alive }

func TestRegistry(t *testing.T) {
	Register("test-dot", func(p Painter, cfg map[string]string) {
		p.Set(4, -2, true)
	})
	Register("", func(Painter, map[string]string) {})
	Register("test-nil", nil)

	p, err := Lookup("test-dot")
	require.NoError(t, err)
	rec := recordingPainter{}
	p(rec, nil)
	assert.Equal(t, recordingPainter{{4, -2}: true}, rec)

	_, err = Lookup("test-nil")
	assert.True(t, errors.Is(err, ErrUnknownPattern))
	_, err = Lookup("missing")
	assert.ErrorIs(t, err, ErrUnknownPattern)
	assert.Contains(t, err.Error(), `"missing"`)

	assert.Contains(t, PatternNames(), "test-dot")
	assert.NotContains(t, PatternNames(), "")
}

func TestFixedStep(t *testing.T) {
	fs := NewFixedStep(200 * time.Millisecond)
	start := time.Unix(1000, 0)

	assert.True(t, fs.Due(start), "unmarked timer is due")
	fs.Mark(start)
	assert.False(t, fs.Due(start.Add(199*time.Millisecond)))
	assert.True(t, fs.Due(start.Add(200*time.Millisecond)))

	fs.Mark(start.Add(250 * time.Millisecond))
	assert.False(t, fs.Due(start.Add(400*time.Millisecond)), "mark restarts the interval")
	assert.True(t, fs.Due(start.Add(450*time.Millisecond)))
}

func TestFixedStepDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, DefaultInterval, fs.Interval())
	fs.SetInterval(time.Second)
	assert.Equal(t, time.Second, fs.Interval())
	fs.SetInterval(-time.Second)
	assert.Equal(t, DefaultInterval, fs.Interval())
}

func TestByteGrid(t *testing.T) {
	g := NewByteGrid(4, 3)
	assert.Len(t, g.Cells(), 12)

	g.Set(3, 2, 1)
	assert.Equal(t, uint8(1), g.At(3, 2))
	assert.Equal(t, uint8(1), g.Cells()[g.Index(3, 2)])

	g.Set(4, 0, 1)
	g.Set(-1, 0, 1)
	assert.Equal(t, uint8(0), g.At(4, 0))

	g.Clear()
	for _, v := range g.Cells() {
		assert.Zero(t, v)
	}

	tiny := NewByteGrid(0, -2)
	assert.Equal(t, 1, tiny.W)
	assert.Equal(t, 1, tiny.H)
}
