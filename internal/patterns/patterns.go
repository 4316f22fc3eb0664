// Package patterns registers the seed configurations the launcher can load.
package patterns

import (
	"strconv"

	"infinite-life/internal/core"
)

// Shape is a fixed set of live cells relative to its top-left corner.
type Shape [][2]int64

var (
	// Glider is the launcher's default seed.
	Glider = Shape{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	// Blinker is a period-2 oscillator.
	Blinker = Shape{{1, 0}, {1, 1}, {1, 2}}
	// Block is the 2x2 still life.
	Block = Shape{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	// RPentomino is a methuselah that settles after 1103 generations.
	RPentomino = Shape{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}
	// Acorn is a methuselah that settles after 5206 generations.
	Acorn = Shape{{1, 0}, {3, 1}, {0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2}}
)

// Paint writes the shape offset by (dx, dy).
func (s Shape) Paint(p core.Painter, dx, dy int64) {
	for _, c := range s {
		p.Set(c[0]+dx, c[1]+dy, true)
	}
}

// Offset reads the "dx" and "dy" keys. Missing or malformed values are 0.
func Offset(cfg map[string]string) (dx, dy int64) {
	if cfg == nil {
		return 0, 0
	}
	if v, ok := cfg["dx"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			dx = parsed
		}
	}
	if v, ok := cfg["dy"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			dy = parsed
		}
	}
	return dx, dy
}

func shapePattern(s Shape) core.Pattern {
	return func(p core.Painter, cfg map[string]string) {
		dx, dy := Offset(cfg)
		s.Paint(p, dx, dy)
	}
}

func init() {
	core.Register("glider", shapePattern(Glider))
	core.Register("blinker", shapePattern(Blinker))
	core.Register("block", shapePattern(Block))
	core.Register("rpentomino", shapePattern(RPentomino))
	core.Register("acorn", shapePattern(Acorn))
	core.Register("empty", func(core.Painter, map[string]string) {})
	core.Register("soup", func(p core.Painter, cfg map[string]string) {
		Soup(p, SoupFromMap(cfg))
	})
}
