package patterns

import (
	"strconv"

	"infinite-life/internal/core"
	rng "infinite-life/pkg/core"
)

// SoupConfig controls the random fill pattern.
type SoupConfig struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
	DX, DY  int64
}

// DefaultSoupConfig returns the standard configuration.
func DefaultSoupConfig() SoupConfig {
	return SoupConfig{Width: 40, Height: 40, Density: 0.35, Seed: 42}
}

// SoupFromMap populates a SoupConfig from a string map.
func SoupFromMap(cfg map[string]string) SoupConfig {
	c := DefaultSoupConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	c.DX, c.DY = Offset(cfg)
	return c
}

// Soup fills a Width x Height rectangle at (DX, DY) with live cells at the
// configured density. Equal configs paint equal soups.
func Soup(p core.Painter, c SoupConfig) {
	r := rng.NewRNG(c.Seed)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if r.Chance(c.Density) {
				p.Set(int64(x)+c.DX, int64(y)+c.DY, true)
			}
		}
	}
}
