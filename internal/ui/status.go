// Package ui draws the heads-up display over the board.
package ui

import (
	"fmt"
	"strings"
	"time"

	"infinite-life/pkg/life"
)

// Status is the information shown on the HUD each frame.
type Status struct {
	Generation int
	Population int
	Simulating bool
	Erasing    bool
	Origin     life.Cell
	Pattern    string
	Interval   time.Duration
}

// Lines renders the status as the HUD's text lines.
func (s Status) Lines() []string {
	mode := "paused"
	if s.Simulating {
		mode = "running"
	}
	brush := "draw"
	if s.Erasing {
		brush = "erase"
	}
	lines := []string{
		fmt.Sprintf("gen %d  pop %d  %s every %s", s.Generation, s.Population, mode, s.Interval),
		fmt.Sprintf("origin (%d,%d)  brush %s", s.Origin.X, s.Origin.Y, brush),
	}
	if s.Pattern != "" {
		lines = append(lines, "pattern "+s.Pattern)
	}
	return lines
}

// String joins Lines with newlines.
func (s Status) String() string { return strings.Join(s.Lines(), "\n") }

// PanelLines returns the lines the HUD draws, status first. Help lines are
// appended only when showHelp is set.
func (s Status) PanelLines(showHelp bool) []string {
	lines := s.Lines()
	if showHelp {
		lines = append(lines, HelpLines...)
	}
	return lines
}

// HelpLines lists the key bindings.
var HelpLines = []string{
	"space run/pause  s step  c clear  r reseed",
	"arrows pan  home recenter  g grid  h hud  f1 help  esc quit",
}
