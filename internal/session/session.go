// Package session holds the interactive state around a board: the paint or
// erase stroke in progress, the auto-simulate flag and its cadence, and the
// generation counter. It is driven by one frame loop and is not safe for
// concurrent use.
package session

import (
	"fmt"
	"time"

	"infinite-life/internal/core"
	"infinite-life/pkg/life"
)

// Session drives a board from pointer, keyboard and timer input.
type Session struct {
	board *life.Board
	timer *core.FixedStep

	simulate      bool
	erasing       bool
	stepRequested bool
	generation    int

	pattern    string
	patternCfg map[string]string
}

// New wraps board. Automatic generations are spaced by interval.
func New(board *life.Board, interval time.Duration) *Session {
	if board == nil {
		board = life.New()
	}
	return &Session{board: board, timer: core.NewFixedStep(interval)}
}

// Board exposes the underlying board for rendering.
func (s *Session) Board() *life.Board { return s.board }

// Generation counts steps since the last clear or reseed.
func (s *Session) Generation() int { return s.generation }

// Population returns the number of live cells.
func (s *Session) Population() int { return s.board.Len() }

// Interval returns the auto-simulate cadence.
func (s *Session) Interval() time.Duration { return s.timer.Interval() }

// Simulating reports whether generations advance automatically.
func (s *Session) Simulating() bool { return s.simulate }

// SetSimulate enables or disables automatic generations.
func (s *Session) SetSimulate(on bool) { s.simulate = on }

// ToggleSimulate flips automatic generations on or off.
func (s *Session) ToggleSimulate() { s.simulate = !s.simulate }

// Erasing reports whether the current stroke kills cells.
func (s *Session) Erasing() bool { return s.erasing }

// PointerPressed starts a stroke at c. Pressing on a live cell starts an
// erase stroke, pressing on a dead cell starts a draw stroke.
func (s *Session) PointerPressed(c life.Cell) {
	s.erasing = s.board.Get(c.X, c.Y)
}

// PointerHeld applies the current stroke to c.
func (s *Session) PointerHeld(c life.Cell) {
	s.board.Set(c.X, c.Y, !s.erasing)
}

// RequestStep asks for exactly one generation on the next Tick.
func (s *Session) RequestStep() { s.stepRequested = true }

// Clear kills every cell and resets the generation counter.
func (s *Session) Clear() {
	s.board.Clear()
	s.generation = 0
	s.stepRequested = false
}

// Reseed clears the board and paints the named pattern. The pattern is
// remembered for Reset.
func (s *Session) Reseed(name string, cfg map[string]string) error {
	p, err := core.Lookup(name)
	if err != nil {
		return fmt.Errorf("reseed: %w", err)
	}
	s.Clear()
	p(s.board, cfg)
	s.pattern = name
	s.patternCfg = cfg
	return nil
}

// Pattern returns the name of the last pattern passed to Reseed.
func (s *Session) Pattern() string { return s.pattern }

// Reset repaints the last reseeded pattern, or clears the board if there
// was none.
func (s *Session) Reset() error {
	if s.pattern == "" {
		s.Clear()
		return nil
	}
	return s.Reseed(s.pattern, s.patternCfg)
}

// Tick advances the board when a single step was requested or when
// simulating and the interval has elapsed. Any step restarts the interval.
// It reports whether a generation was computed.
func (s *Session) Tick(now time.Time) bool {
	if !s.stepRequested && !(s.simulate && s.timer.Due(now)) {
		return false
	}
	s.board.Step()
	s.generation++
	s.stepRequested = false
	s.timer.Mark(now)
	return true
}
