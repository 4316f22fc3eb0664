package core

import "time"

// FixedStep paces automatic generations. It remembers when the board last
// advanced and reports when the configured interval has elapsed since then.
type FixedStep struct {
	interval time.Duration
	last     time.Time
}

// DefaultInterval is the auto-simulate cadence used when none is configured.
const DefaultInterval = 200 * time.Millisecond

// NewFixedStep constructs a FixedStep firing every interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the cadence. Non-positive values fall back to
// DefaultInterval.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	f.interval = interval
}

// Interval returns the current cadence.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// Due reports whether at least one interval has passed since the last Mark.
// A FixedStep that was never marked is due immediately.
func (f *FixedStep) Due(now time.Time) bool {
	if f.last.IsZero() {
		return true
	}
	return now.Sub(f.last) >= f.interval
}

// Mark records that a generation was computed at now.
func (f *FixedStep) Mark(now time.Time) {
	f.last = now
}
