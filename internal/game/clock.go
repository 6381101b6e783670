package game

import "time"

// Accumulator converts variable frame deltas into fixed simulation steps.
// At most one step is reported per call, and any remainder is discarded
// when a step fires, so a slow host caps the simulation rate instead of
// replaying missed steps.
type Accumulator struct {
	step    time.Duration
	elapsed time.Duration
}

// NewAccumulator creates an accumulator that fires every step.
func NewAccumulator(step time.Duration) Accumulator {
	return Accumulator{step: step}
}

// Advance adds delta and reports whether one simulation step is due.
// Negative deltas are ignored.
func (a *Accumulator) Advance(delta time.Duration) bool {
	if delta > 0 {
		a.elapsed += delta
	}
	if a.elapsed >= a.step {
		a.elapsed = 0
		return true
	}
	return false
}

// Reset drops any accumulated time.
func (a *Accumulator) Reset() {
	a.elapsed = 0
}

// Elapsed returns the time accumulated toward the next step.
func (a Accumulator) Elapsed() time.Duration {
	return a.elapsed
}
