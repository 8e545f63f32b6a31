package pkg

import (
	"fmt"
	"time"
)

// Clock is a per-side countdown clock. It is advanced from the same tick
// loop that drives the board animations instead of running its own ticker,
// so everything stays on one event loop.
type Clock struct {
	Duration  time.Duration
	Remaining time.Duration
	Increment time.Duration
	Paused    bool
}

func NewClock(duration, increment time.Duration) *Clock {
	return &Clock{
		Duration:  duration,
		Remaining: duration,
		Increment: increment,
		Paused:    true,
	}
}

func (cl *Clock) String() string {
	r := cl.Remaining
	if r < 0 {
		r = 0
	}
	return fmt.Sprintf("%d:%02d", int(r.Minutes()), int(r.Seconds())%60)
}

// Advance burns dt off the clock while it is running.
func (cl *Clock) Advance(dt time.Duration) {
	if cl.Paused {
		return
	}
	cl.Remaining -= dt
}

// Resume starts the clock running.
func (cl *Clock) Resume() {
	cl.Paused = false
}

// Credit adds the per-move increment, given after a completed move.
func (cl *Clock) Credit() {
	cl.Remaining += cl.Increment
}

func (cl *Clock) Pause() {
	cl.Paused = true
}

func (cl *Clock) Reset() {
	cl.Remaining = cl.Duration
	cl.Paused = true
}

// Flagged reports whether the clock has run out.
func (cl *Clock) Flagged() bool {
	return cl.Remaining <= 0
}
