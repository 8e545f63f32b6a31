package pkg

import "time"

const (
	// PickBounceDuration is the one-shot bounce played when a piece is
	// picked up.
	PickBounceDuration = 200 * time.Millisecond
	// PickBouncePeak is the scale the pick-up bounce reaches halfway in.
	PickBouncePeak = 1.5
	// CheckBouncePeriod is the length of one cycle of the king's
	// in-check bounce.
	CheckBouncePeriod = 800 * time.Millisecond
	// CheckBouncePeak is the scale the king bounce reaches mid-cycle.
	CheckBouncePeak = 1.2
)

// Bounce drives a scalar scale value along a 1.0 -> peak -> 1.0 path over a
// fixed period. A one-shot bounce stops by itself at the end of its period;
// a looping bounce repeats until stopped. Starting a bounce that is already
// running is a no-op, so at most one instance is ever in flight.
type Bounce struct {
	peak    float64
	period  time.Duration
	loop    bool
	running bool
	elapsed time.Duration
}

// NewPickBounce returns the one-shot bounce used on piece selection.
func NewPickBounce() *Bounce {
	return &Bounce{peak: PickBouncePeak, period: PickBounceDuration}
}

// NewCheckBounce returns the looping bounce used on the checked king.
func NewCheckBounce() *Bounce {
	return &Bounce{peak: CheckBouncePeak, period: CheckBouncePeriod, loop: true}
}

// Start begins the bounce from scale 1.0. No-op while already running.
func (b *Bounce) Start() {
	if b.running {
		return
	}
	b.running = true
	b.elapsed = 0
}

// Stop halts the bounce and snaps the scale back to 1.0.
func (b *Bounce) Stop() {
	b.running = false
	b.elapsed = 0
}

// Active reports whether the bounce is running.
func (b *Bounce) Active() bool {
	return b.running
}

// Advance moves the bounce clock forward.
func (b *Bounce) Advance(dt time.Duration) {
	if !b.running {
		return
	}
	b.elapsed += dt
	if b.elapsed < b.period {
		return
	}
	if b.loop {
		b.elapsed %= b.period
		return
	}
	b.Stop()
}

// Scale returns the current scale, 1.0 when idle. The path rises linearly
// to the peak at mid-period and falls back to 1.0.
func (b *Bounce) Scale() float64 {
	if !b.running {
		return 1.0
	}
	t := float64(b.elapsed) / float64(b.period)
	rise := 1 - abs(2*t-1)
	return 1 + (b.peak-1)*rise
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
