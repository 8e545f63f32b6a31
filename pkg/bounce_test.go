package pkg

import (
	"testing"
	"time"
)

func TestOneShotBounce(t *testing.T) {
	b := NewPickBounce()
	if b.Scale() != 1.0 {
		t.Fatalf("idle scale must be 1.0, got %f", b.Scale())
	}

	b.Start()
	b.Advance(PickBounceDuration / 2)
	if got := b.Scale(); got != PickBouncePeak {
		t.Fatalf("expected peak %f at mid bounce, got %f", PickBouncePeak, got)
	}
	b.Advance(PickBounceDuration / 2)
	if b.Active() {
		t.Fatal("one-shot bounce must stop by itself")
	}
	if got := b.Scale(); got != 1.0 {
		t.Fatalf("expected scale reset to 1.0, got %f", got)
	}
}

func TestLoopingBounceWraps(t *testing.T) {
	b := NewCheckBounce()
	b.Start()
	b.Advance(CheckBouncePeriod / 2)
	if got := b.Scale(); got != CheckBouncePeak {
		t.Fatalf("expected peak %f at mid cycle, got %f", CheckBouncePeak, got)
	}
	b.Advance(CheckBouncePeriod)
	if !b.Active() {
		t.Fatal("looping bounce must keep running")
	}
	if got := b.Scale(); got != CheckBouncePeak {
		t.Fatalf("expected the cycle to wrap to the same phase, got %f", got)
	}

	b.Stop()
	if b.Active() || b.Scale() != 1.0 {
		t.Fatalf("expected stopped at 1.0, got %v %f", b.Active(), b.Scale())
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	b := NewCheckBounce()
	b.Start()
	b.Advance(200 * time.Millisecond)
	before := b.Scale()
	b.Start()
	if got := b.Scale(); got != before {
		t.Fatalf("restart must not reset the phase: %f != %f", got, before)
	}
}
