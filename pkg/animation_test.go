package pkg

import (
	"errors"
	"testing"
)

func TestAnimatorRunsToCompletion(t *testing.T) {
	r := NewEngineRules()
	m := legalMove(t, r, r.Initial(), "e2e4")

	var a Animator
	if a.Active() {
		t.Fatal("fresh animator must be idle")
	}
	if err := a.Start(m); err != nil {
		t.Fatal(err)
	}
	if !a.Active() || a.Progress() != 0 {
		t.Fatalf("expected active at progress 0, got %v %f", a.Active(), a.Progress())
	}

	if done := a.Advance(MoveAnimDuration / 2); done {
		t.Fatal("animation finished early")
	}
	if got := a.Progress(); got != 0.5 {
		t.Fatalf("expected progress 0.5, got %f", got)
	}
	// e2 sits at (4,6), e4 at (4,4); halfway is (4,5).
	if at := a.At(); at.X != 4 || at.Y != 5 {
		t.Fatalf("expected midpoint (4,5), got (%f,%f)", at.X, at.Y)
	}

	if done := a.Advance(MoveAnimDuration / 2); !done {
		t.Fatal("expected animation to complete")
	}
	if got := a.Take(); got != m {
		t.Fatalf("expected the pending move back, got %v", got)
	}
	if a.Active() {
		t.Fatal("expected idle after Take")
	}
}

func TestAnimatorRejectsSecondMove(t *testing.T) {
	r := NewEngineRules()
	m := legalMove(t, r, r.Initial(), "e2e4")
	other := legalMove(t, r, r.Initial(), "d2d4")

	var a Animator
	if err := a.Start(m); err != nil {
		t.Fatal(err)
	}
	if err := a.Start(other); !errors.Is(err, ErrAnimating) {
		t.Fatalf("expected ErrAnimating, got %v", err)
	}
	if pending, _ := a.Pending(); pending != m {
		t.Fatal("second Start must not replace the move in flight")
	}
}

func TestProgressClamped(t *testing.T) {
	r := NewEngineRules()
	var a Animator
	if err := a.Start(legalMove(t, r, r.Initial(), "e2e4")); err != nil {
		t.Fatal(err)
	}
	a.Advance(MoveAnimDuration * 3)
	if got := a.Progress(); got != 1 {
		t.Fatalf("expected progress clamped to 1, got %f", got)
	}
}
