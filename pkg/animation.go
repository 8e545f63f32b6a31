package pkg

import (
	"time"

	"github.com/notnil/chess"
)

// MoveAnimDuration is how long a piece slides from its origin square to its
// destination.
const MoveAnimDuration = 150 * time.Millisecond

// Point is a board coordinate in square units. X runs along the files from
// a to h, Y along the ranks from the top of the board (rank 8) down, so the
// render layer only has to scale by its square size.
type Point struct {
	X float64
	Y float64
}

// squarePoint returns the top-left corner of sq in square units.
func squarePoint(sq chess.Square) Point {
	return Point{
		X: float64(sq.File()),
		Y: float64(7 - sq.Rank()),
	}
}

// Animator interpolates a piece's visual position from origin to destination
// over a fixed duration. While a move is in flight no new selection or move
// input is accepted, and once started an animation always runs to completion
// and commits its move: there is no cancel.
type Animator struct {
	pending *chess.Move
	elapsed time.Duration
	from    Point
	to      Point
}

// Active reports whether a move is in flight.
func (a *Animator) Active() bool {
	return a.pending != nil
}

// Start begins animating m. Starting while a move is already in flight is
// rejected with ErrAnimating.
func (a *Animator) Start(m *chess.Move) error {
	if a.pending != nil {
		return ErrAnimating
	}
	a.pending = m
	a.elapsed = 0
	a.from = squarePoint(m.S1())
	a.to = squarePoint(m.S2())
	return nil
}

// Advance moves the animation clock forward and reports whether the
// animation just completed. The caller commits the pending move when it
// returns true.
func (a *Animator) Advance(dt time.Duration) bool {
	if a.pending == nil {
		return false
	}
	a.elapsed += dt
	return a.elapsed >= MoveAnimDuration
}

// Progress returns the animation progress in [0, 1].
func (a *Animator) Progress() float64 {
	if a.pending == nil {
		return 0
	}
	p := float64(a.elapsed) / float64(MoveAnimDuration)
	if p > 1 {
		p = 1
	}
	return p
}

// At returns the current interpolated position of the moving piece.
func (a *Animator) At() Point {
	p := a.Progress()
	return Point{
		X: a.from.X + (a.to.X-a.from.X)*p,
		Y: a.from.Y + (a.to.Y-a.from.Y)*p,
	}
}

// Pending returns the move in flight, if any.
func (a *Animator) Pending() (*chess.Move, bool) {
	return a.pending, a.pending != nil
}

// Take clears the animator and returns the move that was in flight.
func (a *Animator) Take() *chess.Move {
	m := a.pending
	a.pending = nil
	a.elapsed = 0
	return m
}
