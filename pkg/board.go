package pkg

import (
	"log"
	"time"

	"github.com/notnil/chess"
)

// BounceTarget names one of the board's two reaction effects.
type BounceTarget int

const (
	// BouncePiece is the one-shot bounce on the selected piece.
	BouncePiece BounceTarget = iota
	// BounceKing is the looping bounce on the king while in check.
	BounceKing
)

// Board is the interactive board controller. It turns square clicks,
// history keys and timer ticks into selection changes, animated moves and
// cursor movement, and exposes everything the render layer needs to draw a
// frame. All methods are meant to be called from a single event loop; the
// Board does no locking of its own.
type Board struct {
	rules Rules
	game  *GameState

	selecting bool
	selected  chess.Square

	anim        Animator
	pickBounce  *Bounce
	checkBounce *Bounce

	reason GameEndReason
	events chan Event
}

// NewBoard returns a board at the standard starting position.
func NewBoard(rules Rules) *Board {
	return newBoard(rules, NewGameState(rules))
}

// NewBoardFromFEN returns a board starting from a custom position.
func NewBoardFromFEN(rules Rules, fen string) (*Board, error) {
	game, err := NewGameStateFromFEN(rules, fen)
	if err != nil {
		return nil, err
	}
	return newBoard(rules, game), nil
}

func newBoard(rules Rules, game *GameState) *Board {
	return &Board{
		rules:       rules,
		game:        game,
		pickBounce:  NewPickBounce(),
		checkBounce: NewCheckBounce(),
		events:      make(chan Event, EventQueueSize),
	}
}

// Events returns the board's notification stream.
func (b *Board) Events() <-chan Event {
	return b.events
}

// publish never blocks; if nobody is draining, old news is dropped.
func (b *Board) publish(e Event) {
	select {
	case b.events <- e:
	default:
		log.Printf("Dropped event %s", e.Type())
	}
}

// Position returns the currently displayed position.
func (b *Board) Position() *chess.Position {
	return b.game.Position()
}

// Game exposes the underlying move log and cursor.
func (b *Board) Game() *GameState {
	return b.game
}

// SelectedSquare returns the selected origin square, if any.
func (b *Board) SelectedSquare() (chess.Square, bool) {
	return b.selected, b.selecting
}

// AnimationProgress returns the progress of the move in flight, 0 when
// idle.
func (b *Board) AnimationProgress() float64 {
	return b.anim.Progress()
}

// Animating reports whether a move is in flight and which one.
func (b *Board) Animating() (*chess.Move, bool) {
	return b.anim.Pending()
}

// AnimationAt returns the interpolated board coordinate of the moving
// piece.
func (b *Board) AnimationAt() Point {
	return b.anim.At()
}

// BounceScale returns the current scale of the requested reaction effect.
func (b *Board) BounceScale(target BounceTarget) float64 {
	if target == BounceKing {
		return b.checkBounce.Scale()
	}
	return b.pickBounce.Scale()
}

// InCheck reports whether the side to move is in check.
func (b *Board) InCheck() bool {
	return b.game.InCheck()
}

// KingSquare locates the king of the side to move.
func (b *Board) KingSquare() (chess.Square, bool) {
	pos := b.game.Position()
	return b.rules.KingSquare(pos, b.rules.SideToMove(pos))
}

// EndReason returns why the game ended, or EndNone while it is still in
// progress.
func (b *Board) EndReason() GameEndReason {
	return b.reason
}

// Done reports whether a terminal state has been reached. The board itself
// keeps accepting history navigation; callers decide whether to keep
// feeding it move input.
func (b *Board) Done() bool {
	return b.reason != EndNone
}

// OnSquareClicked handles a pointer click on sq. The first click on an own
// piece selects it; a second click attempts the move. Clicks are ignored
// while a move animation is in flight.
func (b *Board) OnSquareClicked(sq chess.Square) {
	if b.anim.Active() {
		return
	}
	if !b.selecting {
		b.trySelect(sq)
		return
	}
	from := b.selected
	b.clearSelection()
	if from != sq {
		b.attemptMove(from, sq)
	}
}

// OnHistoryBack steps one move back in the game history.
func (b *Board) OnHistoryBack() error {
	if b.anim.Active() {
		return ErrAnimating
	}
	b.clearSelection()
	if err := b.game.StepBack(); err != nil {
		return err
	}
	b.refreshCheckBounce()
	return nil
}

// OnHistoryForward steps one move forward in the game history.
func (b *Board) OnHistoryForward() error {
	if b.anim.Active() {
		return ErrAnimating
	}
	b.clearSelection()
	if err := b.game.StepForward(); err != nil {
		return err
	}
	b.refreshCheckBounce()
	return nil
}

// OnTick advances every time-driven effect by dt. When the move animation
// completes, the pending move is committed, the game status evaluated and
// the king-check effect re-evaluated, in that order, before the tick
// returns.
func (b *Board) OnTick(dt time.Duration) {
	if b.anim.Advance(dt) {
		b.finishMove()
	}
	b.pickBounce.Advance(dt)
	b.checkBounce.Advance(dt)
}

// finishMove commits the move whose animation just completed.
func (b *Board) finishMove() {
	m := b.anim.Take()
	if err := b.game.ApplyMove(m); err != nil {
		// Cannot happen: the move was validated before the animation
		// started and nothing else mutates the game meanwhile.
		log.Printf("Failed to commit move %s: %v", m, err)
		return
	}
	b.publish(EventMoveCommitted{Move: m})
	b.evaluateStatus()
	b.refreshCheckBounce()
}

// refreshCheckBounce starts or stops the king bounce to match the current
// check predicate. Called after every commit and cursor move.
func (b *Board) refreshCheckBounce() {
	if b.game.InCheck() {
		b.checkBounce.Start()
		return
	}
	b.checkBounce.Stop()
}
