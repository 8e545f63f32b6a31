package pkg

// GameEndReason says why a game is over.
type GameEndReason int

const (
	EndNone GameEndReason = iota
	EndCheckmate
	EndStalemate
	EndInsufficientMaterial
)

func (r GameEndReason) String() string {
	switch r {
	case EndCheckmate:
		return "Checkmate!"
	case EndStalemate:
		return "Stalemate!"
	case EndInsufficientMaterial:
		return "Draw by insufficient material."
	default:
		return ""
	}
}

// evaluateStatus asks the rules engine whether the position just reached is
// terminal and, the first time it is, latches the result and emits a single
// game-ended event. The board stays navigable afterwards; refusing further
// move input is the presentation layer's job.
func (b *Board) evaluateStatus() {
	if b.reason != EndNone {
		return
	}
	reason := b.rules.Terminal(b.game.Position())
	if reason == EndNone {
		return
	}
	b.reason = reason
	b.publish(EventGameEnded{Reason: reason})
}
