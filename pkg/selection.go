package pkg

import (
	"log"

	"github.com/notnil/chess"
)

// trySelect selects sq if it holds a piece of the side to move. Anything
// else leaves the selection untouched.
func (b *Board) trySelect(sq chess.Square) {
	pos := b.game.Position()
	p := b.rules.PieceAt(pos, sq)
	if p == chess.NoPiece || p.Color() != b.rules.SideToMove(pos) {
		return
	}
	b.selecting = true
	b.selected = sq
	b.pickBounce.Stop()
	b.pickBounce.Start()
	b.publish(EventSelectionChanged{Square: sq, Selected: true})
}

// clearSelection drops the current selection, if any.
func (b *Board) clearSelection() {
	if !b.selecting {
		return
	}
	sq := b.selected
	b.selecting = false
	b.selected = 0
	b.publish(EventSelectionChanged{Square: sq, Selected: false})
}

// attemptMove resolves from->to against the legal move set and hands the
// canonical move to the animator. A move that is not legal is silently
// dropped; the selection was already cleared by the caller.
func (b *Board) attemptMove(from, to chess.Square) {
	m := b.findMove(from, to)
	if m == nil {
		return
	}
	if err := b.anim.Start(m); err != nil {
		log.Printf("Failed to animate %s: %v", m, err)
	}
}

// findMove returns the engine's move from->to, or nil if no such legal move
// exists. When a pawn reaches the back rank several promotions share the
// same squares; promotion to queen is chosen, there is no under-promotion
// dialog.
func (b *Board) findMove(from, to chess.Square) *chess.Move {
	var found *chess.Move
	for _, m := range b.rules.LegalMoves(b.game.Position()) {
		if m.S1() != from || m.S2() != to {
			continue
		}
		if m.Promo() == chess.NoPieceType || m.Promo() == chess.Queen {
			return m
		}
		if found == nil {
			found = m
		}
	}
	return found
}

// LegalDestinations partitions the legal moves out of sq into quiet
// destination squares and killable squares. For an en passant capture the
// killable square is the captured pawn's square, one rank behind the
// destination, not the square the mover lands on.
func (b *Board) LegalDestinations(sq chess.Square) (dests, killable []chess.Square) {
	pos := b.game.Position()
	seen := make(map[chess.Square]bool)
	for _, m := range b.rules.LegalMoves(pos) {
		if m.S1() != sq {
			continue
		}
		if !b.rules.IsCapture(pos, m) {
			if !seen[m.S2()] {
				seen[m.S2()] = true
				dests = append(dests, m.S2())
			}
			continue
		}
		target := m.S2()
		if b.rules.IsEnPassant(pos, m) {
			if b.rules.SideToMove(pos) == chess.White {
				target -= 8
			} else {
				target += 8
			}
		}
		if !seen[target] {
			seen[target] = true
			killable = append(killable, target)
		}
	}
	return dests, killable
}
