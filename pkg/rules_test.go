package pkg

import (
	"testing"

	"github.com/notnil/chess"
)

func TestTerminalClassification(t *testing.T) {
	r := NewEngineRules()
	tests := []struct {
		name string
		fen  string
		want GameEndReason
	}{
		{"in progress", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", EndNone},
		{"fools mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", EndCheckmate},
		{"stalemate", "k7/8/1Q6/8/8/8/8/7K b - - 0 1", EndStalemate},
		{"bare kings", "k7/8/8/8/8/8/8/K7 w - - 0 1", EndInsufficientMaterial},
		{"king and bishop", "k7/8/8/8/8/8/8/KB6 w - - 0 1", EndInsufficientMaterial},
		{"king and knight", "k7/8/8/8/8/8/8/KN6 w - - 0 1", EndInsufficientMaterial},
		{"two knights", "k7/8/8/8/8/8/8/KNN5 w - - 0 1", EndNone},
		{"same colored bishops", "5b1k/8/8/8/8/8/8/2B4K w - - 0 1", EndInsufficientMaterial},
		{"opposite colored bishops", "4b2k/8/8/8/8/8/8/2B4K w - - 0 1", EndNone},
		{"lone pawn", "k7/8/8/8/8/8/P7/K7 w - - 0 1", EndNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := r.FromFEN(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			if got := r.Terminal(pos); got != tt.want {
				t.Fatalf("Terminal(%s) = %v, want %v", tt.fen, got, tt.want)
			}
		})
	}
}

func TestMoveClassification(t *testing.T) {
	r := NewEngineRules()

	pos := r.Initial()
	quiet := legalMove(t, r, pos, "e2e4")
	if r.IsCapture(pos, quiet) || r.IsEnPassant(pos, quiet) || r.GivesCheck(quiet) {
		t.Fatal("e2e4 misclassified")
	}

	// 1. e4 d5: exd5 is a plain capture, Bb5 gives check.
	pos = r.Apply(pos, quiet)
	pos = r.Apply(pos, legalMove(t, r, pos, "d7d5"))
	capture := legalMove(t, r, pos, "e4d5")
	if !r.IsCapture(pos, capture) || r.IsEnPassant(pos, capture) {
		t.Fatal("exd5 misclassified")
	}
	check := legalMove(t, r, pos, "f1b5")
	if !r.GivesCheck(check) {
		t.Fatal("Bb5+ not flagged as giving check")
	}

	// 1. e4 a6 2. e5 d5: exd6 is en passant.
	pos = r.Initial()
	for _, uci := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		pos = r.Apply(pos, legalMove(t, r, pos, uci))
	}
	ep := legalMove(t, r, pos, "e5d6")
	if !r.IsEnPassant(pos, ep) || !r.IsCapture(pos, ep) {
		t.Fatal("exd6 e.p. misclassified")
	}
}

func TestKingSquare(t *testing.T) {
	r := NewEngineRules()
	pos := r.Initial()
	white, ok := r.KingSquare(pos, chess.White)
	if !ok || white != chess.E1 {
		t.Fatalf("expected White king on e1, got %v %v", white, ok)
	}
	black, ok := r.KingSquare(pos, chess.Black)
	if !ok || black != chess.E8 {
		t.Fatalf("expected Black king on e8, got %v %v", black, ok)
	}
}

func TestApplyIsPure(t *testing.T) {
	r := NewEngineRules()
	pos := r.Initial()
	before := pos.String()
	r.Apply(pos, legalMove(t, r, pos, "e2e4"))
	if pos.String() != before {
		t.Fatal("Apply mutated its input position")
	}
}
