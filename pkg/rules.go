package pkg

import (
	"fmt"

	"github.com/notnil/chess"
)

// Rules is the capability surface the board controller needs from a chess
// rules engine. The engine owns board representation, legality and game
// status; the controller never second-guesses it.
type Rules interface {
	// Initial returns the standard starting position.
	Initial() *chess.Position
	// FromFEN decodes a position from FEN notation.
	FromFEN(fen string) (*chess.Position, error)
	// LegalMoves enumerates every legal move in pos. The returned moves
	// are canonical: they carry the engine's move tags (capture, en
	// passant, check, castle).
	LegalMoves(pos *chess.Position) []*chess.Move
	// Apply returns the position after playing m in pos. It is pure; pos
	// is not modified.
	Apply(pos *chess.Position, m *chess.Move) *chess.Position
	// PieceAt returns the piece on sq, or chess.NoPiece.
	PieceAt(pos *chess.Position, sq chess.Square) chess.Piece
	// SideToMove returns the color whose turn it is.
	SideToMove(pos *chess.Position) chess.Color
	// KingSquare locates the king of the given side.
	KingSquare(pos *chess.Position, side chess.Color) (chess.Square, bool)
	// IsCapture reports whether m captures a piece (including en passant).
	IsCapture(pos *chess.Position, m *chess.Move) bool
	// IsEnPassant reports whether m is an en passant capture.
	IsEnPassant(pos *chess.Position, m *chess.Move) bool
	// GivesCheck reports whether playing m leaves the opponent in check.
	// Like the other classifiers it reads the tags the engine put on m,
	// so m must come from LegalMoves.
	GivesCheck(m *chess.Move) bool
	// Terminal classifies pos as checkmate, stalemate, a dead draw, or
	// still playable (EndNone).
	Terminal(pos *chess.Position) GameEndReason
}

// EngineRules backs the Rules interface with the notnil/chess engine.
type EngineRules struct{}

// NewEngineRules returns the default notnil/chess backed rules engine.
func NewEngineRules() EngineRules {
	return EngineRules{}
}

// Initial returns the standard starting position.
func (EngineRules) Initial() *chess.Position {
	return chess.StartingPosition()
}

// FromFEN decodes a position from FEN notation.
func (EngineRules) FromFEN(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFEN, err)
	}
	game := chess.NewGame(opt, chess.UseNotation(chess.UCINotation{}))
	return game.Position(), nil
}

// LegalMoves enumerates every legal move in pos.
func (EngineRules) LegalMoves(pos *chess.Position) []*chess.Move {
	return pos.ValidMoves()
}

// Apply returns the position after playing m in pos.
func (EngineRules) Apply(pos *chess.Position, m *chess.Move) *chess.Position {
	return pos.Update(m)
}

// PieceAt returns the piece on sq, or chess.NoPiece.
func (EngineRules) PieceAt(pos *chess.Position, sq chess.Square) chess.Piece {
	return pos.Board().Piece(sq)
}

// SideToMove returns the color whose turn it is.
func (EngineRules) SideToMove(pos *chess.Position) chess.Color {
	return pos.Turn()
}

// KingSquare locates the king of the given side.
func (EngineRules) KingSquare(pos *chess.Position, side chess.Color) (chess.Square, bool) {
	for sq, p := range pos.Board().SquareMap() {
		if p.Type() == chess.King && p.Color() == side {
			return sq, true
		}
	}
	return 0, false
}

// IsCapture reports whether m captures a piece.
func (EngineRules) IsCapture(_ *chess.Position, m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}

// IsEnPassant reports whether m is an en passant capture.
func (EngineRules) IsEnPassant(_ *chess.Position, m *chess.Move) bool {
	return m.HasTag(chess.EnPassant)
}

// GivesCheck reports whether playing m leaves the opponent in check.
func (EngineRules) GivesCheck(m *chess.Move) bool {
	return m.HasTag(chess.Check)
}

// Terminal classifies pos. Checkmate and stalemate come straight from the
// engine; dead-draw detection walks the remaining material because the
// engine only reports it at the game level.
func (r EngineRules) Terminal(pos *chess.Position) GameEndReason {
	switch pos.Status() {
	case chess.Checkmate:
		return EndCheckmate
	case chess.Stalemate:
		return EndStalemate
	}
	if insufficientMaterial(pos) {
		return EndInsufficientMaterial
	}
	return EndNone
}

// insufficientMaterial reports whether neither side can possibly deliver
// mate: K vs K, K+minor vs K, or same-colored single bishops.
func insufficientMaterial(pos *chess.Position) bool {
	var minors []chess.Square
	bishops := 0
	for sq, p := range pos.Board().SquareMap() {
		switch p.Type() {
		case chess.King:
		case chess.Bishop:
			bishops++
			minors = append(minors, sq)
		case chess.Knight:
			minors = append(minors, sq)
		default:
			// Pawns, rooks and queens can always force mate.
			return false
		}
	}
	switch len(minors) {
	case 0, 1:
		return true
	case 2:
		if bishops != 2 {
			return false
		}
		return squareColor(minors[0]) == squareColor(minors[1])
	}
	return false
}
