package pkg

import (
	"github.com/notnil/chess"
)

// GameState owns the authoritative move log and a cursor into it. The
// displayed position is never stored: it is always rebuilt by replaying
// moves[0:cursor] from the starting position through the rules engine, so
// there is no snapshot to drift out of sync.
type GameState struct {
	rules  Rules
	start  *chess.Position
	moves  []*chess.Move
	cursor int
}

// NewGameState returns a game at the standard starting position.
func NewGameState(rules Rules) *GameState {
	return &GameState{
		rules: rules,
		start: rules.Initial(),
	}
}

// NewGameStateFromFEN returns a game starting from a custom position.
func NewGameStateFromFEN(rules Rules, fen string) (*GameState, error) {
	start, err := rules.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &GameState{rules: rules, start: start}, nil
}

// Position replays the move log up to the cursor and returns the resulting
// position. O(cursor) per call, which is fine for a single game.
func (g *GameState) Position() *chess.Position {
	pos := g.start
	for _, m := range g.moves[:g.cursor] {
		pos = g.rules.Apply(pos, m)
	}
	return pos
}

// ApplyMove appends m to the log and advances the cursor. Any moves after
// the cursor (the redo branch) are discarded first. Returns ErrIllegalMove
// if m is not legal in the current position.
func (g *GameState) ApplyMove(m *chess.Move) error {
	if !g.isLegal(m) {
		return ErrIllegalMove
	}
	g.moves = append(g.moves[:g.cursor], m)
	g.cursor = len(g.moves)
	return nil
}

// StepBack moves the cursor one move toward the start.
func (g *GameState) StepBack() error {
	if g.cursor == 0 {
		return ErrAtStart
	}
	g.cursor--
	return nil
}

// StepForward moves the cursor one move toward the end of the log.
func (g *GameState) StepForward() error {
	if g.cursor == len(g.moves) {
		return ErrAtEnd
	}
	g.cursor++
	return nil
}

// Cursor returns the number of moves currently applied.
func (g *GameState) Cursor() int {
	return g.cursor
}

// Moves returns a copy of the move log.
func (g *GameState) Moves() []*chess.Move {
	return append([]*chess.Move(nil), g.moves...)
}

// LastMove returns the move that produced the displayed position.
func (g *GameState) LastMove() (*chess.Move, bool) {
	if g.cursor == 0 {
		return nil, false
	}
	return g.moves[g.cursor-1], true
}

// InCheck reports whether the side to move in the displayed position is in
// check. The engine tags checking moves as it generates them, so this is a
// property of the last applied move.
func (g *GameState) InCheck() bool {
	if g.cursor == 0 {
		return false
	}
	return g.rules.GivesCheck(g.moves[g.cursor-1])
}

func (g *GameState) isLegal(m *chess.Move) bool {
	for _, legal := range g.rules.LegalMoves(g.Position()) {
		if legal.S1() == m.S1() && legal.S2() == m.S2() && legal.Promo() == m.Promo() {
			return true
		}
	}
	return false
}
