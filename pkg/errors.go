package pkg

import "errors"

var (
	// ErrIllegalMove is returned when a move is not in the legal move set
	// of the current position.
	ErrIllegalMove = errors.New("illegal move")
	// ErrAtStart is returned when stepping back past the first move.
	ErrAtStart = errors.New("already at first move")
	// ErrAtEnd is returned when stepping forward past the last move.
	ErrAtEnd = errors.New("already at last move")
	// ErrAnimating is returned when an operation is rejected because a
	// move animation is in flight.
	ErrAnimating = errors.New("move animation in progress")
	// ErrBadFEN is returned when a starting position cannot be parsed.
	ErrBadFEN = errors.New("invalid FEN")
)
