package pkg

import (
	"github.com/notnil/chess"
)

const EventQueueSize = 20

type EventType int

const (
	TypeEventSelectionChanged EventType = iota
	TypeEventMoveCommitted
	TypeEventGameEnded
)

func (e EventType) String() string {
	switch e {
	case TypeEventSelectionChanged:
		return "TypeEventSelectionChanged"
	case TypeEventMoveCommitted:
		return "TypeEventMoveCommitted"
	case TypeEventGameEnded:
		return "TypeEventGameEnded"
	default:
		return "Unknown EventType"
	}
}

// Event is a notification emitted by the board controller. The presentation
// layer drains the event channel once per frame.
type Event interface {
	Type() EventType
}

// EventSelectionChanged is emitted when a square is selected or the
// selection is cleared.
type EventSelectionChanged struct {
	Square   chess.Square
	Selected bool
}

func (e EventSelectionChanged) Type() EventType {
	return TypeEventSelectionChanged
}

// EventMoveCommitted is emitted after an animated move lands and is applied
// to the game.
type EventMoveCommitted struct {
	Move *chess.Move
}

func (e EventMoveCommitted) Type() EventType {
	return TypeEventMoveCommitted
}

// EventGameEnded is emitted exactly once when the game reaches a terminal
// state.
type EventGameEnded struct {
	Reason GameEndReason
}

func (e EventGameEnded) Type() EventType {
	return TypeEventGameEnded
}
