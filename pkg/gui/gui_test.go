package gui

import (
	"testing"

	"github.com/qnkhuat/chessboard/pkg"
)

func TestStopIsIdempotent(t *testing.T) {
	board := pkg.NewBoard(pkg.NewEngineRules())
	app, err := NewApp(pkg.DefaultConfig(), board)
	if err != nil {
		t.Fatal(err)
	}
	// Escape and 'q' can both trigger Stop; a second call must not
	// panic on the closed done channel.
	app.Stop()
	app.Stop()
	select {
	case <-app.done:
	default:
		t.Fatal("expected the done channel to be closed")
	}
}
