package gui

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/rivo/tview"

	"github.com/qnkhuat/chessboard/pkg"
)

func TestSquareCellRoundTrip(t *testing.T) {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		row, col := squareCell(sq)
		if got := posToSquare(row, col); got != sq {
			t.Fatalf("square %s mapped to (%d,%d) which is %s", sq, row, col, got)
		}
	}
	if row, col := squareCell(chess.A8); row != 0 || col != 1 {
		t.Fatalf("expected a8 at (0,1), got (%d,%d)", row, col)
	}
	if row, col := squareCell(chess.H1); row != 7 || col != 8 {
		t.Fatalf("expected h1 at (7,8), got (%d,%d)", row, col)
	}
}

func TestRenderPlacesPieces(t *testing.T) {
	board := pkg.NewBoard(pkg.NewEngineRules())
	table := tview.NewTable()
	Render(table, board, ThemeBasic)

	row, col := squareCell(chess.E1)
	if got := table.GetCell(row, col).Text; got != chess.WhiteKing.String()+" " {
		t.Fatalf("expected the White king on e1, got %q", got)
	}
	row, col = squareCell(chess.E4)
	if got := table.GetCell(row, col).Text; got != "  " {
		t.Fatalf("expected e4 empty, got %q", got)
	}
	// Rank and file labels.
	if got := table.GetCell(0, 0).Text; got != "8" {
		t.Fatalf("expected rank label 8, got %q", got)
	}
	if got := table.GetCell(8, 1).Text; got != "a " {
		t.Fatalf("expected file label a, got %q", got)
	}
}

func TestRenderHidesMovingPieceOrigin(t *testing.T) {
	board := pkg.NewBoard(pkg.NewEngineRules())
	board.OnSquareClicked(chess.E2)
	board.OnSquareClicked(chess.E4)
	if _, ok := board.Animating(); !ok {
		t.Fatal("expected a move in flight")
	}
	board.OnTick(pkg.MoveAnimDuration / 2) // halfway: the pawn passes e3

	table := tview.NewTable()
	Render(table, board, ThemeBasic)
	row, col := squareCell(chess.E2)
	if got := table.GetCell(row, col).Text; got != "  " {
		t.Fatalf("expected the origin square empty during the animation, got %q", got)
	}
	row, col = squareCell(chess.E3)
	if got := table.GetCell(row, col).Text; got != chess.WhitePawn.String()+" " {
		t.Fatalf("expected the moving pawn drawn at e3, got %q", got)
	}
}
