// Package snapshot renders the currently displayed board to SVG. It is a
// stand-in for pixel rendering: a terminal app cannot screenshot itself,
// but it can save a vector picture of the position, selection and check
// highlights included.
package snapshot

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/notnil/chess"

	"github.com/qnkhuat/chessboard/pkg"
)

const (
	// SquareSize is the rendered size of one square in SVG units.
	SquareSize = 60
	boardSize  = SquareSize * 8
)

const (
	lightFill  = "fill:#ffffff"
	darkFill   = "fill:#3f6bd1"
	selectFill = "fill:#add8e6;fill-opacity:0.6"
	checkFill  = "fill:#ffc8c8;fill-opacity:0.6"
	destFill   = "fill:#3c3c3c;fill-opacity:0.4"
	killStroke = "fill:none;stroke:#ff0000;stroke-opacity:0.6;stroke-width:5"
	pieceStyle = "font-size:48px;text-anchor:middle"
)

// corner returns the top-left SVG coordinate of sq, rank 8 at the top.
func corner(sq chess.Square) (x, y int) {
	return int(sq.File()) * SquareSize, (7 - int(sq.Rank())) * SquareSize
}

// WriteSVG draws the board's current state to w.
func WriteSVG(w io.Writer, b *pkg.Board) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)

	// Squares.
	for sq := chess.A1; sq <= chess.H8; sq++ {
		x, y := corner(sq)
		fill := lightFill
		if (int(sq.File())+int(sq.Rank()))%2 == 0 {
			fill = darkFill
		}
		canvas.Rect(x, y, SquareSize, SquareSize, fill)
	}

	// Check highlight under the king.
	if b.InCheck() {
		if king, ok := b.KingSquare(); ok {
			x, y := corner(king)
			canvas.Rect(x, y, SquareSize, SquareSize, checkFill)
		}
	}

	// Selection highlight plus destination and capture markers.
	if sel, ok := b.SelectedSquare(); ok {
		x, y := corner(sel)
		canvas.Rect(x, y, SquareSize, SquareSize, selectFill)

		dests, killable := b.LegalDestinations(sel)
		for _, sq := range dests {
			x, y := corner(sq)
			canvas.Circle(x+SquareSize/2, y+SquareSize/2, SquareSize/5, destFill)
		}
		for _, sq := range killable {
			x, y := corner(sq)
			canvas.Circle(x+SquareSize/2, y+SquareSize/2, SquareSize/2-5, killStroke)
		}
	}

	// Pieces, skipping the origin of a move in flight; the moving piece
	// is drawn at its interpolated spot instead.
	board := b.Position().Board()
	pending, animating := b.Animating()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Piece(sq)
		if p == chess.NoPiece {
			continue
		}
		if animating && sq == pending.S1() {
			continue
		}
		x, y := corner(sq)
		drawPiece(canvas, float64(x), float64(y), p)
	}
	if animating {
		p := board.Piece(pending.S1())
		if p != chess.NoPiece {
			at := b.AnimationAt()
			drawPiece(canvas, at.X*SquareSize, at.Y*SquareSize, p)
		}
	}

	canvas.End()
}

func drawPiece(canvas *svg.SVG, x, y float64, p chess.Piece) {
	style := pieceStyle + ";fill:#000000"
	if p.Color() == chess.White {
		style = pieceStyle + ";fill:#f0f0f0;stroke:#000000"
	}
	canvas.Text(int(x)+SquareSize/2, int(y)+SquareSize-12, p.String(), style)
}

// FileName returns a snapshot file name keyed by the move cursor.
func FileName(b *pkg.Board) string {
	return fmt.Sprintf("board-%03d.svg", b.Game().Cursor())
}
