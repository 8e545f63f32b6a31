package gui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/rivo/tview"

	"github.com/qnkhuat/chessboard/pkg"
)

const (
	numrows = 8
	numcols = 8
)

// posToSquare maps a table cell to its square. Row 0 is rank 8 and column
// 0 holds the rank labels, so A1 sits at row 7, column 1.
func posToSquare(row, col int) chess.Square {
	return chess.Square((numrows-row-1)*8 + col - 1)
}

// squareCell maps a square back to its table cell.
func squareCell(sq chess.Square) (row, col int) {
	return numrows - 1 - int(sq.Rank()), int(sq.File()) + 1
}

// frame is everything the renderer needs to color one pass of the board.
type frame struct {
	board    *chess.Board
	selected chess.Square
	hasSel   bool
	dests    map[chess.Square]bool
	killable map[chess.Square]bool
	lastFrom chess.Square
	lastTo   chess.Square
	hasLast  bool
	checkSq  chess.Square
	inCheck  bool
}

func newFrame(b *pkg.Board) frame {
	fr := frame{
		board:    b.Position().Board(),
		dests:    make(map[chess.Square]bool),
		killable: make(map[chess.Square]bool),
	}
	_, animating := b.Animating()
	if sel, ok := b.SelectedSquare(); ok && !animating {
		fr.selected = sel
		fr.hasSel = true
		dests, killable := b.LegalDestinations(sel)
		for _, sq := range dests {
			fr.dests[sq] = true
		}
		for _, sq := range killable {
			fr.killable[sq] = true
		}
	}
	if m, ok := b.Game().LastMove(); ok {
		fr.lastFrom, fr.lastTo = m.S1(), m.S2()
		fr.hasLast = true
	}
	if b.InCheck() {
		if king, ok := b.KingSquare(); ok {
			fr.checkSq = king
			fr.inCheck = true
		}
	}
	return fr
}

// squareBg picks the background for sq, overlays on top of the base board
// pattern.
func (fr frame) squareBg(sq chess.Square, t Theme) tcell.Color {
	bg := t.SquareLight
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		bg = t.SquareDark
	}
	if fr.hasLast && (sq == fr.lastFrom || sq == fr.lastTo) {
		bg = t.SquareLast
	}
	if fr.inCheck && sq == fr.checkSq {
		bg = t.SquareCheck
	}
	if fr.dests[sq] {
		bg = t.SquareDest
	}
	if fr.killable[sq] {
		bg = t.SquareKill
	}
	if fr.hasSel && sq == fr.selected {
		bg = t.SquareSel
	}
	return bg
}

// pieceText renders the glyph for the piece on sq, two cells wide like the
// squares themselves.
func pieceText(p chess.Piece) string {
	if p == chess.NoPiece {
		return "  "
	}
	return fmt.Sprintf("%s ", p.String())
}

// Render redraws the whole board table from the controller's current
// state. Called once per tick.
func Render(table *tview.Table, b *pkg.Board, t Theme) {
	fr := newFrame(b)
	pending, animating := b.Animating()

	pickScale := b.BounceScale(pkg.BouncePiece)
	kingScale := b.BounceScale(pkg.BounceKing)

	for row := 0; row <= numrows; row++ {
		for col := 0; col <= numcols; col++ {
			if col == 0 && row < numrows { // rank labels
				rank := chess.Rank(numrows - row - 1)
				cell := tview.NewTableCell(rank.String()).
					SetTextColor(t.Rank).
					SetAlign(tview.AlignCenter).
					SetSelectable(false)
				table.SetCell(row, col, cell)
				continue
			}
			if row == numrows { // file labels
				text := " "
				if col > 0 {
					text = fmt.Sprintf("%s ", chess.File(col-1).String())
				}
				cell := tview.NewTableCell(text).
					SetTextColor(t.File).
					SetAlign(tview.AlignCenter).
					SetSelectable(false)
				table.SetCell(row, col, cell)
				continue
			}

			sq := posToSquare(row, col)
			p := fr.board.Piece(sq)

			// The moving piece leaves its origin empty, and a piece
			// being captured disappears once the capture is in
			// flight.
			if animating {
				if sq == pending.S1() {
					p = chess.NoPiece
				}
				if sq == pending.S2() && p != chess.NoPiece && p.Color() != fr.board.Piece(pending.S1()).Color() {
					p = chess.NoPiece
				}
			}

			cell := tview.NewTableCell(pieceText(p)).
				SetAlign(tview.AlignCenter).
				SetBackgroundColor(fr.squareBg(sq, t))
			cell.SetTextColor(pieceColor(p, t))

			// Terminal cells cannot scale, so the bounce effects
			// show up as bold emphasis past mid-bounce.
			if fr.hasSel && sq == fr.selected && pickScale > 1.25 {
				cell.SetAttributes(tcell.AttrBold)
			}
			if fr.inCheck && sq == fr.checkSq && kingScale > 1.1 {
				cell.SetAttributes(tcell.AttrBold)
			}
			table.SetCell(row, col, cell)
		}
	}

	// Draw the moving piece at its interpolated square.
	if animating {
		p := fr.board.Piece(pending.S1())
		if p != chess.NoPiece {
			at := b.AnimationAt()
			row := int(math.Round(at.Y))
			col := int(math.Round(at.X)) + 1
			sq := posToSquare(row, col)
			cell := tview.NewTableCell(pieceText(p)).
				SetAlign(tview.AlignCenter).
				SetBackgroundColor(fr.squareBg(sq, t))
			cell.SetTextColor(pieceColor(p, t))
			table.SetCell(row, col, cell)
		}
	}
}

// pieceColor applies the theme's style to a piece based upon its color
func pieceColor(p chess.Piece, t Theme) tcell.Color {
	if p.Color() == chess.White {
		return t.White
	}
	return t.Black
}
