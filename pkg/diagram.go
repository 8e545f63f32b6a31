package pkg

import (
	"strings"

	"github.com/fatih/color"
	"github.com/notnil/chess"
)

var diagramFrame = color.New(color.FgHiBlack)

// diagramStyle picks the ANSI style for one square: piece color as the
// foreground, square color as the background.
func diagramStyle(p chess.Piece, sq chess.Square) *color.Color {
	attrs := make([]color.Attribute, 0, 3)
	if p != chess.NoPiece {
		if p.Color() == chess.White {
			attrs = append(attrs, color.FgHiWhite, color.Bold)
		} else {
			attrs = append(attrs, color.FgHiBlack, color.Bold)
		}
	}
	if squareColor(sq) == chess.Black {
		attrs = append(attrs, color.BgBlue)
	} else {
		attrs = append(attrs, color.BgCyan)
	}
	return color.New(attrs...)
}

// Diagram renders pos as an ANSI colored text board, rank 8 at the top.
// Used for console and log output on the server side.
func Diagram(pos *chess.Position) string {
	board := pos.Board()
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		sb.WriteString(diagramFrame.Sprint(chess.Rank(r).String()) + " ")
		for f := 0; f < 8; f++ {
			sq := getSquare(chess.File(f), chess.Rank(r))
			glyph := " "
			if p := board.Piece(sq); p != chess.NoPiece {
				glyph = p.String()
			}
			sb.WriteString(diagramStyle(board.Piece(sq), sq).Sprint(glyph + " "))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(diagramFrame.Sprint("  a b c d e f g h"))
	sb.WriteString("\n")
	return sb.String()
}
