package pkg

import (
	"log"
	"os"

	"github.com/notnil/chess"
)

// getSquare builds a square from its file and rank. A1 is square 0.
func getSquare(f chess.File, r chess.Rank) chess.Square {
	return chess.Square((int(r) * 8) + int(f))
}

// squareColor returns the color of the square itself: chess.White for light
// squares, chess.Black for dark ones.
func squareColor(sq chess.Square) chess.Color {
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return chess.Black
	}
	return chess.White
}

// InitLog routes the standard logger to a file.
func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
