package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/notnil/chess"

	"github.com/qnkhuat/chessboard/pkg"
)

func TestWriteSVGInitialPosition(t *testing.T) {
	b := pkg.NewBoard(pkg.NewEngineRules())
	var buf bytes.Buffer
	WriteSVG(&buf, b)

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("expected an SVG document")
	}
	if n := strings.Count(out, "<rect"); n < 64 {
		t.Fatalf("expected at least 64 square rects, got %d", n)
	}
	// 32 pieces drawn as text glyphs.
	if n := strings.Count(out, "<text"); n != 32 {
		t.Fatalf("expected 32 piece glyphs, got %d", n)
	}
}

func TestWriteSVGSelectionMarkers(t *testing.T) {
	b := pkg.NewBoard(pkg.NewEngineRules())
	b.OnSquareClicked(chess.E2)

	var buf bytes.Buffer
	WriteSVG(&buf, b)
	out := buf.String()
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Fatalf("expected destination markers for e3 and e4, got %d circles", n)
	}
}

func TestFileName(t *testing.T) {
	b := pkg.NewBoard(pkg.NewEngineRules())
	if got := FileName(b); got != "board-000.svg" {
		t.Fatalf("expected board-000.svg, got %s", got)
	}
}
