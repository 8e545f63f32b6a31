package gui

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name        string
	SquareDark  tcell.Color
	SquareLight tcell.Color
	SquareLast  tcell.Color
	SquareSel   tcell.Color
	SquareDest  tcell.Color
	SquareKill  tcell.Color
	SquareCheck tcell.Color
	White       tcell.Color
	Black       tcell.Color
	Rank        tcell.Color
	File        tcell.Color
	Status      tcell.Color
	Clock       tcell.Color
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:        "basic",
	SquareDark:  tcell.Color188,
	SquareLight: tcell.Color230,
	SquareLast:  tcell.Color226,
	SquareSel:   tcell.Color117,
	SquareDest:  tcell.Color151,
	SquareKill:  tcell.Color167,
	SquareCheck: tcell.Color218,
	White:       tcell.Color232,
	Black:       tcell.Color232,
	Rank:        tcell.Color247,
	File:        tcell.Color247,
	Status:      tcell.Color160,
	Clock:       tcell.Color247,
}

// ThemeBlue mirrors the original desktop palette of white and blue squares
var ThemeBlue = Theme{
	Name:        "blue",
	SquareDark:  tcell.Color26,
	SquareLight: tcell.Color231,
	SquareLast:  tcell.Color226,
	SquareSel:   tcell.Color153,
	SquareDest:  tcell.Color244,
	SquareKill:  tcell.Color196,
	SquareCheck: tcell.Color217,
	White:       tcell.Color255,
	Black:       tcell.Color232,
	Rank:        tcell.Color250,
	File:        tcell.Color250,
	Status:      tcell.Color203,
	Clock:       tcell.Color250,
}

var themes = []Theme{ThemeBasic, ThemeBlue}

// LoadTheme returns the named theme
func LoadTheme(want string) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, errors.New("theme: no theme found")
}
