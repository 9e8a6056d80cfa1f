// This file is part of Memview.
//
// Memview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memview.  If not, see <https://www.gnu.org/licenses/>.

// Package ansi defines ANSI control codes for styles, colours and cursor
// placement.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
const (
	attrBold      = 1
	attrDim       = 2
	attrUnderline = 4
	attrInverse   = 7
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

// Cursor and screen control sequences.
const (
	ClearScreen = "\033[2J"
	ClearLine   = "\033[2K"
	CursorHome  = "\033[H"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
	AltScreen   = "\033[?1049h"
	MainScreen  = "\033[?1049l"
)

// CursorMove returns the sequence to place the cursor at the row and column.
// Row and column count from zero.
func CursorMove(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row+1, col+1)
}

var colorNames = []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen = mustBuild("", "", "", false, false)

	for _, c := range colorNames {
		Pens[c] = mustBuild(c, "normal", "", true, false)
		DimPens[c] = mustBuild(c, "normal", "", false, false)
	}

	for _, s := range []string{"bold", "dim", "underline", "inverse"} {
		PenStyles[s] = mustBuild("", "", s, false, false)
	}
}

func mustBuild(pen, paper, attribute string, brightPen, brightPaper bool) string {
	s, err := ColorBuild(pen, paper, attribute, brightPen, brightPaper)
	if err != nil {
		panic(err)
	}
	return s
}

func color(name string) (int, error) {
	switch strings.ToUpper(name) {
	case "BLACK":
		return colBlack, nil
	case "RED":
		return colRed, nil
	case "GREEN":
		return colGreen, nil
	case "YELLOW":
		return colYellow, nil
	case "BLUE":
		return colBlue, nil
	case "MAGENTA":
		return colMagenta, nil
	case "CYAN":
		return colCyan, nil
	case "WHITE":
		return colWhite, nil
	case "NORMAL":
		return colDefault, nil
	}
	return 0, fmt.Errorf("unknown ANSI color (%s)", name)
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var params []string

	if pen != "" {
		c, err := color(pen)
		if err != nil {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		params = append(params, fmt.Sprintf("%d%d", target, c))
	}

	if paper != "" {
		c, err := color(paper)
		if err != nil {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		target := targetPaper
		if brightPaper {
			target = targetBrightPaper
		}
		params = append(params, fmt.Sprintf("%d%d", target, c))
	}

	switch strings.ToUpper(attribute) {
	case "BOLD":
		params = append(params, fmt.Sprintf("%d", attrBold))
	case "DIM":
		params = append(params, fmt.Sprintf("%d", attrDim))
	case "UNDERLINE":
		params = append(params, fmt.Sprintf("%d", attrUnderline))
	case "INVERSE":
		params = append(params, fmt.Sprintf("%d", attrInverse))
	case "", "NORMAL":
	default:
		return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
	}

	// an empty parameter list resets all attributes
	return fmt.Sprintf("\033[%sm", strings.Join(params, ";")), nil
}
