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

package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/memview/terminal/easyterm/ansi"
	"github.com/jetsetilly/memview/viewer"
	"github.com/jetsetilly/memview/viewer/cursor"
)

// Style is the set of pens used to render a frame. The pens are ANSI
// sequences or empty strings.
type Style struct {
	Address      string
	Changed      string
	Inaccessible string
	Cursor       string
	Status       string
	Normal       string
}

// Plain renders a frame as plain text.
var Plain = Style{}

// Color renders a frame with ANSI colours.
var Color = Style{
	Address:      ansi.DimPens["cyan"],
	Changed:      ansi.Pens["yellow"],
	Inaccessible: ansi.DimPens["white"],
	Cursor:       ansi.PenStyles["inverse"],
	Status:       ansi.PenStyles["bold"],
	Normal:       ansi.NormalPen,
}

// the spacing between the address and the numbers pane and between the
// numbers pane and the text pane
const (
	addressSeparator = ": "
	paneSeparator    = "  "
)

// pen writes the text with the pen followed by the normal pen. Nothing extra
// is written if the pen is empty.
func (s Style) pen(b *strings.Builder, pen string, text string) {
	if pen == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(pen)
	b.WriteString(text)
	b.WriteString(s.Normal)
}

// renderLine adds a single line of the frame to the builder.
func renderLine(b *strings.Builder, f viewer.Frame, ln viewer.Line, s Style) {
	s.pen(b, s.Address, ln.AddressText)
	b.WriteString(addressSeparator)

	for i, u := range ln.Units {
		if i > 0 {
			b.WriteByte(' ')
		}

		text := fmt.Sprintf("%*s", f.UnitChars, u.Text)

		if c, ok := f.Cursor.(cursor.Number); ok && u.HasCursor(c) && c.Digit < len(text) {
			s.pen(b, unitPen(s, u), text[:c.Digit])
			s.pen(b, s.Cursor, text[c.Digit:c.Digit+1])
			s.pen(b, unitPen(s, u), text[c.Digit+1:])
			continue
		}

		s.pen(b, unitPen(s, u), text)
	}

	if len(ln.Bytes) == 0 {
		return
	}

	if len(ln.Units) > 0 {
		b.WriteString(paneSeparator)
	}

	for _, c := range ln.Bytes {
		ch := string(rune(c.Char))
		switch {
		case c.HasCursor(f.Cursor):
			s.pen(b, s.Cursor, ch)
		case !c.Accessible:
			s.pen(b, s.Inaccessible, ch)
		case c.Changed:
			s.pen(b, s.Changed, ch)
		default:
			b.WriteString(ch)
		}
	}
}

func unitPen(s Style, u viewer.Unit) string {
	switch {
	case !u.Accessible:
		return s.Inaccessible
	case u.Changed:
		return s.Changed
	}
	return ""
}

// WriteLines writes every line of the frame to the output. Each line ends
// with a newline.
func WriteLines(output io.Writer, f viewer.Frame, s Style) error {
	var b strings.Builder
	for _, ln := range f.Lines {
		renderLine(&b, f, ln, s)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(output, b.String())
	return err
}

// header returns the text of the status line at the top of the screen.
func header(f viewer.Frame) string {
	h := f.Header

	columns := "fit"
	if h.Columns > 0 {
		columns = fmt.Sprintf("%d", h.Columns)
	}

	panes := "numbers+text"
	switch {
	case !h.Panes.Text:
		panes = "numbers"
	case !h.Panes.Numbers:
		panes = "text"
	}

	s := fmt.Sprintf("%s | %s | %s | columns %s | %s", h.View.Representation, h.View.Size,
		h.View.Endianness, columns, panes)
	if h.AlignRows {
		s = fmt.Sprintf("%s | aligned", s)
	}
	s = fmt.Sprintf("%s | %s", s, h.Address)
	if h.Outstanding {
		s = fmt.Sprintf("%s | reading", s)
	}

	return s
}
