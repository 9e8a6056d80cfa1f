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

package viewer

import (
	"github.com/jetsetilly/memview/viewer/cursor"
	"github.com/jetsetilly/memview/viewer/events"
	"github.com/jetsetilly/memview/viewer/numberview"
	"github.com/jetsetilly/memview/viewer/viewport"
)

// Inaccessible is the character used in place of memory that is not
// available.
const Inaccessible = '?'

// Unprintable is the character used in the text pane for bytes that are not
// printable.
const Unprintable = '.'

// Header is the state of the controls at the top of the viewer.
type Header struct {
	View numberview.View

	// the selected number of columns. zero means the columns fit the width of
	// the window
	Columns int

	Panes     viewport.Panes
	AlignRows bool

	// the text for the address box
	Address string

	// a read of memory is waiting for a response
	Outstanding bool
}

// Unit is a single formatted number in the numbers pane.
type Unit struct {
	Address uint64

	// formatted text. if the unit is not accessible the text is the
	// Inaccessible character repeated to the width of the unit
	Text string

	Accessible bool
	Changed    bool

	// the unit is past the top of the address space. the address is zero and
	// the unit should not be clicked
	Beyond bool
}

// HasCursor returns true if the cursor is on the unit.
func (u Unit) HasCursor(c cursor.Cursor) bool {
	n, ok := c.(cursor.Number)
	return ok && !u.Beyond && n.Address == u.Address
}

// Byte is a single character in the text pane.
type Byte struct {
	Address    uint64
	Char       byte
	Accessible bool
	Changed    bool

	// the byte is past the top of the address space. the address is zero
	// and the byte should not be clicked
	Beyond bool
}

// HasCursor returns true if the cursor is on the byte.
func (b Byte) HasCursor(c cursor.Cursor) bool {
	t, ok := c.(cursor.Text)
	return ok && !b.Beyond && t.Address == b.Address
}

// Line is a single row of the viewer.
type Line struct {
	Address     uint64
	AddressText string
	Units       []Unit
	Bytes       []Byte
}

// Frame is everything required to draw the viewer.
type Frame struct {
	Header Header

	// the geometry of the frame. Stride is the number of bytes in a row.
	// UnitChars is the width of every Unit.Text and AddressChars is the width
	// of every Line.AddressText
	Columns      int
	Rows         int
	Stride       uint64
	UnitChars    int
	AddressChars int

	Lines []Line

	// the active cursor and the effect to be applied when the cursor is next
	// drawn. the Effect is only returned once, in the first frame that has a
	// line with the cursor in it
	Cursor cursor.Cursor
	Effect cursor.Effect

	// messages for the debuggee
	Requests []events.Message
}
