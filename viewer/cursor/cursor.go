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

package cursor

import "fmt"

// Cursor is implemented by Number and Text. A nil Cursor means there is no
// active cursor.
type Cursor interface {
	// the address of the byte or unit being edited
	At() uint64
	String() string

	// Cursor is a closed set of types
	cursor()
}

// Number is a cursor on a single hex digit of a unit in the numbers pane.
// Digit zero is the most significant digit.
type Number struct {
	Address uint64
	Digit   int
}

func (c Number) At() uint64 {
	return c.Address
}

func (c Number) String() string {
	return fmt.Sprintf("number %#x digit %d", c.Address, c.Digit)
}

func (c Number) cursor() {}

// Text is a cursor on a single byte in the text pane.
type Text struct {
	Address uint64
}

func (c Text) At() uint64 {
	return c.Address
}

func (c Text) String() string {
	return fmt.Sprintf("text %#x", c.Address)
}

func (c Text) cursor() {}

// Describe returns a string for any cursor, including a nil cursor.
func Describe(c Cursor) string {
	if c == nil {
		return "none"
	}
	return c.String()
}

// Effect is a side effect to be applied by the host the first time the
// cursor is drawn after a transition.
type Effect struct {
	// keyboard focus should move to the cursor's widget
	TakeFocus bool

	// the widget's text insertion caret should be placed at the start
	CaretToStart bool
}

// Pending returns true if the Effect requires any action by the host.
func (e Effect) Pending() bool {
	return e.TakeFocus || e.CaretToStart
}

// activate is the Effect for a cursor arriving at a new position.
var activate = Effect{TakeFocus: true, CaretToStart: true}

// Write is a change to memory made by the cursor.
type Write struct {
	Address uint64
	Data    []byte
}

// Memory is the memory being edited. Satisfied by *chunk.Chunk.
type Memory interface {
	Unit(address uint64, n int) ([]byte, bool)
	SetByte(address uint64, value byte) bool
}
