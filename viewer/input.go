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

// Input to the Update() function.
type Input struct {
	// messages received from the debuggee since the previous frame
	Events []events.Message

	// actions of the user recorded while drawing the previous frame. actions
	// are applied in order
	Actions []Action

	// width of the area available for the rows of the viewer and the width
	// of a single character. the units can be pixels or characters so long
	// as they are the same for both values
	Width      float32
	GlyphWidth float32

	// height of the area available for rows of the viewer and the height of
	// a single row. the units can be pixels or rows so long as they are the
	// same for both values
	Height     float32
	LineHeight float32
}

// Action is a user action. Implemented by the types in this file.
type Action interface {
	action()
}

// ClickNumber is a click on a digit of a unit in the numbers pane.
type ClickNumber struct {
	Address uint64
	Digit   int
}

// ClickText is a click on a byte in the text pane.
type ClickText struct {
	Address uint64
}

// Navigate is a navigation key press.
type Navigate struct {
	Key cursor.Key
}

// Type is a typed character.
type Type struct {
	Char rune
}

// Scroll the viewer by a number of rows. Negative values scroll towards
// address zero.
type Scroll struct {
	Rows int
}

// Page the viewer by a number of screens. Negative values page towards
// address zero.
type Page struct {
	Pages int
}

// SetRepresentation changes the numberview.Representation.
type SetRepresentation struct {
	Representation numberview.Representation
}

// SetSize changes the numberview.Size.
type SetSize struct {
	Size numberview.Size
}

// SetEndianness changes the numberview.Endianness.
type SetEndianness struct {
	Endianness numberview.Endianness
}

// SetColumns changes the number of columns. A value of zero means the
// number of columns will fit the width of the window.
type SetColumns struct {
	Columns int
}

// SetPanes changes which panes are visible.
type SetPanes struct {
	Panes viewport.Panes
}

// SetAlignRows changes whether rows are aligned to the row stride.
type SetAlignRows struct {
	Align bool
}

// GotoAddress is text submitted in the address box.
type GotoAddress struct {
	Text string
}

// RequestStep asks the debuggee to step.
type RequestStep struct{}

func (ClickNumber) action()       {}
func (ClickText) action()         {}
func (Navigate) action()          {}
func (Type) action()              {}
func (Scroll) action()            {}
func (Page) action()              {}
func (SetRepresentation) action() {}
func (SetSize) action()           {}
func (SetEndianness) action()     {}
func (SetColumns) action()        {}
func (SetPanes) action()          {}
func (SetAlignRows) action()      {}
func (GotoAddress) action()       {}
func (RequestStep) action()       {}
