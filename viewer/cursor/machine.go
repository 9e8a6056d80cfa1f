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

import (
	"github.com/jetsetilly/memview/saturate"
	"github.com/jetsetilly/memview/viewer/numberview"
)

// Layout describes how memory is currently laid out on screen.
type Layout struct {
	View numberview.View

	// address of the first unit in the viewport. units are laid out at
	// multiples of the unit size from this address
	Base uint64

	// number of bytes in one row of the viewport
	Stride uint64
}

func (l Layout) unitSize() uint64 {
	return uint64(l.View.Size.ByteCount())
}

// unitAddress returns the address of the unit that contains the address.
func (l Layout) unitAddress(address uint64) uint64 {
	n := l.unitSize()
	if address >= l.Base {
		return l.Base + (address-l.Base)/n*n
	}
	d := (l.Base - address + n - 1) / n * n
	return saturate.Sub(l.Base, d)
}

// Key is a navigation key.
type Key int

// List of valid Key values.
const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
	KeyTab
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEscape:
		return "escape"
	case KeyTab:
		return "tab"
	}
	return "unknown key"
}

// ClickNumber is the transition for a click on the digit of a unit in the
// numbers pane. Only the Hex representation can be edited so for other
// representations the result is always a nil cursor.
func ClickNumber(l Layout, address uint64, digit int) (Cursor, Effect) {
	if !l.View.Editable() || digit < 0 || digit >= l.View.DigitCount() {
		return nil, Effect{}
	}
	return Number{Address: address, Digit: digit}, activate
}

// ClickText is the transition for a click on a byte in the text pane.
func ClickText(address uint64) (Cursor, Effect) {
	return Text{Address: address}, activate
}

// Navigate is the transition for a navigation key. If the cursor cannot
// move in the direction of the key, the cursor is returned unchanged with an
// empty Effect.
func Navigate(c Cursor, l Layout, key Key) (Cursor, Effect) {
	if key == KeyEscape {
		return nil, Effect{}
	}

	switch c := c.(type) {
	case nil:
		return nil, Effect{}
	case Number:
		return navigateNumber(c, l, key)
	case Text:
		return navigateText(c, l, key)
	}

	panic("cursor: unhandled cursor type")
}

func navigateNumber(c Number, l Layout, key Key) (Cursor, Effect) {
	n := l.unitSize()
	last := l.View.DigitCount() - 1

	switch key {
	case KeyLeft:
		if c.Digit > 0 {
			c.Digit--
			return c, activate
		}
		if c.Address < n {
			return c, Effect{}
		}
		return Number{Address: c.Address - n, Digit: last}, activate

	case KeyRight:
		if c.Digit < last {
			c.Digit++
			return c, activate
		}
		if c.Address > ^uint64(0)-n {
			return c, Effect{}
		}
		return Number{Address: c.Address + n, Digit: 0}, activate

	case KeyUp:
		if c.Address < l.Stride {
			return c, Effect{}
		}
		c.Address -= l.Stride
		return c, activate

	case KeyDown:
		if c.Address > ^uint64(0)-l.Stride {
			return c, Effect{}
		}
		c.Address += l.Stride
		return c, activate

	case KeyTab:
		return Text{Address: c.Address}, activate
	}

	return c, Effect{}
}

func navigateText(c Text, l Layout, key Key) (Cursor, Effect) {
	switch key {
	case KeyLeft:
		if c.Address == 0 {
			return c, Effect{}
		}
		c.Address--
		return c, activate

	case KeyRight:
		if c.Address == ^uint64(0) {
			return c, Effect{}
		}
		c.Address++
		return c, activate

	case KeyUp:
		if c.Address < l.Stride {
			return c, Effect{}
		}
		c.Address -= l.Stride
		return c, activate

	case KeyDown:
		if c.Address > ^uint64(0)-l.Stride {
			return c, Effect{}
		}
		c.Address += l.Stride
		return c, activate

	case KeyTab:
		if !l.View.Editable() {
			return c, Effect{}
		}
		return Number{Address: l.unitAddress(c.Address), Digit: 0}, activate
	}

	return c, Effect{}
}

// Type is the transition for a typed character. The character is written to
// memory at the cursor and the cursor advances to the next position.
//
// A Number cursor accepts hex digits only and a Text cursor accepts
// printable ASCII only. Other characters are ignored, as are characters
// typed while the memory at the cursor is inaccessible. An ignored character
// leaves the cursor unchanged and returns a nil Write.
func Type(c Cursor, l Layout, mem Memory, r rune) (Cursor, Effect, *Write) {
	switch c := c.(type) {
	case nil:
		return nil, Effect{}, nil
	case Number:
		return typeNumber(c, l, mem, r)
	case Text:
		return typeText(c, mem, r)
	}

	panic("cursor: unhandled cursor type")
}

func typeNumber(c Number, l Layout, mem Memory, r rune) (Cursor, Effect, *Write) {
	if !l.View.Editable() {
		return nil, Effect{}, nil
	}

	v, ok := numberview.ParseNibble(r)
	if !ok {
		return c, Effect{}, nil
	}

	n := l.View.Size.ByteCount()
	unit, ok := mem.Unit(c.Address, n)
	if !ok {
		return c, Effect{}, nil
	}

	offset, err := l.View.SetNibble(unit, c.Digit, v)
	if err != nil {
		return c, Effect{}, nil
	}

	w := &Write{
		Address: c.Address + uint64(offset),
		Data:    []byte{unit[offset]},
	}

	if c.Digit < l.View.DigitCount()-1 {
		c.Digit++
		return c, activate, w
	}

	// the last digit of a unit at the top of the address space has nowhere to
	// advance to
	if c.Address > ^uint64(0)-uint64(n) {
		return c, activate, w
	}

	return Number{Address: c.Address + uint64(n), Digit: 0}, activate, w
}

// Printable returns true if the byte is shown as itself in the text pane.
func Printable(b byte) bool {
	return b >= 32 && b <= 126
}

func typeText(c Text, mem Memory, r rune) (Cursor, Effect, *Write) {
	if r > 0xff || !Printable(byte(r)) {
		return c, Effect{}, nil
	}

	if !mem.SetByte(c.Address, byte(r)) {
		return c, Effect{}, nil
	}

	w := &Write{
		Address: c.Address,
		Data:    []byte{byte(r)},
	}

	if c.Address == ^uint64(0) {
		return c, activate, w
	}
	c.Address++

	return c, activate, w
}

// ChangeView is the transition for a change to the numberview.View. A
// Number cursor does not survive a change of view because the layout of the
// digits will have changed.
func ChangeView(c Cursor, from numberview.View, to numberview.View) Cursor {
	if _, ok := c.(Number); ok && from != to {
		return nil
	}
	return c
}

// Rebase is the transition for a jump of the viewport to a new address. An
// active cursor follows the jump to the new address. A Number cursor is reset
// to the first digit.
func Rebase(c Cursor, address uint64) (Cursor, Effect) {
	switch c.(type) {
	case nil:
		return nil, Effect{}
	case Number:
		return Number{Address: address, Digit: 0}, activate
	case Text:
		return Text{Address: address}, activate
	}

	panic("cursor: unhandled cursor type")
}
