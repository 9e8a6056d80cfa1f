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

package sdlimgui

import (
	"strings"

	"github.com/inkyblackness/imgui-go/v4"
)

// calls imguiInput with the string of allowed hexadecimal characters. the x
// character is allowed so that a 0x prefix can be typed.
func imguiHexInput(label string, digits int, content *string) bool {
	return imguiInput(label, digits, content, "abcdefABCDEF0123456789xX")
}

// input text that accepts a maximum number of characters. physical width of
// InputText should be controlled with PushItemWidth()/PopItemWidth() as normal.
// returns true when the enter key is pressed.
func imguiInput(label string, digits int, content *string, allowedChars string) bool {
	cb := func(d imgui.InputTextCallbackData) int32 {
		switch d.EventFlag() {
		case imgui.InputTextFlagsCallbackCharFilter:
			// filter characters that are not in the list of allowedChars
			if !strings.ContainsRune(allowedChars, d.EventChar()) {
				return -1
			}
		default:
			b := string(d.Buffer())

			// restrict length of input
			if len(b) > digits {
				d.DeleteBytes(0, len(b))
				b = b[:digits]
				d.InsertBytes(0, []byte(b))
				d.MarkBufferModified()
			}
		}

		return 0
	}

	// flags used with InputTextV(). not using InputTextFlagsCharsHexadecimal
	// and preferring to filter manually for greated flexibility
	flags := imgui.InputTextFlagsCallbackCharFilter |
		imgui.InputTextFlagsCallbackAlways |
		imgui.InputTextFlagsAutoSelectAll |
		imgui.InputTextFlagsEnterReturnsTrue

	return imgui.InputTextV(label, content, flags, cb)
}

// imguiCellInput draws the one character edit widget used for the cell under
// the cursor. the widget never changes its content: every typed character is
// passed to the typed() function instead.
//
// if focus is true the widget takes keyboard focus. if caretToStart is true
// the caret is moved to the start of the widget.
//
// returns true if the widget is active.
func imguiCellInput(label string, content string, focus bool, caretToStart bool, typed func(rune)) bool {
	cb := func(d imgui.InputTextCallbackData) int32 {
		switch d.EventFlag() {
		case imgui.InputTextFlagsCallbackCharFilter:
			typed(d.EventChar())
			return 1
		case imgui.InputTextFlagsCallbackAlways:
			if caretToStart {
				d.SetCursorPos(0)
				caretToStart = false
			}
		}
		return 0
	}

	flags := imgui.InputTextFlagsCallbackCharFilter |
		imgui.InputTextFlagsCallbackAlways |
		imgui.InputTextFlagsNoHorizontalScroll

	imgui.PushItemWidth(imgui.CalcTextSize(content, false, 0).X)
	defer imgui.PopItemWidth()

	imgui.PushStyleVarVec2(imgui.StyleVarFramePadding, imgui.Vec2{})
	defer imgui.PopStyleVar()

	if focus {
		imgui.SetKeyboardFocusHere()
	}

	imgui.InputTextV(label, &content, flags, cb)

	return imgui.IsItemActive()
}
