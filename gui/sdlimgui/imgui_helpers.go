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

// returns the pixel width of a text string length characters wide. assumes all
// characters are of the same width. Uses the 'X' character for measurement.
func imguiTextWidth(length int) float32 {
	if length < 1 {
		return 0
	}
	return imgui.CalcTextSize(strings.Repeat("X", length), false, 0).X
}

// returns the width required for a combo box to show any of the strings.
func imguiComboWidth(t []string) float32 {
	var w float32
	for i := range t {
		w = max(w, imgui.CalcTextSize(t[i], false, 0).X)
	}

	// the arrow button is as wide as the frame is high. comboboxes also look
	// better with a small amount of trailing space
	pad := imgui.CurrentStyle().FramePadding()
	return w + imgui.FontSize() + pad.Y*2 + pad.X*2.5
}

// imguiLabel aligns text with a widget that follows it on the same line.
func imguiLabel(text string) {
	imgui.AlignTextToFramePadding()
	imgui.Text(text)
	imgui.SameLine()
}

// imguiColorText draws text in the specified color.
func imguiColorText(text string, col imgui.Vec4) {
	imgui.PushStyleColor(imgui.StyleColorText, col)
	imgui.Text(text)
	imgui.PopStyleColor()
}

// imguiTooltip shows a tooltip for the most recent widget when it is hovered.
func imguiTooltip(text string) {
	if imgui.IsItemHovered() {
		imgui.SetTooltip(text)
	}
}

// pads imgui.Separator with additional spacing.
func imguiSeparator() {
	imgui.Spacing()
	imgui.Separator()
	imgui.Spacing()
}
