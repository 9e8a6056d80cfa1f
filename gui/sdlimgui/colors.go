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
	"github.com/inkyblackness/imgui-go/v4"
)

// imguiColors defines all the colors used by the GUI.
type imguiColors struct {
	// default colors
	Background    imgui.Vec4
	WindowBg      imgui.Vec4
	TitleBg       imgui.Vec4
	TitleBgActive imgui.Vec4
	Border        imgui.Vec4
	FrameBg       imgui.Vec4

	// memory window
	Address      imgui.Vec4
	Value        imgui.Vec4
	ValueDiff    imgui.Vec4
	Inaccessible imgui.Vec4
	Outstanding  imgui.Vec4
	EditCell     imgui.Vec4

	// log window
	LogBackground imgui.Vec4
}

func newColors() *imguiColors {
	cols := imguiColors{
		Background:    imgui.Vec4{X: 0.05, Y: 0.05, Z: 0.06, W: 1.0},
		WindowBg:      imgui.Vec4{X: 0.075, Y: 0.08, Z: 0.09, W: 1.0},
		TitleBg:       imgui.Vec4{X: 0.075, Y: 0.08, Z: 0.09, W: 1.0},
		TitleBgActive: imgui.Vec4{X: 0.16, Y: 0.29, Z: 0.48, W: 1.0},
		Border:        imgui.Vec4{X: 0.14, Y: 0.14, Z: 0.29, W: 1.0},
		FrameBg:       imgui.Vec4{X: 0.16, Y: 0.16, Z: 0.21, W: 1.0},

		Address:      imgui.Vec4{X: 0.8, Y: 0.4, Z: 0.4, W: 1.0},
		Value:        imgui.Vec4{X: 0.8, Y: 0.8, Z: 0.8, W: 1.0},
		ValueDiff:    imgui.Vec4{X: 0.9, Y: 0.9, Z: 0.3, W: 1.0},
		Inaccessible: imgui.Vec4{X: 0.4, Y: 0.4, Z: 0.4, W: 1.0},
		Outstanding:  imgui.Vec4{X: 0.1, Y: 0.4, Z: 0.9, W: 1.0},
		EditCell:     imgui.Vec4{X: 0.3, Y: 0.6, Z: 0.3, W: 1.0},

		LogBackground: imgui.Vec4{X: 0.1, Y: 0.1, Z: 0.2, W: 0.9},
	}

	// set default colors
	style := imgui.CurrentStyle()
	style.SetColor(imgui.StyleColorWindowBg, cols.WindowBg)
	style.SetColor(imgui.StyleColorTitleBg, cols.TitleBg)
	style.SetColor(imgui.StyleColorTitleBgActive, cols.TitleBgActive)
	style.SetColor(imgui.StyleColorBorder, cols.Border)
	style.SetColor(imgui.StyleColorFrameBg, cols.FrameBg)

	return &cols
}
