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

import "github.com/inkyblackness/imgui-go/v4"

// renderer draws the imgui draw data to the platform window.
type renderer interface {
	start() error
	destroy()
	preRender()
	render()

	// create the texture for the font atlas and tell imgui about it
	addFontTexture(fnts imgui.FontAtlas)
}
