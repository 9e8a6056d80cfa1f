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
	"github.com/jetsetilly/memview/logger"
)

const winLogTitle = "Log"

type winLog struct {
	img  *SdlImgui
	open bool

	// number of entries in the log when last drawn
	entries int
}

func newWinLog(img *SdlImgui) *winLog {
	return &winLog{
		img: img,
	}
}

func (win *winLog) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 100, Y: 100}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 500, Y: 300}, imgui.ConditionFirstUseEver)

	imgui.PushStyleColor(imgui.StyleColorWindowBg, win.img.cols.LogBackground)
	imgui.BeginV(winLogTitle, &win.open, 0)
	imgui.PopStyleColor()

	logger.BorrowLog(func(log []logger.Entry) {
		var clipper imgui.ListClipper
		clipper.Begin(len(log))
		for clipper.Step() {
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				imgui.Text(log[i].String())
			}
		}

		// scroll to end if there is a new entry
		if len(log) != win.entries {
			imgui.SetScrollHereY(0.0)
			win.entries = len(log)
		}
	})

	imgui.End()
}
