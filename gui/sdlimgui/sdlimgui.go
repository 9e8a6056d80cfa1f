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
	"io"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/memview/assert"
	"github.com/jetsetilly/memview/curated"
	"github.com/jetsetilly/memview/gui"
	"github.com/jetsetilly/memview/paths"
	"github.com/jetsetilly/memview/viewer"
)

// imguiIniFile is where imgui will store the coordinates of the imgui windows
const imguiIniFile = "memview_imgui.ini"

// SdlImgui is an sdl based front end for the memory viewer using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     renderer

	// the viewer and the transport to the debuggee
	viewer    *viewer.Viewer
	transport gui.Transport

	// imgui windows
	mem *winMemory
	log *winLog

	// the colors used by the imgui system
	cols *imguiColors

	// polling encapsulates the waiting for events by the service loop
	polling *polling

	// mouse wheel movement since the previous frame
	wheel float32

	// the user has asked to quit
	quitting bool

	// the thread that created the gui. SDL requires that all window
	// functions are called from this thread
	thread assert.Thread
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
//
// MUST ONLY be called from the gui thread.
func NewSdlImgui(v *viewer.Viewer, t gui.Transport) (*SdlImgui, error) {
	img := &SdlImgui{
		context:   imgui.CreateContext(nil),
		io:        imgui.CurrentIO(),
		viewer:    v,
		transport: t,
		thread:    assert.NewThread(),
	}

	// path to dear imgui ini file
	iniPath, err := paths.ResourcePath("", imguiIniFile)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	// define colors
	img.cols = newColors()

	img.rnd = newRenderer(img)

	img.plt, err = newPlatform(img)
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	err = img.rnd.start()
	if err != nil {
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.io.Fonts().AddFontDefault()
	img.rnd.addFontTexture(img.io.Fonts())

	img.mem = newWinMemory(img)
	img.log = newWinLog(img)
	img.polling = newPolling(img)

	img.plt.show()

	return img, nil
}

// Destroy implements the gui.GUI interface.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	img.thread.Check("sdlimgui: Destroy()")

	img.rnd.destroy()

	err := img.plt.destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	img.context.Destroy()
}

// quit application at the end of the current frame.
func (img *SdlImgui) quit() {
	img.quitting = true
}

// draw gui. called from service loop.
func (img *SdlImgui) draw() {
	img.mem.draw()
	img.log.draw()
}
