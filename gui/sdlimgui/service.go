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
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements the gui.GUI interface.
func (img *SdlImgui) Service() bool {
	img.thread.Check("sdlimgui: Service()")

	// poll for sdl event or timeout
	ev := img.polling.wait()

	// whether mouse button down event have been polled. if it has and we poll
	// an up event in the same PollEvent() loop below, then we need to
	// "trickle" the up and down events over two frames. see commentary for
	// trickleMouseButton type
	leftMouseDownPolled := false
	rightMouseDownPolled := false

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit()

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(textInput(ev.Text[:]))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseButtonEvent:
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				switch ev.Type {
				case sdl.MOUSEBUTTONDOWN:
					leftMouseDownPolled = true
				case sdl.MOUSEBUTTONUP:
					if leftMouseDownPolled {
						img.plt.trickleMouseButtonLeft = trickleMouseDown
					}
				}

			case sdl.BUTTON_RIGHT:
				switch ev.Type {
				case sdl.MOUSEBUTTONDOWN:
					rightMouseDownPolled = true
				case sdl.MOUSEBUTTONUP:
					if rightMouseDownPolled {
						img.plt.trickleMouseButtonRight = trickleMouseDown
					}
				}
			}

			// trigger service wake in time for next Service() iteration.
			// without this, the results of the mouse button will not be
			// seen until the timeout (in the next iteration) has elapsed
			img.polling.alert()

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)
			img.wheel += deltaY
			img.polling.alert()
		}
	}

	img.renderFrame()

	return !img.quitting
}

// text in a sdl.TextInputEvent is nul terminated
func textInput(b []byte) string {
	for i := range b {
		if b[i] == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func (img *SdlImgui) renderFrame() {
	// start of a new frame
	img.plt.newFrame()
	imgui.NewFrame()

	img.draw()

	// rendering
	imgui.Render() // This call only creates the draw data list. Actual rendering to framebuffer is done below.
	img.rnd.preRender()
	img.rnd.render()
	img.plt.postRender()
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	// keypresses forwarded to imgui io system
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	}

	img.polling.alert()

	if ev.Type != sdl.KEYUP || ev.Repeat != 0 {
		return
	}

	ctrl := ev.Keysym.Mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || ev.Keysym.Mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL

	switch ev.Keysym.Scancode {
	case sdl.SCANCODE_Q:
		if ctrl {
			img.quit()
		}

	case sdl.SCANCODE_F5:
		img.mem.requestStep()

	case sdl.SCANCODE_F9:
		img.log.open = !img.log.open
	}
}
