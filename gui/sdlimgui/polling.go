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
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that the service loop waits for an SDL event.
// the shorter period is used while the viewer is waiting for memory from the
// debuggee.
const (
	activeSleepPeriod = 16
	idleSleepPeriod   = 100
)

type polling struct {
	img *SdlImgui

	// mouse motion events are throttled by this ticker
	mouseTicker *time.Ticker

	// wake is used to preempt the wait when we want to communicate between
	// iterations of the service loop. for example, the result of a click
	// might feel laggy without it (see commentary in service loop for
	// explanation).
	wake bool
}

func newPolling(img *SdlImgui) *polling {
	return &polling{
		img:         img,
		mouseTicker: time.NewTicker(time.Millisecond * activeSleepPeriod),
	}
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

func (pol *polling) wait() sdl.Event {
	var timeout int

	if pol.wake {
		pol.wake = false
	} else if pol.img.mem.busy() {
		timeout = activeSleepPeriod
	} else {
		timeout = idleSleepPeriod
	}

	// wait for new SDL event or until the selected timeout period has elapsed
	ev := sdl.WaitEventTimeout(timeout)

	// slow down mouse events. if we don't do this then waggling the mouse
	// over the window will increase CPU usage significantly
	switch ev.(type) {
	case *sdl.MouseMotionEvent:
		<-pol.mouseTicker.C
	}

	return ev
}
