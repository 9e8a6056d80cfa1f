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

package gui_test

import (
	"testing"

	"github.com/jetsetilly/memview/debuggee"
	"github.com/jetsetilly/memview/gui"
	"github.com/jetsetilly/memview/test"
	"github.com/jetsetilly/memview/viewer"
)

func input(actions ...viewer.Action) viewer.Input {
	return viewer.Input{
		Actions:    actions,
		Width:      1,
		GlyphWidth: 1,
		Height:     10,
		LineHeight: 1,
	}
}

func TestExchange(t *testing.T) {
	v, err := viewer.NewViewer("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, v.Prefs.Columns.Set(16))

	tr := gui.NewLoopback(debuggee.NewService(debuggee.NewDemoTarget(), 10))

	f := gui.Exchange(v, tr, input(viewer.GotoAddress{Text: "1000"}))
	test.ExpectEquality(t, len(f.Requests), 1)
	test.ExpectEquality(t, f.Lines[0].Units[0].Accessible, false)

	// the response to the read is received and a step is requested
	f = gui.Exchange(v, tr, input(viewer.RequestStep{}))
	test.ExpectEquality(t, len(f.Requests), 1)
	test.ExpectEquality(t, f.Header.Outstanding, false)
	test.ExpectEquality(t, f.Lines[1].Units[0].Text, "00")
	test.ExpectEquality(t, f.Lines[4].Bytes[0].Char, byte('m'))

	// the step is received and memory is read again
	f = gui.Exchange(v, tr, input())
	test.ExpectEquality(t, f.Header.Outstanding, true)

	// the counter at 0x1010 has changed
	f = gui.Exchange(v, tr, input())
	test.ExpectEquality(t, f.Header.Outstanding, false)
	test.ExpectEquality(t, f.Lines[1].Units[0].Text, "01")
	test.ExpectEquality(t, f.Lines[1].Units[0].Changed, true)
	test.ExpectEquality(t, f.Lines[1].Units[1].Changed, false)
}

func TestExchangeEdit(t *testing.T) {
	v, err := viewer.NewViewer("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, v.Prefs.Columns.Set(16))

	tgt := debuggee.NewDemoTarget()
	tr := gui.NewLoopback(debuggee.NewService(tgt, 10))

	gui.Exchange(v, tr, input(viewer.GotoAddress{Text: "4000"}))
	gui.Exchange(v, tr, input(viewer.ClickText{Address: 0x4002}, viewer.Type{Char: 'G'}))

	b, err := tgt.Mem.Peek(0x4002)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, byte('G'))
}
