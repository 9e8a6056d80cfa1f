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

package terminal_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/memview/debuggee"
	"github.com/jetsetilly/memview/gui"
	"github.com/jetsetilly/memview/terminal"
	"github.com/jetsetilly/memview/test"
	"github.com/jetsetilly/memview/viewer"
	"github.com/jetsetilly/memview/viewer/cursor"
)

func newViewer(t *testing.T, address uint64) (*viewer.Viewer, gui.Transport) {
	t.Helper()
	v, err := viewer.NewViewer("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, v.Prefs.Columns.Set(16))
	v.SetStartAddress(address)
	return v, gui.NewLoopback(debuggee.NewService(debuggee.NewDemoTarget(), 10))
}

func TestDump(t *testing.T) {
	v, tr := newViewer(t, 0x1040)

	w := &test.Writer{}
	test.ExpectSuccess(t, terminal.Dump(w, v, tr, 2))

	want := "00001040: 6d 65 6d 76 69 65 77 3a 20 6d 65 6d 6f 72 79 20  memview: memory \n" +
		"00001050: 76 69 65 77 70 6f 72 74 20 61 6e 64 20 65 64 69  viewport and edi\n"
	test.ExpectEquality(t, w.String(), want)
}

func TestDumpInaccessible(t *testing.T) {
	v, tr := newViewer(t, 0x1ff8)

	w := &test.Writer{}
	test.ExpectSuccess(t, terminal.Dump(w, v, tr, 1))

	want := "00001ff8: 00 00 00 00 00 00 00 00 ?? ?? ?? ?? ?? ?? ?? ??  ........????????\n"
	test.ExpectEquality(t, w.String(), want)
}

func TestWriteLinesCursor(t *testing.T) {
	v, tr := newViewer(t, 0x1040)
	in := viewer.Input{Width: 80, GlyphWidth: 1, Height: 1, LineHeight: 1}

	gui.Exchange(v, tr, in)
	in.Actions = []viewer.Action{viewer.ClickNumber{Address: 0x1041, Digit: 1}}
	f := gui.Exchange(v, tr, in)
	test.ExpectEquality(t, f.Cursor, cursor.Cursor(cursor.Number{Address: 0x1041, Digit: 1}))

	style := terminal.Style{Cursor: "[", Normal: "]"}
	w := &test.Writer{}
	test.ExpectSuccess(t, terminal.WriteLines(w, f, style))
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "00001040: 6d 6[5] 6d"), true)

	in.Actions = []viewer.Action{viewer.ClickText{Address: 0x1042}}
	f = gui.Exchange(v, tr, in)
	w.Clear()
	test.ExpectSuccess(t, terminal.WriteLines(w, f, style))
	test.ExpectEquality(t, strings.HasSuffix(w.String(), "  me[m]view: memory \n"), true)
}
