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

package terminal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/memview/test"
	"github.com/jetsetilly/memview/viewer"
	"github.com/jetsetilly/memview/viewer/cursor"
	"github.com/jetsetilly/memview/viewer/numberview"
	"github.com/jetsetilly/memview/viewer/viewport"
)

func testFrame() viewer.Frame {
	return viewer.Frame{
		Header: viewer.Header{
			View:    numberview.NewView(numberview.Hex, numberview.OneByte, numberview.Little),
			Columns: 0,
			Panes:   viewport.Panes{Numbers: true, Text: true},
			Address: "00001000",
		},
		Lines: []viewer.Line{
			{
				Address: 0x1000,
				Units:   []viewer.Unit{{Address: 0x1000, Text: "00", Accessible: true}},
				Bytes:   []viewer.Byte{{Address: 0x1000, Char: '.', Accessible: true}},
			},
		},
	}
}

func runes(s string) []key {
	var keys []key
	for _, r := range s {
		keys = append(keys, key{kind: keyRune, r: r})
	}
	return keys
}

func TestCommandKeys(t *testing.T) {
	var ctl controls
	f := testFrame()

	actions := ctl.translate(append(runes("srzecpa"), key{kind: keyDown}, key{kind: keyPageUp}), f)
	want := []viewer.Action{
		viewer.RequestStep{},
		viewer.SetRepresentation{Representation: numberview.UnsignedDecimal},
		viewer.SetSize{Size: numberview.TwoBytes},
		viewer.SetEndianness{Endianness: numberview.Big},
		viewer.SetColumns{Columns: 1},
		viewer.SetPanes{Panes: viewport.Panes{Numbers: true}},
		viewer.SetAlignRows{Align: true},
		viewer.Scroll{Rows: 1},
		viewer.Page{Pages: -1},
	}
	if diff := cmp.Diff(want, actions); diff != "" {
		t.Error(diff)
	}
	test.ExpectEquality(t, ctl.quit, false)

	ctl.translate(runes("q"), f)
	test.ExpectEquality(t, ctl.quit, true)
}

func TestEditKeys(t *testing.T) {
	var ctl controls
	f := testFrame()

	// the cursor is placed and the following keys are interpreted as edits
	actions := ctl.translate(append(runes("na"), key{kind: keyRight}, key{kind: keyEscape}, runes("a")[0]), f)
	want := []viewer.Action{
		viewer.ClickNumber{Address: 0x1000},
		viewer.Type{Char: 'a'},
		viewer.Navigate{Key: cursor.KeyRight},
		viewer.Navigate{Key: cursor.KeyEscape},
		viewer.SetAlignRows{Align: true},
	}
	if diff := cmp.Diff(want, actions); diff != "" {
		t.Error(diff)
	}

	// an active cursor in the frame means that keys are edits
	f.Cursor = cursor.Text{Address: 0x1000}
	actions = ctl.translate(append(runes("q"), key{kind: keyTab}), f)
	want = []viewer.Action{
		viewer.Type{Char: 'q'},
		viewer.Navigate{Key: cursor.KeyTab},
	}
	if diff := cmp.Diff(want, actions); diff != "" {
		t.Error(diff)
	}
	test.ExpectEquality(t, ctl.quit, false)
}

func TestGotoPrompt(t *testing.T) {
	var ctl controls
	f := testFrame()

	actions := ctl.translate(runes("g"), f)
	test.ExpectEquality(t, len(actions), 0)
	test.ExpectEquality(t, ctl.prompting, true)
	test.ExpectEquality(t, string(ctl.prompt), "00001000")

	keys := []key{{kind: keyBackspace}, {kind: keyBackspace}, {kind: keyBackspace}, {kind: keyBackspace}}
	keys = append(keys, runes("4000")...)
	keys = append(keys, key{kind: keyEnter})
	actions = ctl.translate(keys, f)
	want := []viewer.Action{viewer.GotoAddress{Text: "00004000"}}
	if diff := cmp.Diff(want, actions); diff != "" {
		t.Error(diff)
	}
	test.ExpectEquality(t, ctl.prompting, false)

	// escape abandons the prompt
	actions = ctl.translate([]key{runes("g")[0], {kind: keyEscape}}, f)
	test.ExpectEquality(t, len(actions), 0)
	test.ExpectEquality(t, ctl.prompting, false)
}

func TestInterrupt(t *testing.T) {
	var ctl controls
	f := testFrame()
	f.Cursor = cursor.Text{Address: 0x1000}
	ctl.translate([]key{{kind: keyInterrupt}}, f)
	test.ExpectEquality(t, ctl.quit, true)
}

func TestNextColumns(t *testing.T) {
	test.ExpectEquality(t, nextColumns(0), 1)
	test.ExpectEquality(t, nextColumns(16), 32)
	test.ExpectEquality(t, nextColumns(viewport.MaxColumns), 0)
}
