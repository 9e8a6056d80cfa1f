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

package viewer_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/memview/logger"
	"github.com/jetsetilly/memview/test"
	"github.com/jetsetilly/memview/viewer"
	"github.com/jetsetilly/memview/viewer/cursor"
	"github.com/jetsetilly/memview/viewer/events"
	"github.com/jetsetilly/memview/viewer/numberview"
	"github.com/jetsetilly/memview/viewer/viewport"
)

// sixteen columns of one byte hex units and nine rows
const testRows = 9
const testStride = 16
const testWindow = testRows * testStride

func newTestViewer(t *testing.T) *viewer.Viewer {
	t.Helper()
	v, err := viewer.NewViewer("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, v.Prefs.Columns.Set(testStride))
	return v
}

func input(msgs []events.Message, actions ...viewer.Action) viewer.Input {
	return viewer.Input{
		Events:     msgs,
		Actions:    actions,
		Width:      200,
		GlyphWidth: 1,
		Height:     testRows + 1,
		LineHeight: 1,
	}
}

func memory(address uint64, n int) []byte {
	d := make([]byte, n)
	for i := range d {
		d[i] = byte(address + uint64(i))
	}
	return d
}

// a viewer with the first window of memory already loaded
func loadedViewer(t *testing.T) *viewer.Viewer {
	t.Helper()
	v := newTestViewer(t)
	v.Update(input(nil))
	f := v.Update(input([]events.Message{events.NewSetMemory(0, memory(0, testWindow))}))
	test.DemandEquality(t, len(f.Requests), 0)
	return v
}

func TestFirstFrame(t *testing.T) {
	v := newTestViewer(t)
	f := v.Update(input(nil))

	test.ExpectEquality(t, f.Rows, testRows)
	test.ExpectEquality(t, f.Columns, testStride)
	test.ExpectEquality(t, f.Stride, uint64(testStride))
	test.ExpectEquality(t, f.UnitChars, 2)
	test.ExpectEquality(t, f.AddressChars, viewport.AddressChars)
	test.ExpectEquality(t, f.Header.Address, "00000000")
	test.ExpectEquality(t, f.Header.Outstanding, true)

	if diff := cmp.Diff([]events.Message{events.NewGetMemory(0, testWindow)}, f.Requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}

	// nothing is loaded yet
	test.ExpectEquality(t, len(f.Lines), testRows)
	test.ExpectEquality(t, f.Lines[0].Units[0].Text, "??")
	test.ExpectEquality(t, f.Lines[0].Units[0].Accessible, false)
	test.ExpectEquality(t, f.Lines[0].Bytes[0].Char, byte(viewer.Inaccessible))

	// the request is not repeated while it is outstanding
	f = v.Update(input(nil))
	test.ExpectEquality(t, len(f.Requests), 0)
}

func TestLoadedFrame(t *testing.T) {
	v := loadedViewer(t)
	f := v.Update(input(nil))

	test.ExpectEquality(t, f.Header.Outstanding, false)
	test.ExpectEquality(t, f.Lines[1].AddressText, "00000010")
	test.ExpectEquality(t, f.Lines[1].Units[0].Text, "10")
	test.ExpectEquality(t, f.Lines[1].Units[0].Address, uint64(0x10))
	test.ExpectEquality(t, f.Lines[1].Units[0].Changed, false)

	// 0x41 is the letter A. zero is not printable
	test.ExpectEquality(t, f.Lines[4].Bytes[1].Char, byte('A'))
	test.ExpectEquality(t, f.Lines[0].Bytes[0].Char, byte(viewer.Unprintable))
	test.ExpectEquality(t, f.Lines[0].Bytes[0].Accessible, true)
}

func TestStepDiff(t *testing.T) {
	v := loadedViewer(t)

	// the step is reported and memory is read again
	f := v.Update(input([]events.Message{events.NewStep()}))
	if diff := cmp.Diff([]events.Message{events.NewGetMemory(0, testWindow)}, f.Requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}

	// memory is still visible while the read is outstanding
	test.ExpectEquality(t, f.Lines[0].Units[5].Text, "05")
	test.ExpectEquality(t, f.Lines[0].Units[5].Changed, false)

	d := memory(0, testWindow)
	d[5] = 0xff
	f = v.Update(input([]events.Message{events.NewSetMemory(0, d)}))
	test.ExpectEquality(t, f.Lines[0].Units[5].Text, "ff")
	test.ExpectEquality(t, f.Lines[0].Units[5].Changed, true)
	test.ExpectEquality(t, f.Lines[0].Units[4].Changed, false)
	test.ExpectEquality(t, f.Lines[0].Bytes[5].Changed, true)
	test.ExpectEquality(t, f.Lines[0].Bytes[6].Changed, false)
}

func TestEditWriteBack(t *testing.T) {
	v := loadedViewer(t)

	f := v.Update(input(nil, viewer.ClickNumber{Address: 0x10, Digit: 0}))
	test.ExpectEquality(t, f.Cursor, cursor.Cursor(cursor.Number{Address: 0x10, Digit: 0}))
	test.ExpectEquality(t, f.Effect.TakeFocus, true)

	// the effect is only handed over once
	f = v.Update(input(nil))
	test.ExpectEquality(t, f.Effect.Pending(), false)

	f = v.Update(input(nil, viewer.Type{Char: 'a'}))
	if diff := cmp.Diff([]events.Message{events.NewUpdateMemory(0x10, []byte{0xa0})}, f.Requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, f.Cursor, cursor.Cursor(cursor.Number{Address: 0x10, Digit: 1}))
	test.ExpectEquality(t, f.Lines[1].Units[0].Text, "a0")

	// two characters in the same frame produce two writes
	f = v.Update(input(nil, viewer.Type{Char: 'b'}, viewer.Type{Char: 'c'}))
	want := []events.Message{
		events.NewUpdateMemory(0x10, []byte{0xab}),
		events.NewUpdateMemory(0x11, []byte{0xc1}),
	}
	if diff := cmp.Diff(want, f.Requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, f.Cursor, cursor.Cursor(cursor.Number{Address: 0x11, Digit: 1}))

	// non-hex characters are ignored
	f = v.Update(input(nil, viewer.Type{Char: 'x'}))
	test.ExpectEquality(t, len(f.Requests), 0)
}

func TestTextEdit(t *testing.T) {
	v := loadedViewer(t)

	f := v.Update(input(nil, viewer.ClickText{Address: 0x20}, viewer.Type{Char: 'Z'}))
	if diff := cmp.Diff([]events.Message{events.NewUpdateMemory(0x20, []byte{'Z'})}, f.Requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, f.Cursor, cursor.Cursor(cursor.Text{Address: 0x21}))
	test.ExpectEquality(t, f.Lines[2].Bytes[0].Char, byte('Z'))
}

func TestCursorFollow(t *testing.T) {
	v := loadedViewer(t)

	last := uint64((testRows - 1) * testStride)
	v.Update(input(nil, viewer.ClickNumber{Address: last, Digit: 0}))
	test.ExpectEquality(t, v.StartAddress(), uint64(0))

	// moving the cursor off the bottom row scrolls by one row
	f := v.Update(input(nil, viewer.Navigate{Key: cursor.KeyDown}))
	test.ExpectEquality(t, v.StartAddress(), uint64(testStride))
	test.ExpectEquality(t, f.Header.Address, "00000010")

	// the moved window is read
	if diff := cmp.Diff([]events.Message{events.NewGetMemory(testStride, testWindow)}, f.Requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}

	f = v.Update(input(nil, viewer.Navigate{Key: cursor.KeyEscape}))
	test.ExpectEquality(t, f.Cursor, nil)
}

func TestScrollAndPage(t *testing.T) {
	v := loadedViewer(t)

	v.Update(input(nil, viewer.Scroll{Rows: 2}))
	test.ExpectEquality(t, v.StartAddress(), uint64(2*testStride))

	v.Update(input(nil, viewer.Scroll{Rows: -5}))
	test.ExpectEquality(t, v.StartAddress(), uint64(0))

	v.Update(input(nil, viewer.Page{Pages: 1}))
	test.ExpectEquality(t, v.StartAddress(), uint64(testWindow))
}

func TestGotoAddress(t *testing.T) {
	logger.Clear()
	v := loadedViewer(t)

	f := v.Update(input(nil, viewer.GotoAddress{Text: "not an address"}))
	test.ExpectEquality(t, v.StartAddress(), uint64(0))
	test.ExpectEquality(t, len(f.Requests), 0)

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "viewer: viewport: invalid address"))

	f = v.Update(input(nil, viewer.GotoAddress{Text: "0x4000"}))
	test.ExpectEquality(t, v.StartAddress(), uint64(0x4000))
	test.ExpectEquality(t, f.Header.Address, "00004000")
	if diff := cmp.Diff([]events.Message{events.NewGetMemory(0x4000, testWindow)}, f.Requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestGotoMovesCursor(t *testing.T) {
	v := loadedViewer(t)
	v.Update(input(nil, viewer.ClickText{Address: 0x20}))
	f := v.Update(input(nil, viewer.GotoAddress{Text: "1000"}))
	test.ExpectEquality(t, f.Cursor, cursor.Cursor(cursor.Text{Address: 0x1000}))
}

func TestMissingField(t *testing.T) {
	logger.Clear()
	v := newTestViewer(t)
	v.Update(input(nil))

	m := events.Message{
		Kind:   events.SetMemory,
		Fields: []events.Field{{Name: events.FieldAddress, Value: uint64(0)}},
	}
	f := v.Update(input([]events.Message{m}))

	// the message is dropped and the read remains outstanding
	test.ExpectEquality(t, f.Header.Outstanding, true)
	test.ExpectEquality(t, f.Lines[0].Units[0].Accessible, false)

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "events: missing field (data)"))
}

func TestLateResponse(t *testing.T) {
	v := newTestViewer(t)
	v.Update(input(nil))

	// the viewport moves before the first read is answered
	v.Update(input(nil, viewer.GotoAddress{Text: "100"}))

	// a response for the old window does not resolve the new request
	f := v.Update(input([]events.Message{events.NewSetMemory(0, memory(0, testWindow))}))
	test.ExpectEquality(t, f.Header.Outstanding, true)
	test.ExpectEquality(t, f.Lines[0].Units[0].Accessible, false)

	f = v.Update(input([]events.Message{events.NewSetMemory(0x100, memory(0x100, testWindow))}))
	test.ExpectEquality(t, f.Header.Outstanding, false)
	test.ExpectEquality(t, f.Lines[0].Units[0].Text, "00")
	test.ExpectEquality(t, f.Lines[0].Units[1].Text, "01")
}

func TestChangeView(t *testing.T) {
	v := loadedViewer(t)
	v.Update(input(nil, viewer.ClickNumber{Address: 0x10, Digit: 1}))

	f := v.Update(input(nil, viewer.SetSize{Size: numberview.FourBytes}))
	test.ExpectEquality(t, f.Cursor, nil)
	test.ExpectEquality(t, f.UnitChars, 8)
	test.ExpectEquality(t, f.Stride, uint64(testStride*4))

	// units are little endian by default
	test.ExpectEquality(t, f.Lines[0].Units[0].Text, "03020100")

	f = v.Update(input(nil, viewer.SetEndianness{Endianness: numberview.Big}))
	test.ExpectEquality(t, f.Lines[0].Units[0].Text, "00010203")

	// float units cannot be edited
	f = v.Update(input(nil, viewer.SetRepresentation{Representation: numberview.Float}))
	test.ExpectEquality(t, f.Header.View.Representation, numberview.Float)
	f = v.Update(input(nil, viewer.ClickNumber{Address: 0, Digit: 0}))
	test.ExpectEquality(t, f.Cursor, nil)
}

func TestAlignedRows(t *testing.T) {
	v := newTestViewer(t)
	v.Update(input(nil, viewer.SetAlignRows{Align: true}, viewer.GotoAddress{Text: "18"}))
	f := v.Update(input([]events.Message{events.NewSetMemory(0x18, memory(0x18, testWindow-8))}))

	test.ExpectEquality(t, f.Header.AlignRows, true)
	test.ExpectEquality(t, f.Lines[0].Address, uint64(0x10))
	test.ExpectEquality(t, f.Lines[0].Units[7].Accessible, false)
	test.ExpectEquality(t, f.Lines[0].Units[8].Text, "18")
	test.ExpectEquality(t, f.Header.Outstanding, false)
}

func TestPanes(t *testing.T) {
	v := loadedViewer(t)

	f := v.Update(input(nil, viewer.SetPanes{Panes: viewport.Panes{Text: true}}))
	test.ExpectEquality(t, len(f.Lines[0].Units), 0)
	test.ExpectEquality(t, len(f.Lines[0].Bytes), testStride)

	// at least one pane is always visible
	f = v.Update(input(nil, viewer.SetPanes{Panes: viewport.Panes{}}))
	test.ExpectEquality(t, f.Header.Panes, viewport.Panes{Numbers: true})
	test.ExpectEquality(t, len(f.Lines[0].Bytes), 0)
}

func TestRequestStep(t *testing.T) {
	v := newTestViewer(t)
	f := v.Update(input(nil, viewer.RequestStep{}))
	test.ExpectEquality(t, f.Requests[0].Kind, events.Step)
}

func TestGrowAfterShrink(t *testing.T) {
	v := loadedViewer(t)

	// fewer columns need less memory than is loaded
	f := v.Update(input(nil, viewer.SetColumns{Columns: testStride / 2}))
	test.ExpectEquality(t, len(f.Requests), 0)

	// the memory dropped by the smaller window is read again
	f = v.Update(input(nil, viewer.SetColumns{Columns: testStride}))
	if diff := cmp.Diff([]events.Message{events.NewGetMemory(0, testWindow)}, f.Requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, f.Lines[testRows-1].Units[testStride-1].Accessible, false)

	f = v.Update(input([]events.Message{events.NewSetMemory(0, memory(0, testWindow))}))
	test.ExpectEquality(t, len(f.Requests), 0)
	test.ExpectEquality(t, f.Lines[testRows-1].Units[testStride-1].Accessible, true)
}

func TestUnansweredRequest(t *testing.T) {
	v := newTestViewer(t)

	f := v.Update(input(nil))
	test.ExpectEquality(t, len(f.Requests), 1)

	for i := 1; i < viewport.RetryFrames; i++ {
		f = v.Update(input(nil))
		test.ExpectEquality(t, len(f.Requests), 0, i)
	}

	// the request is sent again
	f = v.Update(input(nil))
	if diff := cmp.Diff([]events.Message{events.NewGetMemory(0, testWindow)}, f.Requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestTopOfAddressSpace(t *testing.T) {
	logger.Clear()
	v := newTestViewer(t)

	f := v.Update(input(nil, viewer.GotoAddress{Text: "ffffffffffffff88"}))
	test.DemandEquality(t, len(f.Lines), testRows-1)

	last := f.Lines[len(f.Lines)-1]
	test.ExpectEquality(t, last.Address, uint64(0xfffffffffffffff8))
	test.ExpectEquality(t, last.Units[7].Address, ^uint64(0))
	test.ExpectEquality(t, last.Units[7].Beyond, false)
	test.ExpectEquality(t, last.Units[8].Beyond, true)
	test.ExpectEquality(t, last.Units[8].Address, uint64(0))
	test.ExpectEquality(t, last.Units[8].Accessible, false)
	test.ExpectEquality(t, last.Bytes[7].Beyond, false)
	test.ExpectEquality(t, last.Bytes[8].Beyond, true)
	test.ExpectEquality(t, last.Bytes[8].Char, byte(viewer.Inaccessible))

	// a click at an address that is not in the viewport is ignored
	f = v.Update(input(nil, viewer.ClickNumber{Address: last.Units[8].Address}))
	test.ExpectEquality(t, f.Cursor, nil)
	test.ExpectEquality(t, v.StartAddress(), uint64(0xffffffffffffff88))

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "viewer: click outside of viewport"))

	// the last address can be edited without moving the viewport
	f = v.Update(input(nil, viewer.ClickNumber{Address: ^uint64(0)}))
	test.ExpectEquality(t, f.Cursor, cursor.Cursor(cursor.Number{Address: ^uint64(0)}))
	test.ExpectEquality(t, f.Effect.TakeFocus, true)
	test.ExpectEquality(t, v.StartAddress(), uint64(0xffffffffffffff88))
}

func TestHiddenPaneCursor(t *testing.T) {
	v := loadedViewer(t)

	// hiding the pane removes the cursor in it
	v.Update(input(nil, viewer.ClickText{Address: 0x20}))
	f := v.Update(input(nil, viewer.SetPanes{Panes: viewport.Panes{Numbers: true}}))
	test.ExpectEquality(t, f.Cursor, nil)

	// the cursor does not move into a hidden pane
	f = v.Update(input(nil, viewer.ClickNumber{Address: 0x20}, viewer.Navigate{Key: cursor.KeyTab}))
	test.ExpectEquality(t, f.Cursor, cursor.Cursor(cursor.Number{Address: 0x20}))
	test.ExpectEquality(t, f.Effect.TakeFocus, true)

	f = v.Update(input(nil, viewer.SetPanes{Panes: viewport.Panes{Numbers: true, Text: true}}, viewer.Navigate{Key: cursor.KeyTab}))
	test.ExpectEquality(t, f.Cursor, cursor.Cursor(cursor.Text{Address: 0x20}))
	test.ExpectEquality(t, f.Effect.TakeFocus, true)
}
