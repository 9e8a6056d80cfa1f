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
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/memview/gui"
	"github.com/jetsetilly/memview/viewer"
	"github.com/jetsetilly/memview/viewer/cursor"
	"github.com/jetsetilly/memview/viewer/numberview"
	"github.com/jetsetilly/memview/viewer/viewport"
	"github.com/veandco/go-sdl2/sdl"
)

const winMemoryID = "Memory"

// number of rows scrolled by one notch of the mouse wheel
const wheelRows = 3

type winMemory struct {
	img *SdlImgui

	// actions recorded while drawing a frame. handed to the viewer at the
	// start of the next frame
	actions []viewer.Action

	// the area available for rows, measured while drawing the previous frame
	width  float32
	height float32

	// contents of the address box. updated from the frame header unless the
	// address box is being edited
	address        string
	addressEditing bool

	// the cell edit widget was active at the end of the previous frame
	editing bool

	// a read from the debuggee is outstanding
	outstanding bool
}

func newWinMemory(img *SdlImgui) *winMemory {
	return &winMemory{
		img: img,
	}
}

// busy returns true if the window is waiting for memory from the debuggee.
func (win *winMemory) busy() bool {
	return win.outstanding
}

func (win *winMemory) record(a viewer.Action) {
	win.actions = append(win.actions, a)
}

func (win *winMemory) requestStep() {
	win.record(viewer.RequestStep{})
}

// keys that move the cursor while the cell edit widget is active
var navigationKeys = []struct {
	scancode int
	key      cursor.Key
}{
	{sdl.SCANCODE_LEFT, cursor.KeyLeft},
	{sdl.SCANCODE_RIGHT, cursor.KeyRight},
	{sdl.SCANCODE_UP, cursor.KeyUp},
	{sdl.SCANCODE_DOWN, cursor.KeyDown},
	{sdl.SCANCODE_TAB, cursor.KeyTab},
	{sdl.SCANCODE_ESCAPE, cursor.KeyEscape},
}

func (win *winMemory) navigation() {
	if win.editing {
		for _, k := range navigationKeys {
			if imgui.IsKeyPressed(k.scancode) {
				win.record(viewer.Navigate{Key: k.key})
			}
		}
		return
	}

	if imgui.IsAnyItemActive() {
		return
	}

	if imgui.IsKeyPressed(sdl.SCANCODE_PAGEUP) {
		win.record(viewer.Page{Pages: -1})
	}
	if imgui.IsKeyPressed(sdl.SCANCODE_PAGEDOWN) {
		win.record(viewer.Page{Pages: 1})
	}
}

func (win *winMemory) draw() {
	w, h := win.img.plt.windowSize()
	imgui.SetNextWindowPosV(imgui.Vec2{}, imgui.ConditionAlways, imgui.Vec2{})
	imgui.SetNextWindowSize(imgui.Vec2{X: w, Y: h})
	imgui.BeginV(winMemoryID, nil, imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoResize|
		imgui.WindowFlagsNoMove|imgui.WindowFlagsNoCollapse|imgui.WindowFlagsNoBringToFrontOnFocus)
	defer imgui.End()

	win.navigation()

	in := viewer.Input{
		Actions:    win.actions,
		Width:      win.width,
		GlyphWidth: imguiTextWidth(1),
		Height:     win.height,
		LineHeight: imgui.TextLineHeightWithSpacing(),
	}
	win.actions = nil

	f := gui.Exchange(win.img.viewer, win.img.transport, in)
	win.outstanding = f.Header.Outstanding

	win.drawHeader(f.Header)
	imguiSeparator()

	imgui.BeginChildV("##rows", imgui.Vec2{}, false, imgui.WindowFlagsNoScrollbar|imgui.WindowFlagsNoScrollWithMouse)
	avail := imgui.ContentRegionAvail()
	win.width = avail.X
	win.height = avail.Y

	if win.img.wheel != 0 && imgui.IsWindowHovered() {
		win.record(viewer.Scroll{Rows: -int(win.img.wheel) * wheelRows})
	}
	win.img.wheel = 0

	win.drawRows(f)
	imgui.EndChild()
}

func (win *winMemory) drawHeader(h viewer.Header) {
	names := numberview.RepresentationNames()
	imgui.PushItemWidth(imguiComboWidth(names))
	if imgui.BeginCombo("##representation", h.View.Representation.String()) {
		for i, n := range names {
			if imgui.SelectableV(n, i == int(h.View.Representation), 0, imgui.Vec2{}) {
				win.record(viewer.SetRepresentation{Representation: numberview.RepresentationFromIndex(i)})
			}
		}
		imgui.EndCombo()
	}
	imgui.PopItemWidth()

	imgui.SameLine()
	sizes := h.View.Representation.AvailableSizes()
	names = make([]string, 0, len(sizes))
	for _, sz := range sizes {
		names = append(names, sz.String())
	}
	imgui.PushItemWidth(imguiComboWidth(names))
	if imgui.BeginCombo("##size", h.View.Size.String()) {
		for i, sz := range sizes {
			if imgui.SelectableV(names[i], sz == h.View.Size, 0, imgui.Vec2{}) {
				win.record(viewer.SetSize{Size: sz})
			}
		}
		imgui.EndCombo()
	}
	imgui.PopItemWidth()

	imgui.SameLine()
	names = numberview.EndiannessNames()
	imgui.PushItemWidth(imguiComboWidth(names))
	if imgui.BeginCombo("##endianness", h.View.Endianness.String()) {
		for i, n := range names {
			if imgui.SelectableV(n, i == int(h.View.Endianness), 0, imgui.Vec2{}) {
				win.record(viewer.SetEndianness{Endianness: numberview.EndiannessFromIndex(i)})
			}
		}
		imgui.EndCombo()
	}
	imgui.PopItemWidth()

	imgui.SameLine()
	names = []string{columnsLabel(0)}
	for _, c := range viewport.ColumnChoices {
		names = append(names, columnsLabel(c))
	}
	imgui.PushItemWidth(imguiComboWidth(names))
	if imgui.BeginCombo("##columns", columnsLabel(h.Columns)) {
		if imgui.SelectableV(names[0], h.Columns == 0, 0, imgui.Vec2{}) {
			win.record(viewer.SetColumns{Columns: 0})
		}
		for i, c := range viewport.ColumnChoices {
			if imgui.SelectableV(names[i+1], h.Columns == c, 0, imgui.Vec2{}) {
				win.record(viewer.SetColumns{Columns: c})
			}
		}
		imgui.EndCombo()
	}
	imgui.PopItemWidth()

	imgui.SameLine()
	numbers := h.Panes.Numbers
	if imgui.Checkbox("Numbers", &numbers) {
		win.record(viewer.SetPanes{Panes: viewport.Panes{Numbers: numbers, Text: h.Panes.Text}})
	}
	imgui.SameLine()
	text := h.Panes.Text
	if imgui.Checkbox("Text", &text) {
		win.record(viewer.SetPanes{Panes: viewport.Panes{Numbers: h.Panes.Numbers, Text: text}})
	}
	imgui.SameLine()
	align := h.AlignRows
	if imgui.Checkbox("Align", &align) {
		win.record(viewer.SetAlignRows{Align: align})
	}

	imguiLabel("Address")
	if !win.addressEditing {
		win.address = h.Address
	}
	imgui.PushItemWidth(imguiTextWidth(18) + imgui.CurrentStyle().FramePadding().X*2)
	if imguiHexInput("##address", 18, &win.address) {
		win.record(viewer.GotoAddress{Text: win.address})
	}
	win.addressEditing = imgui.IsItemActive()
	imgui.PopItemWidth()

	imgui.SameLine()
	if imgui.Button("Step") {
		win.requestStep()
	}
	imguiTooltip("F5")

	imgui.SameLine()
	imgui.Checkbox("Log", &win.img.log.open)
	imguiTooltip("F9")

	if h.Outstanding {
		imgui.SameLine()
		imgui.AlignTextToFramePadding()
		imguiColorText("reading", win.img.cols.Outstanding)
	}
}

func columnsLabel(c int) string {
	switch c {
	case 0:
		return "Fit width"
	case 1:
		return "1 column"
	}
	return fmt.Sprintf("%d columns", c)
}

func (win *winMemory) drawRows(f viewer.Frame) {
	glyph := imguiTextWidth(1)

	spacing := imgui.CurrentStyle().ItemSpacing()
	spacing.X = 0
	imgui.PushStyleVarVec2(imgui.StyleVarItemSpacing, spacing)
	defer imgui.PopStyleVar()

	editing := false

	var clipper imgui.ListClipper
	clipper.Begin(len(f.Lines))
	for clipper.Step() {
		for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
			l := f.Lines[i]

			imguiColorText(l.AddressText+":", win.img.cols.Address)

			for _, u := range l.Units {
				imgui.SameLineV(0, glyph)
				editing = win.drawUnit(f, u, glyph) || editing
			}

			if len(l.Bytes) > 0 {
				if len(l.Units) > 0 {
					imgui.SameLineV(0, glyph*2)
				} else {
					imgui.SameLineV(0, glyph)
				}
				for j, b := range l.Bytes {
					if j > 0 {
						imgui.SameLineV(0, 0)
					}
					editing = win.drawByte(f, b) || editing
				}
			}
		}
	}

	win.editing = editing
}

func (win *winMemory) valueColor(accessible bool, changed bool) imgui.Vec4 {
	if !accessible {
		return win.img.cols.Inaccessible
	}
	if changed {
		return win.img.cols.ValueDiff
	}
	return win.img.cols.Value
}

// drawUnit returns true if the cell edit widget is drawn and is active.
func (win *winMemory) drawUnit(f viewer.Frame, u viewer.Unit, glyph float32) bool {
	if c, ok := f.Cursor.(cursor.Number); ok && u.HasCursor(c) {
		return win.drawEdit(u.Text, c.Digit, fmt.Sprintf("##n%x", u.Address), f.Effect,
			win.valueColor(u.Accessible, u.Changed))
	}

	imguiColorText(u.Text, win.valueColor(u.Accessible, u.Changed))
	if u.Beyond {
		return false
	}
	if imgui.IsItemClicked() {
		digit := int((imgui.MousePos().X - imgui.ItemRectMin().X) / glyph)
		win.record(viewer.ClickNumber{Address: u.Address, Digit: digit})
	}
	imguiTooltip(viewport.FormatAddress(u.Address))

	return false
}

// drawByte returns true if the cell edit widget is drawn and is active.
func (win *winMemory) drawByte(f viewer.Frame, b viewer.Byte) bool {
	s := string(rune(b.Char))

	if b.HasCursor(f.Cursor) {
		return win.drawEdit(s, 0, fmt.Sprintf("##t%x", b.Address), f.Effect,
			win.valueColor(b.Accessible, b.Changed))
	}

	imguiColorText(s, win.valueColor(b.Accessible, b.Changed))
	if imgui.IsItemClicked() && !b.Beyond {
		win.record(viewer.ClickText{Address: b.Address})
	}

	return false
}

// drawEdit draws the text of a cell with the character at pos replaced by
// the cell edit widget. returns true if the widget is active.
func (win *winMemory) drawEdit(text string, pos int, id string, effect cursor.Effect, col imgui.Vec4) bool {
	pos = min(max(pos, 0), len(text)-1)

	if pos > 0 {
		imguiColorText(text[:pos], col)
		imgui.SameLineV(0, 0)
	}

	imgui.PushStyleColor(imgui.StyleColorFrameBg, win.img.cols.EditCell)
	imgui.PushStyleColor(imgui.StyleColorText, col)
	active := imguiCellInput(id, text[pos:pos+1], effect.TakeFocus, effect.CaretToStart, func(r rune) {
		win.record(viewer.Type{Char: r})
	})
	imgui.PopStyleColorV(2)

	if pos+1 < len(text) {
		imgui.SameLineV(0, 0)
		imguiColorText(text[pos+1:], col)
	}

	return active
}
