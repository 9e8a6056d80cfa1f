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

package viewer

import (
	"strings"

	"github.com/jetsetilly/memview/curated"
	"github.com/jetsetilly/memview/logger"
	"github.com/jetsetilly/memview/prefs"
	"github.com/jetsetilly/memview/saturate"
	"github.com/jetsetilly/memview/viewer/chunk"
	"github.com/jetsetilly/memview/viewer/cursor"
	"github.com/jetsetilly/memview/viewer/events"
	"github.com/jetsetilly/memview/viewer/numberview"
	"github.com/jetsetilly/memview/viewer/viewport"
)

// Viewer is the memory viewport and editing engine.
type Viewer struct {
	Prefs *Preferences

	// memory as most recently read from the debuggee and memory as it was
	// before the most recent step of the debuggee
	current  *chunk.Chunk
	previous *chunk.Chunk

	// the address of the first visible byte
	start uint64

	cursor cursor.Cursor

	// the effect of the most recent cursor transitions. handed to the host in
	// the next frame and then forgotten
	effect cursor.Effect

	pager viewport.Pager
}

// NewViewer is the preferred method of initialisation for the Viewer type.
// Preferences are loaded from the prefs file at the path. If the path is
// empty then preferences are not loaded or saved.
func NewViewer(prefsPath string) (*Viewer, error) {
	v := &Viewer{
		current:  chunk.New(0),
		previous: chunk.New(0),
	}

	var err error
	v.Prefs, err = newPreferences(prefsPath)
	if err != nil {
		return nil, curated.Errorf("viewer: %v", err)
	}

	if v.Prefs.dsk != nil {
		start := prefs.NewGeneric(
			func(s string) error {
				a, err := viewport.ParseAddress(s)
				if err != nil {
					return err
				}
				v.start = a
				return nil
			},
			func() string {
				return viewport.FormatAddress(v.start)
			},
		)
		if err := v.Prefs.dsk.Add("viewer.startaddress", start); err != nil {
			return nil, curated.Errorf("viewer: %v", err)
		}
	}

	if err := v.Prefs.Load(); err != nil {
		return nil, curated.Errorf("viewer: %v", err)
	}

	return v, nil
}

// StartAddress returns the address of the first visible byte.
func (v *Viewer) StartAddress() uint64 {
	return v.start
}

// SetStartAddress moves the viewport to the address. An active cursor
// follows the jump.
func (v *Viewer) SetStartAddress(address uint64) {
	v.start = address
	v.transition(cursor.Rebase(v.cursor, address))
}

// Cursor returns the active cursor.
func (v *Viewer) Cursor() cursor.Cursor {
	return v.cursor
}

func (v *Viewer) transition(c cursor.Cursor, e cursor.Effect) {
	v.cursor = c
	v.effect.TakeFocus = v.effect.TakeFocus || e.TakeFocus
	v.effect.CaretToStart = v.effect.CaretToStart || e.CaretToStart
}

// geometry of the viewer for a single frame.
type geometry struct {
	view      numberview.View
	panes     viewport.Panes
	align     bool
	columns   int
	rows      int
	stride    uint64
	addrChars int

	// the address of the first row. this is the same as the start address
	// unless rows are aligned
	base uint64
}

func (v *Viewer) geometry(in Input) geometry {
	g := geometry{
		view:      v.Prefs.View(),
		panes:     v.Prefs.Panes(),
		align:     v.Prefs.AlignRows.Get().(bool),
		columns:   v.Prefs.Columns.Get().(int),
		addrChars: viewport.AddressWidth(v.start),
	}

	if g.columns == 0 {
		g.columns = viewport.ColumnsFromWidth(in.Width, in.GlyphWidth, g.view, g.panes, g.addrChars)
	}
	g.rows = viewport.RowsFromHeight(in.LineHeight, in.Height)
	g.stride = viewport.Stride(g.view, g.columns)

	g.base = v.start
	if g.align {
		g.base = saturate.AlignDown(v.start, g.stride)
	}

	return g
}

func (g geometry) layout() cursor.Layout {
	return cursor.Layout{
		View:   g.view,
		Base:   g.base,
		Stride: g.stride,
	}
}

// visible returns true if the address is in one of the rows of the frame.
func (g geometry) visible(address uint64) bool {
	return address >= g.base && address-g.base < viewport.Size(g.stride, g.rows)
}

// Update the viewer for a new frame.
func (v *Viewer) Update(in Input) Frame {
	var f Frame

	v.handleEvents(in.Events)

	// actions were recorded against the geometry of the previous frame
	g := v.geometry(in)
	moved := false
	for _, a := range in.Actions {
		before := v.cursor
		req := v.handleAction(a, g)
		moved = moved || cursorMoved(before, v.cursor)
		if req != nil {
			f.Requests = append(f.Requests, *req)
		}
		g = v.geometry(in)
	}

	// keep the cursor visible. the viewport only moves if the cursor has
	// moved this frame
	if moved && v.cursor != nil {
		base := viewport.FollowCursor(g.base, g.stride, g.rows, v.cursor.At())
		if base != g.base {
			v.start = base
			g = v.geometry(in)
		}
	}

	// the window of memory that is needed for the frame. padding before the
	// start address in an aligned row is never read
	size := min(saturate.Sub(viewport.Size(g.stride, g.rows), v.start-g.base), maxWindow)
	v.current.Transform(v.start, int(size))
	v.previous.Transform(v.start, int(size))

	if req, ok := v.pager.Page(v.start, size, v.current); ok {
		f.Requests = append(f.Requests, events.NewGetMemory(req.Address, req.Size))
	}

	f.Columns = g.columns
	f.Rows = g.rows
	f.Stride = g.stride
	f.UnitChars = g.view.MaximumCharsNeeded()
	f.Lines, f.AddressChars = v.lines(g)

	_, outstanding := v.pager.Outstanding()
	f.Header = Header{
		View:        g.view,
		Columns:     v.Prefs.Columns.Get().(int),
		Panes:       g.panes,
		AlignRows:   g.align,
		Address:     viewport.FormatAddress(v.start),
		Outstanding: outstanding,
	}

	// the effect waits for a frame in which the cursor is drawn
	f.Cursor = v.cursor
	if v.cursor == nil {
		v.effect = cursor.Effect{}
	} else if cursorDrawn(f.Lines, v.cursor) {
		f.Effect = v.effect
		v.effect = cursor.Effect{}
	}

	return f
}

// the largest window of memory. rows * columns * unit size cannot exceed
// this value with the limits imposed by the viewport package but the cast to
// int requires a limit
const maxWindow uint64 = 1 << 30

func (v *Viewer) handleEvents(msgs []events.Message) {
	for _, m := range msgs {
		switch m.Kind {
		case events.SetMemory:
			address, data, err := m.AddressData()
			if err != nil {
				logger.Logf(logger.Allow, "viewer", "dropped %s: %v", m.Kind, err)
				continue
			}
			v.current.SetAccessible(address, data)
			v.previous.ExtendAccessible(address, data)
			v.pager.Resolve(address, v.current.Len())

		case events.Step:
			// the previous chunk becomes a snapshot of memory before the step.
			// the current chunk keeps showing the same memory until the
			// response to the re-read arrives
			chunk.Swap(v.current, v.previous)
			v.current.SetAccessible(v.previous.Address(), v.previous.Bytes())
			v.pager.Invalidate()

		default:
			logger.Logf(logger.Allow, "viewer", "unexpected message: %v", m)
		}
	}
}

// hidden returns true if the cursor is in a pane that is not visible.
func hidden(c cursor.Cursor, panes viewport.Panes) bool {
	switch c.(type) {
	case cursor.Number:
		return !panes.Numbers
	case cursor.Text:
		return !panes.Text
	}
	return false
}

func cursorDrawn(lines []Line, c cursor.Cursor) bool {
	for _, l := range lines {
		for _, u := range l.Units {
			if u.HasCursor(c) {
				return true
			}
		}
		for _, b := range l.Bytes {
			if b.HasCursor(c) {
				return true
			}
		}
	}
	return false
}

func cursorMoved(before cursor.Cursor, after cursor.Cursor) bool {
	if after == nil {
		return false
	}
	return before == nil || before.At() != after.At()
}

// handleAction applies the action to the viewer. The returned message, if
// any, should be sent to the debuggee.
func (v *Viewer) handleAction(a Action, g geometry) *events.Message {
	switch a := a.(type) {
	case ClickNumber:
		if !g.visible(a.Address) {
			logger.Logf(logger.Allow, "viewer", "click outside of viewport: %#x", a.Address)
			return nil
		}
		v.transition(cursor.ClickNumber(g.layout(), a.Address, a.Digit))
		return nil

	case ClickText:
		if !g.visible(a.Address) {
			logger.Logf(logger.Allow, "viewer", "click outside of viewport: %#x", a.Address)
			return nil
		}
		v.transition(cursor.ClickText(a.Address))
		return nil

	case Navigate:
		c, e := cursor.Navigate(v.cursor, g.layout(), a.Key)
		if hidden(c, g.panes) {
			return nil
		}
		v.transition(c, e)
		return nil

	case Type:
		c, e, w := cursor.Type(v.cursor, g.layout(), v.current, a.Char)
		v.transition(c, e)
		if w == nil {
			return nil
		}
		m := events.NewUpdateMemory(w.Address, w.Data)
		return &m

	case Scroll:
		v.start = viewport.Scroll(v.start, g.stride, a.Rows)

	case Page:
		v.start = viewport.Scroll(v.start, g.stride, a.Pages*g.rows)

	case SetRepresentation:
		v.changeView(g.view.ChangeRepresentation(a.Representation))

	case SetSize:
		v.changeView(g.view.WithSize(a.Size))

	case SetEndianness:
		v.changeView(g.view.WithEndianness(a.Endianness))

	case SetColumns:
		if err := v.Prefs.Columns.Set(a.Columns); err != nil {
			logger.Log(logger.Allow, "viewer", err.Error())
		}

	case SetPanes:
		v.Prefs.ShowNumbers.Set(a.Panes.Numbers || !a.Panes.Text)
		v.Prefs.ShowText.Set(a.Panes.Text)

		if hidden(v.cursor, v.Prefs.Panes()) {
			v.cursor = nil
		}

	case SetAlignRows:
		v.Prefs.AlignRows.Set(a.Align)

	case GotoAddress:
		address, err := viewport.ParseAddress(a.Text)
		if err != nil {
			logger.Log(logger.Allow, "viewer", err.Error())
			return nil
		}
		v.SetStartAddress(address)

	case RequestStep:
		m := events.NewStep()
		return &m

	default:
		logger.Logf(logger.Allow, "viewer", "unhandled action: %T", a)
	}

	return nil
}

func (v *Viewer) changeView(view numberview.View) {
	v.cursor = cursor.ChangeView(v.cursor, v.Prefs.View(), view)
	v.Prefs.setView(view)
}

// lines returns the lines of the frame and the width of the widest address.
// every address text is padded to that width.
func (v *Viewer) lines(g geometry) ([]Line, int) {
	n := g.view.Size.ByteCount()
	unitWidth := g.view.MaximumCharsNeeded()
	unavailable := strings.Repeat(string(Inaccessible), unitWidth)
	buf := make([]byte, n)

	lines := make([]Line, 0, g.rows)
	for _, l := range v.current.Lines(v.start, int(g.stride), g.rows, g.align) {
		ln := Line{
			Address:     l.Address,
			AddressText: viewport.FormatAddress(l.Address),
		}

		if g.panes.Numbers {
			ln.Units = make([]Unit, 0, g.columns)
			for c := 0; c < g.columns; c++ {
				cells := l.Cells[c*n : (c+1)*n]

				// units past the top of the address space have no address
				a := l.Address + uint64(c*n)
				if a < l.Address {
					ln.Units = append(ln.Units, Unit{Text: unavailable, Beyond: true})
					continue
				}

				u := Unit{
					Address:    a,
					Text:       unavailable,
					Accessible: true,
				}
				for i := range cells {
					u.Accessible = u.Accessible && cells[i].Accessible
					buf[i] = cells[i].Value
				}
				if u.Accessible {
					var err error
					u.Text, err = g.view.Format(buf)
					if err != nil {
						u.Text = numberview.ErrorText
					}
					u.Changed = chunk.UnitChanged(v.current, v.previous, u.Address, n)
				}
				ln.Units = append(ln.Units, u)
			}
		}

		if g.panes.Text {
			ln.Bytes = make([]Byte, len(l.Cells))
			for i, c := range l.Cells {
				b := &ln.Bytes[i]
				b.Address = c.Address
				b.Accessible = c.Accessible
				b.Beyond = l.Address+uint64(i) < l.Address
				switch {
				case !c.Accessible:
					b.Char = Inaccessible
				case cursor.Printable(c.Value):
					b.Char = c.Value
					b.Changed = chunk.Changed(v.current, v.previous, b.Address)
				default:
					b.Char = Unprintable
					b.Changed = chunk.Changed(v.current, v.previous, b.Address)
				}
			}
		}

		lines = append(lines, ln)
	}

	width := g.addrChars
	for _, ln := range lines {
		width = max(width, len(ln.AddressText))
	}
	for i := range lines {
		lines[i].AddressText = strings.Repeat(" ", width-len(lines[i].AddressText)) + lines[i].AddressText
	}

	return lines, width
}
