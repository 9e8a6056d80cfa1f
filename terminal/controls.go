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
	"slices"

	"github.com/jetsetilly/memview/viewer"
	"github.com/jetsetilly/memview/viewer/cursor"
	"github.com/jetsetilly/memview/viewer/numberview"
	"github.com/jetsetilly/memview/viewer/viewport"
)

// controls translates key presses into viewer actions. Keys have a
// different meaning depending on whether a cursor is active and whether the
// goto address prompt is open.
type controls struct {
	editing bool

	prompting bool
	prompt    []rune

	showLog bool
	quit    bool
	suspend bool
}

// translate the keys with reference to the most recent frame.
func (ctl *controls) translate(keys []key, f viewer.Frame) []viewer.Action {
	var actions []viewer.Action

	ctl.editing = f.Cursor != nil

	for _, k := range keys {
		switch k.kind {
		case keyInterrupt:
			ctl.quit = true
			continue
		case keySuspend:
			ctl.suspend = true
			continue
		}

		var a viewer.Action
		switch {
		case ctl.prompting:
			a = ctl.promptKey(k)
		case ctl.editing:
			a = ctl.editKey(k)
		default:
			a = ctl.commandKey(k, f)
		}

		if a != nil {
			actions = append(actions, a)
		}
	}

	return actions
}

func (ctl *controls) promptKey(k key) viewer.Action {
	switch k.kind {
	case keyRune:
		if len(ctl.prompt) < viewport.AddressChars+2 {
			ctl.prompt = append(ctl.prompt, k.r)
		}
	case keyBackspace:
		if len(ctl.prompt) > 0 {
			ctl.prompt = ctl.prompt[:len(ctl.prompt)-1]
		}
	case keyEscape:
		ctl.prompting = false
	case keyEnter:
		ctl.prompting = false
		return viewer.GotoAddress{Text: string(ctl.prompt)}
	}
	return nil
}

var navigation = map[keyKind]cursor.Key{
	keyUp:     cursor.KeyUp,
	keyDown:   cursor.KeyDown,
	keyLeft:   cursor.KeyLeft,
	keyRight:  cursor.KeyRight,
	keyTab:    cursor.KeyTab,
	keyEscape: cursor.KeyEscape,
}

func (ctl *controls) editKey(k key) viewer.Action {
	if nk, ok := navigation[k.kind]; ok {
		if nk == cursor.KeyEscape {
			ctl.editing = false
		}
		return viewer.Navigate{Key: nk}
	}

	switch k.kind {
	case keyRune:
		return viewer.Type{Char: k.r}
	case keyPageUp:
		return viewer.Page{Pages: -1}
	case keyPageDown:
		return viewer.Page{Pages: 1}
	}
	return nil
}

func (ctl *controls) commandKey(k key, f viewer.Frame) viewer.Action {
	switch k.kind {
	case keyUp:
		return viewer.Scroll{Rows: -1}
	case keyDown:
		return viewer.Scroll{Rows: 1}
	case keyPageUp:
		return viewer.Page{Pages: -1}
	case keyPageDown:
		return viewer.Page{Pages: 1}
	case keyRune:
	default:
		return nil
	}

	h := f.Header

	switch k.r {
	case 'q':
		ctl.quit = true
	case 's':
		return viewer.RequestStep{}
	case 'g':
		ctl.prompting = true
		ctl.prompt = []rune(h.Address)
	case 'l':
		ctl.showLog = !ctl.showLog
	case 'n':
		if len(f.Lines) > 0 && len(f.Lines[0].Units) > 0 {
			ctl.editing = h.View.Editable()
			return viewer.ClickNumber{Address: f.Lines[0].Units[0].Address}
		}
	case 't':
		if len(f.Lines) > 0 && len(f.Lines[0].Bytes) > 0 {
			ctl.editing = true
			return viewer.ClickText{Address: f.Lines[0].Bytes[0].Address}
		}
	case 'r':
		n := len(numberview.RepresentationNames())
		return viewer.SetRepresentation{
			Representation: numberview.RepresentationFromIndex((int(h.View.Representation) + 1) % n),
		}
	case 'z':
		sizes := h.View.Representation.AvailableSizes()
		i := slices.Index(sizes, h.View.Size)
		return viewer.SetSize{Size: sizes[(i+1)%len(sizes)]}
	case 'e':
		n := len(numberview.EndiannessNames())
		return viewer.SetEndianness{
			Endianness: numberview.EndiannessFromIndex((int(h.View.Endianness) + 1) % n),
		}
	case 'c':
		return viewer.SetColumns{Columns: nextColumns(h.Columns)}
	case 'p':
		return viewer.SetPanes{Panes: nextPanes(h.Panes)}
	case 'a':
		return viewer.SetAlignRows{Align: !h.AlignRows}
	}

	return nil
}

// nextColumns cycles through the column choices. Zero, meaning fit to
// width, follows the largest choice.
func nextColumns(columns int) int {
	if columns == 0 {
		return viewport.ColumnChoices[0]
	}
	i := slices.Index(viewport.ColumnChoices, columns)
	if i < 0 || i == len(viewport.ColumnChoices)-1 {
		return 0
	}
	return viewport.ColumnChoices[i+1]
}

// nextPanes cycles through both panes, numbers only and text only.
func nextPanes(p viewport.Panes) viewport.Panes {
	switch {
	case p.Numbers && p.Text:
		return viewport.Panes{Numbers: true}
	case p.Numbers:
		return viewport.Panes{Text: true}
	}
	return viewport.Panes{Numbers: true, Text: true}
}
