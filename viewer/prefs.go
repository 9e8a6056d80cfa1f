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
	"fmt"

	"github.com/jetsetilly/memview/curated"
	"github.com/jetsetilly/memview/paths"
	"github.com/jetsetilly/memview/prefs"
	"github.com/jetsetilly/memview/viewer/numberview"
	"github.com/jetsetilly/memview/viewer/viewport"
)

// Preferences of the viewer. Values can be changed directly but the viewer
// changes them in response to picker actions, so changes made by the host are
// generally not required.
type Preferences struct {
	dsk *prefs.Disk

	// the numberview.View is stored as three separate values. the size is
	// stored as a byte count
	Representation prefs.Int
	Size           prefs.Int
	Endianness     prefs.Int

	// zero means the number of columns is chosen to fit the width of the
	// window
	Columns prefs.Int

	ShowNumbers prefs.Bool
	ShowText    prefs.Bool

	// rows begin at an address that is a multiple of the row stride
	AlignRows prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// newPreferences is the preferred method of initialisation for the
// Preferences type. If the path is empty the preferences are not backed by a
// file and the Load() and Save() functions do nothing.
func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Representation.SetHookPre(func(v prefs.Value) error {
		if i := v.(int); i < 0 || i >= len(numberview.RepresentationNames()) {
			return curated.Errorf("viewer: representation index out of range (%d)", i)
		}
		return nil
	})
	p.Size.SetHookPre(func(v prefs.Value) error {
		if _, ok := numberview.SizeFromByteCount(v.(int)); !ok {
			return curated.Errorf("viewer: unsupported size (%d bytes)", v.(int))
		}
		return nil
	})
	p.Endianness.SetHookPre(func(v prefs.Value) error {
		if i := v.(int); i < 0 || i >= len(numberview.EndiannessNames()) {
			return curated.Errorf("viewer: endianness index out of range (%d)", i)
		}
		return nil
	})
	p.Columns.SetHookPre(func(v prefs.Value) error {
		if c := v.(int); c < 0 || c > viewport.MaxColumns {
			return curated.Errorf("viewer: columns out of range (%d)", c)
		}
		return nil
	})

	p.SetDefaults()

	if pth == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   diskValue
	}{
		{"viewer.representation", &p.Representation},
		{"viewer.size", &p.Size},
		{"viewer.endianness", &p.Endianness},
		{"viewer.columns", &p.Columns},
		{"viewer.shownumbers", &p.ShowNumbers},
		{"viewer.showtext", &p.ShowText},
		{"viewer.alignrows", &p.AlignRows},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// the types in the prefs package that can be added to a prefs.Disk
type diskValue interface {
	fmt.Stringer
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Representation.Set(int(numberview.Hex))
	p.Size.Set(1)
	p.Endianness.Set(int(numberview.Little))
	p.Columns.Set(0)
	p.ShowNumbers.Set(true)
	p.ShowText.Set(true)
	p.AlignRows.Set(false)
}

// Load preferences from disk. A missing prefs file is not an error.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// View returns the numberview.View described by the preferences.
func (p *Preferences) View() numberview.View {
	sz, _ := numberview.SizeFromByteCount(p.Size.Get().(int))
	return numberview.NewView(
		numberview.RepresentationFromIndex(p.Representation.Get().(int)),
		sz,
		numberview.EndiannessFromIndex(p.Endianness.Get().(int)),
	)
}

// setView stores the numberview.View in the preferences.
func (p *Preferences) setView(v numberview.View) {
	p.Representation.Set(int(v.Representation))
	p.Size.Set(v.Size.ByteCount())
	p.Endianness.Set(int(v.Endianness))
}

// Panes returns the visible panes. At least one pane is always visible.
func (p *Preferences) Panes() viewport.Panes {
	return viewport.Panes{
		Numbers: p.ShowNumbers.Get().(bool) || !p.ShowText.Get().(bool),
		Text:    p.ShowText.Get().(bool),
	}
}

// DefaultPrefsPath returns the path to the preferences file in the
// resource directory.
func DefaultPrefsPath() (string, error) {
	return paths.ResourcePath("", prefs.DefaultPrefsFile)
}
