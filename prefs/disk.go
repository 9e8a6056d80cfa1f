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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/memview/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates the key from the value on each line of the preferences file.
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	DuplicateKey  = "prefs: key (%s) already added"
	InvalidLine   = "prefs: invalid line in prefs file (%s)"
	NotAPrefsFile = "prefs: not a prefs file (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// values taken from the command line. these take precedence over values
	// in the prefs file and are never saved
	overrides map[string]Value
}

func (dsk Disk) String() string {
	keys := dsk.sortedKeys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]Value),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the preferences file.
//
// If the current command line group contains a value for the key the value
// is applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
		dsk.overrides[key] = v
	}

	return nil
}

// read all entries in the prefs file.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	entries := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// the first line must be the warning boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(NotAPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		l := scanner.Text()
		if strings.TrimSpace(l) == "" {
			continue
		}

		kv := strings.SplitN(l, keySep, 2)
		if len(kv) != 2 {
			return nil, curated.Errorf(InvalidLine, l)
		}

		entries[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return entries, nil
}

// Save current preference values to disk. Entries in the prefs file that
// were not added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		entries = make(map[string]string)
	}

	for k, p := range dsk.entries {
		if _, ok := dsk.overrides[k]; ok {
			continue
		}
		entries[k] = p.String()
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, entries[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf("prefs: %v", err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Keys in the prefs file that have not
// been added to the Disk instance are ignored.
//
// The returned error will have the NoPrefsFile pattern if the file does not
// exist. This is often not a serious error and callers may want to ignore
// it.
func (dsk *Disk) Load() error {
	entries, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range entries {
		p, ok := dsk.entries[k]
		if !ok {
			continue
		}
		if _, ok := dsk.overrides[k]; ok {
			continue
		}
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %s: %v", k, err)
		}
	}

	return nil
}

// Reset all preference values to their reset value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.sortedKeys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %s: %v", k, err)
		}
	}
	return nil
}
