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
	"fmt"
	"io"

	"github.com/jetsetilly/memview/gui"
	"github.com/jetsetilly/memview/viewer"
)

// the width given to the viewer when dumping memory. only used if the
// number of columns has not been chosen
const dumpWidth = 80

// Dump writes the number of rows of memory from the viewer's start address
// to the output.
//
// The transport must respond to requests in the same frame that they are
// pushed (gui.Loopback for example). If memory is still outstanding after the
// second frame then an error is returned.
func Dump(output io.Writer, v *viewer.Viewer, t gui.Transport, rows int) error {
	// the viewer leaves one row of the height unused
	in := viewer.Input{
		Width:      dumpWidth,
		GlyphWidth: 1,
		Height:     float32(rows + 1),
		LineHeight: 1,
	}

	// the first frame requests memory and the second frame shows the memory
	_ = gui.Exchange(v, t, in)
	f := gui.Exchange(v, t, in)
	if f.Header.Outstanding {
		return fmt.Errorf("terminal: memory not read")
	}

	return WriteLines(output, f, Plain)
}
