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

package chunk

import "github.com/jetsetilly/memview/saturate"

// Cell is a single byte of memory as seen through a chunk.
type Cell struct {
	Address    uint64
	Value      byte
	Accessible bool
}

// Line is a row of cells.
type Line struct {
	Address uint64
	Cells   []Cell
}

// Lines returns count rows of stride cells, starting with the row that
// contains start. If aligned is true the first row begins at the nearest
// multiple of stride at or below start and the cells before start are marked
// inaccessible, so that every row begins on a stride boundary.
//
// Rows are not produced for addresses beyond the top of the address space.
// Cells in the last row that would be beyond the top are inaccessible.
func (c *Chunk) Lines(start uint64, stride int, count int, aligned bool) []Line {
	if stride <= 0 || count <= 0 {
		return nil
	}

	first := start
	if aligned {
		first = saturate.AlignDown(start, uint64(stride))
	}

	lines := make([]Line, 0, count)
	row := first
	for r := 0; r < count; r++ {
		l := Line{
			Address: row,
			Cells:   make([]Cell, stride),
		}

		for i := range l.Cells {
			a := row + uint64(i)
			if a < row {
				// past the top of the address space. the remaining cells are
				// left as the zero value, which is inaccessible
				break
			}
			l.Cells[i].Address = a
			if a < start {
				continue
			}
			l.Cells[i].Value, l.Cells[i].Accessible = c.ByteAt(a)
		}

		lines = append(lines, l)

		next := row + uint64(stride)
		if next < row {
			break
		}
		row = next
	}

	return lines
}
