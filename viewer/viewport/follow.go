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

package viewport

import "github.com/jetsetilly/memview/saturate"

// FollowCursor returns the start address of the viewport adjusted so that
// the address is visible. The viewport is described by its start address, the
// number of bytes in each row and the number of rows.
//
// The start address only ever moves by whole rows. If the address is already
// visible the start address is returned unchanged.
func FollowCursor(start uint64, stride uint64, rows int, address uint64) uint64 {
	if stride == 0 || rows <= 0 {
		return start
	}

	if address < start {
		back := (start - address + stride - 1) / stride
		return saturate.Sub(start, saturate.Mul(back, stride))
	}

	// the last visible byte. inclusive so that a window reaching the top of
	// the address space covers the last address
	last := saturate.Add(start, saturate.Mul(uint64(rows), stride)-1)
	if address > last {
		fwd := (address-last-1)/stride + 1
		return saturate.Add(start, saturate.Mul(fwd, stride))
	}

	return start
}

// Scroll moves the start address by a number of rows. Negative values move
// the start address towards zero.
func Scroll(start uint64, stride uint64, rows int) uint64 {
	if rows < 0 {
		return saturate.Sub(start, saturate.Mul(uint64(-rows), stride))
	}
	return saturate.Add(start, saturate.Mul(uint64(rows), stride))
}

// Size returns the number of bytes in a viewport of the stride and number of
// rows.
func Size(stride uint64, rows int) uint64 {
	return saturate.Mul(stride, uint64(max(rows, 0)))
}
