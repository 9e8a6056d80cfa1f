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

// Changed returns true if the byte at address differs between the two
// chunks. An address that is inaccessible in either chunk is never changed.
func Changed(current *Chunk, previous *Chunk, address uint64) bool {
	a, ok := current.ByteAt(address)
	if !ok {
		return false
	}
	b, ok := previous.ByteAt(address)
	if !ok {
		return false
	}
	return a != b
}

// UnitChanged returns true if any of the n bytes starting at address have
// changed.
func UnitChanged(current *Chunk, previous *Chunk, address uint64, n int) bool {
	for i := 0; i < n; i++ {
		a := address + uint64(i)
		if a < address {
			// wrapped past the top of the address space
			return false
		}
		if Changed(current, previous, a) {
			return true
		}
	}
	return false
}
