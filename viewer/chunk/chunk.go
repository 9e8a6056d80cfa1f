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

import (
	"fmt"

	"github.com/jetsetilly/memview/saturate"
)

// Chunk is a contiguous run of memory starting at a known address. The zero
// value is an empty chunk at address zero.
type Chunk struct {
	start uint64
	data  []byte
}

// New returns an empty chunk at the address.
func New(address uint64) *Chunk {
	return &Chunk{start: address}
}

func (c *Chunk) String() string {
	if len(c.data) == 0 {
		return fmt.Sprintf("%#x (empty)", c.start)
	}
	return fmt.Sprintf("%#x-%#x (%d bytes)", c.start, c.last(), len(c.data))
}

// Address of the first byte in the chunk.
func (c *Chunk) Address() uint64 {
	return c.start
}

// Len returns the number of bytes in the chunk.
func (c *Chunk) Len() int {
	return len(c.data)
}

// Bytes returns the chunk's buffer. Changes to the returned slice change the
// contents of the chunk.
func (c *Chunk) Bytes() []byte {
	return c.data
}

// last is the address of the last byte in the chunk. Only meaningful if the
// chunk is not empty.
func (c *Chunk) last() uint64 {
	return c.start + uint64(len(c.data)) - 1
}

// Contains returns true if the address is represented in the chunk.
func (c *Chunk) Contains(address uint64) bool {
	return address >= c.start && address-c.start < uint64(len(c.data))
}

// ByteAt returns the value at the address. The boolean is false if the
// address is inaccessible.
func (c *Chunk) ByteAt(address uint64) (byte, bool) {
	if !c.Contains(address) {
		return 0, false
	}
	return c.data[address-c.start], true
}

// SetByte changes the value at the address. Returns false if the address is
// inaccessible.
func (c *Chunk) SetByte(address uint64, value byte) bool {
	if !c.Contains(address) {
		return false
	}
	c.data[address-c.start] = value
	return true
}

// Unit returns the n bytes starting at address. The slice shares memory with
// the chunk. The boolean is false, and the slice nil, if any of the bytes are
// inaccessible.
func (c *Chunk) Unit(address uint64, n int) ([]byte, bool) {
	if n <= 0 || !c.Contains(address) {
		return nil, false
	}
	offset := address - c.start
	if uint64(len(c.data))-offset < uint64(n) {
		return nil, false
	}
	return c.data[offset : offset+uint64(n)], true
}

// clip the length of data so that it does not run past the top of the
// address space.
func clip(address uint64, data []byte) []byte {
	room := ^uint64(0) - address
	if len(data) > 0 && uint64(len(data)-1) > room {
		return data[:room+1]
	}
	return data
}

// overlap returns the intersection of the chunk and the range starting at
// address of n bytes. The ok value is false if there is no intersection.
func (c *Chunk) overlap(address uint64, n int) (lo uint64, hi uint64, ok bool) {
	if len(c.data) == 0 || n <= 0 {
		return 0, 0, false
	}

	// inclusive end addresses avoid overflow at the top of the address space
	end := saturate.Add(address, uint64(n-1))
	lo = max(c.start, address)
	hi = min(c.last(), end)
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// SetAccessible replaces the content and address of the chunk. The data is
// copied.
func (c *Chunk) SetAccessible(address uint64, data []byte) {
	data = clip(address, data)
	c.start = address
	c.data = append(c.data[:0], data...)
}

// ExtendAccessible moves the chunk to the window described by address and
// the length of data. Bytes that are in both the existing chunk and the new
// window keep their existing values. Bytes in the new window that were not in
// the chunk are taken from data.
//
// When the new window is a superset of the chunk this amounts to appending
// (or prepending) the missing bytes. Existing values are never overwritten.
func (c *Chunk) ExtendAccessible(address uint64, data []byte) {
	data = clip(address, data)
	n := len(data)

	lo, hi, ok := c.overlap(address, n)
	if !ok {
		c.SetAccessible(address, data)
		return
	}

	src := lo - c.start
	srcEnd := hi - c.start + 1
	dst := lo - address
	dstEnd := hi - address + 1

	if cap(c.data) < n {
		// copy before the old buffer is discarded
		d := make([]byte, n)
		copy(d[dst:dstEnd], c.data[src:srcEnd])
		c.data = d
	} else {
		// resize and then shuffle the overlap to its new offset. copy() is
		// safe with overlapping slices
		c.data = c.data[:n]
		copy(c.data[dst:dstEnd], c.data[src:srcEnd])
	}

	copy(c.data[:dst], data[:dst])
	copy(c.data[dstEnd:], data[dstEnd:])
	c.start = address
}

// Transform re-windows the chunk to the n bytes starting at address. Bytes
// in both the old and new windows are preserved at the correct address.
// Everything else is discarded, so the chunk afterwards covers only the
// intersection of the two windows. If there is no intersection the chunk is
// empty and starts at address.
func (c *Chunk) Transform(address uint64, n int) {
	lo, hi, ok := c.overlap(address, n)
	if !ok {
		c.start = address
		c.data = c.data[:0]
		return
	}

	src := lo - c.start
	srcEnd := hi - c.start + 1
	m := copy(c.data, c.data[src:srcEnd])
	c.data = c.data[:m]
	c.start = lo
}

// Swap the contents of two chunks.
func Swap(a *Chunk, b *Chunk) {
	*a, *b = *b, *a
}
