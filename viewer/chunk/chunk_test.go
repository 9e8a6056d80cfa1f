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

package chunk_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/memview/test"
	"github.com/jetsetilly/memview/viewer/chunk"
)

func makeChunk(address uint64, data ...byte) *chunk.Chunk {
	c := chunk.New(address)
	c.SetAccessible(address, data)
	return c
}

func expectContent(t *testing.T, c *chunk.Chunk, address uint64, data ...byte) {
	t.Helper()
	test.ExpectEquality(t, c.Address(), address)
	if diff := cmp.Diff(data, c.Bytes(), cmp.Comparer(func(a, b []byte) bool {
		return string(a) == string(b)
	})); diff != "" {
		t.Errorf("unexpected chunk content (-want +got):\n%s", diff)
	}
}

func TestByteAt(t *testing.T) {
	c := makeChunk(0x100, 1, 2, 3, 4)

	v, ok := c.ByteAt(0x100)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, byte(1))

	v, ok = c.ByteAt(0x103)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, byte(4))

	_, ok = c.ByteAt(0xff)
	test.ExpectFailure(t, ok)
	_, ok = c.ByteAt(0x104)
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, c.SetByte(0x101, 0x20))
	test.ExpectFailure(t, c.SetByte(0x200, 0x20))
	expectContent(t, c, 0x100, 1, 0x20, 3, 4)
}

func TestUnit(t *testing.T) {
	c := makeChunk(0x100, 1, 2, 3, 4)

	u, ok := c.Unit(0x102, 2)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, len(u), 2)
	test.ExpectEquality(t, u[0], byte(3))

	// unit runs off the end of the chunk
	_, ok = c.Unit(0x103, 2)
	test.ExpectFailure(t, ok)

	// the unit shares memory with the chunk
	u[1] = 0x40
	v, _ := c.ByteAt(0x103)
	test.ExpectEquality(t, v, byte(0x40))
}

func TestTransform(t *testing.T) {
	// window moves forward
	c := makeChunk(0x100, 1, 2, 3, 4)
	c.Transform(0x102, 4)
	expectContent(t, c, 0x102, 3, 4)
	_, ok := c.ByteAt(0x104)
	test.ExpectFailure(t, ok)

	// window moves backward. the chunk starts at the old start address
	c = makeChunk(0x100, 1, 2, 3, 4)
	c.Transform(0xfe, 4)
	expectContent(t, c, 0x100, 1, 2)
	_, ok = c.ByteAt(0xfe)
	test.ExpectFailure(t, ok)

	// no overlap
	c = makeChunk(0x100, 1, 2, 3, 4)
	c.Transform(0x1000, 16)
	test.ExpectEquality(t, c.Address(), uint64(0x1000))
	test.ExpectEquality(t, c.Len(), 0)

	// new window completely inside old window
	c = makeChunk(0x100, 1, 2, 3, 4, 5, 6)
	c.Transform(0x102, 2)
	expectContent(t, c, 0x102, 3, 4)
}

func TestExtendAccessible(t *testing.T) {
	// superset of existing range. existing values are kept
	c := makeChunk(0x102, 3, 4)
	c.ExtendAccessible(0x100, []byte{0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6})
	expectContent(t, c, 0x100, 0xa1, 0xa2, 3, 4, 0xa5, 0xa6)

	// partial overlap at the end of the existing range
	c = makeChunk(0x100, 1, 2, 3, 4)
	c.ExtendAccessible(0x102, []byte{0xb3, 0xb4, 0xb5, 0xb6})
	expectContent(t, c, 0x102, 3, 4, 0xb5, 0xb6)

	// partial overlap at the start of the existing range
	c = makeChunk(0x100, 1, 2, 3, 4)
	c.ExtendAccessible(0xfe, []byte{0xc1, 0xc2, 0xc3, 0xc4})
	expectContent(t, c, 0xfe, 0xc1, 0xc2, 1, 2)

	// no overlap
	c = makeChunk(0x100, 1, 2, 3, 4)
	c.ExtendAccessible(0x200, []byte{0xd1})
	expectContent(t, c, 0x200, 0xd1)

	// empty chunk
	c = chunk.New(0)
	c.ExtendAccessible(0x10, []byte{1, 2})
	expectContent(t, c, 0x10, 1, 2)
}

func TestExtendAfterTransform(t *testing.T) {
	// the scroll sequence of the viewer. the chunk is transformed to the new
	// window and then extended when the debuggee responds
	c := makeChunk(0x100, 1, 2, 3, 4, 5, 6, 7, 8)
	c.Transform(0x104, 8)
	expectContent(t, c, 0x104, 5, 6, 7, 8)

	c.ExtendAccessible(0x104, []byte{0, 0, 0, 0, 9, 10, 11, 12})
	expectContent(t, c, 0x104, 5, 6, 7, 8, 9, 10, 11, 12)
}

func TestTopOfAddressSpace(t *testing.T) {
	top := ^uint64(0)

	// data that would run past the top of the address space is clipped
	c := makeChunk(top-1, 1, 2, 3, 4)
	expectContent(t, c, top-1, 1, 2)

	v, ok := c.ByteAt(top)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, byte(2))

	c.Transform(top, 16)
	expectContent(t, c, top, 2)

	lines := c.Lines(top-3, 4, 4, false)
	test.ExpectEquality(t, len(lines), 1)
	test.ExpectFailure(t, lines[0].Cells[2].Accessible)
	test.ExpectSuccess(t, lines[0].Cells[3].Accessible)
}

func TestSwap(t *testing.T) {
	a := makeChunk(0x100, 1, 2)
	b := makeChunk(0x200, 3)
	chunk.Swap(a, b)
	expectContent(t, a, 0x200, 3)
	expectContent(t, b, 0x100, 1, 2)
}

func TestChanged(t *testing.T) {
	current := makeChunk(0x100, 1, 2, 3, 4)
	previous := makeChunk(0x102, 3, 0xff, 5)

	test.ExpectFailure(t, chunk.Changed(current, previous, 0x100))
	test.ExpectFailure(t, chunk.Changed(current, previous, 0x102))
	test.ExpectSuccess(t, chunk.Changed(current, previous, 0x103))
	test.ExpectFailure(t, chunk.Changed(current, previous, 0x104))

	test.ExpectSuccess(t, chunk.UnitChanged(current, previous, 0x102, 2))
	test.ExpectFailure(t, chunk.UnitChanged(current, previous, 0x100, 3))

	// an empty previous chunk never produces a change
	empty := chunk.New(0)
	for a := uint64(0x100); a < 0x104; a++ {
		test.ExpectFailure(t, chunk.Changed(current, empty, a))
	}
}

func TestLines(t *testing.T) {
	c := makeChunk(0x100, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	lines := c.Lines(0x100, 4, 3, false)
	test.ExpectEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[1].Address, uint64(0x104))
	test.ExpectEquality(t, lines[1].Cells[0].Value, byte(4))
	test.ExpectSuccess(t, lines[2].Cells[1].Accessible)
	test.ExpectFailure(t, lines[2].Cells[2].Accessible)
	test.ExpectEquality(t, lines[2].Cells[2].Address, uint64(0x10a))

	// aligned rows pad the first row with inaccessible cells
	lines = c.Lines(0x102, 4, 2, true)
	test.ExpectEquality(t, lines[0].Address, uint64(0x100))
	test.ExpectFailure(t, lines[0].Cells[0].Accessible)
	test.ExpectFailure(t, lines[0].Cells[1].Accessible)
	test.ExpectSuccess(t, lines[0].Cells[2].Accessible)
	test.ExpectEquality(t, lines[0].Cells[2].Value, byte(2))
	test.ExpectEquality(t, lines[1].Address, uint64(0x104))

	// unaligned rows start at the requested address
	lines = c.Lines(0x102, 4, 1, false)
	test.ExpectEquality(t, lines[0].Address, uint64(0x102))
	test.ExpectEquality(t, lines[0].Cells[0].Value, byte(2))

	test.ExpectEquality(t, len(c.Lines(0x100, 0, 2, false)), 0)
}
