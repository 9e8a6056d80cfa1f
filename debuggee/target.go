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

package debuggee

import (
	"encoding/binary"

	"github.com/jetsetilly/memview/curated"
)

// Counter is a little-endian number in memory that is incremented every time
// the target is stepped.
type Counter struct {
	Address   uint64
	Size      int
	Increment uint64
}

// Target is the program being debugged.
type Target struct {
	Mem *Memory

	counters []Counter
	steps    int
}

// NewTarget is the preferred method of initialisation for the Target type.
func NewTarget() *Target {
	return &Target{
		Mem: &Memory{},
	}
}

// AddCounter adds a counter to the target. The counter must be in mapped
// memory.
func (t *Target) AddCounter(address uint64, size int, increment uint64) error {
	switch size {
	case 1, 2, 4, 8:
	default:
		return curated.Errorf("debuggee: counter size must be 1, 2, 4 or 8 (not %d)", size)
	}

	for i := 0; i < size; i++ {
		if _, err := t.Mem.Peek(address + uint64(i)); err != nil {
			return curated.Errorf("debuggee: counter: %v", err)
		}
	}

	t.counters = append(t.counters, Counter{
		Address:   address,
		Size:      size,
		Increment: increment,
	})

	return nil
}

// Steps returns the number of times the target has been stepped.
func (t *Target) Steps() int {
	return t.steps
}

// Step the target. Every counter is incremented, wrapping at the limit of its
// size.
func (t *Target) Step() {
	var b [8]byte
	for _, c := range t.counters {
		d := t.Mem.Read(c.Address, uint64(c.Size))
		copy(b[:], d)
		clear(b[len(d):])
		v := binary.LittleEndian.Uint64(b[:]) + c.Increment
		binary.LittleEndian.PutUint64(b[:], v)
		t.Mem.Write(c.Address, b[:c.Size])
	}
	t.steps++
}

// NewDemoTarget creates a target with a typical memory map. There is a gap in
// the memory map between the regions, which the viewer shows as inaccessible
// memory.
func NewDemoTarget() *Target {
	t := NewTarget()

	ram := make([]byte, 0x1000)
	copy(ram[0x40:], "memview: memory viewport and editing engine")
	for i := 0x100; i < 0x200; i++ {
		ram[i] = byte(i)
	}
	binary.LittleEndian.PutUint32(ram[0x200:], 0x3fc00000)
	binary.LittleEndian.PutUint64(ram[0x208:], 0x400921fb54442d18)

	rom := make([]byte, 0x100)
	for i := range rom {
		rom[i] = byte(0xff - i)
	}

	// errors are not possible with this fixed layout
	_ = t.Mem.AddRegion("ram", 0x1000, ram)
	_ = t.Mem.AddRegion("rom", 0x4000, rom)

	_ = t.AddCounter(0x1010, 1, 1)
	_ = t.AddCounter(0x1014, 2, 0x101)
	_ = t.AddCounter(0x1018, 4, 0x01000001)
	_ = t.AddCounter(0x1020, 8, 3)

	return t
}
