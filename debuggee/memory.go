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
	"fmt"
	"sort"

	"github.com/jetsetilly/memview/curated"
)

// Sentinal error patterns.
const (
	UnmappedAddress   = "debuggee: unmapped address (%#x)"
	OverlappingRegion = "debuggee: region %s overlaps region %s"
	EmptyRegion       = "debuggee: region %s is empty"
)

// Region is a contiguous area of mapped memory.
type Region struct {
	Name string
	Base uint64
	Data []byte
}

func (r *Region) String() string {
	return fmt.Sprintf("%s [%#x-%#x]", r.Name, r.Base, r.last())
}

// last is the address of the last byte in the region.
func (r *Region) last() uint64 {
	return r.Base + uint64(len(r.Data)) - 1
}

// Contains returns true if the address is in the region.
func (r *Region) Contains(address uint64) bool {
	return address >= r.Base && address-r.Base < uint64(len(r.Data))
}

// Memory is a set of non-overlapping regions.
type Memory struct {
	// sorted by base address
	regions []*Region
}

// AddRegion maps data at the base address. The data is not copied.
func (mem *Memory) AddRegion(name string, base uint64, data []byte) error {
	r := &Region{Name: name, Base: base, Data: data}
	if len(data) == 0 {
		return curated.Errorf(EmptyRegion, name)
	}
	if uint64(len(data)-1) > ^uint64(0)-base {
		return curated.Errorf(UnmappedAddress, base+uint64(len(data)))
	}

	for _, o := range mem.regions {
		if r.Base <= o.last() && o.Base <= r.last() {
			return curated.Errorf(OverlappingRegion, r, o)
		}
	}

	mem.regions = append(mem.regions, r)
	sort.Slice(mem.regions, func(i, j int) bool {
		return mem.regions[i].Base < mem.regions[j].Base
	})

	return nil
}

// Regions returns the list of regions in address order.
func (mem *Memory) Regions() []*Region {
	return mem.regions
}

func (mem *Memory) find(address uint64) *Region {
	i := sort.Search(len(mem.regions), func(i int) bool {
		return mem.regions[i].last() >= address
	})
	if i < len(mem.regions) && mem.regions[i].Contains(address) {
		return mem.regions[i]
	}
	return nil
}

// Read returns up to size bytes of memory starting at the address. Reading
// stops at the first unmapped address so the returned slice may be shorter
// than requested. Adjacent regions are read as one.
func (mem *Memory) Read(address uint64, size uint64) []byte {
	var data []byte

	for size > 0 {
		r := mem.find(address)
		if r == nil {
			break
		}

		offset := address - r.Base
		n := min(uint64(len(r.Data))-offset, size)
		data = append(data, r.Data[offset:offset+n]...)
		size -= n

		next := address + n
		if next < address {
			break
		}
		address = next
	}

	return data
}

// Write data to memory at the address. Only mapped bytes are written. The
// number of bytes written is returned.
func (mem *Memory) Write(address uint64, data []byte) int {
	var n int
	for i, v := range data {
		a := address + uint64(i)
		if a < address {
			break
		}
		if mem.Poke(a, v) == nil {
			n++
		}
	}
	return n
}

// Peek returns the value at the address.
func (mem *Memory) Peek(address uint64) (byte, error) {
	r := mem.find(address)
	if r == nil {
		return 0, curated.Errorf(UnmappedAddress, address)
	}
	return r.Data[address-r.Base], nil
}

// Poke changes the value at the address.
func (mem *Memory) Poke(address uint64, value byte) error {
	r := mem.find(address)
	if r == nil {
		return curated.Errorf(UnmappedAddress, address)
	}
	r.Data[address-r.Base] = value
	return nil
}
