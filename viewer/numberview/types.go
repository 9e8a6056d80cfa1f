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

package numberview

// Representation is the numeric format used to display a unit of memory.
type Representation int

// List of valid Representation values. The values double as indexes into
// the slice returned by RepresentationNames().
const (
	Hex Representation = iota
	UnsignedDecimal
	SignedDecimal
	Float
)

var representationNames = []string{"Hex", "Unsigned decimal", "Signed decimal", "Float"}

// RepresentationNames returns the names of all representations. The index
// of each name matches the Representation value.
func RepresentationNames() []string {
	return representationNames
}

// RepresentationFromIndex converts an index into a Representation. Hex is
// returned if the index does not match any representation.
func RepresentationFromIndex(idx int) Representation {
	if idx < 0 || idx >= len(representationNames) {
		return Hex
	}
	return Representation(idx)
}

func (r Representation) String() string {
	if r < 0 || int(r) >= len(representationNames) {
		return "unknown representation"
	}
	return representationNames[r]
}

var floatSizes = []Size{FourBytes, EightBytes}
var allSizes = []Size{OneByte, TwoBytes, FourBytes, EightBytes}

// CanBeOfSize returns true if the representation can be used with the
// size. Floats can only be four or eight bytes.
func (r Representation) CanBeOfSize(sz Size) bool {
	switch r {
	case Float:
		return sz == FourBytes || sz == EightBytes
	default:
		return sz.valid()
	}
}

// AvailableSizes lists the sizes that the representation can be used with.
// The slice should not be modified.
func (r Representation) AvailableSizes() []Size {
	if r == Float {
		return floatSizes
	}
	return allSizes
}

// DefaultSize is the size chosen when changing to this representation and
// the current size is not suitable.
func (r Representation) DefaultSize() Size {
	if r == Float {
		return FourBytes
	}
	return OneByte
}

// Size is the number of bytes in a unit.
type Size int

// List of valid Size values.
const (
	OneByte Size = iota
	TwoBytes
	FourBytes
	EightBytes
)

func (sz Size) valid() bool {
	return sz >= OneByte && sz <= EightBytes
}

// ByteCount returns the number of bytes represented by the Size.
func (sz Size) ByteCount() int {
	switch sz {
	case OneByte:
		return 1
	case TwoBytes:
		return 2
	case FourBytes:
		return 4
	case EightBytes:
		return 8
	}
	panic("numberview: invalid size")
}

func (sz Size) String() string {
	switch sz {
	case OneByte:
		return "1 byte"
	case TwoBytes:
		return "2 bytes"
	case FourBytes:
		return "4 bytes"
	case EightBytes:
		return "8 bytes"
	}
	return "unknown size"
}

// SizeFromByteCount returns the Size for a number of bytes. The boolean is
// false if no Size has that many bytes.
func SizeFromByteCount(n int) (Size, bool) {
	for _, sz := range allSizes {
		if sz.ByteCount() == n {
			return sz, true
		}
	}
	return OneByte, false
}

// Endianness is the byte order of a multi-byte unit.
type Endianness int

// List of valid Endianness values.
const (
	Little Endianness = iota
	Big
)

var endiannessNames = []string{"Little endian", "Big endian"}

// EndiannessNames returns the names of both byte orders, indexed by
// Endianness value.
func EndiannessNames() []string {
	return endiannessNames
}

// EndiannessFromIndex converts an index into an Endianness. Little is
// returned if the index does not match.
func EndiannessFromIndex(idx int) Endianness {
	if idx == int(Big) {
		return Big
	}
	return Little
}

func (e Endianness) String() string {
	if e == Big {
		return endiannessNames[Big]
	}
	return endiannessNames[Little]
}
