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

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jetsetilly/memview/curated"
)

// Sentinal patterns for curated errors raised by the package.
const (
	UnsupportedSize = "numberview: %s cannot be of size %s"
	ParseError      = "numberview: cannot parse %q as %s"
	DigitRange      = "numberview: digit %d out of range for %s"
)

// ErrorText is the text returned by Format() when the View cannot format
// the unit. The text is no wider than MaximumCharsNeeded() for that View.
const ErrorText = "Error"

// View is the configuration for formatting and parsing a unit of memory.
// Values of type View are immutable. The With*() functions return a new View.
//
// The zero value is a one byte, little endian, hex View.
type View struct {
	Representation Representation
	Size           Size
	Endianness     Endianness
}

// NewView creates a View. If the representation cannot be of the requested
// size then the default size for the representation is used instead.
func NewView(rep Representation, sz Size, end Endianness) View {
	v := View{Representation: rep, Size: sz, Endianness: end}
	if !rep.CanBeOfSize(sz) {
		v.Size = rep.DefaultSize()
	}
	return v
}

func (v View) String() string {
	return fmt.Sprintf("%s %s %s", v.Representation, v.Size, strings.ToLower(v.Endianness.String()))
}

// ChangeRepresentation returns a new View with the representation changed.
// The size will be changed to the default size for the new representation if
// the current size is not suitable.
func (v View) ChangeRepresentation(rep Representation) View {
	return NewView(rep, v.Size, v.Endianness)
}

// WithSize returns a new View with the size changed. The default size for
// the representation is used if the requested size is not suitable.
func (v View) WithSize(sz Size) View {
	return NewView(v.Representation, sz, v.Endianness)
}

// WithEndianness returns a new View with the byte order changed.
func (v View) WithEndianness(end Endianness) View {
	return NewView(v.Representation, v.Size, end)
}

// Valid returns false if the View could not have been created through
// NewView(). Format() of an invalid View returns ErrorText.
func (v View) Valid() bool {
	return v.Representation.CanBeOfSize(v.Size)
}

// Editable returns true if the formatted text of the View can be edited one
// hex digit at a time.
func (v View) Editable() bool {
	return v.Representation == Hex && v.Size.valid()
}

// DigitCount is the number of hex digits in an editable unit.
func (v View) DigitCount() int {
	return v.Size.ByteCount() * 2
}

// MaximumCharsNeeded returns the exact width of the text returned by
// Format().
func (v View) MaximumCharsNeeded() int {
	switch v.Representation {
	case Hex:
		return v.Size.ByteCount() * 2
	case UnsignedDecimal:
		switch v.Size {
		case OneByte:
			return 3
		case TwoBytes:
			return 5
		case FourBytes:
			return 10
		case EightBytes:
			return 20
		}
	case SignedDecimal:
		switch v.Size {
		case OneByte:
			return 4
		case TwoBytes:
			return 6
		case FourBytes:
			return 11
		case EightBytes:
			return 20
		}
	case Float:
		switch v.Size {
		case FourBytes:
			// nine significant digits, sign, point and exponent
			// -1.23456789e-38
			return 15
		case EightBytes:
			// -2.2250738585072014e-308
			return 24
		}
	}
	return len(ErrorText)
}

// load the first unit of buffer as an unsigned integer honouring the byte
// order.
func (v View) load(buffer []byte) uint64 {
	n := v.Size.ByteCount()
	if len(buffer) < n {
		panic(fmt.Sprintf("numberview: buffer of %d bytes is too short for %s", len(buffer), v.Size))
	}

	var order binary.ByteOrder = binary.LittleEndian
	if v.Endianness == Big {
		order = binary.BigEndian
	}

	switch n {
	case 1:
		return uint64(buffer[0])
	case 2:
		return uint64(order.Uint16(buffer))
	case 4:
		return uint64(order.Uint32(buffer))
	default:
		return order.Uint64(buffer)
	}
}

// store value as a unit of the View's size and byte order.
func (v View) store(value uint64) []byte {
	n := v.Size.ByteCount()
	b := make([]byte, n)

	var order binary.ByteOrder = binary.LittleEndian
	if v.Endianness == Big {
		order = binary.BigEndian
	}

	switch n {
	case 1:
		b[0] = uint8(value)
	case 2:
		order.PutUint16(b, uint16(value))
	case 4:
		order.PutUint32(b, uint32(value))
	default:
		order.PutUint64(b, value)
	}
	return b
}

// Format the leading unit of the buffer. The returned text is always exactly
// MaximumCharsNeeded() characters wide.
//
// An error is returned, along with ErrorText, if the View is not valid (ie.
// one or two byte floats). It is a programming error to call Format() with a
// buffer shorter than the unit size and the function will panic.
func (v View) Format(buffer []byte) (string, error) {
	if !v.Valid() {
		return ErrorText, curated.Errorf(UnsupportedSize, v.Representation, v.Size)
	}

	w := v.MaximumCharsNeeded()
	val := v.load(buffer)

	switch v.Representation {
	case Hex:
		return fmt.Sprintf("%0*x", w, val), nil
	case UnsignedDecimal:
		return fmt.Sprintf("%*d", w, val), nil
	case SignedDecimal:
		return fmt.Sprintf("%*d", w, v.signed(val)), nil
	case Float:
		var s string
		if v.Size == FourBytes {
			s = strconv.FormatFloat(float64(math.Float32frombits(uint32(val))), 'g', -1, 32)
		} else {
			s = strconv.FormatFloat(math.Float64frombits(val), 'g', -1, 64)
		}
		return fmt.Sprintf("%*s", w, s), nil
	}

	return ErrorText, curated.Errorf(UnsupportedSize, v.Representation, v.Size)
}

// signed interprets the value as a two's complement integer of the View's
// size.
func (v View) signed(val uint64) int64 {
	switch v.Size {
	case OneByte:
		return int64(int8(val))
	case TwoBytes:
		return int64(int16(val))
	case FourBytes:
		return int64(int32(val))
	}
	return int64(val)
}

// Parse is the inverse of Format(). Leading and trailing space is ignored.
// Hex text is case-insensitive and may be prefixed with 0x.
func (v View) Parse(text string) ([]byte, error) {
	if !v.Valid() {
		return nil, curated.Errorf(UnsupportedSize, v.Representation, v.Size)
	}

	s := strings.TrimSpace(text)
	bits := v.Size.ByteCount() * 8

	switch v.Representation {
	case Hex:
		s = strings.TrimPrefix(strings.ToLower(s), "0x")
		n, err := strconv.ParseUint(s, 16, bits)
		if err != nil {
			return nil, curated.Errorf(ParseError, text, v.Representation)
		}
		return v.store(n), nil

	case UnsignedDecimal:
		n, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return nil, curated.Errorf(ParseError, text, v.Representation)
		}
		return v.store(n), nil

	case SignedDecimal:
		n, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return nil, curated.Errorf(ParseError, text, v.Representation)
		}
		return v.store(uint64(n)), nil

	case Float:
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return nil, curated.Errorf(ParseError, text, v.Representation)
		}
		if v.Size == FourBytes {
			return v.store(uint64(math.Float32bits(float32(f)))), nil
		}
		return v.store(math.Float64bits(f)), nil
	}

	return nil, curated.Errorf(ParseError, text, v.Representation)
}
