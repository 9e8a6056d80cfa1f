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

import "github.com/jetsetilly/memview/curated"

// ParseNibble interprets a single hex character as a nibble value. The
// character is case-insensitive.
func ParseNibble(c rune) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint8(c - '0'), true
	case c >= 'a' && c <= 'f':
		return uint8(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return uint8(c-'A') + 10, true
	}
	return 0, false
}

// NibbleLocation returns the offset of the byte within a unit that holds the
// hex digit at digit index. Digit zero is the leftmost (most significant)
// digit in the formatted text. The high value is true if the digit is the
// high nibble of that byte.
//
// The result depends on the byte order of the View: the most significant
// byte of a little endian unit is the last byte in memory.
func (v View) NibbleLocation(digit int) (offset int, high bool, err error) {
	if !v.Editable() || digit < 0 || digit >= v.DigitCount() {
		return 0, false, curated.Errorf(DigitRange, digit, v)
	}

	n := v.Size.ByteCount()

	// significance of the byte, zero being the least significant
	sig := (v.DigitCount() - digit - 1) / 2

	if v.Endianness == Big {
		offset = n - 1 - sig
	} else {
		offset = sig
	}

	return offset, digit%2 == 0, nil
}

// SetNibble writes the nibble value into the unit at the position indicated
// by the digit index. The offset of the changed byte is returned.
func (v View) SetNibble(unit []byte, digit int, value uint8) (int, error) {
	offset, high, err := v.NibbleLocation(digit)
	if err != nil {
		return 0, err
	}
	if offset >= len(unit) {
		return 0, curated.Errorf(DigitRange, digit, v)
	}

	value &= 0x0f
	if high {
		unit[offset] = unit[offset]&0x0f | value<<4
	} else {
		unit[offset] = unit[offset]&0xf0 | value
	}

	return offset, nil
}
