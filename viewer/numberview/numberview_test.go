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

package numberview_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/memview/curated"
	"github.com/jetsetilly/memview/test"
	"github.com/jetsetilly/memview/viewer/numberview"
)

var sample = []byte{0x01, 0x82, 0x03, 0xf4, 0x05, 0x06, 0x07, 0x08}

func TestHex(t *testing.T) {
	v := numberview.NewView(numberview.Hex, numberview.OneByte, numberview.Little)
	s, err := v.Format(sample)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "01")

	v = v.WithSize(numberview.TwoBytes)
	s, _ = v.Format(sample)
	test.ExpectEquality(t, s, "8201")

	v = v.WithEndianness(numberview.Big)
	s, _ = v.Format(sample)
	test.ExpectEquality(t, s, "0182")

	v = v.WithSize(numberview.EightBytes)
	s, _ = v.Format(sample)
	test.ExpectEquality(t, s, "018203f405060708")

	v = v.WithEndianness(numberview.Little)
	s, _ = v.Format(sample)
	test.ExpectEquality(t, s, "08070605f4038201")
}

func TestDecimal(t *testing.T) {
	v := numberview.NewView(numberview.UnsignedDecimal, numberview.OneByte, numberview.Little)
	s, _ := v.Format([]byte{0x82})
	test.ExpectEquality(t, s, "130")
	s, _ = v.Format([]byte{0x05})
	test.ExpectEquality(t, s, "  5")

	v = v.ChangeRepresentation(numberview.SignedDecimal)
	s, _ = v.Format([]byte{0x82})
	test.ExpectEquality(t, s, "-126")

	v = v.WithSize(numberview.TwoBytes)
	s, _ = v.Format([]byte{0xff, 0xff})
	test.ExpectEquality(t, s, "    -1")

	v = v.WithSize(numberview.EightBytes)
	s, _ = v.Format([]byte{0, 0, 0, 0, 0, 0, 0, 0x80})
	test.ExpectEquality(t, s, "-9223372036854775808")

	v = numberview.NewView(numberview.UnsignedDecimal, numberview.EightBytes, numberview.Little)
	s, _ = v.Format([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	test.ExpectEquality(t, s, "18446744073709551615")
}

func TestFloat(t *testing.T) {
	v := numberview.NewView(numberview.Float, numberview.FourBytes, numberview.Little)
	b := make([]byte, 4)
	bits := math.Float32bits(1.5)
	b[0], b[1], b[2], b[3] = byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24)

	s, err := v.Format(b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(s), v.MaximumCharsNeeded())
	test.ExpectEquality(t, s, strings.Repeat(" ", 12)+"1.5")
}

func TestFixedWidth(t *testing.T) {
	buffers := [][]byte{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		{0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80},
		{0x01, 0x00, 0x80, 0xff, 0xff, 0xff, 0x7f, 0x80},
		{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0},
	}

	for r := range numberview.RepresentationNames() {
		rep := numberview.RepresentationFromIndex(r)
		for _, sz := range rep.AvailableSizes() {
			for _, end := range []numberview.Endianness{numberview.Little, numberview.Big} {
				v := numberview.NewView(rep, sz, end)
				for _, b := range buffers {
					s, err := v.Format(b)
					test.ExpectSuccess(t, err, v)
					test.ExpectEquality(t, len(s), v.MaximumCharsNeeded(), v, s)
				}
			}
		}
	}
}

func TestChangeRepresentation(t *testing.T) {
	v := numberview.NewView(numberview.Hex, numberview.EightBytes, numberview.Little)
	v = v.ChangeRepresentation(numberview.Float)
	test.ExpectEquality(t, v.Size, numberview.EightBytes)

	v = numberview.NewView(numberview.Hex, numberview.TwoBytes, numberview.Little)
	v = v.ChangeRepresentation(numberview.Float)
	test.ExpectEquality(t, v.Representation, numberview.Float)
	test.ExpectEquality(t, v.Size, numberview.FourBytes)
	test.ExpectSuccess(t, v.Representation.CanBeOfSize(v.Size))

	// the invariant holds for every starting point
	for r := range numberview.RepresentationNames() {
		for _, sz := range []numberview.Size{numberview.OneByte, numberview.TwoBytes, numberview.FourBytes, numberview.EightBytes} {
			for to := range numberview.RepresentationNames() {
				v := numberview.NewView(numberview.RepresentationFromIndex(r), sz, numberview.Big)
				v = v.ChangeRepresentation(numberview.RepresentationFromIndex(to))
				test.ExpectSuccess(t, v.Valid(), v)
			}
		}
	}

	// asking for an unsuitable size results in the default size
	v = numberview.NewView(numberview.Float, numberview.EightBytes, numberview.Little)
	v = v.WithSize(numberview.OneByte)
	test.ExpectEquality(t, v.Size, numberview.FourBytes)
}

func TestUnsupportedFloat(t *testing.T) {
	v := numberview.View{Representation: numberview.Float, Size: numberview.TwoBytes}
	test.ExpectFailure(t, v.Valid())

	s, err := v.Format([]byte{0, 0})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, numberview.UnsupportedSize))
	test.ExpectEquality(t, s, numberview.ErrorText)
	test.ExpectEquality(t, len(s), v.MaximumCharsNeeded())

	_, err = v.Parse("1.0")
	test.ExpectFailure(t, err)
}

func TestShortBuffer(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	v := numberview.NewView(numberview.Hex, numberview.FourBytes, numberview.Little)
	v.Format([]byte{0, 1})
}

func TestParseRoundTrip(t *testing.T) {
	// none of these are NaN as a float in either byte order
	buffers := [][]byte{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0xf0, 0x3f},
		{0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80},
		{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0x40},
		{0xc0, 0x01, 0x02, 0xc1, 0x11, 0x22, 0x33, 0xc4},
	}

	for r := range numberview.RepresentationNames() {
		rep := numberview.RepresentationFromIndex(r)
		for _, sz := range rep.AvailableSizes() {
			for _, end := range []numberview.Endianness{numberview.Little, numberview.Big} {
				v := numberview.NewView(rep, sz, end)
				for _, b := range buffers {
					unit := b[:sz.ByteCount()]
					s, err := v.Format(unit)
					test.DemandSuccess(t, err)
					p, err := v.Parse(s)
					test.ExpectSuccess(t, err, v, s)
					if d := cmp.Diff(unit, p); d != "" {
						t.Errorf("%s: round trip of %q: %s", v, s, d)
					}
				}
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	v := numberview.NewView(numberview.Hex, numberview.OneByte, numberview.Little)
	_, err := v.Parse("1ff")
	test.ExpectSuccess(t, curated.Is(err, numberview.ParseError))

	b, err := v.Parse("0xAB")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b[0], 0xab)

	v = v.ChangeRepresentation(numberview.SignedDecimal)
	_, err = v.Parse("128")
	test.ExpectFailure(t, err)
	b, err = v.Parse(" -128")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b[0], 0x80)
}

func TestParseNibble(t *testing.T) {
	for i, c := range "0123456789abcdef" {
		n, ok := numberview.ParseNibble(c)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, int(n), i)
	}
	n, ok := numberview.ParseNibble('C')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 12)

	_, ok = numberview.ParseNibble('g')
	test.ExpectFailure(t, ok)
	_, ok = numberview.ParseNibble(' ')
	test.ExpectFailure(t, ok)
}

// writing every digit of the formatted text, one nibble at a time, into an
// empty unit reconstructs the original unit.
func TestNibbleRoundTrip(t *testing.T) {
	for _, sz := range []numberview.Size{numberview.OneByte, numberview.TwoBytes, numberview.FourBytes, numberview.EightBytes} {
		for _, end := range []numberview.Endianness{numberview.Little, numberview.Big} {
			v := numberview.NewView(numberview.Hex, sz, end)
			unit := sample[:sz.ByteCount()]
			s, _ := v.Format(unit)

			rebuilt := make([]byte, sz.ByteCount())
			for d, c := range s {
				n, ok := numberview.ParseNibble(c)
				test.DemandSuccess(t, ok)
				_, err := v.SetNibble(rebuilt, d, n)
				test.DemandSuccess(t, err)
			}

			if d := cmp.Diff(unit, rebuilt); d != "" {
				t.Errorf("%s: %s", v, d)
			}
		}
	}
}

func TestNibbleLocation(t *testing.T) {
	v := numberview.NewView(numberview.Hex, numberview.TwoBytes, numberview.Little)

	// "8201" for {0x01, 0x82}. digit zero is the high nibble of the last byte
	off, high, err := v.NibbleLocation(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, off, 1)
	test.ExpectSuccess(t, high)

	off, high, _ = v.NibbleLocation(3)
	test.ExpectEquality(t, off, 0)
	test.ExpectFailure(t, high)

	v = v.WithEndianness(numberview.Big)
	off, high, _ = v.NibbleLocation(0)
	test.ExpectEquality(t, off, 0)
	test.ExpectSuccess(t, high)

	_, _, err = v.NibbleLocation(4)
	test.ExpectSuccess(t, curated.Is(err, numberview.DigitRange))

	v = v.ChangeRepresentation(numberview.UnsignedDecimal)
	_, _, err = v.NibbleLocation(0)
	test.ExpectFailure(t, err)
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, numberview.RepresentationFromIndex(99), numberview.Hex)
	test.ExpectEquality(t, numberview.RepresentationFromIndex(3), numberview.Float)
	test.ExpectEquality(t, numberview.EndiannessFromIndex(1), numberview.Big)
	test.ExpectEquality(t, numberview.TwoBytes.String(), "2 bytes")

	sz, ok := numberview.SizeFromByteCount(4)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, sz, numberview.FourBytes)
	_, ok = numberview.SizeFromByteCount(3)
	test.ExpectFailure(t, ok)
}
