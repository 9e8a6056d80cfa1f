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

// Package numberview describes how a unit of memory is presented to the
// user: the representation (hex, unsigned decimal, signed decimal or float),
// the size of the unit and the byte order.
//
// A View formats a slice of bytes into fixed width text and parses that text
// back into bytes. The width of the formatted text for a View never changes,
// whatever the value, so column layout can be decided from
// MaximumCharsNeeded() without formatting anything.
//
// The relationship between a hex digit in the formatted text and the nibble
// of memory that it represents is also decided here, by NibbleLocation(),
// so that the cursor editing a single digit and the formatting of the unit
// always agree on the byte layout.
package numberview
