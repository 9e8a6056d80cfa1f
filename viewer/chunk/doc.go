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

// Package chunk implements an owned buffer of memory tagged with the address
// of its first byte. A Chunk has no internal gaps: byte i of the buffer is the
// memory at Address()+i and any address outside that range is not
// represented and is said to be inaccessible.
//
// The viewer keeps two chunks. The current chunk holds the most recent data
// read from the debuggee. The previous chunk holds the data as it was before
// the most recent step of the debuggee and is only used for highlighting
// bytes that have changed. The Changed() and UnitChanged() functions never
// report a change for an address that is inaccessible in either chunk.
//
// Transform() moves a chunk to a new window without discarding the bytes
// that are in both the old and new windows. This allows the viewport to
// scroll immediately, with the newly exposed memory shown as inaccessible
// until the debuggee responds to a new read request.
package chunk
