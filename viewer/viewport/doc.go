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

// Package viewport decides which part of the address space is on screen.
//
// Geometry is measured in characters. The numbers pane and the text pane are
// laid out with a fixed width font and the NumberCodec gives the exact width
// of every formatted unit, so the number of columns that fit in a window can
// be calculated without measuring any rendered text.
//
// The Pager type implements the paging policy. It decides when a new read of
// memory is needed to fill the viewport and makes sure there is only ever one
// read outstanding.
package viewport
