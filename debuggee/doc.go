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

// Package debuggee is an in-process program that the viewer can attach to.
// It has a memory map made up of one or more regions, some of which contain
// counters that change every time the program is stepped.
//
// The Service type answers the messages defined in the viewer/events
// package. It can be driven synchronously with Handle() or run in its own
// goroutine with Run(), in which case messages are exchanged over channels.
package debuggee
