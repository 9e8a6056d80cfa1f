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

// Package viewer is the memory viewport and editing engine. It turns memory
// read from a debuggee into a scrollable, column aligned view of the address
// space, highlights memory that has changed since the debuggee was last
// stepped and allows memory to be edited one character at a time.
//
// The engine is driven by the host one frame at a time with the Update()
// function. The Input to Update() contains the messages received from the
// debuggee since the previous frame and the Actions of the user that were
// recorded while the previous Frame was being drawn. The returned Frame
// contains everything required to draw the viewer and the messages that
// should be sent to the debuggee.
//
// The engine performs no I/O and has no goroutines. Messages to the debuggee
// are fire-and-forget and the results arrive as messages in the Input of a
// later frame.
//
// Preferences for the viewer are stored in the "viewer" namespace of the
// preferences file.
package viewer
