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

// Package sdlimgui is the graphical front end of the memory viewer. It uses
// SDL for the window and input, OpenGL 2.1 for rendering and Dear ImGui for
// the widgets.
//
// Each call to Service() is one frame. The frame starts by handing the
// actions recorded while drawing the previous frame to the viewer, along with
// messages received from the debuggee. The resulting viewer.Frame is then
// drawn and requests are sent to the debuggee.
//
// Keyboard shortcuts:
//
//	F5      step the debuggee
//	F9      show the log
//	Ctrl+Q  quit
//
// While a cell is being edited the arrow keys move the cursor, Tab switches
// between the numbers and text panes and Escape ends editing. Page Up and
// Page Down move by a screen.
package sdlimgui
