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

// Package cursor is the state machine for editing memory one character at a
// time. The cursor is either nil (no cursor), a Number cursor on a single hex
// digit of a unit in the numbers pane, or a Text cursor on a single byte in
// the text pane.
//
// Every transition returns the new cursor and an Effect. The Effect
// describes the side effects the host must apply to its widgets when the
// cursor is drawn for the first time after the transition. The host applies
// the Effect once and then discards it.
//
// Transitions that write memory also return a Write describing the single
// byte that was changed. The change has already been applied to the Memory
// passed to the transition; the Write is for forwarding to the debuggee.
package cursor
