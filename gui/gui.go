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

// Package gui defines what the front ends of the memory viewer have in
// common: the interface used by the main loop and the Transport between the
// viewer and the debuggee.
package gui

import "io"

// GUI defines the operations that the main loop performs on a front end.
type GUI interface {
	// Service one frame of the front end. Returns false when the user has
	// asked to quit.
	Service() bool

	// Destroy releases the resources held by the front end. Errors are
	// written to output.
	Destroy(output io.Writer)
}
