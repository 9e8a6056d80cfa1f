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

// Package logger is the central log for the application. Entries are kept in
// memory, up to a maximum number, and can be written out to any io.Writer on
// demand. The GUI and terminal front-ends make use of this to show recent
// entries to the user.
//
// Each entry is made up of a tag and a detail string. The tag is usually the
// name of the package or subsystem that is making the entry:
//
//	logger.Logf(logger.Allow, "viewer", "dropped response: %v", err)
//
// Adjacent entries with the same tag and detail are folded into a single
// entry with a repeat count.
//
// The first argument to Log() and Logf() is a Permission. An entry is only
// made if the Permission allows it. logger.Allow always allows logging.
package logger
