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

// Package events defines the messages exchanged between the viewer and the
// debuggee.
//
// Messages are a Kind and a list of named fields. The fields of a message
// are not guaranteed to be present, or of the correct type, so reading a
// field can fail. Functions like FindU64() and FindData() return a curated
// error with the MissingField or WrongFieldType pattern in those cases.
//
// Outbound messages (from the viewer) are GetMemory and UpdateMemory.
// Inbound messages (from the debuggee) are SetMemory and Step.
package events
