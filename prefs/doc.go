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

// Package prefs facilitates the storage of preferential values in the
// Memview system. It is a key/value store with values written as text to a
// file on disk.
//
// Preference values are one of the types defined by this package: Bool,
// String, Int or Generic. Values are added to a Disk instance with the
// Add() function, identified by a key. The key should be in the form
// "package.value". For example:
//
//	viewer.representation
//	viewer.columns
//
// The Set() function of a preference value changes the value in memory. The
// value is not written to disk until the Save() function of the Disk is
// called. Save() preserves entries in the file that belong to other Disk
// instances, so several Disk instances can share a single file.
//
// The SetHookPre() and SetHookPost() functions of the Bool, String and Int
// types allow a function to be called every time the value is set.
//
// Preference values can also be specified on the command line with the
// PushCommandLineStack() function. Values in the current command line group
// are applied when the key is added to a Disk, taking precedence over the
// value on disk.
package prefs
