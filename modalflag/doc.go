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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("GUI", "TERM", "DUMP")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, each with its own flags. The first sub-mode
// added with AddSubModes() is the default mode, used if the first non-flag
// argument is not the name of a sub-mode. Sub-mode comparisons are case
// insensitive.
//
// Once a mode has been decided the flags for that mode are added and the
// remaining arguments are parsed:
//
//	switch md.Mode() {
//	case "DUMP":
//		md.NewMode()
//		rows := md.AddInt("rows", 16, "number of rows to dump")
//		p, err := md.Parse()
//		...
//		dump(*rows, md.RemainingArgs())
//	}
//
// Flags that are not recognised by a mode that has sub-modes are assumed to
// belong to the default sub-mode. For example, if GUI is the default mode
// then the following command lines are equivalent:
//
//	memview -columns 16
//	memview gui -columns 16
//
// Modes can be nested to any depth. The Path() function returns the list of
// modes selected so far.
package modalflag
