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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as Errorf() in
// the fmt package, and returns an error.
//
// The pattern is what differentiates one curated error from another. The
// Is() function checks whether an error was created with a specific
// pattern:
//
//	e := curated.Errorf(events.MissingField, "address")
//
//	if curated.Is(e, events.MissingField) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs somewhere
// in the error chain:
//
//	f := curated.Errorf("viewer: %v", e)
//
//	if curated.Has(f, events.MissingField) {
//		fmt.Println("true")
//	}
//
// Calling Is(f, events.MissingField) in the above example would return
// false because the pattern is wrapped inside "viewer: %v".
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Uncurated errors can be thought of as 'unexpected' errors.
//
// The Error() implementation normalises the error chain by removing
// duplicate adjacent parts. Parts are the sub-strings separated by ': '.
// This means that a function can wrap an error with a prefix without
// worrying whether the callee has already done so:
//
//	prefs: prefs: file not found
//
// is printed as:
//
//	prefs: file not found
//
// Patterns that are tested for with Is() and Has() should be stored as
// exported string constants in the package that raises them.
package curated
