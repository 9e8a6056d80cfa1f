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

// Package saturate provides arithmetic on unsigned integers that clamps at
// the limits of the type rather than wrapping around. Addresses near the top
// or bottom of the 64-bit address space are calculated with these functions
// so that moving a window or a cursor never wraps.
package saturate

import "golang.org/x/exp/constraints"

// Add returns a+b or the maximum value of the type if the addition overflows.
func Add[U constraints.Unsigned](a, b U) U {
	c := a + b
	if c < a {
		return ^U(0)
	}
	return c
}

// Sub returns a-b or zero if b is greater than a.
func Sub[U constraints.Unsigned](a, b U) U {
	if b > a {
		return 0
	}
	return a - b
}

// Mul returns a*b or the maximum value of the type if the multiplication
// overflows.
func Mul[U constraints.Unsigned](a, b U) U {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	if c/b != a {
		return ^U(0)
	}
	return c
}

// AlignDown returns a rounded down to a multiple of n. An n of zero returns a
// unchanged.
func AlignDown[U constraints.Unsigned](a, n U) U {
	if n == 0 {
		return a
	}
	return a - (a % n)
}
