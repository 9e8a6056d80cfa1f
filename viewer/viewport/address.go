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

package viewport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/memview/curated"
)

// InvalidAddress is the pattern for errors returned by ParseAddress.
const InvalidAddress = "viewport: invalid address (%s)"

// AddressChars is the minimum width of a formatted address.
const AddressChars = 8

// FormatAddress returns the address as it should appear in the address
// gutter and address box.
func FormatAddress(address uint64) string {
	return fmt.Sprintf("%0*x", AddressChars, address)
}

// AddressWidth returns the number of characters needed to show the address.
func AddressWidth(address uint64) int {
	return len(FormatAddress(address))
}

// ParseAddress parses text entered in the address box. The text is
// hexadecimal, with an optional 0x prefix, and is not case sensitive.
func ParseAddress(text string) (uint64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return 0, curated.Errorf(InvalidAddress, "empty")
	}

	a, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, curated.Errorf(InvalidAddress, text)
	}
	return a, nil
}
