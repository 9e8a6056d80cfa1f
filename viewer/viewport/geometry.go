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

import "github.com/jetsetilly/memview/viewer/numberview"

// characters between the address gutter and the first column. this is the
// width of the ": " separator
const gutterSpacing = 2

// characters between the numbers pane and the text pane
const paneSpacing = 1

// MaxColumns is the largest number of columns that can be selected.
const MaxColumns = 128

// ColumnChoices are the fixed column counts offered by the column picker in
// addition to fitting the width of the window.
var ColumnChoices = []int{1, 2, 4, 8, 16, 32, 64, 128}

// Panes indicates which panes of the viewport are visible. If neither pane
// is visible the numbers pane is treated as visible.
type Panes struct {
	Numbers bool
	Text    bool
}

func (p Panes) normalise() Panes {
	if !p.Numbers && !p.Text {
		p.Numbers = true
	}
	return p
}

// RowChars returns the width in characters of a row with the number of
// columns.
func RowChars(view numberview.View, panes Panes, addressChars int, columns int) int {
	panes = panes.normalise()
	w := addressChars + gutterSpacing
	if panes.Numbers {
		// one space after every unit
		w += columns * (view.MaximumCharsNeeded() + 1)
	}
	if panes.Text {
		w += columns * view.Size.ByteCount()
		if panes.Numbers {
			w += paneSpacing
		}
	}
	return w
}

// ColumnsFromWidth returns the number of columns (units per row) that fit in
// a window of the width. The address gutter and spacing between columns and
// panes are taken into account. The result is never less than one.
func ColumnsFromWidth(windowWidth float32, glyphWidth float32, view numberview.View, panes Panes, addressChars int) int {
	if glyphWidth <= 0 || windowWidth <= 0 {
		return 1
	}

	panes = panes.normalise()

	chars := int(windowWidth/glyphWidth) - addressChars - gutterSpacing
	if panes.Numbers && panes.Text {
		chars -= paneSpacing
	}

	per := 0
	if panes.Numbers {
		per += view.MaximumCharsNeeded() + 1
	}
	if panes.Text {
		per += view.Size.ByteCount()
	}

	cols := chars / per
	return min(max(cols, 1), MaxColumns)
}

// RowsFromHeight returns the number of rows that fit in the visible height of
// a clipping region. One row less than would fit is returned so that rounding
// never causes a scrollbar to appear. The result is never less than one.
func RowsFromHeight(lineHeight float32, clipHeight float32) int {
	if lineHeight <= 0 {
		return 1
	}
	return max(int(clipHeight/lineHeight)-1, 1)
}

// Stride returns the number of bytes in a row.
func Stride(view numberview.View, columns int) uint64 {
	return uint64(max(columns, 1) * view.Size.ByteCount())
}
