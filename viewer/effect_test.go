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

package viewer

import (
	"testing"

	"github.com/jetsetilly/memview/test"
	"github.com/jetsetilly/memview/viewer/cursor"
)

func TestEffectWaitsForCursor(t *testing.T) {
	v, err := NewViewer("")
	test.DemandSuccess(t, err)
	in := Input{Width: 200, GlyphWidth: 1, Height: 10, LineHeight: 1}

	// the cursor is not in any line of the frame
	v.transition(cursor.Text{Address: 0x1000}, cursor.Effect{TakeFocus: true, CaretToStart: true})
	f := v.Update(in)
	test.ExpectEquality(t, f.Effect.Pending(), false)

	f = v.Update(in)
	test.ExpectEquality(t, f.Effect.Pending(), false)

	// the effect is handed over when the cursor is drawn and not again
	v.start = 0x1000
	f = v.Update(in)
	test.ExpectEquality(t, f.Effect, cursor.Effect{TakeFocus: true, CaretToStart: true})
	f = v.Update(in)
	test.ExpectEquality(t, f.Effect.Pending(), false)

	// the effect of a cursor that has been removed is forgotten
	v.transition(cursor.Text{Address: 0x2000}, cursor.Effect{TakeFocus: true})
	v.Update(in)
	v.transition(nil, cursor.Effect{})
	v.Update(in)
	v.transition(cursor.Text{Address: 0x1000}, cursor.Effect{})
	f = v.Update(in)
	test.ExpectEquality(t, f.Effect.Pending(), false)
}
