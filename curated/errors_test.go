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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/memview/curated"
	"github.com/jetsetilly/memview/test"
)

const testPattern = "test pattern: %d"
const wrapPattern = "wrapped: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectEquality(t, e.Error(), "test pattern: 10")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	f := curated.Errorf(wrapPattern, e)
	test.ExpectEquality(t, f.Error(), "wrapped: test pattern: 10")
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, wrapPattern))
}

func TestUncurated(t *testing.T) {
	e := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Has(e, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("prefs: %v", curated.Errorf("prefs: %v", "file not found"))
	test.ExpectEquality(t, e.Error(), "prefs: file not found")
}

func TestUnwrap(t *testing.T) {
	base := errors.New("base")
	e := curated.Errorf(wrapPattern, base)
	test.ExpectSuccess(t, errors.Is(e, base))
}
