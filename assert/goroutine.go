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

// Package assert contains checks of how the program is running that
// should never fail in a correct program.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for assertions.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Thread records the goroutine that created it. Used by types that must only
// be used from a single thread (usually the main thread for SDL).
type Thread struct {
	id uint64
}

// NewThread returns a Thread for the calling goroutine.
func NewThread() Thread {
	return Thread{id: GetGoRoutineID()}
}

// Check panics if called from a goroutine other than the one that created the
// Thread. The panic message names the operation being checked.
func (t Thread) Check(operation string) {
	if id := GetGoRoutineID(); id != t.id {
		panic(fmt.Sprintf("%s called from goroutine %d, expected goroutine %d", operation, id, t.id))
	}
}
