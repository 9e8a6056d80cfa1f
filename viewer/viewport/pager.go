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

import "fmt"

// Request is a read of memory.
type Request struct {
	Address uint64
	Size    uint64
}

func (r Request) String() string {
	return fmt.Sprintf("%#x (%d bytes)", r.Address, r.Size)
}

// Loaded is the memory that has already been read. Satisfied by
// *chunk.Chunk.
type Loaded interface {
	Address() uint64
	Len() int
}

// Pager decides when memory needs to be read to fill the viewport.
//
// A read is needed when the start of the viewport is not the first byte of
// the loaded memory or when the viewport is larger than the loaded memory.
// Only one read is outstanding at any time. A new read supersedes an
// outstanding read rather than being queued behind it.
//
// Responses are matched against requests by address only. Any response at
// the address of the most recent request is assumed to satisfy it.
//
// The zero value is ready to use.
type Pager struct {
	// the most recent request
	last Request

	outstanding bool

	// number of bytes delivered by the response to the most recent request.
	// the debuggee may not be able to satisfy a request completely so an
	// identical request is only repeated if the loaded memory has since
	// fallen below this length
	answered int

	// number of calls to Page() that an outstanding request has been
	// waiting for a response
	waiting int

	// force a read even if the loaded memory appears to be sufficient
	stale bool
}

// RetryFrames is the number of calls to Page() after which an unanswered
// request is sent again. A request can be lost if the queue to the debuggee
// is full.
const RetryFrames = 30

// Page returns the read needed to fill a viewport at the address of the
// size, if any.
func (p *Pager) Page(address uint64, size uint64, loaded Loaded) (Request, bool) {
	need := Request{Address: address, Size: size}
	if size == 0 {
		return need, false
	}

	if !p.stale {
		if loaded.Address() == address && uint64(loaded.Len()) >= size {
			return need, false
		}
		if need == p.last {
			if p.outstanding {
				p.waiting++
				if p.waiting < RetryFrames {
					return need, false
				}
			} else if loaded.Address() == address && loaded.Len() >= p.answered {
				return need, false
			}
		}
	}

	p.last = need
	p.outstanding = true
	p.answered = 0
	p.waiting = 0
	p.stale = false
	return need, true
}

// Resolve is called when n bytes of memory are received from the debuggee.
// The outstanding request is considered answered if the address of the
// memory matches the address of the most recent request. Returns true if the
// outstanding request has been answered.
func (p *Pager) Resolve(address uint64, n int) bool {
	if !p.outstanding || address != p.last.Address {
		return false
	}
	p.outstanding = false
	p.answered = n
	p.waiting = 0
	return true
}

// Outstanding returns the most recent request and whether it is waiting for
// a response.
func (p *Pager) Outstanding() (Request, bool) {
	return p.last, p.outstanding
}

// Invalidate forces the next call to Page() to request a read. Used when the
// memory of the debuggee is known to have changed.
func (p *Pager) Invalidate() {
	p.stale = true
}
