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

package gui

import (
	"github.com/jetsetilly/memview/debuggee"
	"github.com/jetsetilly/memview/viewer/events"
)

// Transport carries messages between the viewer and the debuggee. Push()
// must not block and Drain() returns messages received since the previous
// call without blocking.
type Transport interface {
	Push(m events.Message) error
	Drain() []events.Message
}

// Loopback is a Transport that answers requests synchronously. Responses are
// available on the next call to Drain(). Useful when there is no need for
// the debuggee to run in its own goroutine.
type Loopback struct {
	svc       *debuggee.Service
	responses []events.Message
}

// NewLoopback is the preferred method of initialisation for the Loopback
// type.
func NewLoopback(svc *debuggee.Service) *Loopback {
	return &Loopback{svc: svc}
}

// Push implements the Transport interface.
func (lb *Loopback) Push(m events.Message) error {
	lb.responses = append(lb.responses, lb.svc.Handle(m)...)
	return nil
}

// Drain implements the Transport interface.
func (lb *Loopback) Drain() []events.Message {
	r := lb.responses
	lb.responses = nil
	return r
}
