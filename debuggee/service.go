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

package debuggee

import (
	"context"
	"time"

	"github.com/jetsetilly/memview/curated"
	"github.com/jetsetilly/memview/logger"
	"github.com/jetsetilly/memview/viewer/events"
)

// MaxRead is the largest number of bytes returned in response to a single
// GetMemory message.
const MaxRead = 1 << 20

// QueueFull is the pattern for the error returned by Push() when a message is
// dropped.
const QueueFull = "debuggee: queue is full: %v dropped"

// Service answers messages on behalf of a Target.
type Service struct {
	target *Target

	// messages from the viewer
	requests chan events.Message

	// messages to the viewer
	responses chan events.Message

	// if non-zero the target is stepped automatically
	stepInterval time.Duration
}

// NewService is the preferred method of initialisation for the Service type.
// The queue length is the capacity of both the request and response queues.
func NewService(target *Target, queueLen int) *Service {
	return &Service{
		target:    target,
		requests:  make(chan events.Message, queueLen),
		responses: make(chan events.Message, queueLen),
	}
}

// SetStepInterval causes the target to be stepped periodically while Run() is
// active. A value of zero disables automatic stepping. Must not be called
// while Run() is active.
func (svc *Service) SetStepInterval(d time.Duration) {
	svc.stepInterval = d
}

// Push a message onto the request queue. The message is dropped if the
// queue is full.
func (svc *Service) Push(m events.Message) error {
	select {
	case svc.requests <- m:
	default:
		return curated.Errorf(QueueFull, m.Kind)
	}
	return nil
}

// Drain returns every message that is currently waiting in the response
// queue. It does not block.
func (svc *Service) Drain() []events.Message {
	var msgs []events.Message
	for {
		select {
		case m := <-svc.responses:
			msgs = append(msgs, m)
		default:
			return msgs
		}
	}
}

func (svc *Service) respond(msgs []events.Message) {
	for _, m := range msgs {
		select {
		case svc.responses <- m:
		default:
			logger.Logf(logger.Allow, "debuggee", "dropped response: %v", m)
		}
	}
}

// Handle a single message and return the messages that should be sent in
// reply. Messages that cannot be handled are logged and dropped.
func (svc *Service) Handle(m events.Message) []events.Message {
	switch m.Kind {
	case events.GetMemory:
		address, size, err := m.AddressRange()
		if err != nil {
			logger.Log(logger.Allow, "debuggee", err.Error())
			return nil
		}
		data := svc.target.Mem.Read(address, min(size, MaxRead))
		return []events.Message{events.NewSetMemory(address, data)}

	case events.UpdateMemory:
		address, data, err := m.AddressData()
		if err != nil {
			logger.Log(logger.Allow, "debuggee", err.Error())
			return nil
		}
		if n := svc.target.Mem.Write(address, data); n < len(data) {
			logger.Logf(logger.Allow, "debuggee", "write to %#x: %d of %d bytes unmapped", address, len(data)-n, len(data))
		}
		return nil

	case events.Step:
		svc.target.Step()
		return []events.Message{events.NewStep()}
	}

	logger.Logf(logger.Allow, "debuggee", "unexpected message: %v", m)
	return nil
}

// Run services the request queue until the context is cancelled. The
// context's error is returned.
func (svc *Service) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if svc.stepInterval > 0 {
		t := time.NewTicker(svc.stepInterval)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m := <-svc.requests:
			svc.respond(svc.Handle(m))
		case <-tick:
			svc.respond(svc.Handle(events.NewStep()))
		}
	}
}
