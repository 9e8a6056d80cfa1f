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

package debuggee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jetsetilly/memview/curated"
	"github.com/jetsetilly/memview/debuggee"
	"github.com/jetsetilly/memview/test"
	"github.com/jetsetilly/memview/viewer/events"
)

func TestRegions(t *testing.T) {
	var mem debuggee.Memory
	test.ExpectSuccess(t, mem.AddRegion("b", 0x2000, make([]byte, 0x10)))
	test.ExpectSuccess(t, mem.AddRegion("a", 0x1000, make([]byte, 0x10)))

	err := mem.AddRegion("c", 0x100f, make([]byte, 2))
	test.ExpectSuccess(t, curated.Is(err, debuggee.OverlappingRegion))
	err = mem.AddRegion("d", 0x1fff, make([]byte, 2))
	test.ExpectSuccess(t, curated.Is(err, debuggee.OverlappingRegion))
	err = mem.AddRegion("e", 0x3000, nil)
	test.ExpectSuccess(t, curated.Is(err, debuggee.EmptyRegion))

	r := mem.Regions()
	test.DemandEquality(t, len(r), 2)
	test.ExpectEquality(t, r[0].Name, "a")
	test.ExpectEquality(t, r[1].Name, "b")

	// adjacent regions
	test.ExpectSuccess(t, mem.AddRegion("f", 0x1010, make([]byte, 0x10)))
}

func TestReadWrite(t *testing.T) {
	var mem debuggee.Memory
	test.DemandSuccess(t, mem.AddRegion("a", 0x1000, []byte{1, 2, 3, 4}))
	test.DemandSuccess(t, mem.AddRegion("b", 0x1004, []byte{5, 6}))
	test.DemandSuccess(t, mem.AddRegion("c", 0x2000, []byte{7}))

	// reads across adjacent regions
	if diff := cmp.Diff(mem.Read(0x1002, 3), []byte{3, 4, 5}); diff != "" {
		t.Errorf("unexpected read (-got +want):\n%s", diff)
	}

	// short read at the unmapped gap
	if diff := cmp.Diff(mem.Read(0x1004, 16), []byte{5, 6}); diff != "" {
		t.Errorf("unexpected read (-got +want):\n%s", diff)
	}

	test.ExpectEquality(t, len(mem.Read(0x1800, 16)), 0)

	test.ExpectEquality(t, mem.Write(0x1005, []byte{0x60, 0x70}), 1)
	v, err := mem.Peek(0x1005)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, byte(0x60))

	_, err = mem.Peek(0x1006)
	test.ExpectSuccess(t, curated.Is(err, debuggee.UnmappedAddress))
	test.ExpectFailure(t, mem.Poke(0x0, 1))
}

func TestStep(t *testing.T) {
	tgt := debuggee.NewTarget()
	test.DemandSuccess(t, tgt.Mem.AddRegion("ram", 0, make([]byte, 16)))
	test.DemandSuccess(t, tgt.AddCounter(0, 1, 1))
	test.DemandSuccess(t, tgt.AddCounter(4, 2, 0x101))
	test.ExpectFailure(t, tgt.AddCounter(15, 2, 1))
	test.ExpectFailure(t, tgt.AddCounter(8, 3, 1))

	test.DemandSuccess(t, tgt.Mem.Poke(0, 0xff))
	tgt.Step()
	test.ExpectEquality(t, tgt.Steps(), 1)

	// counter wraps
	if diff := cmp.Diff(tgt.Mem.Read(0, 8), []byte{0, 0, 0, 0, 1, 1, 0, 0}); diff != "" {
		t.Errorf("unexpected memory after step (-got +want):\n%s", diff)
	}
}

func TestHandle(t *testing.T) {
	svc := debuggee.NewService(debuggee.NewDemoTarget(), 4)

	r := svc.Handle(events.NewGetMemory(0x1ff8, 16))
	test.DemandEquality(t, len(r), 1)
	test.ExpectEquality(t, r[0].Kind, events.SetMemory)
	a, d, err := r[0].AddressData()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint64(0x1ff8))
	test.ExpectEquality(t, len(d), 8)

	r = svc.Handle(events.NewUpdateMemory(0x1000, []byte{0xaa}))
	test.ExpectEquality(t, len(r), 0)
	r = svc.Handle(events.NewGetMemory(0x1000, 1))
	_, d, _ = r[0].AddressData()
	test.ExpectEquality(t, d[0], byte(0xaa))

	r = svc.Handle(events.NewGetMemory(0x1010, 1))
	_, d, _ = r[0].AddressData()
	before := d[0]
	r = svc.Handle(events.NewStep())
	test.DemandEquality(t, len(r), 1)
	test.ExpectEquality(t, r[0].Kind, events.Step)
	r = svc.Handle(events.NewGetMemory(0x1010, 1))
	_, d, _ = r[0].AddressData()
	test.ExpectEquality(t, d[0], before+1)

	// malformed message is dropped
	r = svc.Handle(events.Message{Kind: events.GetMemory})
	test.ExpectEquality(t, len(r), 0)
}

func TestRun(t *testing.T) {
	svc := debuggee.NewService(debuggee.NewDemoTarget(), 4)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- svc.Run(ctx)
	}()

	test.DemandSuccess(t, svc.Push(events.NewGetMemory(0x4000, 4)))

	var msgs []events.Message
	deadline := time.Now().Add(time.Second)
	for len(msgs) == 0 && time.Now().Before(deadline) {
		msgs = svc.Drain()
		time.Sleep(time.Millisecond)
	}
	test.DemandEquality(t, len(msgs), 1)
	_, d, err := msgs[0].AddressData()
	test.ExpectSuccess(t, err)
	if diff := cmp.Diff(d, []byte{0xff, 0xfe, 0xfd, 0xfc}); diff != "" {
		t.Errorf("unexpected response (-got +want):\n%s", diff)
	}

	cancel()
	err = <-done
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
}

func TestPushQueueFull(t *testing.T) {
	svc := debuggee.NewService(debuggee.NewDemoTarget(), 1)
	test.ExpectSuccess(t, svc.Push(events.NewStep()))
	err := svc.Push(events.NewStep())
	test.ExpectSuccess(t, curated.Is(err, debuggee.QueueFull))
}
