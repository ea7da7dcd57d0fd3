package gpio

import (
	"testing"
)

func TestSlotPoolLowestFreeFirst(t *testing.T) {
	p := newSlotPool(3)

	for i := 0; i < 3; i++ {
		got := p.take()
		if got != &p.slots[i] {
			t.Fatalf("take %d returned slot %p, want %p", i, got, &p.slots[i])
		}
		if !got.reserved {
			t.Fatalf("take %d returned an unreserved slot", i)
		}
	}
	if got := p.take(); got != nil {
		t.Fatalf("expected nil after pool exhaustion, got %p", got)
	}
}

func TestSlotPoolHandlesStartZeroed(t *testing.T) {
	p := newSlotPool(1)
	pin := p.take()
	if pin.port != 0 || pin.bit != 0 || pin.output || pin.hal != nil {
		t.Errorf("fresh slot not zeroed: %+v", pin)
	}
}

func TestHeapAllocReturnsDistinctHandles(t *testing.T) {
	var a heapAlloc
	p1 := a.take()
	p2 := a.take()
	if p1 == p2 {
		t.Fatal("expected distinct allocations")
	}
	if !p1.reserved || !p2.reserved {
		t.Error("heap handles must be marked reserved")
	}
}

// The dynamic strategy honours the same create contract as the pool: the
// façade layer must behave identically across build configurations.
func TestHeapAllocBackedController(t *testing.T) {
	h := newRecordingHAL()
	c := &Controller{hal: h, alloc: heapAlloc{}}

	p, err := c.Create(9, 9)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.Port() != 9 || p.Bit() != 9 {
		t.Fatalf("handle carries (%d, %d), want (9, 9)", p.Port(), p.Bit())
	}
	p.SetState(true)
	if len(h.calls) != 0 {
		t.Errorf("fresh dynamic handle must start as input, got calls %+v", h.calls)
	}
}
