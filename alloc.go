package gpio

// allocator produces fresh pin handles or nil on exhaustion.
// Both implementations are always compiled; newAllocator (see
// alloc-static.go / alloc-dynamic.go) picks one per build.
type allocator interface {
	take() *Pin
}

// slotPool is the fixed-capacity strategy: handles live in a pre-reserved
// slice and are claimed lowest-index-first. Slots are never released; the
// capacity is the lifetime budget until the pool itself is dropped.
type slotPool struct {
	slots []Pin
}

func newSlotPool(capacity int) *slotPool {
	return &slotPool{slots: make([]Pin, capacity)}
}

func (p *slotPool) take() *Pin {
	for i := range p.slots {
		if !p.slots[i].reserved {
			p.slots[i].reserved = true
			return &p.slots[i]
		}
	}
	return nil
}

// heapAlloc is the dynamic strategy: one fresh allocation per handle,
// released whenever the caller drops its last reference.
type heapAlloc struct{}

func (heapAlloc) take() *Pin {
	return &Pin{reserved: true}
}
