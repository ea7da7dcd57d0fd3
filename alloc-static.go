//go:build !gpio_dynamic

package gpio

// DefaultCapacity is the pool size used when Config.Capacity is left zero.
const DefaultCapacity = 10

func newAllocator(capacity int) allocator {
	return newSlotPool(capacity)
}
