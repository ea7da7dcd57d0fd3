//go:build gpio_dynamic

package gpio

// DefaultCapacity is meaningless for the dynamic allocator but kept so the
// public surface is identical across build configurations.
const DefaultCapacity = 10

func newAllocator(int) allocator {
	return heapAlloc{}
}
