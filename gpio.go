// Package gpio is a thin object layer over raw microcontroller pins.
//
// A Pin is an opaque handle around a (port, bit) pair plus its cached
// direction; every electrical operation is delegated to a HAL back-end.
// Handles come from a Controller, which owns one HAL and one pin allocator.
// The allocator strategy is a build-time choice: a fixed-capacity slot pool
// by default, per-handle heap allocation under the gpio_dynamic build tag.
package gpio

import (
	"errors"
	"fmt"
)

// ErrNoFreePins is returned by Create when the allocator is exhausted.
var ErrNoFreePins = errors.New("no free pin instances")

// Config holds the construction knobs for a Controller.
// The zero value picks sensible defaults.
type Config struct {
	// Capacity is the maximum number of simultaneously live handles in
	// pool builds. Defaults to DefaultCapacity if 0. Ignored in
	// gpio_dynamic builds.
	Capacity int
	// Logger receives init and degradation messages from the platform
	// adapters. Defaults to the package logger set via SetLogger.
	// The core itself never logs.
	Logger Logger
	// PinName maps a (port, bit) pair to a periph.io pin name.
	// Only consulted by the periph back-end; ignored on TinyGo.
	// Defaults to "GPIO<port*8+bit>".
	PinName func(port, bit uint8) string
}

// Controller hands out pin handles backed by a single HAL.
//
// A Controller and the handles it creates carry no internal locking: callers
// that share one across goroutines must serialize access themselves.
type Controller struct {
	hal   HAL
	alloc allocator
}

// NewWithHAL creates a Controller over the provided back-end.
// The allocator implementation is fixed by the build configuration; c.Capacity
// sizes the pool in pool builds.
func NewWithHAL(hal HAL, c Config) (*Controller, error) {
	if hal == nil {
		return nil, fmt.Errorf("HAL back-end not configured")
	}
	if c.Capacity < 0 {
		return nil, fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	return &Controller{
		hal:   hal,
		alloc: newAllocator(c.Capacity),
	}, nil
}

// Pin is an opaque handle to one configured pin.
// Its (port, bit) pair is fixed at Create; the direction starts as input.
type Pin struct {
	hal      HAL
	port     uint8
	bit      uint8
	output   bool
	reserved bool // pool slot in use
}

// Create claims a handle for the given (port, bit) pair.
// Port and bit are not validated or deduplicated; they are opaque to this
// package and two handles for the same pair alias the same hardware.
// On allocator exhaustion it returns nil and ErrNoFreePins.
func (c *Controller) Create(port, bit uint8) (*Pin, error) {
	p := c.alloc.take()
	if p == nil {
		return nil, ErrNoFreePins
	}
	p.hal = c.hal
	p.port = port
	p.bit = bit
	p.output = false
	return p, nil
}

// Port returns the handle's port identifier.
func (p *Pin) Port() uint8 { return p.port }

// Bit returns the handle's bit identifier.
func (p *Pin) Bit() uint8 { return p.bit }

// SetOutput configures the pin as output (true) or input (false).
// The cached direction and the HAL direction are both updated
// unconditionally, so repeating the same value is idempotent to the degree
// the back-end's primitive is.
func (p *Pin) SetOutput(output bool) {
	p.output = output
	p.hal.SetDirection(p.port, p.bit, output)
}

// SetState drives the pin high (true) or low (false).
// The call only reaches the HAL while the pin is configured as output; on an
// input pin it is a silent no-op. That silence is a contract: callers may
// issue writes during init sequences before committing to a direction.
func (p *Pin) SetState(state bool) {
	if p.output {
		p.hal.SetOutput(p.port, p.bit, state)
	}
}

// GetState samples the pin's current level.
// The read is forwarded to the HAL regardless of the cached direction;
// whether a pin configured as output reads back meaningfully is the
// back-end's concern.
func (p *Pin) GetState() bool {
	return p.hal.GetInput(p.port, p.bit)
}
