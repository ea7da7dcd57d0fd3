//go:build !tinygo

package gpio

import (
	"fmt"

	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// DefaultPinName maps a (port, bit) pair to the flat "GPIO<n>" names that
// gpioreg registers on Linux hosts, packing 8 bits per port.
func DefaultPinName(port, bit uint8) string {
	return fmt.Sprintf("GPIO%d", int(port)*8+int(bit))
}

// periphHAL implements HAL on top of periph.io. Pins are resolved through
// gpioreg by name on first use and cached. A pin that fails to resolve is
// logged once and degrades to a no-op (reads return false): the HAL boundary
// is total, so there is nowhere to surface the failure.
type periphHAL struct {
	name func(port, bit uint8) string
	log  Logger
	pins map[uint16]pgpio.PinIO
	dead map[uint16]bool
}

func newPeriphHAL(name func(port, bit uint8) string, log Logger) *periphHAL {
	return &periphHAL{
		name: name,
		log:  log,
		pins: make(map[uint16]pgpio.PinIO),
		dead: make(map[uint16]bool),
	}
}

func (h *periphHAL) lookup(port, bit uint8) pgpio.PinIO {
	key := uint16(port)<<8 | uint16(bit)
	if p, ok := h.pins[key]; ok {
		return p
	}
	if h.dead[key] {
		return nil
	}
	p := gpioreg.ByName(h.name(port, bit))
	if p == nil {
		h.log.Error("failed to resolve pin " + h.name(port, bit))
		h.dead[key] = true
		return nil
	}
	h.pins[key] = p
	return p
}

func (h *periphHAL) SetDirection(port, bit uint8, output bool) {
	p := h.lookup(port, bit)
	if p == nil {
		return
	}
	if output {
		// periph.io has no direction-only call; an output starts low.
		if err := p.Out(pgpio.Low); err != nil {
			h.log.Warn("failed to set " + p.Name() + " as output")
		}
		return
	}
	if err := p.In(pgpio.Float, pgpio.NoEdge); err != nil {
		h.log.Warn("failed to set " + p.Name() + " as input")
	}
}

func (h *periphHAL) SetOutput(port, bit uint8, active bool) {
	p := h.lookup(port, bit)
	if p == nil {
		return
	}
	level := pgpio.Low
	if active {
		level = pgpio.High
	}
	if err := p.Out(level); err != nil {
		h.log.Warn("failed to drive " + p.Name())
	}
}

func (h *periphHAL) GetInput(port, bit uint8) bool {
	p := h.lookup(port, bit)
	if p == nil {
		return false
	}
	return p.Read() == pgpio.High
}

// New creates a Controller backed by periph.io for Linux hosts.
// It initializes the periph.io host drivers and resolves pins through the
// gpioreg registry using c.PinName (DefaultPinName if nil).
func New(c Config) (*Controller, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}
	log := c.Logger
	if log == nil {
		log = defaultLogger
	}
	name := c.PinName
	if name == nil {
		name = DefaultPinName
	}
	log.Info("periph.io host initialized")
	return NewWithHAL(newPeriphHAL(name, log), c)
}
