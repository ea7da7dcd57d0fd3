//go:build tinygo

package gpio

import (
	"machine"
)

// PinMapper maps a (port, bit) pair to a machine.Pin.
type PinMapper func(port, bit uint8) machine.Pin

// DefaultPinMapper packs 16 bits per port, the scheme STM32-style targets use
// for their machine.Pin numbering. Boards with flat pin numbering (RP2040)
// can keep everything on port 0 or supply their own mapper.
func DefaultPinMapper(port, bit uint8) machine.Pin {
	return machine.Pin(uint16(port)*16 + uint16(bit))
}

// machineHAL implements HAL on top of the machine package.
type machineHAL struct {
	pin PinMapper
}

func (h machineHAL) SetDirection(port, bit uint8, output bool) {
	mode := machine.PinInput
	if output {
		mode = machine.PinOutput
	}
	h.pin(port, bit).Configure(machine.PinConfig{Mode: mode})
}

func (h machineHAL) SetOutput(port, bit uint8, active bool) {
	h.pin(port, bit).Set(active)
}

func (h machineHAL) GetInput(port, bit uint8) bool {
	return h.pin(port, bit).Get()
}

// NewTinyGo creates a Controller backed by the machine package.
// A nil mapper selects DefaultPinMapper.
func NewTinyGo(c Config, mapper PinMapper) (*Controller, error) {
	if mapper == nil {
		mapper = DefaultPinMapper
	}
	return NewWithHAL(machineHAL{pin: mapper}, c)
}
