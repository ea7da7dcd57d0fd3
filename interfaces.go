package gpio

// HAL is the board-specific back-end every pin operation is delegated to.
// A port/bit pair is opaque to this package: it is forwarded verbatim and
// carries whatever meaning the back-end assigns to it.
//
// All three primitives are total. A back-end that cannot honour a call
// (unmapped pin, hardware fault) must degrade internally; there is no error
// channel on this boundary.
type HAL interface {
	// SetDirection configures the pin as output (true) or input (false).
	SetDirection(port, bit uint8, output bool)
	// SetOutput drives the level of a pin already configured as output.
	SetOutput(port, bit uint8, active bool)
	// GetInput samples the current electrical level of the pin.
	GetInput(port, bit uint8) bool
}
