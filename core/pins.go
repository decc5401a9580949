package core

// Pin is a logical pin number as seen by application code. The registered
// board maps it to a physical port/bit pair.
type Pin uint8

// Level is a digital logic level.
type Level uint8

const (
	Low  Level = 0
	High Level = 1
)

func (l Level) String() string {
	if l == High {
		return "HIGH"
	}
	return "LOW"
}

// Mode selects the direction and pull configuration of a pin.
type Mode uint8

const (
	Input Mode = iota
	Output
	InputPullup
)

// modeUnset marks a pin that has not been configured since board
// registration. Operations that need a direction report ErrWrongMode
// until PinMode has run.
const modeUnset Mode = 0xff

// BitOrder selects the bit order for ShiftOut/ShiftIn.
type BitOrder uint8

const (
	LSBFirst BitOrder = iota
	MSBFirst
)

// PinCaps declares the static capabilities of a pin.
type PinCaps uint8

const (
	CapDigitalIn PinCaps = 1 << iota
	CapDigitalOut
	CapAnalogIn
	CapPWM
	CapTone
)

// PortBit identifies a physical port and bit offset on the target.
type PortBit struct {
	Port uint8
	Bit  uint8
}

// PinDescriptor maps a logical pin to its physical location and
// capabilities. Descriptors are immutable after RegisterBoard.
type PinDescriptor struct {
	PortBit
	Caps PinCaps

	// ADCChannel is the converter channel for pins with CapAnalogIn.
	ADCChannel uint8
}

// Board is a fixed pin layout for one target. The descriptor table is
// indexed by logical pin number and must be stable across builds.
type Board struct {
	Name string
	LED  Pin
	Pins []PinDescriptor
}

var (
	board    *Board
	pinModes []Mode
)

// RegisterBoard installs the board layout. It must run before setup, and
// it resets all per-pin mode state.
func RegisterBoard(b Board) {
	local := b
	board = &local
	pinModes = make([]Mode, len(b.Pins))
	for i := range pinModes {
		pinModes[i] = modeUnset
	}
}

// BoardName returns the registered board's name, or "" if none.
func BoardName() string {
	if board == nil {
		return ""
	}
	return board.Name
}

// LEDPin returns the board's builtin LED pin.
func LEDPin() Pin {
	if board == nil {
		return 0
	}
	return board.LED
}

// PinCount returns the number of logical pins on the registered board.
func PinCount() int {
	if board == nil {
		return 0
	}
	return len(board.Pins)
}

// lookupPin resolves a logical pin number to its descriptor.
// An out-of-range pin is a defined error, never a panic.
func lookupPin(p Pin) (*PinDescriptor, error) {
	if board == nil {
		return nil, ErrNoBoard
	}
	if int(p) >= len(board.Pins) {
		return nil, ErrInvalidPin
	}
	return &board.Pins[p], nil
}

// PinCapabilities returns the capability flags of a logical pin.
func PinCapabilities(p Pin) (PinCaps, error) {
	d, err := lookupPin(p)
	if err != nil {
		return 0, err
	}
	return d.Caps, nil
}

// currentMode returns the configured mode of a valid pin.
func currentMode(p Pin) Mode {
	return pinModes[p]
}
