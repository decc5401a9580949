package core

import "errors"

// Error taxonomy for the pin and timing layer. Configuration errors are
// recoverable and returned to the caller; ErrPeripheralInit is fatal and
// stops the application driver before setup runs.
var (
	// ErrInvalidPin means the logical pin number has no descriptor on the
	// registered board.
	ErrInvalidPin = errors.New("core: invalid pin")

	// ErrWrongMode means the operation is incompatible with the pin's
	// current configured mode (e.g. DigitalWrite on an input pin).
	// Policy: mismatches are reported, never silently dropped.
	ErrWrongMode = errors.New("core: pin not configured for operation")

	// ErrNotAnalogCapable means the pin descriptor lacks the analog-in
	// capability.
	ErrNotAnalogCapable = errors.New("core: pin not analog capable")

	// ErrNotPwmCapable means the pin descriptor lacks the PWM-out
	// capability.
	ErrNotPwmCapable = errors.New("core: pin not pwm capable")

	// ErrNotToneCapable means the pin descriptor lacks the tone-out
	// capability.
	ErrNotToneCapable = errors.New("core: pin not tone capable")

	// ErrPeripheralInit means a clock or converter peripheral failed to
	// initialize. All timing and I/O guarantees depend on the peripherals,
	// so this is fatal at startup.
	ErrPeripheralInit = errors.New("core: peripheral initialization failed")

	// ErrNoBoard means no board layout has been registered yet.
	ErrNoBoard = errors.New("core: no board registered")

	// ErrTimeout means a bounded wait (e.g. PulseIn) expired before the
	// observed condition occurred.
	ErrTimeout = errors.New("core: timeout")
)
