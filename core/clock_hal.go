package core

// ClockDriver exposes the target's free-running tick counter. The counter
// increments at a fixed, known frequency independent of all other program
// activity; it is the only component that touches raw timer hardware.
type ClockDriver interface {
	// Init configures the timer peripheral. A failure here must be
	// reported rather than leaving a frozen or wrong-rate counter; the
	// application driver treats it as fatal before setup runs.
	Init() error

	// Ticks returns the current counter value. It must be safe to call
	// while the tick interrupt may fire concurrently: a tearing read of a
	// multi-word counter is a correctness bug, not a cosmetic one.
	Ticks() uint32

	// Frequency returns the tick rate in Hz. The value comes from the
	// target's datasheet, never from calibration at runtime.
	Frequency() uint32
}

// MicroTicker is an optional refinement of ClockDriver for targets whose
// base tick period is coarser than one microsecond. Micros uses the
// secondary free-running counter instead of returning a quantized value
// that appears to stall.
type MicroTicker interface {
	MicroTicks() uint32
}

// Global singleton used by core code.
var clockDriver ClockDriver

// SetClockDriver is called by target-specific code to register its driver.
func SetClockDriver(d ClockDriver) {
	clockDriver = d
}

// MustClock returns the configured driver or panics if missing.
func MustClock() ClockDriver {
	if clockDriver == nil {
		panic("clock driver not configured")
	}
	return clockDriver
}
