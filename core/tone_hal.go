package core

// ToneDriver generates a square wave on a pin. On hardware this is backed
// by a timer or PIO state machine; the simulator records the requested
// frequency.
type ToneDriver interface {
	// Start outputs a square wave at freqHz on the port bit, replacing any
	// wave already running there.
	Start(pb PortBit, freqHz uint32) error

	// Stop ends output and leaves the pin driven low.
	Stop(pb PortBit) error
}

// Global singleton used by core code.
var toneDriver ToneDriver

// SetToneDriver is called by target-specific code to register its driver.
func SetToneDriver(d ToneDriver) {
	toneDriver = d
}

// MustTone returns the configured driver or panics if missing.
func MustTone() ToneDriver {
	if toneDriver == nil {
		panic("tone driver not configured")
	}
	return toneDriver
}
