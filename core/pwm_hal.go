package core

// PWMMax is the full-scale duty value of the core's 8-bit PWM surface.
// AnalogWrite clamps to this range; drivers rescale to their hardware
// resolution.
const PWMMax = 255

// PWMDriver is the abstract PWM interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type PWMDriver interface {
	// Configure prepares a port bit for PWM output. Idempotent; called by
	// the core before the first duty update on a pin.
	Configure(pb PortBit) error

	// SetDuty programs the duty cycle, 0 (fully off) to PWMMax (fully on).
	SetDuty(pb PortBit, duty uint8) error
}

// Global singleton used by core code.
var pwmDriver PWMDriver

// SetPWMDriver is called by target-specific code to register its driver.
func SetPWMDriver(d PWMDriver) {
	pwmDriver = d
}

// MustPWM returns the configured driver or panics if missing.
func MustPWM() PWMDriver {
	if pwmDriver == nil {
		panic("PWM driver not configured")
	}
	return pwmDriver
}
