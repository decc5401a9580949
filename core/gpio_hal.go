package core

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
// All methods address pins by their physical port/bit pair; logical pin
// numbering is resolved by the core before the driver is reached.
type GPIODriver interface {
	// ConfigureInput configures a port bit as a floating digital input.
	ConfigureInput(pb PortBit) error

	// ConfigureInputPullup configures a port bit as a digital input with
	// the pull-up resistor enabled.
	ConfigureInputPullup(pb PortBit) error

	// ConfigureOutput configures a port bit as a digital output.
	ConfigureOutput(pb PortBit) error

	// SetPin drives the bit high (true) or low (false).
	SetPin(pb PortBit, level bool) error

	// GetPin samples the current bit state.
	GetPin(pb PortBit) (bool, error)
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
