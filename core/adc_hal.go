package core

// ADCValue is the raw converter reading as seen by the rest of the core.
// Convention here: 16-bit value, even if the underlying hardware is 10 or
// 12 bits (drivers left-shift to full scale). AnalogRead rescales to the
// classic 10-bit 0-1023 range.
type ADCValue uint16

// ADCDriver is the abstract analog-to-digital interface that core code
// uses. Conversions are synchronous and must complete within a bounded
// time; drivers with slow peripherals enforce their own deadline.
type ADCDriver interface {
	// Init powers up and configures the converter peripheral.
	// A failure here is fatal at startup (ErrPeripheralInit).
	Init() error

	// ConfigureChannel prepares a channel for analog input. For pin-muxed
	// channels this sets the pin to analog mode. Idempotent.
	ConfigureChannel(ch uint8) error

	// ReadRaw performs a one-shot blocking sample from the given channel
	// and returns a 16-bit scaled value.
	ReadRaw(ch uint8) (ADCValue, error)
}

// Global singleton used by core code.
var adcDriver ADCDriver

// SetADCDriver is called by target-specific code to register its driver.
func SetADCDriver(d ADCDriver) {
	adcDriver = d
}

// MustADC returns the configured driver or panics if missing.
func MustADC() ADCDriver {
	if adcDriver == nil {
		panic("ADC driver not configured")
	}
	return adcDriver
}
