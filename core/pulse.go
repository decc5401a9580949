package core

// PulseIn measures the width of a pulse on a digital input pin, in
// microseconds. It waits for any pulse already in progress to end, waits
// for the next pulse at the requested level to start, then times it.
// Every wait is bounded by timeoutUS and computed with wraparound-safe
// subtraction against Micros.
func PulseIn(p Pin, level Level, timeoutUS uint32) (uint32, error) {
	d, err := lookupPin(p)
	if err != nil {
		return 0, err
	}
	if d.Caps&CapDigitalIn == 0 {
		return 0, ErrWrongMode
	}
	m := currentMode(p)
	if m != Input && m != InputPullup {
		return 0, ErrWrongMode
	}

	gpio := MustGPIO()
	want := level == High
	start := Micros()

	// Wait out a pulse already in progress.
	for {
		v, err := gpio.GetPin(d.PortBit)
		if err != nil {
			return 0, err
		}
		if v != want {
			break
		}
		if SinceMicros(start) >= timeoutUS {
			return 0, ErrTimeout
		}
	}

	// Wait for the pulse to start.
	for {
		v, err := gpio.GetPin(d.PortBit)
		if err != nil {
			return 0, err
		}
		if v == want {
			break
		}
		if SinceMicros(start) >= timeoutUS {
			return 0, ErrTimeout
		}
	}

	pulseStart := Micros()
	for {
		v, err := gpio.GetPin(d.PortBit)
		if err != nil {
			return 0, err
		}
		if v != want {
			return SinceMicros(pulseStart), nil
		}
		if SinceMicros(start) >= timeoutUS {
			return 0, ErrTimeout
		}
	}
}
