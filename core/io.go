package core

// Pin I/O operations. Every call resolves the logical pin against the
// board descriptor table first, so an unmapped pin is a defined error and
// never reaches a driver.

// PinMode configures the direction and pull resistor of a pin.
// Repeated calls with the same mode are harmless redundant writes.
func PinMode(p Pin, m Mode) error {
	d, err := lookupPin(p)
	if err != nil {
		return err
	}
	switch m {
	case Input:
		if d.Caps&CapDigitalIn == 0 {
			return ErrWrongMode
		}
		err = MustGPIO().ConfigureInput(d.PortBit)
	case InputPullup:
		if d.Caps&CapDigitalIn == 0 {
			return ErrWrongMode
		}
		err = MustGPIO().ConfigureInputPullup(d.PortBit)
	case Output:
		if d.Caps&CapDigitalOut == 0 {
			return ErrWrongMode
		}
		err = MustGPIO().ConfigureOutput(d.PortBit)
	default:
		return ErrWrongMode
	}
	if err != nil {
		return err
	}
	pinModes[p] = m
	RecordPinEvent(EvtPinMode, p, uint32(m))
	return nil
}

// DigitalWrite drives an output pin high or low. The pin must be in
// Output mode; mismatches are reported, not silently ignored, so a miswired
// sketch fails loudly instead of leaving the pin floating.
func DigitalWrite(p Pin, level Level) error {
	d, err := lookupPin(p)
	if err != nil {
		return err
	}
	if currentMode(p) != Output {
		return ErrWrongMode
	}
	if err := MustGPIO().SetPin(d.PortBit, level == High); err != nil {
		return err
	}
	RecordPinEvent(EvtDigitalWrite, p, uint32(level))
	return nil
}

// DigitalRead samples a pin. Input pins read the external level; output
// pins read back the driven level.
func DigitalRead(p Pin) (Level, error) {
	d, err := lookupPin(p)
	if err != nil {
		return Low, err
	}
	if currentMode(p) == modeUnset {
		return Low, ErrWrongMode
	}
	high, err := MustGPIO().GetPin(d.PortBit)
	if err != nil {
		return Low, err
	}
	level := Low
	if high {
		level = High
	}
	RecordPinEvent(EvtDigitalRead, p, uint32(level))
	return level, nil
}

// AnalogRead performs a one-shot blocking conversion on an analog-capable
// pin and returns a 10-bit sample (0-1023).
func AnalogRead(p Pin) (uint16, error) {
	d, err := lookupPin(p)
	if err != nil {
		return 0, err
	}
	if d.Caps&CapAnalogIn == 0 {
		return 0, ErrNotAnalogCapable
	}
	adc := MustADC()
	if err := adc.ConfigureChannel(d.ADCChannel); err != nil {
		return 0, err
	}
	raw, err := adc.ReadRaw(d.ADCChannel)
	if err != nil {
		return 0, err
	}
	// Drivers report 16-bit full scale; the classic surface is 10 bits.
	v := uint16(raw >> 6)
	RecordPinEvent(EvtAnalogRead, p, uint32(v))
	return v, nil
}

// AnalogWrite programs the PWM duty cycle of a pin. Duty is clamped to
// 0-PWMMax, never wrapped: requesting 300 yields the same hardware state
// as requesting 255.
func AnalogWrite(p Pin, duty int32) error {
	d, err := lookupPin(p)
	if err != nil {
		return err
	}
	if d.Caps&CapPWM == 0 {
		return ErrNotPwmCapable
	}
	clamped := uint8(Constrain(int64(duty), 0, PWMMax))
	pwm := MustPWM()
	if err := pwm.Configure(d.PortBit); err != nil {
		return err
	}
	if err := pwm.SetDuty(d.PortBit, clamped); err != nil {
		return err
	}
	RecordPinEvent(EvtAnalogWrite, p, uint32(clamped))
	return nil
}

// Tone starts a square wave at freqHz on a tone-capable pin.
func Tone(p Pin, freqHz uint32) error {
	d, err := lookupPin(p)
	if err != nil {
		return err
	}
	if d.Caps&CapTone == 0 {
		return ErrNotToneCapable
	}
	if err := MustTone().Start(d.PortBit, freqHz); err != nil {
		return err
	}
	RecordPinEvent(EvtTone, p, freqHz)
	return nil
}

// NoTone stops square-wave output on a pin and leaves it low.
func NoTone(p Pin) error {
	d, err := lookupPin(p)
	if err != nil {
		return err
	}
	if d.Caps&CapTone == 0 {
		return ErrNotToneCapable
	}
	if err := MustTone().Stop(d.PortBit); err != nil {
		return err
	}
	RecordPinEvent(EvtTone, p, 0)
	return nil
}
