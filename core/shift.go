package core

// ShiftOut clocks a byte out one bit at a time. The data and clock pins
// must already be in Output mode. Each bit is presented on dataPin, then
// latched by a clock high/low pulse.
func ShiftOut(dataPin, clockPin Pin, order BitOrder, val uint8) error {
	for i := 0; i < 8; i++ {
		var bit uint8
		if order == LSBFirst {
			bit = (val >> uint(i)) & 1
		} else {
			bit = (val >> uint(7-i)) & 1
		}
		level := Low
		if bit != 0 {
			level = High
		}
		if err := DigitalWrite(dataPin, level); err != nil {
			return err
		}
		if err := DigitalWrite(clockPin, High); err != nil {
			return err
		}
		if err := DigitalWrite(clockPin, Low); err != nil {
			return err
		}
	}
	return nil
}

// ShiftIn clocks a byte in one bit at a time: clock high, sample dataPin,
// clock low. The data pin must be an input and the clock pin an output.
func ShiftIn(dataPin, clockPin Pin, order BitOrder) (uint8, error) {
	var val uint8
	for i := 0; i < 8; i++ {
		if err := DigitalWrite(clockPin, High); err != nil {
			return 0, err
		}
		level, err := DigitalRead(dataPin)
		if err != nil {
			return 0, err
		}
		if level == High {
			if order == LSBFirst {
				val |= 1 << uint(i)
			} else {
				val |= 1 << uint(7-i)
			}
		}
		if err := DigitalWrite(clockPin, Low); err != nil {
			return 0, err
		}
	}
	return val, nil
}
