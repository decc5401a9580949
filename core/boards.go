package core

// Port identifiers for AVR-style boards.
const (
	PortB uint8 = iota
	PortC
	PortD
)

// Uno pin map constants. Logical numbering is the classic one: digital
// 0-13, analog inputs A0-A5 mapped to the contiguous range above them.
const (
	LEDBuiltin Pin = 13

	A0 Pin = 14
	A1 Pin = 15
	A2 Pin = 16
	A3 Pin = 17
	A4 Pin = 18
	A5 Pin = 19
)

// UnoBoard returns the Uno-shaped board layout:
//
//	0-7   -> PD0-PD7
//	8-13  -> PB0-PB5 (LED on 13/PB5)
//	14-19 -> PC0-PC5 (A0-A5, ADC channels 0-5)
//
// PWM output on 3, 5, 6, 9, 10, 11. The mapping comes from the ATmega328P
// datasheet and is stable across builds.
func UnoBoard() Board {
	pins := make([]PinDescriptor, 20)

	digital := CapDigitalIn | CapDigitalOut | CapTone
	pwmPins := map[Pin]bool{3: true, 5: true, 6: true, 9: true, 10: true, 11: true}

	for i := Pin(0); i <= 7; i++ {
		pins[i] = PinDescriptor{
			PortBit: PortBit{Port: PortD, Bit: uint8(i)},
			Caps:    digital,
		}
	}
	for i := Pin(8); i <= 13; i++ {
		pins[i] = PinDescriptor{
			PortBit: PortBit{Port: PortB, Bit: uint8(i - 8)},
			Caps:    digital,
		}
	}
	for i := A0; i <= A5; i++ {
		pins[i] = PinDescriptor{
			PortBit:    PortBit{Port: PortC, Bit: uint8(i - A0)},
			Caps:       digital | CapAnalogIn,
			ADCChannel: uint8(i - A0),
		}
	}
	for p := range pwmPins {
		pins[p].Caps |= CapPWM
	}

	return Board{
		Name: "uno",
		LED:  LEDBuiltin,
		Pins: pins,
	}
}
