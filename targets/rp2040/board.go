//go:build rp2040

package main

import "ardugo/core"

// Raspberry Pi Pico pin map. The RP2040 has a single GPIO bank, so the
// port is always 0 and the bit is the GPIO number; logical pin numbers
// follow the Pico silkscreen (GPIO0-GPIO29, LED on GPIO25).
//
// ADC-capable pins are GPIO26-GPIO29 on converter channels 0-3. Every pin
// has a PWM slice, so all pins carry the PWM and tone capabilities.
func picoBoard() core.Board {
	pins := make([]core.PinDescriptor, 30)

	caps := core.CapDigitalIn | core.CapDigitalOut | core.CapPWM | core.CapTone
	for i := range pins {
		pins[i] = core.PinDescriptor{
			PortBit: core.PortBit{Port: 0, Bit: uint8(i)},
			Caps:    caps,
		}
	}
	for gpio := 26; gpio <= 29; gpio++ {
		pins[gpio].Caps |= core.CapAnalogIn
		pins[gpio].ADCChannel = uint8(gpio - 26)
	}

	return core.Board{
		Name: "pico",
		LED:  core.Pin(25),
		Pins: pins,
	}
}
