//go:build linux

package main

import (
	"flag"
	"fmt"
	"os"

	"ardugo/core"
	"ardugo/sim"
)

var (
	ledPin = flag.Int("led", 17, "BCM number of the LED pin")
	period = flag.Uint("period", 500, "Blink half-period in milliseconds")
)

// rpiBoard maps logical pins straight onto BCM numbers 0-27. No on-chip
// ADC or PWM is exposed through this backend, so those capabilities are
// absent and AnalogRead/AnalogWrite report incapable pins.
func rpiBoard(led core.Pin) core.Board {
	pins := make([]core.PinDescriptor, 28)
	for i := range pins {
		pins[i] = core.PinDescriptor{
			PortBit: core.PortBit{Port: 0, Bit: uint8(i)},
			Caps:    core.CapDigitalIn | core.CapDigitalOut,
		}
	}
	return core.Board{Name: "rpi", LED: led, Pins: pins}
}

func main() {
	flag.Parse()

	gpioDriver, err := newPeriphGPIO()
	if err != nil {
		fmt.Fprintf(os.Stderr, "gpio init: %v\n", err)
		os.Exit(1)
	}

	core.RegisterBoard(rpiBoard(core.Pin(*ledPin)))
	core.SetGPIODriver(gpioDriver)
	core.SetClockDriver(sim.NewWallClock())

	if err := core.InitClock(); err != nil {
		fmt.Fprintf(os.Stderr, "clock init: %v\n", err)
		os.Exit(1)
	}

	core.SetDebugWriter(func(s string) { fmt.Fprintln(os.Stderr, s) })
	core.SetDebugEnabled(true)

	var on bool
	core.Run(
		func() {
			if err := core.PinMode(core.LEDPin(), core.Output); err != nil {
				fmt.Fprintf(os.Stderr, "pin mode: %v\n", err)
				os.Exit(1)
			}
		},
		func() {
			on = !on
			level := core.Low
			if on {
				level = core.High
			}
			if err := core.DigitalWrite(core.LEDPin(), level); err != nil {
				core.DebugPrintln("write: " + err.Error())
			}
			core.Delay(uint32(*period))
		},
	)
}
