//go:build rp2040

package main

import (
	"machine"

	"ardugo/core"
)

// Firmware entry point for the Raspberry Pi Pico. Registers the board
// layout and hardware drivers, initializes the clock, then hands control
// to the application driver. Debug output goes to USB CDC where the
// ardumon host tool can watch it.
func main() {
	core.RegisterBoard(picoBoard())

	core.SetClockDriver(rpClock{})
	core.SetGPIODriver(newRPGPIO())
	core.SetPWMDriver(newRPPWM())
	core.SetToneDriver(newPIOTone())

	adc := newRPADC()
	if err := adc.Init(); err != nil {
		halt("ADC init failed")
	}
	core.SetADCDriver(adc)

	if err := core.InitClock(); err != nil {
		halt("clock init failed")
	}

	core.SetDebugWriter(func(s string) {
		machine.Serial.Write([]byte(s))
		machine.Serial.Write([]byte("\r\n"))
	})
	core.SetDebugEnabled(true)
	core.InitAsyncDebug()

	core.Run(setup, loop)
}

// halt reports a fatal peripheral failure and parks the CPU. Nothing may
// run setup with broken timing or I/O guarantees.
func halt(msg string) {
	machine.Serial.Write([]byte("FATAL: " + msg + "\r\n"))
	for {
	}
}

var ledOn bool

func setup() {
	if err := core.PinMode(core.LEDPin(), core.Output); err != nil {
		core.DebugPrintln("setup: " + err.Error())
	}
	core.DebugPrintln("ardugo on " + core.BoardName())
}

func loop() {
	ledOn = !ledOn
	level := core.Low
	if ledOn {
		level = core.High
	}
	if err := core.DigitalWrite(core.LEDPin(), level); err != nil {
		core.DebugPrintln("loop: " + err.Error())
	}
	core.Delay(500)

	// Queued rather than written inline so a slow USB host cannot
	// stall the loop.
	if ledOn {
		core.DebugAsync("uptime_us=" + u64toa(uptime64()))
	}
}

// u64toa formats the 64-bit uptime without pulling fmt into the image.
func u64toa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}
