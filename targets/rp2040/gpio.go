//go:build rp2040

package main

import (
	"errors"
	"machine"

	"ardugo/core"
)

// machinePin maps a port/bit pair onto TinyGo's flat pin numbering.
// The RP2040 has one bank, so this is just the bit for port 0.
func machinePin(pb core.PortBit) machine.Pin {
	return machine.Pin(pb.Port<<5 | pb.Bit)
}

// rpGPIO implements core.GPIODriver on top of machine.Pin.
type rpGPIO struct {
	// Track configured pins so redundant PinMode calls stay cheap.
	configured map[core.PortBit]machine.PinMode
}

func newRPGPIO() *rpGPIO {
	return &rpGPIO{configured: make(map[core.PortBit]machine.PinMode)}
}

func (d *rpGPIO) configure(pb core.PortBit, mode machine.PinMode) error {
	if prev, ok := d.configured[pb]; ok && prev == mode {
		return nil
	}
	machinePin(pb).Configure(machine.PinConfig{Mode: mode})
	d.configured[pb] = mode
	return nil
}

func (d *rpGPIO) ConfigureInput(pb core.PortBit) error {
	return d.configure(pb, machine.PinInput)
}

func (d *rpGPIO) ConfigureInputPullup(pb core.PortBit) error {
	return d.configure(pb, machine.PinInputPullup)
}

func (d *rpGPIO) ConfigureOutput(pb core.PortBit) error {
	return d.configure(pb, machine.PinOutput)
}

func (d *rpGPIO) SetPin(pb core.PortBit, level bool) error {
	if _, ok := d.configured[pb]; !ok {
		return errors.New("rp2040: pin not configured")
	}
	machinePin(pb).Set(level)
	return nil
}

func (d *rpGPIO) GetPin(pb core.PortBit) (bool, error) {
	if _, ok := d.configured[pb]; !ok {
		return false, errors.New("rp2040: pin not configured")
	}
	return machinePin(pb).Get(), nil
}
