//go:build rp2040

package main

import (
	"errors"
	"machine"

	"ardugo/core"
)

// Arduino-compatible PWM carrier: roughly 490Hz.
const pwmPeriodNS = 2040816

// pwmPeripheral abstracts over TinyGo's unexported *pwmGroup type.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// rpPWM implements core.PWMDriver on the RP2040's 8 PWM slices
// (2 channels each). GPIO pin N maps to slice (N>>1)&7, channel N&1.
type rpPWM struct {
	slices   map[uint8]pwmPeripheral // configured slices
	channels map[core.PortBit]uint8  // pin -> channel within its slice
	owners   map[core.PortBit]uint8  // pin -> slice
}

func newRPPWM() *rpPWM {
	return &rpPWM{
		slices:   make(map[uint8]pwmPeripheral),
		channels: make(map[core.PortBit]uint8),
		owners:   make(map[core.PortBit]uint8),
	}
}

func pwmSlice(num uint8) pwmPeripheral {
	switch num {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

func (d *rpPWM) Configure(pb core.PortBit) error {
	if _, ok := d.channels[pb]; ok {
		return nil
	}

	pin := machinePin(pb)
	sliceNum := uint8((uint32(pin) >> 1) & 0x7)

	pwm, ok := d.slices[sliceNum]
	if !ok {
		pwm = pwmSlice(sliceNum)
		if err := pwm.Configure(machine.PWMConfig{Period: pwmPeriodNS}); err != nil {
			return err
		}
		d.slices[sliceNum] = pwm
	}

	ch, err := pwm.Channel(pin)
	if err != nil {
		return err
	}
	d.channels[pb] = ch
	d.owners[pb] = sliceNum
	return nil
}

func (d *rpPWM) SetDuty(pb core.PortBit, duty uint8) error {
	ch, ok := d.channels[pb]
	if !ok {
		return errors.New("rp2040: pin not configured for PWM")
	}
	pwm := d.slices[d.owners[pb]]

	// Rescale the 8-bit duty onto the slice's counter range.
	top := pwm.Top()
	pwm.Set(ch, uint32(uint64(top)*uint64(duty)/core.PWMMax))
	return nil
}
