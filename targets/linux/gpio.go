//go:build linux

package main

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"ardugo/core"
)

// periphGPIO implements core.GPIODriver over periph.io, for Linux SBCs
// such as the Raspberry Pi. Pins are addressed by their BCM numbers; the
// board table stores the BCM number in the bit field of port 0.
type periphGPIO struct {
	pins map[core.PortBit]gpio.PinIO
}

// newPeriphGPIO initialises periph host state and returns the driver.
// host.Init can safely be called multiple times; subsequent calls are
// no-ops.
func newPeriphGPIO() (*periphGPIO, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return &periphGPIO{pins: make(map[core.PortBit]gpio.PinIO)}, nil
}

func (d *periphGPIO) pin(pb core.PortBit) (gpio.PinIO, error) {
	if p, ok := d.pins[pb]; ok {
		return p, nil
	}
	bcm := int(pb.Port)<<5 | int(pb.Bit)
	p := gpioreg.ByName(fmt.Sprintf("GPIO%d", bcm))
	if p == nil {
		return nil, errors.New("linux: no such GPIO line")
	}
	d.pins[pb] = p
	return p, nil
}

func (d *periphGPIO) ConfigureInput(pb core.PortBit) error {
	p, err := d.pin(pb)
	if err != nil {
		return err
	}
	return p.In(gpio.Float, gpio.NoEdge)
}

func (d *periphGPIO) ConfigureInputPullup(pb core.PortBit) error {
	p, err := d.pin(pb)
	if err != nil {
		return err
	}
	return p.In(gpio.PullUp, gpio.NoEdge)
}

func (d *periphGPIO) ConfigureOutput(pb core.PortBit) error {
	p, err := d.pin(pb)
	if err != nil {
		return err
	}
	return p.Out(gpio.Low)
}

func (d *periphGPIO) SetPin(pb core.PortBit, level bool) error {
	p, err := d.pin(pb)
	if err != nil {
		return err
	}
	return p.Out(gpio.Level(level))
}

func (d *periphGPIO) GetPin(pb core.PortBit) (bool, error) {
	p, err := d.pin(pb)
	if err != nil {
		return false, err
	}
	return p.Read() == gpio.High, nil
}
