//go:build rp2040

package main

import (
	"errors"
	"machine"

	"ardugo/core"
)

// rpADC implements core.ADCDriver using TinyGo's machine.ADC.
// machine.ADC.Get already returns 16-bit left-adjusted samples, matching
// the core's ADCValue convention.
type rpADC struct {
	channels map[uint8]*machine.ADC
}

func newRPADC() *rpADC {
	return &rpADC{channels: make(map[uint8]*machine.ADC)}
}

func (d *rpADC) Init() error {
	machine.InitADC()
	return nil
}

func (d *rpADC) ConfigureChannel(ch uint8) error {
	if _, ok := d.channels[ch]; ok {
		// already configured
		return nil
	}

	var adc machine.ADC
	switch ch {
	case 0:
		adc = machine.ADC{Pin: machine.ADC0}
	case 1:
		adc = machine.ADC{Pin: machine.ADC1}
	case 2:
		adc = machine.ADC{Pin: machine.ADC2}
	case 3:
		adc = machine.ADC{Pin: machine.ADC3}
	default:
		return errors.New("rp2040: unsupported ADC channel")
	}

	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		return err
	}
	d.channels[ch] = &adc
	return nil
}

func (d *rpADC) ReadRaw(ch uint8) (core.ADCValue, error) {
	adc, ok := d.channels[ch]
	if !ok {
		return 0, errors.New("rp2040: ADC channel not configured")
	}
	return core.ADCValue(adc.Get()), nil
}
