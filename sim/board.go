package sim

import (
	"encoding/json"
	"fmt"
	"os"

	"ardugo/core"
)

// Board layout files let a simulated run describe its pin table without
// recompiling. Format:
//
//	{
//	  "name": "bench",
//	  "led": 13,
//	  "pins": [
//	    {"port": 2, "bit": 0, "caps": ["in", "out"]},
//	    {"port": 1, "bit": 3, "caps": ["in", "adc"], "adc_channel": 3}
//	  ]
//	}
//
// Pin order in the file is the logical pin numbering.

type pinEntry struct {
	Port       uint8    `json:"port"`
	Bit        uint8    `json:"bit"`
	Caps       []string `json:"caps"`
	ADCChannel uint8    `json:"adc_channel"`
}

type boardFile struct {
	Name string     `json:"name"`
	LED  uint8      `json:"led"`
	Pins []pinEntry `json:"pins"`
}

// LoadBoard parses a JSON board layout.
func LoadBoard(data []byte) (core.Board, error) {
	var bf boardFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return core.Board{}, fmt.Errorf("sim: invalid board layout: %w", err)
	}
	if len(bf.Pins) == 0 {
		return core.Board{}, fmt.Errorf("sim: board %q has no pins", bf.Name)
	}
	if int(bf.LED) >= len(bf.Pins) {
		return core.Board{}, fmt.Errorf("sim: board %q: led pin %d out of range", bf.Name, bf.LED)
	}

	pins := make([]core.PinDescriptor, len(bf.Pins))
	for i, e := range bf.Pins {
		var caps core.PinCaps
		for _, c := range e.Caps {
			switch c {
			case "in":
				caps |= core.CapDigitalIn
			case "out":
				caps |= core.CapDigitalOut
			case "adc":
				caps |= core.CapAnalogIn
			case "pwm":
				caps |= core.CapPWM
			case "tone":
				caps |= core.CapTone
			default:
				return core.Board{}, fmt.Errorf("sim: board %q pin %d: unknown capability %q", bf.Name, i, c)
			}
		}
		pins[i] = core.PinDescriptor{
			PortBit:    core.PortBit{Port: e.Port, Bit: e.Bit},
			Caps:       caps,
			ADCChannel: e.ADCChannel,
		}
	}

	return core.Board{
		Name: bf.Name,
		LED:  core.Pin(bf.LED),
		Pins: pins,
	}, nil
}

// LoadBoardFile reads and parses a JSON board layout from disk.
func LoadBoardFile(path string) (core.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Board{}, fmt.Errorf("sim: unable to read board layout: %w", err)
	}
	return LoadBoard(data)
}

// Install registers the Uno layout plus a full set of simulated drivers
// and initializes the clock. It returns the drivers for inspection.
// Convenience for tests and desktop sketches.
func Install() (*GPIO, *ADC, *PWM, *Tone, error) {
	core.RegisterBoard(core.UnoBoard())

	gpio := NewGPIO()
	adc := NewADC()
	pwm := NewPWM()
	tone := NewTone()

	core.SetGPIODriver(gpio)
	core.SetADCDriver(adc)
	core.SetPWMDriver(pwm)
	core.SetToneDriver(tone)
	core.SetClockDriver(NewWallClock())

	if err := adc.Init(); err != nil {
		return nil, nil, nil, nil, err
	}
	if err := core.InitClock(); err != nil {
		return nil, nil, nil, nil, err
	}
	return gpio, adc, pwm, tone, nil
}
