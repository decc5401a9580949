//go:build rp2040

package main

// PIO tone backend: a two-instruction square-wave program whose output
// frequency is set entirely through the state machine clock divider, so
// the wave keeps running with zero CPU involvement.

import (
	"errors"
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"ardugo/core"
)

// buildToneProgram emits the square-wave PIO program using AssemblerV0.
// Each instruction carries a 31-cycle delay, so one full period is
// tonePeriodCycles PIO clocks and the divider sets the audible frequency.
func buildToneProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Set(rp2pio.SetDestPins, 1).Delay(31).Encode(), // 0: set pins, 1 [31]
		asm.Set(rp2pio.SetDestPins, 0).Delay(31).Encode(), // 1: set pins, 0 [31]
		// .wrap
	}
}

const (
	toneProgramOrigin = 0
	tonePeriodCycles  = 64 // 2 instructions x (1 + 31) cycles
)

type toneChannel struct {
	sm     rp2pio.StateMachine
	pio    *rp2pio.PIO
	offset uint8
	pin    machine.Pin
}

// pioTone implements core.ToneDriver. State machines are allocated
// round-robin across PIO0 and PIO1, one per sounding pin, eight total.
type pioTone struct {
	channels map[core.PortBit]*toneChannel
	programs map[*rp2pio.PIO]uint8 // loaded program offset per block
	alloc    [2][4]bool
	nextPIO  uint8
	nextSM   uint8
}

func newPIOTone() *pioTone {
	return &pioTone{
		channels: make(map[core.PortBit]*toneChannel),
		programs: make(map[*rp2pio.PIO]uint8),
	}
}

// allocate claims a free PIO state machine, round-robin.
func (t *pioTone) allocate() (*rp2pio.PIO, rp2pio.StateMachine, uint8, uint8, bool) {
	for i := 0; i < 8; i++ {
		pioNum := t.nextPIO
		smNum := t.nextSM

		t.nextSM++
		if t.nextSM >= 4 {
			t.nextSM = 0
			t.nextPIO = (t.nextPIO + 1) % 2
		}

		if !t.alloc[pioNum][smNum] {
			t.alloc[pioNum][smNum] = true
			block := rp2pio.PIO0
			if pioNum == 1 {
				block = rp2pio.PIO1
			}
			return block, block.StateMachine(smNum), pioNum, smNum, true
		}
	}
	return nil, rp2pio.StateMachine{}, 0, 0, false
}

// divider computes the clock divider that makes one program period equal
// 1/freqHz. Returns the whole and fractional (1/256) parts.
func divider(freqHz uint32) (uint16, uint8, error) {
	if freqHz == 0 {
		return 0, 0, errors.New("rp2040: zero tone frequency")
	}
	div256 := uint64(machine.CPUFrequency()) * 256 / (tonePeriodCycles * uint64(freqHz))
	if div256 < 256 {
		div256 = 256 // divider below 1.0 is not representable
	}
	if div256 > 0xFFFFFF {
		return 0, 0, errors.New("rp2040: tone frequency too low")
	}
	return uint16(div256 >> 8), uint8(div256 & 0xFF), nil
}

func (t *pioTone) Start(pb core.PortBit, freqHz uint32) error {
	whole, frac, err := divider(freqHz)
	if err != nil {
		return err
	}

	ch, ok := t.channels[pb]
	if !ok {
		block, sm, _, _, found := t.allocate()
		if !found {
			return errors.New("rp2040: no free PIO state machine for tone")
		}
		sm.TryClaim()

		offset, loaded := t.programs[block]
		if !loaded {
			program := buildToneProgram()
			offset, err = block.AddProgram(program, toneProgramOrigin)
			if err != nil {
				return err
			}
			t.programs[block] = offset
		}

		pin := machinePin(pb)
		pin.Configure(machine.PinConfig{Mode: block.PinMode()})

		ch = &toneChannel{sm: sm, pio: block, offset: offset, pin: pin}
		t.channels[pb] = ch
	}

	// (Re)initialize the state machine at the requested rate.
	ch.sm.SetEnabled(false)

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(ch.pin, 1)
	cfg.SetWrap(ch.offset+1, ch.offset)
	cfg.SetClkDivIntFrac(whole, frac)

	ch.sm.Init(ch.offset, cfg)
	ch.sm.SetPindirsConsecutive(ch.pin, 1, true)
	ch.sm.SetPinsConsecutive(ch.pin, 1, false)
	ch.sm.SetEnabled(true)
	return nil
}

func (t *pioTone) Stop(pb core.PortBit) error {
	ch, ok := t.channels[pb]
	if !ok {
		return nil
	}
	ch.sm.SetEnabled(false)
	ch.sm.SetPinsConsecutive(ch.pin, 1, false)
	return nil
}
