// Package sim provides simulated drivers for running and testing the core
// on a desktop machine without board hardware. Pins are plain in-memory
// state; clocks derive ticks from the host clock or from explicit
// advancement in tests.
package sim

import (
	"errors"
	"sync"

	"ardugo/core"
)

type pinDir uint8

const (
	dirNone pinDir = iota
	dirInput
	dirInputPullup
	dirOutput
)

type pinState struct {
	dir      pinDir
	driven   bool // level driven by SetPin while an output
	external bool // level applied by the test harness while an input
	hasExt   bool
}

// GPIO is an in-memory GPIODriver. Inputs read the externally applied
// level (or the pull-up default), outputs latch the driven level, and
// Wire can loop an output back into an input to emulate a jumper.
type GPIO struct {
	mu    sync.Mutex
	pins  map[core.PortBit]*pinState
	wires map[core.PortBit]core.PortBit // input <- output
}

// NewGPIO returns an empty simulated GPIO port block.
func NewGPIO() *GPIO {
	return &GPIO{
		pins:  make(map[core.PortBit]*pinState),
		wires: make(map[core.PortBit]core.PortBit),
	}
}

func (g *GPIO) pin(pb core.PortBit) *pinState {
	s, ok := g.pins[pb]
	if !ok {
		s = &pinState{}
		g.pins[pb] = s
	}
	return s
}

func (g *GPIO) ConfigureInput(pb core.PortBit) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pin(pb).dir = dirInput
	return nil
}

func (g *GPIO) ConfigureInputPullup(pb core.PortBit) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pin(pb).dir = dirInputPullup
	return nil
}

func (g *GPIO) ConfigureOutput(pb core.PortBit) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.pin(pb)
	if s.dir != dirOutput {
		s.dir = dirOutput
		s.driven = false
	}
	return nil
}

func (g *GPIO) SetPin(pb core.PortBit, level bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.pin(pb)
	if s.dir != dirOutput {
		return errors.New("sim: pin not configured as output")
	}
	s.driven = level
	return nil
}

func (g *GPIO) GetPin(pb core.PortBit) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.pin(pb)
	switch s.dir {
	case dirOutput:
		return s.driven, nil
	case dirInput, dirInputPullup:
		if src, ok := g.wires[pb]; ok {
			return g.pin(src).driven, nil
		}
		if s.hasExt {
			return s.external, nil
		}
		return s.dir == dirInputPullup, nil
	default:
		return false, errors.New("sim: pin not configured")
	}
}

// SetInput applies an external level to an input pin, as if a sensor were
// driving it.
func (g *GPIO) SetInput(pb core.PortBit, level bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.pin(pb)
	s.external = level
	s.hasExt = true
}

// Wire connects an input pin to an output pin, emulating a loopback
// jumper: reads of in return whatever was last driven on out.
func (g *GPIO) Wire(in, out core.PortBit) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.wires[in] = out
}

// Driven reports the level last driven on an output pin.
func (g *GPIO) Driven(pb core.PortBit) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pin(pb).driven
}
