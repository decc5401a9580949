package sim

import (
	"sync"

	"ardugo/core"
)

// PWM is an in-memory PWMDriver that records the last duty programmed on
// each port bit.
type PWM struct {
	mu         sync.Mutex
	duty       map[core.PortBit]uint8
	configured map[core.PortBit]bool
}

// NewPWM returns a simulated PWM block.
func NewPWM() *PWM {
	return &PWM{
		duty:       make(map[core.PortBit]uint8),
		configured: make(map[core.PortBit]bool),
	}
}

func (p *PWM) Configure(pb core.PortBit) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.configured[pb] = true
	return nil
}

func (p *PWM) SetDuty(pb core.PortBit, duty uint8) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.duty[pb] = duty
	return nil
}

// Duty reports the last duty programmed on a port bit.
func (p *PWM) Duty(pb core.PortBit) uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duty[pb]
}

// Tone is an in-memory ToneDriver recording the active frequency per pin.
type Tone struct {
	mu   sync.Mutex
	freq map[core.PortBit]uint32
}

// NewTone returns a simulated tone generator.
func NewTone() *Tone {
	return &Tone{freq: make(map[core.PortBit]uint32)}
}

func (t *Tone) Start(pb core.PortBit, freqHz uint32) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.freq[pb] = freqHz
	return nil
}

func (t *Tone) Stop(pb core.PortBit) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.freq, pb)
	return nil
}

// Frequency reports the active square-wave frequency on a port bit,
// zero if none.
func (t *Tone) Frequency(pb core.PortBit) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.freq[pb]
}
