package sim

import (
	"sync"

	"ardugo/core"
)

// ADC is an in-memory ADCDriver. Tests install 16-bit full-scale samples
// per channel; conversions return immediately.
type ADC struct {
	mu         sync.Mutex
	samples    map[uint8]core.ADCValue
	configured map[uint8]bool

	// InitErr, when set, is returned by Init to exercise the fatal
	// peripheral-failure path.
	InitErr error
}

// NewADC returns a simulated converter with all channels reading zero.
func NewADC() *ADC {
	return &ADC{
		samples:    make(map[uint8]core.ADCValue),
		configured: make(map[uint8]bool),
	}
}

func (a *ADC) Init() error {
	return a.InitErr
}

func (a *ADC) ConfigureChannel(ch uint8) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configured[ch] = true
	return nil
}

func (a *ADC) ReadRaw(ch uint8) (core.ADCValue, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.samples[ch], nil
}

// SetSample installs the 16-bit full-scale value returned by subsequent
// conversions on a channel.
func (a *ADC) SetSample(ch uint8, raw core.ADCValue) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.samples[ch] = raw
}

// Configured reports whether a channel has been prepared for input.
func (a *ADC) Configured(ch uint8) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.configured[ch]
}
