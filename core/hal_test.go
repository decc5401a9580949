package core

import "testing"

// Shared mock drivers for in-package tests. The sim package provides the
// full-featured simulated drivers; these stay minimal so the core tests
// have no dependencies beyond the interfaces themselves.

type mockGPIO struct {
	modes    map[PortBit]Mode
	levels   map[PortBit]bool
	writes   []bool        // SetPin history, in call order
	inputSeq []bool        // queued GetPin results (popped per read)
	onGet    func(PortBit) // hook invoked before every GetPin
}

func newMockGPIO() *mockGPIO {
	return &mockGPIO{
		modes:  make(map[PortBit]Mode),
		levels: make(map[PortBit]bool),
	}
}

func (m *mockGPIO) ConfigureInput(pb PortBit) error { m.modes[pb] = Input; return nil }
func (m *mockGPIO) ConfigureInputPullup(pb PortBit) error {
	m.modes[pb] = InputPullup
	return nil
}
func (m *mockGPIO) ConfigureOutput(pb PortBit) error { m.modes[pb] = Output; return nil }

func (m *mockGPIO) SetPin(pb PortBit, level bool) error {
	m.levels[pb] = level
	m.writes = append(m.writes, level)
	return nil
}

func (m *mockGPIO) GetPin(pb PortBit) (bool, error) {
	if m.onGet != nil {
		m.onGet(pb)
	}
	if len(m.inputSeq) > 0 {
		v := m.inputSeq[0]
		m.inputSeq = m.inputSeq[1:]
		return v, nil
	}
	return m.levels[pb], nil
}

type mockADC struct {
	samples    map[uint8]ADCValue
	configured map[uint8]bool
}

func newMockADC() *mockADC {
	return &mockADC{
		samples:    make(map[uint8]ADCValue),
		configured: make(map[uint8]bool),
	}
}

func (m *mockADC) Init() error { return nil }

func (m *mockADC) ConfigureChannel(ch uint8) error {
	m.configured[ch] = true
	return nil
}

func (m *mockADC) ReadRaw(ch uint8) (ADCValue, error) {
	return m.samples[ch], nil
}

type mockPWM struct {
	duty map[PortBit]uint8
}

func newMockPWM() *mockPWM {
	return &mockPWM{duty: make(map[PortBit]uint8)}
}

func (m *mockPWM) Configure(pb PortBit) error { return nil }

func (m *mockPWM) SetDuty(pb PortBit, duty uint8) error { m.duty[pb] = duty; return nil }

type mockTone struct {
	freq map[PortBit]uint32
}

func newMockTone() *mockTone {
	return &mockTone{freq: make(map[PortBit]uint32)}
}

func (m *mockTone) Start(pb PortBit, freqHz uint32) error { m.freq[pb] = freqHz; return nil }
func (m *mockTone) Stop(pb PortBit) error                 { delete(m.freq, pb); return nil }

// fakeClock is a manually advanced ClockDriver.
type fakeClock struct {
	ticks  uint64
	freqHz uint32
}

func (c *fakeClock) Init() error {
	if c.freqHz == 0 {
		return ErrPeripheralInit
	}
	return nil
}

func (c *fakeClock) Ticks() uint32     { return uint32(c.ticks) }
func (c *fakeClock) Frequency() uint32 { return c.freqHz }

// rig wires a fresh Uno board, mock drivers and a 1MHz fake clock into
// the package globals.
type rig struct {
	gpio  *mockGPIO
	adc   *mockADC
	pwm   *mockPWM
	tone  *mockTone
	clock *fakeClock
}

func newRig(t *testing.T) *rig {
	t.Helper()

	r := &rig{
		gpio:  newMockGPIO(),
		adc:   newMockADC(),
		pwm:   newMockPWM(),
		tone:  newMockTone(),
		clock: &fakeClock{freqHz: 1000000},
	}

	RegisterBoard(UnoBoard())
	SetGPIODriver(r.gpio)
	SetADCDriver(r.adc)
	SetPWMDriver(r.pwm)
	SetToneDriver(r.tone)
	SetClockDriver(r.clock)

	if err := InitClock(); err != nil {
		t.Fatalf("InitClock failed: %v", err)
	}
	return r
}
