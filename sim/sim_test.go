package sim

import (
	"errors"
	"testing"
	"time"

	"ardugo/core"
)

// portBit resolves a logical Uno pin to its port/bit pair.
func portBit(p core.Pin) core.PortBit {
	return core.UnoBoard().Pins[p].PortBit
}

func TestDelayBlocksForWallTime(t *testing.T) {
	if _, _, _, _, err := Install(); err != nil {
		t.Fatal(err)
	}

	for _, ms := range []uint32{0, 1, 100} {
		start := time.Now()
		core.Delay(ms)
		elapsed := time.Since(start)
		if elapsed < time.Duration(ms)*time.Millisecond {
			t.Errorf("Delay(%d) returned after %v", ms, elapsed)
		}
	}
}

func TestDelayMicrosecondsBlocks(t *testing.T) {
	if _, _, _, _, err := Install(); err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	core.DelayMicroseconds(5000)
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("DelayMicroseconds(5000) returned after %v", elapsed)
	}
}

func TestMillisAdvancesWithWallClock(t *testing.T) {
	if _, _, _, _, err := Install(); err != nil {
		t.Fatal(err)
	}

	t0 := core.Millis()
	time.Sleep(20 * time.Millisecond)
	if d := core.Since(t0); d < 20 {
		t.Errorf("Since after 20ms sleep = %dms", d)
	}
}

func TestManualClockMillisWraparound(t *testing.T) {
	clk := NewManualClock(1000000)
	core.SetClockDriver(clk)
	if err := core.InitClock(); err != nil {
		t.Fatal(err)
	}

	// Park the clock 500ms before the millisecond counter wraps.
	const wrapUS = uint64(1) << 32 * 1000 // 2^32 ms in microseconds
	clk.Set(wrapUS - 500_000)

	t1 := core.Millis()
	if t1 != 4294966796 {
		t.Fatalf("Millis before wrap = %d", t1)
	}

	clk.Advance(1_000_000) // 1000ms, crossing the wrap
	if got := core.Millis(); got != 500 {
		t.Errorf("Millis after wrap = %d, want 500", got)
	}
	if got := core.Since(t1); got != 1000 {
		t.Errorf("Since across wrap = %dms, want 1000", got)
	}
}

func TestManualClockZeroFrequencyFailsInit(t *testing.T) {
	core.SetClockDriver(NewManualClock(0))
	if err := core.InitClock(); !errors.Is(err, core.ErrPeripheralInit) {
		t.Errorf("expected ErrPeripheralInit, got %v", err)
	}
}

func TestGPIOInputDefaults(t *testing.T) {
	g := NewGPIO()
	pb := core.PortBit{Port: 0, Bit: 1}

	if _, err := g.GetPin(pb); err == nil {
		t.Error("expected error reading unconfigured pin")
	}

	if err := g.ConfigureInput(pb); err != nil {
		t.Fatal(err)
	}
	if v, err := g.GetPin(pb); err != nil || v {
		t.Errorf("floating input reads %v, %v; want low", v, err)
	}

	if err := g.ConfigureInputPullup(pb); err != nil {
		t.Fatal(err)
	}
	if v, err := g.GetPin(pb); err != nil || !v {
		t.Errorf("pulled-up input reads %v, %v; want high", v, err)
	}

	g.SetInput(pb, false)
	if v, _ := g.GetPin(pb); v {
		t.Error("external low did not override the pull-up")
	}
}

func TestGPIORejectsWriteToInput(t *testing.T) {
	g := NewGPIO()
	pb := core.PortBit{Port: 0, Bit: 2}
	if err := g.ConfigureInput(pb); err != nil {
		t.Fatal(err)
	}
	if err := g.SetPin(pb, true); err == nil {
		t.Error("expected error writing an input pin")
	}
}

func TestLoopbackWire(t *testing.T) {
	gpio, _, _, _, err := Install()
	if err != nil {
		t.Fatal(err)
	}

	const in, out = core.Pin(2), core.Pin(4)
	if err := core.PinMode(in, core.Input); err != nil {
		t.Fatal(err)
	}
	if err := core.PinMode(out, core.Output); err != nil {
		t.Fatal(err)
	}
	gpio.Wire(portBit(in), portBit(out))

	for _, level := range []core.Level{core.High, core.Low, core.High} {
		if err := core.DigitalWrite(out, level); err != nil {
			t.Fatal(err)
		}
		got, err := core.DigitalRead(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != level {
			t.Errorf("loopback read %v after writing %v", got, level)
		}
	}
}

func TestAnalogReadThroughSimADC(t *testing.T) {
	_, adc, _, _, err := Install()
	if err != nil {
		t.Fatal(err)
	}

	adc.SetSample(0, 0xFFFF)
	got, err := core.AnalogRead(core.A0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 1023 {
		t.Errorf("AnalogRead(A0) = %d, want 1023", got)
	}
	if !adc.Configured(0) {
		t.Error("channel 0 was not configured by the read")
	}

	adc.SetSample(3, 0x8000)
	got, err = core.AnalogRead(core.A3)
	if err != nil {
		t.Fatal(err)
	}
	if got != 512 {
		t.Errorf("AnalogRead(A3) = %d, want 512", got)
	}
}

func TestAnalogWriteThroughSimPWM(t *testing.T) {
	_, _, pwm, _, err := Install()
	if err != nil {
		t.Fatal(err)
	}

	if err := core.AnalogWrite(9, 128); err != nil {
		t.Fatal(err)
	}
	if got := pwm.Duty(portBit(9)); got != 128 {
		t.Errorf("duty = %d, want 128", got)
	}
}

func TestToneThroughSimDriver(t *testing.T) {
	_, _, _, tone, err := Install()
	if err != nil {
		t.Fatal(err)
	}

	if err := core.Tone(8, 440); err != nil {
		t.Fatal(err)
	}
	if got := tone.Frequency(portBit(8)); got != 440 {
		t.Errorf("frequency = %dHz, want 440Hz", got)
	}

	if err := core.NoTone(8); err != nil {
		t.Fatal(err)
	}
	if got := tone.Frequency(portBit(8)); got != 0 {
		t.Errorf("frequency after NoTone = %dHz, want 0", got)
	}
}

func TestInstallFailsOnADCInitError(t *testing.T) {
	// Install wires its own drivers; replicate it with a broken ADC.
	core.RegisterBoard(core.UnoBoard())
	adc := NewADC()
	adc.InitErr = core.ErrPeripheralInit
	if err := adc.Init(); !errors.Is(err, core.ErrPeripheralInit) {
		t.Errorf("expected ErrPeripheralInit, got %v", err)
	}
}
