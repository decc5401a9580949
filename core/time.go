package core

// Time service: converts clock driver ticks into millisecond and
// microsecond counts and provides blocking delay. Both counts wrap at the
// uint32 boundary of their own unit; callers compute elapsed time with
// Since/SinceMicros (modular subtraction), never direct comparison.

// Ticker64 is an optional refinement for drivers backed by a 64-bit
// hardware counter (e.g. the RP2040 timer). Without it the time service
// extends the 32-bit tick count in software.
type Ticker64 interface {
	Ticks64() uint64
}

var (
	clockFreq  uint32
	clockReady bool

	// Software extension of a 32-bit driver counter. Updated only from
	// the single application thread; the interrupt context never calls
	// into the time service.
	lastTicks  uint32
	tickEpochs uint32
)

// InitClock initializes the registered clock driver and caches its tick
// rate. Must run before setup; a failure means no timing guarantee holds
// and the application driver refuses to start.
func InitClock() error {
	d := MustClock()
	if err := d.Init(); err != nil {
		return ErrPeripheralInit
	}
	freq := d.Frequency()
	if freq == 0 {
		return ErrPeripheralInit
	}
	clockFreq = freq
	lastTicks = 0
	tickEpochs = 0
	clockReady = true
	return nil
}

// ClockReady reports whether InitClock has completed successfully.
func ClockReady() bool {
	return clockReady
}

// ClockFrequency returns the tick rate cached by InitClock.
func ClockFrequency() uint32 {
	return clockFreq
}

// ticks64 returns the extended tick count. Drivers with a native 64-bit
// counter are read directly; otherwise the wrap of the 32-bit counter is
// tracked here, so derived times keep their full uint32 range in their
// own unit instead of wrapping early with the raw counter.
func ticks64() uint64 {
	d := MustClock()
	if t, ok := d.(Ticker64); ok {
		return t.Ticks64()
	}
	now := d.Ticks()
	if now < lastTicks {
		tickEpochs++
	}
	lastTicks = now
	return uint64(tickEpochs)<<32 | uint64(now)
}

// Millis returns milliseconds since clock start, wrapping at the uint32
// boundary. The 64-bit intermediate keeps the scaling exact across the
// full range before wraparound.
func Millis() uint32 {
	return uint32(ticks64() * 1000 / uint64(clockFreq))
}

// Micros returns microseconds since clock start, wrapping at the uint32
// boundary. If the driver's base tick is coarser than one microsecond it
// must provide a MicroTicker; otherwise ticks are scaled exactly.
func Micros() uint32 {
	if clockFreq < 1000000 {
		if mt, ok := MustClock().(MicroTicker); ok {
			return mt.MicroTicks()
		}
	}
	return uint32(ticks64() * 1000000 / uint64(clockFreq))
}

// Since returns the milliseconds elapsed since a previous Millis reading.
// Modular uint32 subtraction: correct across one wraparound.
func Since(then uint32) uint32 {
	return Millis() - then
}

// SinceMicros returns the microseconds elapsed since a previous Micros
// reading, wraparound-safe.
func SinceMicros(then uint32) uint32 {
	return Micros() - then
}

// Delay blocks the calling context for at least ms milliseconds by
// polling Millis. The wait is clock-derived, never an instruction-count
// loop whose duration shifts with CPU speed or optimization level.
// Delay(0) returns immediately.
func Delay(ms uint32) {
	if ms == 0 {
		return
	}
	start := Millis()
	for Since(start) < ms {
	}
}

// DelayMicroseconds blocks for at least us microseconds.
// DelayMicroseconds(0) returns immediately. For waits of a few
// microseconds the polling overhead itself can exceed the request; the
// contract is only a lower bound.
func DelayMicroseconds(us uint32) {
	if us == 0 {
		return
	}
	start := Micros()
	for SinceMicros(start) < us {
	}
}

// TicksFromUS converts microseconds to clock ticks at the cached rate.
func TicksFromUS(us uint32) uint32 {
	return uint32(uint64(us) * uint64(clockFreq) / 1000000)
}

// TicksToUS converts clock ticks to microseconds at the cached rate.
func TicksToUS(ticks uint32) uint32 {
	return uint32(uint64(ticks) * 1000000 / uint64(clockFreq))
}
