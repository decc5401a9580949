package core

import "sync/atomic"

// Software tick counter for targets whose timer raises a periodic
// interrupt instead of exposing a free-running register. Tick runs in
// interrupt context; ReadTicks may run at any instruction boundary
// relative to it, so both sides go through a single hardware-width atomic
// word and can never observe a torn value.
var (
	tickCount uint32
	tickHigh  uint32
)

// Tick advances the counter by one. Called from the timer overflow
// handler; must not block.
func Tick() {
	TickBy(1)
}

// TickBy advances the counter by a known overflow increment.
func TickBy(n uint32) {
	if atomic.AddUint32(&tickCount, n) < n {
		// Low word wrapped.
		atomic.AddUint32(&tickHigh, 1)
	}
}

// ReadTicks returns the current software tick count.
func ReadTicks() uint32 {
	return atomic.LoadUint32(&tickCount)
}

// ReadTicks64 returns the extended 64-bit tick count. The high word is
// re-read until it is stable around the low-word read, the same
// discipline used for split hardware counter registers.
func ReadTicks64() uint64 {
	for {
		high1 := atomic.LoadUint32(&tickHigh)
		low := atomic.LoadUint32(&tickCount)
		high2 := atomic.LoadUint32(&tickHigh)
		if high1 == high2 {
			return uint64(high1)<<32 | uint64(low)
		}
	}
}

// resetTicks clears the counter. Test hook; production targets never
// rewind the clock.
func resetTicks() {
	atomic.StoreUint32(&tickCount, 0)
	atomic.StoreUint32(&tickHigh, 0)
}

// SoftwareClock is a ClockDriver backed by the interrupt-driven software
// tick counter above. The target wires its periodic timer interrupt to
// Tick or TickBy and registers a SoftwareClock with the tick frequency
// from the datasheet.
type SoftwareClock struct {
	freqHz uint32
}

// NewSoftwareClock returns a software clock at the given tick rate.
func NewSoftwareClock(freqHz uint32) *SoftwareClock {
	return &SoftwareClock{freqHz: freqHz}
}

func (c *SoftwareClock) Init() error {
	if c.freqHz == 0 {
		return ErrPeripheralInit
	}
	return nil
}

func (c *SoftwareClock) Ticks() uint32 {
	return ReadTicks()
}

func (c *SoftwareClock) Frequency() uint32 {
	return c.freqHz
}

func (c *SoftwareClock) Ticks64() uint64 {
	return ReadTicks64()
}
