package sim

import (
	"sync/atomic"
	"time"

	"ardugo/core"
)

// WallClock is a ClockDriver that derives ticks from the host monotonic
// clock at 1 MHz, so Delay and friends block for real wall time. It also
// satisfies core.MicroTicker.
type WallClock struct {
	start time.Time
}

// NewWallClock returns an uninitialized wall clock; Init pins the epoch.
func NewWallClock() *WallClock {
	return &WallClock{}
}

func (c *WallClock) Init() error {
	c.start = time.Now()
	return nil
}

func (c *WallClock) Ticks() uint32 {
	return uint32(time.Since(c.start).Microseconds())
}

func (c *WallClock) Frequency() uint32 {
	return 1000000
}

func (c *WallClock) MicroTicks() uint32 {
	return c.Ticks()
}

func (c *WallClock) Ticks64() uint64 {
	return uint64(time.Since(c.start).Microseconds())
}

// ManualClock is a ClockDriver advanced explicitly by tests. The zero
// frequency case exercises the fatal peripheral-init path.
type ManualClock struct {
	ticks  uint64
	freqHz uint32
}

// NewManualClock returns a manual clock at the given tick rate.
func NewManualClock(freqHz uint32) *ManualClock {
	return &ManualClock{freqHz: freqHz}
}

func (c *ManualClock) Init() error {
	if c.freqHz == 0 {
		return core.ErrPeripheralInit
	}
	return nil
}

func (c *ManualClock) Ticks() uint32 {
	return uint32(atomic.LoadUint64(&c.ticks))
}

func (c *ManualClock) Frequency() uint32 {
	return c.freqHz
}

func (c *ManualClock) Ticks64() uint64 {
	return atomic.LoadUint64(&c.ticks)
}

// Advance moves the clock forward by n ticks.
func (c *ManualClock) Advance(n uint64) {
	atomic.AddUint64(&c.ticks, n)
}

// Set jumps the counter to an absolute value, including values close to
// the uint32 boundary for wraparound tests.
func (c *ManualClock) Set(ticks uint64) {
	atomic.StoreUint64(&c.ticks, ticks)
}
