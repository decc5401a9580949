//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"

	"ardugo/core"
)

// RP2040 Timer peripheral memory map. The chip has a 64-bit free-running
// microsecond counter clocked at 1MHz from the watchdog tick.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08 // Raw timer high word
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// rpClock exposes the RP2040 hardware timer as the core clock source.
type rpClock struct{}

// Init verifies the counter is actually running. A frozen timer (e.g.
// held in reset by a misconfigured boot) must be reported rather than
// silently serving a stuck tick count.
func (rpClock) Init() error {
	first := timerRAWL.Get()
	for i := 0; i < 1000000; i++ {
		if timerRAWL.Get() != first {
			return nil
		}
	}
	return core.ErrPeripheralInit
}

// Ticks reads the low 32 bits of the microsecond counter. A single-word
// register read cannot tear.
func (rpClock) Ticks() uint32 {
	return timerRAWL.Get()
}

func (rpClock) Frequency() uint32 {
	return 1000000 // 1MHz, RP2040 datasheet 4.6
}

// Ticks64 exposes the full 64-bit counter to the time service.
func (rpClock) Ticks64() uint64 {
	return uptime64()
}

// uptime64 reads the full 64-bit counter. High is read before and after
// low so a rollover during the read is detected and retried.
func uptime64() uint64 {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()
		if high1 == high2 {
			return uint64(high1)<<32 | uint64(low)
		}
	}
}
