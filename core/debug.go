package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// PinEvent captures one pin or timing operation for post-mortem analysis
type PinEvent struct {
	Op    uint8  // Event type code
	Pin   Pin    // Logical pin
	Value uint32 // Level, mode, duty or frequency depending on Op
	At    uint32 // Millis at event (0 before InitClock)
}

// Event type codes
const (
	EvtPinMode      = 1
	EvtDigitalWrite = 2
	EvtDigitalRead  = 3
	EvtAnalogRead   = 4
	EvtAnalogWrite  = 5
	EvtTone         = 6
)

const (
	EventRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active.
	// Disabled by default; pin event capture stays on regardless.
	debugEnabled bool = false

	eventRing     [EventRingSize]PinEvent
	eventRingHead uint8
	eventsEnabled bool = true

	// Async debug output channel
	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function.
// This allows platforms to redirect debug output to UART, USB, stderr, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// InitAsyncDebug starts the async debug output goroutine.
// Call from main() after SetDebugWriter.
func InitAsyncDebug() {
	debugChan = make(chan string, 16)
	go debugOutputWorker()
}

func debugOutputWorker() {
	for msg := range debugChan {
		if debugPrintln != nil {
			debugPrintln(msg)
		}
	}
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugAsync queues a debug message for async output (non-blocking).
// Returns immediately even if the channel is full (drops message).
func DebugAsync(msg string) {
	if debugChan != nil {
		select {
		case debugChan <- msg:
		default:
			// Channel full, drop message
		}
	}
}

// RecordPinEvent captures a pin operation in the ring buffer.
// Non-blocking and cheap; safe to call on every I/O operation.
func RecordPinEvent(op uint8, pin Pin, value uint32) {
	if !eventsEnabled {
		return
	}
	var at uint32
	if clockReady {
		at = Millis()
	}
	idx := eventRingHead
	eventRing[idx] = PinEvent{Op: op, Pin: pin, Value: value, At: at}
	eventRingHead = (idx + 1) % EventRingSize
}

// DumpEventRing outputs the pin event ring, oldest first. Call after an
// error or from a diagnostic command, not from time-critical code.
func DumpEventRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[EVENTS] === Pin Event Dump ===")
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		idx := (start + i) % EventRingSize
		evt := &eventRing[idx]
		if evt.Op == 0 {
			continue // Empty slot
		}

		var name string
		switch evt.Op {
		case EvtPinMode:
			name = "PIN_MODE"
		case EvtDigitalWrite:
			name = "DIGITAL_WRITE"
		case EvtDigitalRead:
			name = "DIGITAL_READ"
		case EvtAnalogRead:
			name = "ANALOG_READ"
		case EvtAnalogWrite:
			name = "ANALOG_WRITE"
		case EvtTone:
			name = "TONE"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[EVENTS] " + name +
			" pin=" + utoa(uint32(evt.Pin)) +
			" value=" + utoa(evt.Value) +
			" ms=" + utoa(evt.At))
	}
	debugPrintln("[EVENTS] === End Dump ===")
}

// ClearEventRing clears the pin event buffer
func ClearEventRing() {
	for i := range eventRing {
		eventRing[i] = PinEvent{}
	}
	eventRingHead = 0
}
