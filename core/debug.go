package core

import "rvirq/interrupt"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TimingEvent captures a timing-critical event for post-mortem analysis
type TimingEvent struct {
	EventType uint8  // Event type code
	Clock     uint32 // System clock at event
	Value1    uint32 // Context-dependent value
	Value2    uint32 // Context-dependent value
}

// Event type codes
const (
	EvtTimerSchedule = 1 // Timer scheduled
	EvtTimerFire     = 2 // Timer handler called
	EvtTimerPast     = 3 // Timer rescheduled into the past
	EvtTimerCancel   = 4 // Timer cancelled
)

const (
	TimingRingSize = 32 // Keep last 32 events for post-mortem
)

// timingRing is written from timer handlers and the main loop alike
type timingRing struct {
	events [TimingRingSize]TimingEvent
	head   uint8 // Next write position
}

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	ring          = interrupt.NewMutex(timingRing{})
	timingEnabled = true // Always capture timing events

	// Async debug output channel
	debugChan chan string
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
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

// InitAsyncDebug starts the async debug output goroutine
// Call this from main() after SetDebugWriter
func InitAsyncDebug() {
	debugChan = make(chan string, 16) // Buffer 16 messages
	go debugOutputWorker()
}

// debugOutputWorker runs in background, drains debug channel
func debugOutputWorker() {
	for msg := range debugChan {
		if debugPrintln != nil {
			debugPrintln(msg)
		}
	}
}

// DebugPrintln writes a debug message using the platform-specific writer.
// Never call it inside a critical section: writers may block on hardware.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugAsync queues a debug message for async output (non-blocking)
// Returns immediately even if channel is full (drops message). Safe inside
// a critical section.
func DebugAsync(msg string) {
	if debugChan != nil {
		select {
		case debugChan <- msg:
		default:
			// Channel full, drop message (non-blocking)
		}
	}
}

// RecordTiming captures a timing event in the ring buffer
func RecordTiming(eventType uint8, value1, value2 uint32) {
	interrupt.Run(func(cs interrupt.CriticalSection) {
		recordTiming(cs, eventType, value1, value2)
	})
}

func recordTiming(cs interrupt.CriticalSection, eventType uint8, value1, value2 uint32) {
	if !timingEnabled {
		return
	}
	r := ring.Borrow(cs)
	idx := r.head
	r.events[idx] = TimingEvent{
		EventType: eventType,
		Clock:     GetTime(),
		Value1:    value1,
		Value2:    value2,
	}
	r.head = (idx + 1) % TimingRingSize
}

// TimingEvents returns the recorded events, oldest first
func TimingEvents() []TimingEvent {
	return interrupt.Free(func(cs interrupt.CriticalSection) []TimingEvent {
		r := ring.Borrow(cs)
		out := make([]TimingEvent, 0, TimingRingSize)
		for i := uint8(0); i < TimingRingSize; i++ {
			evt := r.events[(r.head+i)%TimingRingSize]
			if evt.EventType == 0 {
				continue // Empty slot
			}
			out = append(out, evt)
		}
		return out
	})
}

// DumpTimingRing outputs the timing ring buffer (call on shutdown/error)
func DumpTimingRing() {
	if debugPrintln == nil {
		return
	}

	// Snapshot first; the writer must not run with interrupts off
	events := TimingEvents()

	debugPrintln("[TIMING] === Timing Ring Dump ===")
	for _, evt := range events {
		var name string
		switch evt.EventType {
		case EvtTimerSchedule:
			name = "TIMER_SCHED"
		case EvtTimerFire:
			name = "TIMER_FIRE"
		case EvtTimerPast:
			name = "TIMER_PAST!"
		case EvtTimerCancel:
			name = "TIMER_CANCEL"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[TIMING] " + name +
			" clock=" + utoa(evt.Clock) +
			" v1=" + utoa(evt.Value1) +
			" v2=" + utoa(evt.Value2))
	}
	debugPrintln("[TIMING] === End Dump ===")
}

// ClearTimingRing clears the timing buffer
func ClearTimingRing() {
	ring.Update(func(r *timingRing) {
		*r = timingRing{}
	})
}
