// Package core holds the firmware services shared by every target: the
// timer scheduler, system ticks and debug output. All state shared with
// interrupt handlers lives behind interrupt.Mutex.
package core

import "rvirq/interrupt"

// Init prepares the timer subsystem and reports how critical sections
// behave on this build.
func Init() {
	TimerInit()

	mode := "masking"
	if !interrupt.Masking {
		mode = "ordering only (interrupts are not masked)"
	}
	checks := "on"
	if !interrupt.Checked {
		checks = "off"
	}
	DebugPrintln("[IRQ] critical sections: " + mode + ", token checks " + checks)
	DebugPrintln("[IRQ] timer freq=" + utoa(TimerFreq))
}

// Reset drops scheduled timers and recorded timing events
func Reset() {
	resetTimers()
	ClearTimingRing()
}
