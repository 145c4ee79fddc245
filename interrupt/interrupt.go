// Package interrupt provides critical sections for a single-hart RISC-V
// processor.
//
// Free runs a function with machine-level maskable interrupts disabled and
// puts the enable bit back the way it found it on return, including when
// the function panics. The function receives a CriticalSection token; data
// shared with interrupt handlers lives in a Mutex whose interior can only be
// borrowed with that token.
//
// Nesting needs no counter: an inner Free reads MIE already clear, so its
// restore is a no-op and interrupts come back only at the outermost exit.
//
// Build tags:
//
//	usermode           Disable and Enable are no-ops; Free only orders
//	interrupt_nocheck  CriticalSection is zero-sized and never checked
package interrupt

import "errors"

var (
	// ErrTokenOutsideRegion is the panic value when a CriticalSection is
	// used after its region ended or was never issued by Free.
	ErrTokenOutsideRegion = errors.New("interrupt: critical section token used outside its region")

	// ErrEnableInCriticalSection is the panic value when Enable is called
	// while a critical section is live.
	ErrEnableInCriticalSection = errors.New("interrupt: Enable called inside a critical section")

	// ErrMaskingUnavailable is the panic value of RequireMasking on builds
	// that cannot disable interrupts.
	ErrMaskingUnavailable = errors.New("interrupt: this build cannot mask interrupts")
)

// RequireMasking panics unless this build really masks interrupts. Firmware
// that relies on Free for exclusion against handlers calls it during init.
func RequireMasking() {
	if !Masking {
		panic(ErrMaskingUnavailable)
	}
}
