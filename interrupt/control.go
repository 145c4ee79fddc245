//go:build !usermode

package interrupt

import "rvirq/register"

// Masking reports whether Disable actually holds off interrupts.
const Masking = register.Masking

// Disable clears the machine interrupt enable bit. Interrupt requests stay
// pending until the bit is set again. Calling it twice is harmless.
//
// Disable is not nestable: it does not remember the previous state. Use
// Free unless you know the interrupt state at the call site.
func Disable() {
	register.ClearMIE()
}

// Enable sets the machine interrupt enable bit.
//
// Enable must never be called inside a function running under Free: it
// lets handlers preempt code that holds a CriticalSection and reenter the
// resources that token protects. The checked build panics with
// ErrEnableInCriticalSection when it sees this.
func Enable() {
	checkEnable()
	enable()
}

func enable() {
	register.SetMIE()
}

func saveState() register.Mstatus {
	return register.Read()
}
