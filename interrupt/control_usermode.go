//go:build usermode

package interrupt

import "rvirq/register"

// Masking is false in user mode: mstatus is not accessible, so Free
// provides ordering but no exclusion against handlers.
const Masking = false

// Disable is a no-op in user mode.
func Disable() {}

// Enable is a no-op in user mode.
func Enable() {
	checkEnable()
}

func enable() {}

// saveState reports interrupts as disabled so Free never re-enables.
func saveState() register.Mstatus {
	return 0
}
