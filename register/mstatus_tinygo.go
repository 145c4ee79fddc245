//go:build tinygo && !tinygo.riscv

package register

// Masking reports whether this build masks real interrupts. Targets without
// a RISC-V mstatus get ordering but no masking.
const Masking = false

// Read reports interrupts as disabled; there is no register to read.
func Read() Mstatus {
	return 0
}

// SetMIE is a no-op on this target.
func SetMIE() {}

// ClearMIE is a no-op on this target.
func ClearMIE() {}
