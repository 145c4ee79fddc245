//go:build tinygo && tinygo.riscv

package register

import "device/riscv"

// Masking reports whether this build masks real interrupts.
const Masking = true

// Read returns mstatus (csrr).
func Read() Mstatus {
	return Mstatus(riscv.MSTATUS.Get())
}

// SetMIE sets mstatus.MIE (csrs).
func SetMIE() {
	riscv.MSTATUS.SetBits(uintptr(MstatusMIE))
}

// ClearMIE clears mstatus.MIE (csrc).
func ClearMIE() {
	riscv.MSTATUS.ClearBits(uintptr(MstatusMIE))
}
