// Package register owns every access to the hart's machine status register.
//
// Nothing outside this package reads or writes mstatus. The interrupt
// package composes these accessors into critical sections; application code
// should not call them directly.
package register

// Mstatus is a snapshot of the machine status register.
type Mstatus uintptr

// mstatus bits relevant to interrupt enablement
const (
	MstatusSIE  Mstatus = 1 << 1 // Supervisor interrupt enable
	MstatusMIE  Mstatus = 1 << 3 // Machine interrupt enable
	MstatusSPIE Mstatus = 1 << 5 // SIE prior to the last trap
	MstatusMPIE Mstatus = 1 << 7 // MIE prior to the last trap
)

// MIE reports whether machine-level maskable interrupts are enabled.
func (m Mstatus) MIE() bool {
	return m&MstatusMIE != 0
}

// SIE reports whether supervisor-level interrupts are enabled.
func (m Mstatus) SIE() bool {
	return m&MstatusSIE != 0
}

// MPIE reports the MIE value saved by the last trap entry.
func (m Mstatus) MPIE() bool {
	return m&MstatusMPIE != 0
}

// Accessor is the primitive register interface.
// Each method must be a single instruction with respect to the hart's own
// instruction stream.
type Accessor interface {
	// Read returns the current register contents
	Read() Mstatus

	// SetMIE sets the machine interrupt enable bit
	SetMIE()

	// ClearMIE clears the machine interrupt enable bit
	ClearMIE()
}

// SetEnabled sets MIE when enabled is true and clears it otherwise.
func SetEnabled(enabled bool) {
	if enabled {
		SetMIE()
	} else {
		ClearMIE()
	}
}
