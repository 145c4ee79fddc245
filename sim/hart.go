// Package sim models a single RISC-V hart's interrupt path in software.
//
// A Hart implements register.Accessor, so it can be installed with
// register.SetAccessor and driven through the interrupt package. Raised
// lines are dispatched at once while MIE is set and held pending otherwise;
// setting MIE drains pending lines, lowest line first. Dispatch follows
// trap entry and mret: MPIE takes MIE, MIE clears, the handler runs, then
// MIE takes MPIE back.
package sim

import (
	"github.com/pkg/errors"

	"rvirq/register"
)

// NumLines is the number of interrupt lines a Hart models.
const NumLines = 32

// Mode is the hart's privilege mode.
type Mode uint8

const (
	ModeMachine Mode = iota
	ModeUser
)

// ErrIllegalInstruction is the panic value when user mode touches mstatus.
var ErrIllegalInstruction = errors.New("sim: illegal instruction")

// ErrNoHandler is returned when raising a line nobody handles.
var ErrNoHandler = errors.New("sim: no handler for interrupt line")

// Hart is a simulated hart. It is not safe for concurrent use; like the
// hardware it models, it has one instruction stream.
type Hart struct {
	mstatus  register.Mstatus
	mode     Mode
	handlers [NumLines]func()
	pending  uint32
	trace    []Event
}

// New returns a hart in machine mode with interrupts enabled.
func New() *Hart {
	return &Hart{mstatus: register.MstatusMIE}
}

// SetMode switches privilege mode.
func (h *Hart) SetMode(m Mode) {
	h.mode = m
}

// Handle installs fn as the handler for line.
func (h *Hart) Handle(line int, fn func()) error {
	if err := checkLine(line); err != nil {
		return err
	}
	if fn == nil {
		return errors.Errorf("sim: nil handler for line %d", line)
	}
	h.handlers[line] = fn
	return nil
}

// Raise asserts line. The handler runs before Raise returns when MIE is
// set; otherwise the line stays pending until MIE is set.
func (h *Hart) Raise(line int) error {
	if err := checkLine(line); err != nil {
		return err
	}
	if h.handlers[line] == nil {
		return errors.Wrapf(ErrNoHandler, "line %d", line)
	}
	h.pending |= 1 << uint(line)
	h.record(Event{Kind: EvtRaise, Line: line})
	h.dispatch()
	return nil
}

// Pending returns the bitmap of lines waiting for MIE.
func (h *Hart) Pending() uint32 {
	return h.pending
}

// Mstatus returns the register without going through the privilege check.
func (h *Hart) Mstatus() register.Mstatus {
	return h.mstatus
}

// Read implements register.Accessor.
func (h *Hart) Read() register.Mstatus {
	h.privileged("csrr mstatus")
	return h.mstatus
}

// SetMIE implements register.Accessor.
func (h *Hart) SetMIE() {
	h.privileged("csrs mstatus")
	h.mstatus |= register.MstatusMIE
	h.record(Event{Kind: EvtSetMIE})
	h.dispatch()
}

// ClearMIE implements register.Accessor.
func (h *Hart) ClearMIE() {
	h.privileged("csrc mstatus")
	h.mstatus &^= register.MstatusMIE
	h.record(Event{Kind: EvtClearMIE})
}

func (h *Hart) privileged(insn string) {
	if h.mode != ModeMachine {
		panic(errors.Wrap(ErrIllegalInstruction, insn))
	}
}

// dispatch takes pending lines while MIE is set.
func (h *Hart) dispatch() {
	for h.mstatus.MIE() && h.pending != 0 {
		line := lowestLine(h.pending)
		h.pending &^= 1 << uint(line)
		h.trap(line)
	}
}

func (h *Hart) trap(line int) {
	// Trap entry: MPIE takes MIE, MIE clears.
	if h.mstatus.MIE() {
		h.mstatus |= register.MstatusMPIE
	} else {
		h.mstatus &^= register.MstatusMPIE
	}
	h.mstatus &^= register.MstatusMIE
	h.record(Event{Kind: EvtTrap, Line: line})

	h.handlers[line]()

	// mret: MIE takes MPIE, MPIE sets.
	if h.mstatus.MPIE() {
		h.mstatus |= register.MstatusMIE
	} else {
		h.mstatus &^= register.MstatusMIE
	}
	h.mstatus |= register.MstatusMPIE
	h.record(Event{Kind: EvtReturn, Line: line})
}

func checkLine(line int) error {
	if line < 0 || line >= NumLines {
		return errors.Errorf("sim: interrupt line %d out of range [0,%d)", line, NumLines)
	}
	return nil
}

func lowestLine(bits uint32) int {
	for i := 0; i < NumLines; i++ {
		if bits&(1<<uint(i)) != 0 {
			return i
		}
	}
	return -1
}
