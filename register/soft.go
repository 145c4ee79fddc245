package register

import "sync/atomic"

// Soft is a software status register. It stands in for the CSR on the host
// and backs simulated harts.
type Soft struct {
	bits atomic.Uintptr
}

// NewSoft returns a software register holding initial.
func NewSoft(initial Mstatus) *Soft {
	s := &Soft{}
	s.bits.Store(uintptr(initial))
	return s
}

// Read returns the register contents.
func (s *Soft) Read() Mstatus {
	return Mstatus(s.bits.Load())
}

// Store overwrites the whole register.
func (s *Soft) Store(m Mstatus) {
	s.bits.Store(uintptr(m))
}

// SetMIE sets MIE.
func (s *Soft) SetMIE() {
	s.update(func(m Mstatus) Mstatus { return m | MstatusMIE })
}

// ClearMIE clears MIE.
func (s *Soft) ClearMIE() {
	s.update(func(m Mstatus) Mstatus { return m &^ MstatusMIE })
}

func (s *Soft) update(f func(Mstatus) Mstatus) {
	for {
		old := s.bits.Load()
		if s.bits.CompareAndSwap(old, uintptr(f(Mstatus(old)))) {
			return
		}
	}
}
