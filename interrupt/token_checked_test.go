//go:build !tinygo && !interrupt_nocheck

package interrupt

import (
	"errors"
	"testing"
)

// expectPanic runs f and reports whether it panicked with want.
func expectPanic(t *testing.T, want error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Errorf("Expected panic %v, got %v", want, r)
		}
	}()
	f()
}

func TestForgedTokenRejected(t *testing.T) {
	useHart(t)
	m := NewMutex(0)

	expectPanic(t, ErrTokenOutsideRegion, func() {
		m.Borrow(CriticalSection{})
	})

	// A forged token is rejected inside a live region too
	Run(func(CriticalSection) {
		expectPanic(t, ErrTokenOutsideRegion, func() {
			m.Borrow(CriticalSection{})
		})
	})
}

func TestEscapedTokenRejected(t *testing.T) {
	useHart(t)
	m := NewMutex("state")

	leaked := Free(func(cs CriticalSection) CriticalSection { return cs })
	expectPanic(t, ErrTokenOutsideRegion, func() {
		m.Borrow(leaked)
	})

	// Still rejected once a later region is live
	Run(func(CriticalSection) {
		expectPanic(t, ErrTokenOutsideRegion, func() {
			m.Borrow(leaked)
		})
	})
}

func TestOuterTokenValidInNestedRegion(t *testing.T) {
	useHart(t)
	m := NewMutex(1)

	Run(func(outer CriticalSection) {
		Run(func(inner CriticalSection) {
			*m.Borrow(outer) += 1
			*m.Borrow(inner) += 1
		})
		if got := *m.Borrow(outer); got != 3 {
			t.Errorf("Expected 3, got %d", got)
		}
	})
}

func TestEnableInsideCriticalSectionPanics(t *testing.T) {
	h := useHart(t)

	expectPanic(t, ErrEnableInCriticalSection, func() {
		Run(func(CriticalSection) {
			Enable()
		})
	})
	if !h.Mstatus().MIE() {
		t.Errorf("Expected interrupts restored after rejected Enable")
	}
	if InCriticalSection() {
		t.Errorf("Expected no live critical section")
	}
}

func TestInCriticalSection(t *testing.T) {
	useHart(t)
	if InCriticalSection() {
		t.Fatalf("Expected no live critical section before Run")
	}
	Run(func(CriticalSection) {
		if !InCriticalSection() {
			t.Errorf("Expected live critical section inside Run")
		}
	})
	if InCriticalSection() {
		t.Errorf("Expected no live critical section after Run")
	}
	if !Checked {
		t.Errorf("Expected checked build")
	}
}

func TestHandlerPreemptingRegionOpenKeepsTokenValid(t *testing.T) {
	useHart(t)
	m := NewMutex(0)
	defer func() { testHookOpened = nil }()

	// A build that cannot mask lets a handler run right after the
	// interrupted code published its region.
	handlerRan := false
	testHookOpened = func() {
		testHookOpened = nil
		Run(func(cs CriticalSection) {
			*m.Borrow(cs) += 10
			handlerRan = true
		})
	}

	Run(func(cs CriticalSection) {
		*m.Borrow(cs) += 1
	})

	if !handlerRan {
		t.Fatalf("Expected handler to run inside region open")
	}
	if InCriticalSection() {
		t.Errorf("Expected no live critical section afterwards")
	}
	if got := Free(func(cs CriticalSection) int { return *m.Borrow(cs) }); got != 11 {
		t.Errorf("Expected 11, got %d", got)
	}
}
