//go:build !tinygo && usermode

package interrupt

import (
	"errors"
	"testing"

	"rvirq/sim"
)

func TestUserModeNeverTouchesMstatus(t *testing.T) {
	h := useHart(t)
	h.SetMode(sim.ModeUser)

	got := Free(func(CriticalSection) int {
		return Free(func(CriticalSection) int { return 5 })
	})
	if got != 5 {
		t.Errorf("Expected 5, got %d", got)
	}
	Disable()
	if len(h.Trace()) != 0 {
		t.Errorf("Expected no register access in user mode, got %v", h.Trace())
	}
}

func TestUserModeRequireMaskingPanics(t *testing.T) {
	if Masking {
		t.Fatalf("Expected Masking false in user mode")
	}
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrMaskingUnavailable) {
			t.Errorf("Expected ErrMaskingUnavailable, got %v", err)
		}
	}()
	RequireMasking()
}
