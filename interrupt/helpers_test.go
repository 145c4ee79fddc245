//go:build !tinygo

package interrupt

import (
	"testing"

	"rvirq/register"
	"rvirq/sim"
)

// useHart installs a fresh simulated hart as the status register for the
// duration of the test.
func useHart(t *testing.T) *sim.Hart {
	t.Helper()
	h := sim.New()
	prev := register.SetAccessor(h)
	t.Cleanup(func() { register.SetAccessor(prev) })
	return h
}

// countKind counts trace events of kind k.
func countKind(events []sim.Event, k sim.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == k {
			n++
		}
	}
	return n
}
