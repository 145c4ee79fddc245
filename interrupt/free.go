package interrupt

import "rvirq/register"

// Free runs f with interrupts disabled and returns its result.
//
// If interrupts were enabled on entry they are enabled again when f
// returns or panics; otherwise they stay disabled. The token passed to f is
// valid only until f returns.
func Free[R any](f func(cs CriticalSection) R) R {
	saved := saveState()
	Disable()
	cs, prev := enter()
	defer exit(saved, prev)
	return f(cs)
}

// Run is Free for functions without a result.
func Run(f func(cs CriticalSection)) {
	saved := saveState()
	Disable()
	cs, prev := enter()
	defer exit(saved, prev)
	f(cs)
}

func exit(saved register.Mstatus, prev uint32) {
	leave(prev)
	if saved.MIE() {
		enable()
	}
}
