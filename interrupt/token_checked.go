//go:build !interrupt_nocheck

package interrupt

// Checked reports whether tokens are validated at runtime.
const Checked = true

// CriticalSection is proof that interrupts are disabled. Only Free and Run
// hand out valid tokens; the zero value is never valid.
type CriticalSection struct {
	_      [0]func()
	region uint32
}

// Region bookkeeping. On builds that mask, only touched with interrupts
// disabled. On builds that cannot mask, a handler may run anywhere in enter
// or leave; it opens and closes its own region and puts live back the way
// it found it, so the interrupted code sees no change. The one window left
// is a handler preempting between regions++ and the read of regions: both
// then share a region number, and a token escaping the handler would pass
// Check in the interrupted region.
var (
	depth   uint32 // nesting depth of the live region
	live    uint32 // number of the live region, 0 when none
	regions uint32 // last region number issued

	// testHookOpened runs after a new region is published. Tests use it
	// to preempt enter the way a handler would on a non-masking build.
	testHookOpened func()
)

// enter opens or joins a region and returns its token together with the
// live region it found, which leave restores.
func enter() (CriticalSection, uint32) {
	prev := live
	r := live
	if depth == 0 {
		regions++
		if regions == 0 {
			regions = 1
		}
		r = regions
		live = r
		if testHookOpened != nil {
			testHookOpened()
		}
	}
	depth++
	return CriticalSection{region: r}, prev
}

func leave(prev uint32) {
	depth--
	if depth == 0 {
		live = prev
	}
}

// Check panics with ErrTokenOutsideRegion unless cs belongs to the live
// critical section.
func (cs CriticalSection) Check() {
	if cs.region == 0 || cs.region != live {
		panic(ErrTokenOutsideRegion)
	}
}

// InCriticalSection reports whether a Free or Run call is active.
func InCriticalSection() bool {
	return depth > 0
}

func checkEnable() {
	if depth > 0 {
		panic(ErrEnableInCriticalSection)
	}
}
