//go:build !tinygo

package register

// Masking reports whether this build masks real interrupts. On the host the
// installed accessor models the enable bit faithfully.
const Masking = true

// accessor backs the package functions on the host. It starts as a
// software register with interrupts enabled, as on a running system.
var accessor Accessor = NewSoft(MstatusMIE)

// SetAccessor installs a (regular Go only) and returns the previous accessor.
// Tests use it to attach a simulated hart.
func SetAccessor(a Accessor) Accessor {
	if a == nil {
		panic("register: nil accessor")
	}
	prev := accessor
	accessor = a
	return prev
}

// Read returns the current register contents.
func Read() Mstatus {
	return accessor.Read()
}

// SetMIE sets the machine interrupt enable bit.
func SetMIE() {
	accessor.SetMIE()
}

// ClearMIE clears the machine interrupt enable bit.
func ClearMIE() {
	accessor.ClearMIE()
}
