package interrupt

// Mutex holds a value shared between normal code and interrupt handlers.
// The value is reached only through Borrow, which demands a CriticalSection.
type Mutex[T any] struct {
	inner T
}

// NewMutex returns a Mutex holding v.
func NewMutex[T any](v T) *Mutex[T] {
	return &Mutex[T]{inner: v}
}

// Borrow returns the protected value. The pointer must not be kept past the
// critical section cs belongs to.
func (m *Mutex[T]) Borrow(cs CriticalSection) *T {
	cs.Check()
	return &m.inner
}

// Update runs f on the protected value inside its own critical section.
func (m *Mutex[T]) Update(f func(v *T)) {
	Run(func(cs CriticalSection) {
		f(m.Borrow(cs))
	})
}
