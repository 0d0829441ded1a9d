package tendril

import "sync/atomic"

// Atomicity selects how a Tendril's sharing refcount is updated,
// selected at compile time via the type parameter (NonAtomic vs. Atomic)
// used to choose between Rc- and Arc-like sharing. Go has no !Send
// auto-trait to enforce the choice at compile time the way Rust does,
// so it is purely the caller's responsibility to only share a
// NonAtomic-parametrized Tendril within a single goroutine.
type Atomicity interface {
	// Inc increments *counter and returns the new value.
	Inc(counter *uint32) uint32
	// Dec decrements *counter and returns the new value.
	Dec(counter *uint32) uint32
	// Load reads *counter.
	Load(counter *uint32) uint32
}

// NonAtomic performs plain, unsynchronized refcount updates. It is the
// default and cheapest choice, correct only when a Tendril value (and
// every clone sharing its buffer) stays on one goroutine.
type NonAtomic struct{}

func (NonAtomic) Inc(counter *uint32) uint32 {
	*counter++
	return *counter
}

func (NonAtomic) Dec(counter *uint32) uint32 {
	*counter--
	return *counter
}

func (NonAtomic) Load(counter *uint32) uint32 {
	return *counter
}

// Atomic performs refcount updates with sync/atomic, making it safe to
// hand clones of the same Tendril across goroutines.
type Atomic struct{}

func (Atomic) Inc(counter *uint32) uint32 {
	return atomic.AddUint32(counter, 1)
}

func (Atomic) Dec(counter *uint32) uint32 {
	return atomic.AddUint32(counter, ^uint32(0))
}

func (Atomic) Load(counter *uint32) uint32 {
	return atomic.LoadUint32(counter)
}
