package util

import "sync/atomic"

// SafeCounter is a monotonic counter that is safe to use concurrently.
type SafeCounter struct {
	value atomic.Int64
}

// NewSafeCounter creates a new SafeCounter starting at zero.
func NewSafeCounter() *SafeCounter {
	return &SafeCounter{}
}

// Increment increments the counter's value and returns the new value.
func (sc *SafeCounter) Increment() int64 {
	return sc.value.Add(1)
}

// Value returns the current value of the counter.
func (sc *SafeCounter) Value() int64 {
	return sc.value.Load()
}

// SafeFlag is a boolean that is safe to use concurrently.
type SafeFlag struct {
	value atomic.Bool
}

// NewSafeFlag creates a new SafeFlag with an initial value.
func NewSafeFlag(initial bool) *SafeFlag {
	sf := &SafeFlag{}
	sf.value.Store(initial)
	return sf
}

// Set sets the value of the flag and returns the previous value.
func (sf *SafeFlag) Set(newValue bool) bool {
	return sf.value.Swap(newValue)
}

// Value returns the current value of the flag.
func (sf *SafeFlag) Value() bool {
	return sf.value.Load()
}
