// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package counter

import "sync/atomic"

// Counter is a lock-free int32 counter. The zero value is a counter at
// zero, ready to use. A Counter must not be copied after first use.
type Counter struct {
	value atomic.Int32
}

// New returns a counter at zero.
func New() *Counter { return &Counter{} }

// NewWithValue returns a counter holding value.
func NewWithValue(value int32) *Counter {
	counter := &Counter{}
	counter.value.Store(value)
	return counter
}

// Set stores value.
func (c *Counter) Set(value int32) { c.value.Store(value) }

// Get returns the current value.
func (c *Counter) Get() int32 { return c.value.Load() }

// Inc adds one and returns the value before the increment.
func (c *Counter) Inc() int32 { return c.value.Add(1) - 1 }

// Dec subtracts one and reports whether the value before the decrement
// was at least one. The stored value is not clamped: decrementing zero
// leaves -1 and returns false.
func (c *Counter) Dec() bool { return c.value.Add(-1)+1 >= 1 }

// Add adds increment and returns the value before the addition.
func (c *Counter) Add(increment int32) int32 {
	return c.value.Add(increment) - increment
}

// Sub subtracts decrement and reports whether the value before the
// subtraction differed from decrement. For a reference count this is
// false exactly when the last references were dropped.
func (c *Counter) Sub(decrement int32) bool {
	return c.value.Add(-decrement)+decrement != decrement
}
