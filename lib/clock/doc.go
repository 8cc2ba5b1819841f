// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source, a [Stopwatch] for
// bounding poll waits, and raw monotonic readings.
//
// Code that needs the current time, a timeout channel or a sleep takes
// a [Clock] instead of calling the time package directly. Production
// passes [Real]; tests pass [Fake], whose time moves only when Advance
// is called:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	watch := clock.NewStopwatch(c)
//	c.Advance(1500 * time.Microsecond)
//	watch.Intermediate() // 1500
//
// Elapsed time is always measured on a monotonic source. [Real] returns
// time.Now values, which carry Go's monotonic reading, so subtracting
// two of them is immune to wall-clock steps. [MonotonicMicros] and
// [MonotonicMillis] read CLOCK_MONOTONIC directly on unix platforms for
// callers that need a bare integer timestamp.
//
// # FakeClock Synchronization
//
// A goroutine that calls Sleep or After on a FakeClock registers a
// pending waiter. Tests call WaitForTimers to block until the expected
// number of waiters exist, then Advance, which removes the race between
// registration and advancement.
package clock
