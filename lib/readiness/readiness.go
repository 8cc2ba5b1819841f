// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package readiness

import (
	"errors"
	"math"
	"time"
)

// DefaultPollItems is the number of events a Windows Set holds without
// allocating.
const DefaultPollItems = 16

// Infinite is the timeout meaning "block until something is ready".
// Any negative timeout is treated the same way.
const Infinite time.Duration = -1

// maxTimeout is the largest timeout select is ever asked to wait in one
// call: math.MaxInt32 milliseconds.
const maxTimeout = time.Duration(math.MaxInt32) * time.Millisecond

var (
	// ErrNotSupported is returned by [Waiter.Wait] on platforms where
	// select is not available.
	ErrNotSupported = errors.New("readiness: select not supported on this platform")

	// ErrDescriptorRange is returned when a descriptor cannot be
	// represented in a Set (negative, or at or beyond FD_SETSIZE).
	ErrDescriptorRange = errors.New("readiness: descriptor out of range")

	// ErrSetFull is returned when a counted Set has no free slot.
	ErrSetFull = errors.New("readiness: set full")

	// ErrNoDescriptors is returned by an infinite wait with nothing
	// registered and no way to be cancelled.
	ErrNoDescriptors = errors.New("readiness: infinite wait with no descriptors")
)

// Sizing describes how a Set's storage is dimensioned.
type Sizing int

const (
	// SizedByPlatform sets have a fixed platform-defined size. The
	// expected event count is ignored.
	SizedByPlatform Sizing = iota

	// SizedByEventCount sets are dimensioned from the expected event
	// count passed to NewSet.
	SizedByEventCount
)

// String returns the sizing name.
func (s Sizing) String() string {
	switch s {
	case SizedByPlatform:
		return "platform"
	case SizedByEventCount:
		return "event-count"
	default:
		return "unknown"
	}
}

// ValidBytes returns the number of bytes of set that carry meaning and
// must be copied when duplicating it.
func ValidBytes(set *Set) uintptr { return set.ValidBytes() }

// ComputeTimeout returns how long the next select pass may block.
//
// The first pass never blocks, so already-ready descriptors are
// reported without a wait. A negative timeout yields [Infinite]. A
// non-negative timeout yields the time remaining after elapsed, never
// negative and never above math.MaxInt32 milliseconds.
func ComputeTimeout(firstPass bool, timeout, elapsed time.Duration) time.Duration {
	if firstPass {
		return 0
	}
	if timeout < 0 {
		return Infinite
	}
	remaining := timeout - elapsed
	if remaining < 0 {
		return 0
	}
	return min(remaining, maxTimeout)
}
