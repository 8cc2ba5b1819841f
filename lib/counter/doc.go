// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package counter provides a lock-free signed 32-bit counter for
// reference and usage bookkeeping.
//
// A [Counter] is meant to live next to the object it tracks (as a
// struct field, or behind the same pointer) rather than as a global.
// Every operation is a single sync/atomic instruction, which in Go is
// sequentially consistent: all goroutines observe increments,
// decrements and stores on one Counter in a single total order.
//
// Return values are deliberately asymmetric. [Counter.Inc] and
// [Counter.Add] return the value held before the change. [Counter.Dec]
// reports only whether the prior value was at least one, and
// [Counter.Sub] reports whether the prior value differed from the
// amount subtracted (that is, whether references remain). Neither
// clamps the stored value, which may go negative.
package counter
