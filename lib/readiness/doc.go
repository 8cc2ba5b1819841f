// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package readiness manages the descriptor sets handed to select(2) and
// the wait loop built on them.
//
// A [Set] owns the memory the kernel reads and writes. Its shape
// depends on the platform:
//
//   - On unix platforms a Set is one fixed unix.FdSet. The expected
//     event count passed to [NewSet] is ignored and [Set.ValidBytes] is
//     always the full size of the fd_set.
//   - On Windows a Set is a counted SOCKET array: slot 0 holds the
//     number of populated sockets and slots 1..n hold the sockets. The
//     array lives in a hybrid buffer of 1+[DefaultPollItems] inline
//     slots, so sets sized for up to sixteen events never allocate.
//     [Set.ValidBytes] covers only the count and the populated slots.
//
// [Set.Sizing] reports which of the two models is in effect, so
// portable callers can decide whether the expected count matters.
//
// [Waiter] runs the select loop: it copies the valid prefix of each
// interest set into a result set before every call, makes the first
// pass non-blocking, and bounds later passes with a [clock.Stopwatch]
// and [ComputeTimeout]. Interrupted calls (EINTR) are retried.
//
// [Set] is not safe for concurrent use. A [Waiter] serializes its own
// state but is intended to be owned by one goroutine.
package readiness
