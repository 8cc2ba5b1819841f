// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package hybrid provides buffers that keep small element counts in
// inline storage and fall back to a heap region only when the
// requested length exceeds that inline capacity.
//
// The inline capacity is carried by the array type used as storage.
// [Array4], [Array8], [Array16], [Array32] and [Array64] cover the
// common sizes; any array type whose pointer implements Slots() []T
// satisfies the [Inline] constraint, so callers with a platform-specific
// capacity declare their own:
//
//	type pollSlots [17]windows.Handle
//
//	func (s *pollSlots) Slots() []windows.Handle { return s[:] }
//
//	set := hybrid.New[windows.Handle, pollSlots](1 + events)
//
// Two buffer shapes are provided:
//
//   - [Buffer] -- fixed logical length chosen at construction. Inline
//     when the length fits, otherwise backed by exactly one heap region
//     obtained from an [Allocator] and returned by [Buffer.Release].
//   - [Resizable] -- starts inline and grows. The first resize past the
//     inline capacity moves the contents to the heap; that move is
//     one-way for the buffer's lifetime.
//
// Which region is active is tracked as explicit state, never by
// comparing addresses. Element access is bounds checked:
// out-of-range indexes return an error wrapping [ErrIndexOutOfRange].
//
// Neither buffer is safe for concurrent use. A buffer must not be
// copied after construction.
package hybrid
