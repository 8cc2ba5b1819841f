// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hybrid

import (
	"fmt"
	"slices"
)

// Resizable is a growable buffer that starts in inline storage. The
// caller tracks the logical length; the buffer only tracks which region
// is active and how large the heap region is.
//
// Once a Resize moves the contents to the heap, the buffer stays there:
// later resizes (including shrinking ones) operate on the heap region.
type Resizable[T, A any, P Inline[T, A]] struct {
	inline A
	heap   []T
	onHeap bool
}

// NewResizable returns an inline-backed buffer.
func NewResizable[T, A any, P Inline[T, A]]() *Resizable[T, A, P] {
	return &Resizable[T, A, P]{}
}

// Resize prepares the buffer for length elements. Panics if length is
// negative.
//
// Heap-backed buffers resize the heap region to length, keeping
// existing elements and zeroing any new ones. An inline buffer asked
// for more than its inline capacity moves to a heap region of length
// elements whose prefix is a copy of the whole inline storage. An
// inline buffer asked for no more than its capacity is left alone.
func (r *Resizable[T, A, P]) Resize(length int) {
	if length < 0 {
		panic(fmt.Sprintf("hybrid: negative buffer length %d", length))
	}

	inline := P(&r.inline).Slots()
	switch {
	case r.onHeap:
		r.heap = resizeRegion(r.heap, length)
	case length > len(inline):
		heap := make([]T, length)
		copy(heap, inline)
		r.heap = heap
		r.onHeap = true
	}
}

// Buf returns the active region: the heap region at its current length,
// or the entire inline storage.
func (r *Resizable[T, A, P]) Buf() []T {
	if r.onHeap {
		return r.heap
	}
	return P(&r.inline).Slots()
}

// Inline reports whether the inline storage is still the active region.
func (r *Resizable[T, A, P]) Inline() bool { return !r.onHeap }

// InlineCap returns the number of elements the inline storage holds.
func (r *Resizable[T, A, P]) InlineCap() int { return len(P(&r.inline).Slots()) }

// resizeRegion returns region resized to length. Elements past the old
// length are zero even when the backing array already had room for
// them from an earlier, larger size.
func resizeRegion[T any](region []T, length int) []T {
	if length <= len(region) {
		return region[:length]
	}
	previous := len(region)
	region = slices.Grow(region, length-previous)[:length]
	clear(region[previous:])
	return region
}
