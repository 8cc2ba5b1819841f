// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hybrid

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is wrapped by every accessor error for an index
// outside [0, Len()).
var ErrIndexOutOfRange = errors.New("hybrid: index out of range")

// Buffer holds a fixed number of elements, inline when the count fits
// in A and in a single heap region otherwise.
//
// The heap region is obtained from the buffer's [Allocator] at
// construction and handed back exactly once by [Buffer.Release]. The
// inline storage is part of the Buffer value and is never passed to the
// allocator.
type Buffer[T, A any, P Inline[T, A]] struct {
	inline A

	// heap is nil while the inline storage is the active region.
	heap []T

	length    int
	allocator Allocator[T]
}

// New returns a buffer of length zero-valued elements whose heap
// region, if one is needed, comes from the Go heap. Panics if length is
// negative.
func New[T, A any, P Inline[T, A]](length int) *Buffer[T, A, P] {
	return NewWithAllocator[T, A, P](length, nil)
}

// NewWithAllocator is New with an explicit allocator for the heap
// region. A nil allocator selects [HeapAllocator]. The allocator is
// consulted only when length exceeds the inline capacity.
func NewWithAllocator[T, A any, P Inline[T, A]](length int, allocator Allocator[T]) *Buffer[T, A, P] {
	if length < 0 {
		panic(fmt.Sprintf("hybrid: negative buffer length %d", length))
	}

	buffer := &Buffer[T, A, P]{length: length}
	if length > len(P(&buffer.inline).Slots()) {
		if allocator == nil {
			allocator = HeapAllocator[T]{}
		}
		buffer.allocator = allocator
		buffer.heap = allocator.Allocate(length)
	}
	return buffer
}

// Len returns the logical element count requested at construction, or
// zero after Release.
func (b *Buffer[T, A, P]) Len() int { return b.length }

// InlineCap returns the number of elements the inline storage holds.
func (b *Buffer[T, A, P]) InlineCap() int { return len(P(&b.inline).Slots()) }

// Inline reports whether the inline storage is the active region.
func (b *Buffer[T, A, P]) Inline() bool { return b.heap == nil }

// Slice returns the active region, exactly Len() elements long. Writes
// through the slice are visible to later accessor calls. The slice must
// not be retained past Release.
func (b *Buffer[T, A, P]) Slice() []T {
	if b.heap != nil {
		return b.heap
	}
	return P(&b.inline).Slots()[:b.length]
}

// At returns a pointer to the element at index.
func (b *Buffer[T, A, P]) At(index int) (*T, error) {
	if index < 0 || index >= b.length {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, b.length)
	}
	if b.heap != nil {
		return &b.heap[index], nil
	}
	return &P(&b.inline).Slots()[index], nil
}

// Get returns the element at index.
func (b *Buffer[T, A, P]) Get(index int) (T, error) {
	element, err := b.At(index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *element, nil
}

// Set stores value at index.
func (b *Buffer[T, A, P]) Set(index int, value T) error {
	element, err := b.At(index)
	if err != nil {
		return err
	}
	*element = value
	return nil
}

// Release returns the heap region to the allocator if one was
// allocated. The buffer is empty afterwards. Release is idempotent:
// the region is freed at most once, and an inline buffer never calls
// the allocator.
func (b *Buffer[T, A, P]) Release() {
	if b.heap != nil {
		region := b.heap
		b.heap = nil
		b.allocator.Free(region)
	}
	b.length = 0
}
