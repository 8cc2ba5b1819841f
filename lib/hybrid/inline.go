// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hybrid

// Inline is the constraint satisfied by a pointer to the array type A
// that holds a buffer's inline elements. Buffers store an A by value,
// so a buffer whose length fits needs no allocation beyond its own.
type Inline[T, A any] interface {
	*A
	Slots() []T
}

// Array4 is inline storage for 4 elements.
type Array4[T any] [4]T

// Slots returns the storage as a slice.
func (a *Array4[T]) Slots() []T { return a[:] }

// Array8 is inline storage for 8 elements.
type Array8[T any] [8]T

// Slots returns the storage as a slice.
func (a *Array8[T]) Slots() []T { return a[:] }

// Array16 is inline storage for 16 elements.
type Array16[T any] [16]T

// Slots returns the storage as a slice.
func (a *Array16[T]) Slots() []T { return a[:] }

// Array32 is inline storage for 32 elements.
type Array32[T any] [32]T

// Slots returns the storage as a slice.
func (a *Array32[T]) Slots() []T { return a[:] }

// Array64 is inline storage for 64 elements.
type Array64[T any] [64]T

// Slots returns the storage as a slice.
func (a *Array64[T]) Slots() []T { return a[:] }
