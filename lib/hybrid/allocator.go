// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hybrid

import (
	"sync"
	"sync/atomic"

	"github.com/cyrex562/libzmq-rs-sub001/lib/counter"
)

// Allocator supplies the heap regions of buffers whose length exceeds
// their inline capacity.
type Allocator[T any] interface {
	// Allocate returns a region of exactly n zero-valued elements.
	Allocate(n int) []T

	// Free takes back a region previously returned by Allocate. The
	// caller must not use the region afterwards.
	Free(region []T)
}

// HeapAllocator allocates regions with make and leaves reclamation to
// the garbage collector.
type HeapAllocator[T any] struct{}

// Allocate returns make([]T, n).
func (HeapAllocator[T]) Allocate(n int) []T { return make([]T, n) }

// Free does nothing.
func (HeapAllocator[T]) Free([]T) {}

// Element-count size classes for PoolAllocator. Requests larger than
// the last class are allocated directly and dropped on Free.
var sizeClasses = [...]int{
	32,
	64,
	128,
	256,
	512,
	1024,
	4096,
	16384,
	65536,
}

// sizeClassIndex returns the index of the smallest class holding n
// elements, or -1 if n is larger than every class.
func sizeClassIndex(n int) int {
	for index, class := range sizeClasses {
		if n <= class {
			return index
		}
	}
	return -1
}

// PoolAllocator recycles heap regions through one sync.Pool per size
// class, so a hot loop that repeatedly builds oversized buffers reuses
// the same few regions. The zero value is ready to use. A PoolAllocator
// is safe for concurrent use and must not be copied after first use.
type PoolAllocator[T any] struct {
	classes [len(sizeClasses)]sync.Pool

	inUse     counter.Counter
	allocated atomic.Uint64
	reused    atomic.Uint64
}

// PoolStats is a snapshot of PoolAllocator activity.
type PoolStats struct {
	// Allocated counts regions created with make.
	Allocated uint64

	// Reused counts Allocate calls satisfied from a pool.
	Reused uint64

	// InUse is the number of regions handed out and not yet freed.
	InUse int32
}

// Allocate returns a zeroed region of n elements, reusing a pooled
// region of the matching size class when one is available.
func (p *PoolAllocator[T]) Allocate(n int) []T {
	p.inUse.Inc()

	index := sizeClassIndex(n)
	if index < 0 {
		p.allocated.Add(1)
		return make([]T, n)
	}

	if pooled, ok := p.classes[index].Get().(*[]T); ok {
		p.reused.Add(1)
		region := (*pooled)[:n]
		clear(region)
		return region
	}

	p.allocated.Add(1)
	return make([]T, n, sizeClasses[index])
}

// Free returns region to the pool of its size class. Regions whose
// capacity is not exactly a class size (oversized requests, or slices
// not produced by this allocator) are left to the garbage collector.
func (p *PoolAllocator[T]) Free(region []T) {
	p.inUse.Dec()

	index := sizeClassIndex(cap(region))
	if index < 0 || sizeClasses[index] != cap(region) {
		return
	}
	region = region[:cap(region)]
	p.classes[index].Put(&region)
}

// Stats returns current allocation counters.
func (p *PoolAllocator[T]) Stats() PoolStats {
	return PoolStats{
		Allocated: p.allocated.Load(),
		Reused:    p.reused.Load(),
		InUse:     p.inUse.Get(),
	}
}
