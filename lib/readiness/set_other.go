// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly || windows)

package readiness

import (
	"fmt"
	"math/bits"
	"unsafe"

	"github.com/cyrex562/libzmq-rs-sub001/lib/hybrid"
)

// FD is a descriptor number.
type FD = int

// Set is a descriptor bitmap for platforms without select. It keeps the
// Set API available so that portable code compiles; [Waiter.Wait]
// returns ErrNotSupported. The bitmap grows with the highest descriptor
// added and stays inline up to 1024 descriptors.
type Set struct {
	words *hybrid.Resizable[uint64, hybrid.Array16[uint64], *hybrid.Array16[uint64]]
}

// NewSet returns an empty set. expectedEvents is ignored.
func NewSet(expectedEvents int) *Set {
	return &Set{words: hybrid.NewResizable[uint64, hybrid.Array16[uint64]]()}
}

// Sizing returns SizedByPlatform.
func (s *Set) Sizing() Sizing { return SizedByPlatform }

// Add includes fd in the set.
func (s *Set) Add(fd FD) error {
	if fd < 0 {
		return fmt.Errorf("%w: %d", ErrDescriptorRange, fd)
	}
	word := fd / 64
	if word >= len(s.words.Buf()) {
		s.words.Resize(word + 1)
	}
	s.words.Buf()[word] |= 1 << (fd % 64)
	return nil
}

// Remove excludes fd from the set.
func (s *Set) Remove(fd FD) {
	if s.Has(fd) {
		s.words.Buf()[fd/64] &^= 1 << (fd % 64)
	}
}

// Has reports whether fd is in the set.
func (s *Set) Has(fd FD) bool {
	words := s.words.Buf()
	if fd < 0 || fd/64 >= len(words) {
		return false
	}
	return words[fd/64]&(1<<(fd%64)) != 0
}

// Len returns the number of descriptors in the set.
func (s *Set) Len() int {
	count := 0
	for _, word := range s.words.Buf() {
		count += bits.OnesCount64(word)
	}
	return count
}

// Reset empties the set.
func (s *Set) Reset() { clear(s.words.Buf()) }

// Native returns the first bitmap word.
func (s *Set) Native() *uint64 { return &s.words.Buf()[0] }

// ValidBytes returns the size of the bitmap.
func (s *Set) ValidBytes() uintptr {
	return unsafe.Sizeof(uint64(0)) * uintptr(len(s.words.Buf()))
}

// CopyFrom makes s a copy of src.
func (s *Set) CopyFrom(src *Set) {
	srcWords := src.words.Buf()
	if len(srcWords) > len(s.words.Buf()) {
		s.words.Resize(len(srcWords))
	}
	words := s.words.Buf()
	copy(words, srcWords)
	clear(words[len(srcWords):])
}

// Release is a no-op.
func (s *Set) Release() {}
