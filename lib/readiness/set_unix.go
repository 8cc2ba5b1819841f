// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package readiness

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// FD is a descriptor as select(2) sees it.
type FD = int

// setCapacity is FD_SETSIZE, derived from the FdSet layout.
const setCapacity = len(unix.FdSet{}.Bits) * int(unsafe.Sizeof(unix.FdSet{}.Bits[0])) * 8

// Set is one fixed fd_set plus bookkeeping for the highest descriptor,
// which select needs as its nfds argument.
type Set struct {
	fds   unix.FdSet
	count int
	maxFD int
}

// NewSet returns an empty set. expectedEvents is ignored: an fd_set
// has a fixed size on this platform.
func NewSet(expectedEvents int) *Set {
	return &Set{maxFD: -1}
}

// Sizing returns SizedByPlatform.
func (s *Set) Sizing() Sizing { return SizedByPlatform }

// Add includes fd in the set. Adding a descriptor twice is a no-op.
func (s *Set) Add(fd FD) error {
	if fd < 0 || fd >= setCapacity {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrDescriptorRange, fd, setCapacity)
	}
	if s.fds.IsSet(fd) {
		return nil
	}
	s.fds.Set(fd)
	s.count++
	s.maxFD = max(s.maxFD, fd)
	return nil
}

// Remove excludes fd from the set.
func (s *Set) Remove(fd FD) {
	if !s.Has(fd) {
		return
	}
	s.fds.Clear(fd)
	s.count--
	if fd == s.maxFD {
		s.maxFD = s.highestSet(fd - 1)
	}
}

// Has reports whether fd is in the set.
func (s *Set) Has(fd FD) bool {
	if fd < 0 || fd >= setCapacity {
		return false
	}
	return s.fds.IsSet(fd)
}

// Len returns the number of descriptors in the set.
func (s *Set) Len() int { return s.count }

// Reset empties the set.
func (s *Set) Reset() {
	s.fds.Zero()
	s.count = 0
	s.maxFD = -1
}

// Native returns the fd_set handed to select. The Set keeps ownership;
// the pointer is valid as long as the Set is.
func (s *Set) Native() *unix.FdSet { return &s.fds }

// ValidBytes returns the size of the fd_set.
func (s *Set) ValidBytes() uintptr { return unsafe.Sizeof(s.fds) }

// CopyFrom makes s a copy of src. The whole fd_set is valid on this
// platform, so the copy is a plain assignment.
func (s *Set) CopyFrom(src *Set) {
	s.fds = src.fds
	s.count = src.count
	s.maxFD = src.maxFD
}

// Release is a no-op: the fd_set is part of the Set value.
func (s *Set) Release() {}

// recount rebuilds count and maxFD after the kernel rewrote the bits.
// Only descriptors up to the pre-select maxFD can be set.
func (s *Set) recount() {
	count := 0
	for fd := 0; fd <= s.maxFD; fd++ {
		if s.fds.IsSet(fd) {
			count++
		}
	}
	s.count = count
	s.maxFD = s.highestSet(s.maxFD)
}

// highestSet returns the highest set descriptor at or below from, or -1.
func (s *Set) highestSet(from int) int {
	for fd := from; fd >= 0; fd-- {
		if s.fds.IsSet(fd) {
			return fd
		}
	}
	return -1
}
