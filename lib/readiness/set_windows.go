// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package readiness

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/cyrex562/libzmq-rs-sub001/lib/hybrid"
)

// FD is a Winsock SOCKET.
type FD = windows.Handle

// socketSlots is the inline storage of a Set: the count slot plus
// DefaultPollItems sockets.
type socketSlots [1 + DefaultPollItems]windows.Handle

func (s *socketSlots) Slots() []windows.Handle { return s[:] }

// Set is a Winsock fd_set: slot 0 holds the populated count, slots
// 1..count hold the sockets. Slot storage is inline when the set was
// sized for at most DefaultPollItems events.
type Set struct {
	slots *hybrid.Buffer[windows.Handle, socketSlots, *socketSlots]
}

// NewSet returns an empty set with room for expectedEvents sockets.
// Panics if expectedEvents is negative.
func NewSet(expectedEvents int) *Set {
	if expectedEvents < 0 {
		panic(fmt.Sprintf("readiness: negative expected event count %d", expectedEvents))
	}
	return &Set{slots: hybrid.New[windows.Handle, socketSlots](1 + expectedEvents)}
}

// Sizing returns SizedByEventCount.
func (s *Set) Sizing() Sizing { return SizedByEventCount }

func (s *Set) populated() []windows.Handle {
	slots := s.slots.Slice()
	return slots[1 : 1+int(slots[0])]
}

// Add appends fd to the set. Adding a socket twice is a no-op.
func (s *Set) Add(fd FD) error {
	if s.Has(fd) {
		return nil
	}
	slots := s.slots.Slice()
	count := int(slots[0])
	if 1+count >= len(slots) {
		return fmt.Errorf("%w: capacity %d", ErrSetFull, len(slots)-1)
	}
	slots[1+count] = fd
	slots[0] = windows.Handle(count + 1)
	return nil
}

// Remove deletes fd, shifting later sockets down as FD_CLR does.
func (s *Set) Remove(fd FD) {
	slots := s.slots.Slice()
	populated := s.populated()
	for i, socket := range populated {
		if socket == fd {
			copy(populated[i:], populated[i+1:])
			populated[len(populated)-1] = 0
			slots[0]--
			return
		}
	}
}

// Has reports whether fd is in the set.
func (s *Set) Has(fd FD) bool {
	for _, socket := range s.populated() {
		if socket == fd {
			return true
		}
	}
	return false
}

// Len returns the number of sockets in the set.
func (s *Set) Len() int { return int(s.slots.Slice()[0]) }

// Reset empties the set. Only the count is cleared; stale slots past
// it are not part of the valid region.
func (s *Set) Reset() { s.slots.Slice()[0] = 0 }

// Native returns the start of the fd_set memory handed to select. The
// Set keeps ownership; the pointer is valid until Release.
func (s *Set) Native() *windows.Handle { return &s.slots.Slice()[0] }

// ValidBytes returns the size of the count slot plus the populated
// socket slots.
func (s *Set) ValidBytes() uintptr {
	return unsafe.Sizeof(windows.Handle(0)) * uintptr(1+s.Len())
}

// CopyFrom copies the valid region of src into s. s must have been
// created with at least as many slots as src has populated.
func (s *Set) CopyFrom(src *Set) {
	n := 1 + src.Len()
	copy(s.slots.Slice()[:n], src.slots.Slice()[:n])
}

// Release frees heap-backed slot storage. The set is unusable after.
func (s *Set) Release() { s.slots.Release() }
