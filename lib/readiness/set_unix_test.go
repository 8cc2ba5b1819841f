// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package readiness

import (
	"errors"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

func TestSetIgnoresExpectedCount(t *testing.T) {
	small, large := NewSet(0), NewSet(10_000)
	if small.ValidBytes() != large.ValidBytes() {
		t.Fatalf("ValidBytes differs by expected count: %d vs %d", small.ValidBytes(), large.ValidBytes())
	}
	if got, want := small.ValidBytes(), unsafe.Sizeof(unix.FdSet{}); got != want {
		t.Fatalf("ValidBytes() = %d, want sizeof(fd_set) = %d", got, want)
	}
	if small.Sizing() != SizedByPlatform {
		t.Fatalf("Sizing() = %v, want %v", small.Sizing(), SizedByPlatform)
	}
}

func TestSetValidBytesIndependentOfContents(t *testing.T) {
	set := NewSet(4)
	before := set.ValidBytes()
	for fd := range 100 {
		if err := set.Add(fd); err != nil {
			t.Fatalf("Add(%d) error: %v", fd, err)
		}
	}
	if after := set.ValidBytes(); after != before {
		t.Fatalf("ValidBytes() changed from %d to %d after adding", before, after)
	}
}

func TestSetAddRemove(t *testing.T) {
	set := NewSet(DefaultPollItems)
	for _, fd := range []int{3, 7, 7, 64} {
		if err := set.Add(fd); err != nil {
			t.Fatalf("Add(%d) error: %v", fd, err)
		}
	}
	if set.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", set.Len())
	}
	if set.maxFD != 64 {
		t.Fatalf("maxFD = %d, want 64", set.maxFD)
	}
	if !set.Native().IsSet(7) {
		t.Fatal("Native() does not reflect Add(7)")
	}

	set.Remove(64)
	set.Remove(5)
	if set.Len() != 2 || set.Has(64) {
		t.Fatalf("after Remove(64): Len() = %d, Has(64) = %v", set.Len(), set.Has(64))
	}
	if set.maxFD != 7 {
		t.Fatalf("maxFD after removing highest = %d, want 7", set.maxFD)
	}

	set.Reset()
	if set.Len() != 0 || set.Has(3) || set.maxFD != -1 {
		t.Fatalf("after Reset: Len() = %d, Has(3) = %v, maxFD = %d", set.Len(), set.Has(3), set.maxFD)
	}
}

func TestSetDescriptorRange(t *testing.T) {
	set := NewSet(1)
	for _, fd := range []int{-1, setCapacity} {
		if err := set.Add(fd); !errors.Is(err, ErrDescriptorRange) {
			t.Errorf("Add(%d) error = %v, want ErrDescriptorRange", fd, err)
		}
		if set.Has(fd) {
			t.Errorf("Has(%d) = true", fd)
		}
	}
	if err := set.Add(setCapacity - 1); err != nil {
		t.Fatalf("Add(FD_SETSIZE-1) error: %v", err)
	}
}

func TestSetCopyFrom(t *testing.T) {
	source, destination := NewSet(2), NewSet(2)
	source.Add(5)
	source.Add(9)
	destination.Add(1)

	destination.CopyFrom(source)
	if destination.Has(1) || !destination.Has(5) || !destination.Has(9) {
		t.Fatal("CopyFrom did not replace destination contents")
	}
	if destination.Len() != 2 {
		t.Fatalf("Len() after CopyFrom = %d, want 2", destination.Len())
	}

	// The copy is independent of the source.
	destination.Remove(5)
	if !source.Has(5) {
		t.Fatal("modifying the copy changed the source")
	}
}
