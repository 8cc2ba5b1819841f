// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package hybrid

import "testing"

func TestResizableStaysInlineWithinCapacity(t *testing.T) {
	buffer := NewResizable[int, Array4[int]]()

	buffer.Resize(2)
	buffer.Resize(3)
	if !buffer.Inline() {
		t.Fatal("Inline() = false after Resize(2), Resize(3) with capacity 4")
	}
	if got := len(buffer.Buf()); got != 4 {
		t.Fatalf("len(Buf()) while inline = %d, want inline capacity 4", got)
	}

	buffer.Resize(4)
	if !buffer.Inline() {
		t.Fatal("Inline() = false after Resize(4) with capacity 4")
	}
}

func TestResizableTransitionCopiesInlineContents(t *testing.T) {
	buffer := NewResizable[int, Array4[int]]()
	buffer.Resize(3)
	copy(buffer.Buf(), []int{1, 2, 3, 4})

	buffer.Resize(10)
	if buffer.Inline() {
		t.Fatal("Inline() = true after Resize(10) with capacity 4")
	}

	view := buffer.Buf()
	if len(view) != 10 {
		t.Fatalf("len(Buf()) = %d, want 10", len(view))
	}
	for index, want := range []int{1, 2, 3, 4, 0, 0, 0, 0, 0, 0} {
		if view[index] != want {
			t.Fatalf("Buf()[%d] = %d, want %d (full view %v)", index, view[index], want, view)
		}
	}
}

func TestResizableNeverReturnsToInline(t *testing.T) {
	buffer := NewResizable[int, Array4[int]]()
	buffer.Resize(10)

	buffer.Resize(5)
	if buffer.Inline() {
		t.Fatal("Inline() = true after shrinking a heap-backed buffer")
	}
	if got := len(buffer.Buf()); got != 5 {
		t.Fatalf("len(Buf()) = %d, want 5", got)
	}

	buffer.Resize(1)
	if buffer.Inline() {
		t.Fatal("Inline() = true after Resize(1) on a heap-backed buffer")
	}
}

func TestResizableHeapGrowthPreservesAndZeroes(t *testing.T) {
	buffer := NewResizable[int, Array4[int]]()
	buffer.Resize(8)
	for index := range buffer.Buf() {
		buffer.Buf()[index] = index + 100
	}

	// Shrink, then grow back into the capacity the shrink left behind.
	// The regrown elements must be zero, not the stale values.
	buffer.Resize(3)
	buffer.Resize(12)

	view := buffer.Buf()
	for index := range 3 {
		if view[index] != index+100 {
			t.Fatalf("Buf()[%d] = %d, want preserved %d", index, view[index], index+100)
		}
	}
	for index := 3; index < 12; index++ {
		if view[index] != 0 {
			t.Fatalf("Buf()[%d] = %d, want 0 after regrow", index, view[index])
		}
	}
}

func TestResizableInlineResizeKeepsContents(t *testing.T) {
	buffer := NewResizable[string, Array8[string]]()
	buffer.Buf()[0] = "kept"
	buffer.Resize(6)
	if got := buffer.Buf()[0]; got != "kept" {
		t.Fatalf("Buf()[0] = %q, want %q", got, "kept")
	}
	if got := buffer.InlineCap(); got != 8 {
		t.Fatalf("InlineCap() = %d, want 8", got)
	}
}

func TestResizableNegativeLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Resize(-1) did not panic")
		}
	}()
	NewResizable[int, Array4[int]]().Resize(-1)
}
