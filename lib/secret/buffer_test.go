// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import "testing"

func TestNew(t *testing.T) {
	buffer, err := New(64)
	if err != nil {
		t.Fatalf("New(64) error: %v", err)
	}
	defer buffer.Close()

	if buffer.Len() != 64 {
		t.Fatalf("Len() = %d, want 64", buffer.Len())
	}
	for index, value := range buffer.Bytes() {
		if value != 0 {
			t.Fatalf("Bytes()[%d] = %d, want 0", index, value)
		}
	}
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := New(size); err == nil {
			t.Errorf("New(%d) succeeded, want error", size)
		}
	}
}

func TestNewFromBytesZerosSource(t *testing.T) {
	source := []byte("JTKVSB%%)wK0E.X)V>+}o?pNmC{O&4W4b!Ni{Lh6")
	original := string(source)

	buffer, err := NewFromBytes(source)
	if err != nil {
		t.Fatalf("NewFromBytes() error: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != original {
		t.Fatalf("String() = %q, want %q", got, original)
	}
	for index, value := range source {
		if value != 0 {
			t.Fatalf("source[%d] = %d after NewFromBytes, want 0", index, value)
		}
	}
}

func TestNewFromBytesEmpty(t *testing.T) {
	if _, err := NewFromBytes(nil); err == nil {
		t.Fatal("NewFromBytes(nil) succeeded, want error")
	}
}

func TestEqual(t *testing.T) {
	buffer, err := NewFromBytes([]byte("key"))
	if err != nil {
		t.Fatalf("NewFromBytes() error: %v", err)
	}
	defer buffer.Close()

	if !buffer.Equal([]byte("key")) {
		t.Error("Equal(same) = false")
	}
	if buffer.Equal([]byte("kez")) {
		t.Error("Equal(different) = true")
	}
	if buffer.Equal([]byte("keys")) {
		t.Error("Equal(longer) = true")
	}
}

func TestCloseZerosAndIsIdempotent(t *testing.T) {
	buffer, err := NewFromBytes([]byte("sensitive"))
	if err != nil {
		t.Fatalf("NewFromBytes() error: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("second Close() error: %v", err)
	}
	if buffer.Len() != 0 {
		t.Fatalf("Len() after Close = %d, want 0", buffer.Len())
	}
}

func TestAccessAfterClosePanics(t *testing.T) {
	for name, access := range map[string]func(*Buffer){
		"Bytes":  func(b *Buffer) { b.Bytes() },
		"String": func(b *Buffer) { _ = b.String() },
	} {
		t.Run(name, func(t *testing.T) {
			buffer, err := New(8)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			buffer.Close()
			defer func() {
				if recover() == nil {
					t.Fatalf("%s after Close did not panic", name)
				}
			}()
			access(buffer)
		})
	}
}
