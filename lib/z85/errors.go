// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package z85

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure kind. Every error returned by this
// package wraps exactly one of them.
var (
	// ErrInvalidLength: binary input not a multiple of 4 bytes, or text
	// input empty or not a multiple of 5 characters.
	ErrInvalidLength = errors.New("z85: invalid length")

	// ErrInvalidCharacter: a character outside the Z85 alphabet.
	ErrInvalidCharacter = errors.New("z85: invalid character")

	// ErrOverflow: a 5-character group whose value does not fit in 32
	// bits.
	ErrOverflow = errors.New("z85: group overflows 32 bits")
)

// Error describes a failed encode or decode.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind error

	// Offset is the input position the failure refers to: the input
	// length for ErrInvalidLength, the character index for
	// ErrInvalidCharacter, the start of the group for ErrOverflow.
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Kind, e.Offset)
}

// Unwrap returns Kind so errors.Is matches the sentinel.
func (e *Error) Unwrap() error { return e.Kind }
