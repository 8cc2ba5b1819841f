// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package z85 implements the Z85 binary-to-text encoding (ZeroMQ RFC
// 32): every 4 input bytes become 5 printable ASCII characters drawn
// from an 85-symbol alphabet that is safe in source code, configuration
// files and command lines.
//
// Z85 does not pad. [Encode] rejects input whose length is not a
// multiple of 4 and [Decode] rejects text whose length is not a
// non-zero multiple of 5. Callers with arbitrary-length data frame and
// pad it themselves (see lib/payload).
//
// Failures are all-or-nothing: an error is returned together with an
// empty result, never a partial one. Errors are [*Error] values that
// match [ErrInvalidLength], [ErrInvalidCharacter] or [ErrOverflow]
// under errors.Is.
//
// The functions are pure and safe for concurrent use.
package z85
