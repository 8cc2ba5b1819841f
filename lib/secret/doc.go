// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds key material in memory that is zeroed on
// release.
//
// On Linux, [Buffer] memory is an anonymous mmap region outside the Go
// heap, locked into RAM with mlock and excluded from core dumps with
// MADV_DONTDUMP, so the garbage collector never copies it and it never
// reaches swap. On other platforms the buffer is an ordinary heap slice
// that is still zeroed on Close.
//
// Constructors:
//
//   - [New] allocates a zero-filled buffer of a given size
//   - [NewFromBytes] copies into protected memory and zeros the source
//   - [ReadFromPath] reads a trimmed secret from a file or stdin
//
// [Buffer.Equal] compares in constant time. After Close, any access
// panics. Close is idempotent.
//
// Curve secret keys and age identities pass through this package
// between generation, sealing, and output.
package secret
