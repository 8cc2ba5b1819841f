// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload frames arbitrary binary payloads as Z85 text.
//
// Z85 itself only accepts input whose length is a multiple of four.
// [Pack] prepends an 8-byte header, optionally compresses the body, and
// zero-pads the result to a four-byte boundary before encoding:
//
//	offset  size  field
//	0       1     compression tag (0 none, 1 lz4, 2 zstd)
//	1       1     number of padding bytes after the body (0-3)
//	2       2     reserved, zero
//	4       4     uncompressed length, big-endian
//	8       n     body, followed by padding
//
// [Unpack] validates the header, strips the padding, decompresses, and
// checks the length. Data that does not shrink under the requested
// algorithm is stored uncompressed, so the tag in a packed payload may
// differ from the one asked for.
package payload
