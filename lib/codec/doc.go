// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the shared CBOR encoding configuration for
// on-disk records such as Curve keyfiles.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. The
// same logical record always produces identical bytes, so a keyfile
// can be compared or hashed byte-for-byte.
//
//	data, err := codec.Marshal(record)
//	err = codec.Unmarshal(data, &record)
//
// The decoder rejects duplicate map keys: a keyfile with two "secret"
// entries is malformed, not ambiguous.
package codec
