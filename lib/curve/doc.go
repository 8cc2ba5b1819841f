// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package curve generates and handles CurveZMQ long-term keypairs.
//
// Keys are 32-byte Curve25519 values. Their text form is Z85: exactly
// [KeySizeZ85] (40) characters, which is what configuration files and
// the curve-keygen tool exchange. Secret keys are held in
// [secret.Buffer] values from generation until they are written out.
//
// A keyfile ([WriteKeyfile], [ReadKeyfile]) is a deterministic CBOR
// record holding the public key and either the secret key sealed to
// one or more age recipients, or, when no recipient is given, the
// secret key in plaintext with owner-only permissions.
//
// [Fingerprint] gives a short, domain-separated BLAKE3 digest of a
// public key for logs and confirmation prompts.
package curve
