// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealed encrypts key material to age recipients so that a
// Curve secret key can be written to disk or passed through a pipe
// without appearing in plaintext.
//
// [Seal] encrypts to one or more age x25519 public keys and returns
// base64 text, which fits in a keyfile field or a terminal.
// [Open] reverses it with an age identity held in a [secret.Buffer]
// and returns the plaintext in a new secret.Buffer. [GenerateIdentity]
// creates an identity for operators who do not have one yet.
package sealed
