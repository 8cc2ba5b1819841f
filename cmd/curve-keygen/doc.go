// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Curve-keygen generates CurveZMQ long-term keypairs and prints them in
// Z85 text form. With --seal-to the secret key is sealed to age
// recipients before it leaves the process; with --out the keypair is
// written to a keyfile instead of printed. --derive recomputes the
// public key for an existing Z85 secret key, and --age-identity
// creates an age identity to seal to.
package main
