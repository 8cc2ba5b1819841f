// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Z85 converts between binary data and Z85 text. encode and decode are
// the raw codec and require 4-byte aligned input; pack and unpack frame
// arbitrary data with a compression header first.
// Subcommands: encode, decode, pack, unpack, version.
package main
