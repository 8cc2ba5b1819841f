// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

// MonotonicMillis returns MonotonicMicros in milliseconds.
func MonotonicMillis() uint64 { return MonotonicMicros() / 1_000 }
