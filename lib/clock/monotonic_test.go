// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestMonotonicNonDecreasing(t *testing.T) {
	previous := MonotonicMicros()
	for range 1000 {
		current := MonotonicMicros()
		if current < previous {
			t.Fatalf("MonotonicMicros() went backwards: %d after %d", current, previous)
		}
		previous = current
	}
}

func TestMonotonicAdvancesAcrossSleep(t *testing.T) {
	beforeMicros, beforeMillis := MonotonicMicros(), MonotonicMillis()
	Real().Sleep(5 * time.Millisecond)
	afterMicros, afterMillis := MonotonicMicros(), MonotonicMillis()

	if delta := afterMicros - beforeMicros; delta < 5000 {
		t.Fatalf("MonotonicMicros() advanced %dus across a 5ms sleep, want >= 5000", delta)
	}
	if delta := afterMillis - beforeMillis; delta < 4 {
		t.Fatalf("MonotonicMillis() advanced %dms across a 5ms sleep, want >= 4", delta)
	}
}
