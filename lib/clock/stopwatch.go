// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Stopwatch measures time elapsed since it was created. Readings never
// decrease: the start and every later reading come from the same
// monotonic Clock, and a negative difference is reported as zero.
type Stopwatch struct {
	clock Clock
	start time.Time
}

// NewStopwatch starts a stopwatch on clock.
func NewStopwatch(clock Clock) *Stopwatch {
	return &Stopwatch{clock: clock, start: clock.Now()}
}

// Elapsed returns the time since the stopwatch started.
func (s *Stopwatch) Elapsed() time.Duration {
	elapsed := s.clock.Now().Sub(s.start)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Intermediate returns the microseconds since the stopwatch started.
func (s *Stopwatch) Intermediate() int64 {
	return s.Elapsed().Microseconds()
}
