// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package readiness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cyrex562/libzmq-rs-sub001/lib/clock"
)

// Events is a bitmask of readiness conditions.
type Events uint8

const (
	// Readable means a read will not block.
	Readable Events = 1 << iota

	// Writable means a write will not block.
	Writable

	// Errored means the descriptor has an exceptional condition
	// pending (out-of-band data on sockets).
	Errored
)

// String returns the set conditions joined by "|".
func (e Events) String() string {
	if e == 0 {
		return "none"
	}
	var names []string
	if e&Readable != 0 {
		names = append(names, "readable")
	}
	if e&Writable != 0 {
		names = append(names, "writable")
	}
	if e&Errored != 0 {
		names = append(names, "errored")
	}
	return strings.Join(names, "|")
}

// errInterrupted marks a select call interrupted by a signal. The wait
// loop retries it.
var errInterrupted = errors.New("readiness: interrupted")

// defaultCancelCheck bounds each blocking select pass when the context
// can be cancelled, since select itself cannot observe the context.
const defaultCancelCheck = 50 * time.Millisecond

// WaiterConfig holds the construction parameters for a Waiter.
type WaiterConfig struct {
	// ExpectedEvents sizes the sets on platforms where that matters
	// (see [Sizing]). Defaults to DefaultPollItems.
	ExpectedEvents int

	// Clock measures elapsed time across passes. Defaults to
	// clock.Real().
	Clock clock.Clock

	// Logger receives debug records for retried passes. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// CancelCheck caps the length of a single blocking pass when the
	// context passed to Wait can be cancelled. Defaults to 50ms.
	CancelCheck time.Duration
}

// Waiter waits for readiness on a registered group of descriptors.
//
// Interest is held in three sets that Wait never hands to the kernel.
// Each pass copies their valid regions into three result sets, so
// interest survives the kernel rewriting the result sets in place.
type Waiter struct {
	clock       clock.Clock
	logger      *slog.Logger
	cancelCheck time.Duration

	interest [3]*Set
	result   [3]*Set
}

// NewWaiter returns a Waiter with no registered descriptors.
func NewWaiter(config WaiterConfig) *Waiter {
	if config.ExpectedEvents <= 0 {
		config.ExpectedEvents = DefaultPollItems
	}
	if config.Clock == nil {
		config.Clock = clock.Real()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.CancelCheck <= 0 {
		config.CancelCheck = defaultCancelCheck
	}

	waiter := &Waiter{
		clock:       config.Clock,
		logger:      config.Logger,
		cancelCheck: config.CancelCheck,
	}
	for i := range waiter.interest {
		waiter.interest[i] = NewSet(config.ExpectedEvents)
		waiter.result[i] = NewSet(config.ExpectedEvents)
	}
	return waiter
}

var eventOrder = [3]Events{Readable, Writable, Errored}

// Add registers interest in events on fd. Adding to an existing
// registration widens it.
func (w *Waiter) Add(fd FD, events Events) error {
	for i, event := range eventOrder {
		if events&event == 0 {
			continue
		}
		if err := w.interest[i].Add(fd); err != nil {
			return fmt.Errorf("registering %v interest: %w", event, err)
		}
	}
	return nil
}

// Remove drops all interest in fd.
func (w *Waiter) Remove(fd FD) {
	for i := range w.interest {
		w.interest[i].Remove(fd)
	}
}

// Registered returns the number of descriptors with any interest.
func (w *Waiter) Registered() int {
	return max(w.interest[0].Len(), w.interest[1].Len(), w.interest[2].Len())
}

// Ready returns the conditions reported for fd by the last Wait.
func (w *Waiter) Ready(fd FD) Events {
	var events Events
	for i, event := range eventOrder {
		if w.result[i].Has(fd) {
			events |= event
		}
	}
	return events
}

// Wait blocks until at least one registered condition is ready, the
// timeout elapses, or ctx is done. It returns the number of ready
// (descriptor, condition) pairs as select reports it; zero means the
// timeout elapsed. A negative timeout waits indefinitely and a zero
// timeout polls once.
//
// With nothing registered Wait sleeps for the timeout, which makes it
// usable as a plain delay.
func (w *Waiter) Wait(ctx context.Context, timeout time.Duration) (int, error) {
	for i := range w.result {
		w.result[i].Reset()
	}
	if w.interest[0].Len() == 0 && w.interest[1].Len() == 0 && w.interest[2].Len() == 0 {
		return 0, w.sleep(ctx, timeout)
	}

	watch := clock.NewStopwatch(w.clock)
	firstPass := true
	for {
		passTimeout := ComputeTimeout(firstPass, timeout, watch.Elapsed())
		if ctx.Done() != nil && (passTimeout < 0 || passTimeout > w.cancelCheck) {
			passTimeout = w.cancelCheck
		}

		for i := range w.result {
			w.result[i].CopyFrom(w.interest[i])
		}
		ready, err := selectSets(w.result[0], w.result[1], w.result[2], passTimeout)
		switch {
		case errors.Is(err, errInterrupted):
			w.logger.Debug("select interrupted, retrying",
				"elapsed", watch.Elapsed(),
				"timeout", timeout,
			)
			continue
		case err != nil:
			for i := range w.result {
				w.result[i].Reset()
			}
			return 0, fmt.Errorf("select: %w", err)
		}

		if ready > 0 {
			return ready, nil
		}
		if timeout == 0 {
			return 0, nil
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if !firstPass && timeout > 0 && watch.Elapsed() >= timeout {
			return 0, nil
		}
		firstPass = false
	}
}

// sleep implements Wait with nothing registered.
func (w *Waiter) sleep(ctx context.Context, timeout time.Duration) error {
	if timeout == 0 {
		return nil
	}
	if timeout < 0 {
		if ctx.Done() == nil {
			return ErrNoDescriptors
		}
		<-ctx.Done()
		return ctx.Err()
	}
	if ctx.Done() == nil {
		w.clock.Sleep(timeout)
		return nil
	}
	select {
	case <-w.clock.After(timeout):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases set storage.
func (w *Waiter) Close() {
	for i := range w.interest {
		w.interest[i].Release()
		w.result[i].Release()
	}
}
