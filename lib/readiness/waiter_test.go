// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package readiness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cyrex562/libzmq-rs-sub001/lib/clock"
	"github.com/cyrex562/libzmq-rs-sub001/lib/testutil"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestWaitEmptySleepsForTimeout(t *testing.T) {
	fake := clock.Fake(epoch)
	waiter := NewWaiter(WaiterConfig{Clock: fake})
	defer waiter.Close()

	type outcome struct {
		ready int
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		ready, err := waiter.Wait(context.Background(), 3*time.Second)
		done <- outcome{ready, err}
	}()

	fake.WaitForTimers(1)
	fake.Advance(3 * time.Second)
	result := testutil.RequireReceive(t, done, 5*time.Second, "Wait did not return after Advance")
	if result.ready != 0 || result.err != nil {
		t.Fatalf("Wait() = (%d, %v), want (0, nil)", result.ready, result.err)
	}
}

func TestWaitEmptyZeroTimeout(t *testing.T) {
	waiter := NewWaiter(WaiterConfig{Clock: clock.Fake(epoch)})
	defer waiter.Close()
	ready, err := waiter.Wait(context.Background(), 0)
	if ready != 0 || err != nil {
		t.Fatalf("Wait(0) = (%d, %v), want (0, nil)", ready, err)
	}
}

func TestWaitEmptyInfiniteWithoutCancel(t *testing.T) {
	waiter := NewWaiter(WaiterConfig{Clock: clock.Fake(epoch)})
	defer waiter.Close()
	_, err := waiter.Wait(context.Background(), Infinite)
	if !errors.Is(err, ErrNoDescriptors) {
		t.Fatalf("Wait(Infinite) error = %v, want ErrNoDescriptors", err)
	}
}

func TestWaitEmptyCancelled(t *testing.T) {
	fake := clock.Fake(epoch)
	waiter := NewWaiter(WaiterConfig{Clock: fake})
	defer waiter.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := waiter.Wait(ctx, time.Hour)
		done <- err
	}()

	fake.WaitForTimers(1)
	cancel()
	err := testutil.RequireReceive(t, done, 5*time.Second, "Wait did not return after cancel")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait() error = %v, want context.Canceled", err)
	}
}

func TestWaiterRegistered(t *testing.T) {
	waiter := NewWaiter(WaiterConfig{})
	defer waiter.Close()

	if got := waiter.Registered(); got != 0 {
		t.Fatalf("Registered() = %d, want 0", got)
	}
	if err := waiter.Add(testDescriptor(3), Readable|Writable); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if err := waiter.Add(testDescriptor(4), Writable); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if got := waiter.Registered(); got != 2 {
		t.Fatalf("Registered() = %d, want 2", got)
	}
	waiter.Remove(testDescriptor(3))
	if got := waiter.Registered(); got != 1 {
		t.Fatalf("Registered() after Remove = %d, want 1", got)
	}
}
