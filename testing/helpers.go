// Package testing provides test utilities for debouncez.
package testing

import (
	"slices"
	"testing"
	"time"
)

// CollectWithTimeout collects values from a channel until it is closed or the
// timeout elapses, whichever comes first.
func CollectWithTimeout[T any](t *testing.T, ch <-chan T, timeout time.Duration) []T {
	t.Helper()

	var values []T
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return values
			}
			values = append(values, v)
		case <-timer.C:
			return values
		}
	}
}

// SendValues returns a channel already holding values, closed.
func SendValues[T any](t *testing.T, values []T) <-chan T {
	t.Helper()

	ch := make(chan T, len(values))
	for _, v := range values {
		ch <- v
	}
	close(ch)
	return ch
}

// AssertValues verifies got equals want, in order.
func AssertValues[T comparable](t *testing.T, got, want []T) {
	t.Helper()

	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// AssertClosed verifies ch is closed, or closes, within timeout without
// delivering anything.
func AssertClosed[T any](t *testing.T, ch <-chan T, timeout time.Duration) {
	t.Helper()

	select {
	case v, ok := <-ch:
		if ok {
			t.Errorf("expected closed channel, got value %v", v)
		}
	case <-time.After(timeout):
		t.Error("channel not closed in time")
	}
}
