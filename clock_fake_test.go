package debouncez

import (
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

// armClock is a fake clock that reports every timer it arms, so a test can
// wait for a debouncer to arm its window before advancing time. Without it,
// an Advance racing the consumer goroutine could land before the timer exists.
type armClock struct {
	*clockz.FakeClock
	armed chan time.Duration
}

func newArmClock() *armClock {
	return &armClock{
		FakeClock: clockz.NewFakeClock(),
		armed:     make(chan time.Duration, 64),
	}
}

// NewTimer creates the timer on the fake clock, then reports it.
func (c *armClock) NewTimer(d time.Duration) Timer {
	timer := c.FakeClock.NewTimer(d)
	c.armed <- d
	return timer
}

// Advance moves the fake time forward and delivers every timer that fired.
func (c *armClock) Advance(d time.Duration) {
	c.FakeClock.Advance(d)
	c.FakeClock.BlockUntilReady()
}

// waitArmed blocks until n timers have been armed.
func (c *armClock) waitArmed(t *testing.T, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		select {
		case <-c.armed:
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for timer %d of %d to be armed", i+1, n)
		}
	}
}

// expectNothing fails if ch delivers within a short real-time grace period.
func expectNothing[T any](t *testing.T, ch <-chan T) {
	t.Helper()

	select {
	case v, ok := <-ch:
		if ok {
			t.Errorf("unexpected value %v", v)
		} else {
			t.Error("unexpected channel close")
		}
	case <-time.After(20 * time.Millisecond):
		// Good - nothing yet
	}
}

// receive waits for ch to deliver within a real-time bound.
func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}
