package debouncez

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestAtomicTime(t *testing.T) {
	at := &atomicTime{}

	if !at.Load().IsZero() {
		t.Error("expected zero time for uninitialized atomicTime")
	}

	// Nanoseconds must survive the round trip.
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	nano := base.Add(123456789 * time.Nanosecond)
	at.Store(nano)

	if loaded := at.Load(); !loaded.Equal(nano) {
		t.Errorf("lost precision: expected %v, got %v", nano, loaded)
	}
}

// TestStats_ReadWhileRunning reads a debouncer's stats from another goroutine
// while it is being driven.
func TestStats_ReadWhileRunning(t *testing.T) {
	ctx := context.Background()
	in := make(chan int)
	d := Debounced(in, time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range d.All(ctx) { //nolint:revive // intentionally draining
		}
	}()

	stop := make(chan struct{})
	var readers sync.WaitGroup
	readers.Add(1)
	go func() {
		defer readers.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_ = d.Stats()
			}
		}
	}()

	for i := 0; i < 20; i++ {
		in <- i
	}
	close(in)
	wg.Wait()
	close(stop)
	readers.Wait()

	s := d.Stats()
	if s.Received != 20 {
		t.Errorf("expected 20 received, got %d", s.Received)
	}
	if s.Emitted+s.Superseded != s.Received {
		t.Errorf("every item is either emitted or superseded: %+v", s)
	}
	if s.LastArrival.IsZero() || s.LastEmit.IsZero() {
		t.Errorf("expected arrival and emit times to be set: %+v", s)
	}
}
