package debouncez

import (
	"sync/atomic"
	"time"
)

// Stats is a point-in-time snapshot of a Debouncer's counters.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Stats struct {
	// Received counts items taken from the upstream.
	Received int64
	// Superseded counts pending items dropped because a newer item arrived.
	Superseded int64
	// Emitted counts items handed to the consumer.
	Emitted int64
	// LastArrival is the clock time of the most recent upstream item.
	LastArrival time.Time
	// LastEmit is the clock time of the most recent emission.
	LastEmit time.Time
}

// stats is updated by the consumer goroutine and may be read from any goroutine.
type stats struct {
	received    atomic.Int64
	superseded  atomic.Int64
	emitted     atomic.Int64
	lastArrival atomicTime
	lastEmit    atomicTime
}

func (s *stats) snapshot() Stats {
	return Stats{
		Received:    s.received.Load(),
		Superseded:  s.superseded.Load(),
		Emitted:     s.emitted.Load(),
		LastArrival: s.lastArrival.Load(),
		LastEmit:    s.lastEmit.Load(),
	}
}

// atomicTime stores a time.Time as Unix nanoseconds.
type atomicTime struct {
	nanos atomic.Int64
}

func (at *atomicTime) Store(t time.Time) {
	at.nanos.Store(t.UnixNano())
}

// Load returns the zero time if nothing was stored.
func (at *atomicTime) Load() time.Time {
	nanos := at.nanos.Load()
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos)
}
