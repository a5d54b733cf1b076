package debouncez

import (
	"context"
	"iter"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/zoobzio/debouncez/internal/metrics"
)

// Debouncer is a pull-based trailing debounce over an upstream channel.
// Each call to Next returns the most recent upstream item once window has
// elapsed with no newer item, or reports the end of the sequence.
//
// A Debouncer exclusively owns its upstream and has a single consumer: the
// goroutine calling Next. It spawns no goroutines of its own and holds no
// locks; concurrent calls to Next panic with ErrConcurrentNext.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Debouncer[T any] struct {
	name     string
	clock    Clock
	window   time.Duration
	upstream <-chan T
	pending  *Delayed[T]
	armedAt  time.Time
	ended    bool
	active   atomic.Int32
	attrs    metric.MeasurementOption
	stats    stats
}

// NewDebouncer creates a debouncer over upstream. A closed upstream is the end
// of the sequence; an item still pending at that point is flushed first.
//
// Example:
//
//	events := make(chan Event)
//	d := debouncez.NewDebouncer(events, 300*time.Millisecond, debouncez.RealClock)
//	for {
//		ev, ok, err := d.Next(ctx)
//		if err != nil || !ok {
//			break
//		}
//		handle(ev)
//	}
//
// Parameters:
//   - upstream: The raw sequence; owned by the debouncer from now on
//   - window: The quiet period an item must survive before it is emitted
//   - clock: Clock interface for time operations
func NewDebouncer[T any](upstream <-chan T, window time.Duration, clock Clock) *Debouncer[T] {
	d := &Debouncer[T]{
		clock:    clock,
		window:   window,
		upstream: upstream,
	}
	return d.WithName("debounce")
}

// Debounced debounces upstream with the given window of real time.
func Debounced[T any](upstream <-chan T, window time.Duration) *Debouncer[T] {
	return NewDebouncer(upstream, window, RealClock)
}

// WithName sets the label used in log events and metric attributes.
func (d *Debouncer[T]) WithName(name string) *Debouncer[T] {
	d.name = name
	d.attrs = metric.WithAttributes(attribute.String("debouncer", name))
	return d
}

// Name returns the debouncer's label.
func (d *Debouncer[T]) Name() string {
	return d.name
}

// Window returns the quiet period.
func (d *Debouncer[T]) Window() time.Duration {
	return d.window
}

// Next blocks until an item has been quiet for a full window and returns it
// with ok set. It returns ok == false once the upstream is closed and nothing
// is pending; every later call does the same. The only error is ctx.Err(),
// returned when ctx ends first; the pending item survives for the next call.
//
// Every call first takes all items the upstream has ready without blocking,
// keeping only the last one, and only then waits. An item that is ready at the
// same time as the pending timer fires therefore wins and restarts the window.
// An upstream that never blocks keeps Next in that first phase indefinitely.
func (d *Debouncer[T]) Next(ctx context.Context) (T, bool, error) {
	if d.active.Add(1) > 1 {
		d.active.Add(-1)
		panic(ErrConcurrentNext)
	}
	defer d.active.Add(-1)

	var zero T
	if d.ended {
		return zero, false, nil
	}

	for {
		if d.drain(ctx) {
			d.ended = true
			zerolog.Ctx(ctx).Debug().Str("debouncer", d.name).Msg("upstream closed with nothing pending")
			return zero, false, nil
		}

		if d.pending != nil {
			if item, ok := d.pending.Poll(); ok {
				d.pending = nil
				d.emitted(ctx)
				return item, true, nil
			}
		}

		if err := d.wait(ctx); err != nil {
			return zero, false, err
		}
	}
}

// All returns an iterator over the debounced items. Iteration stops at the end
// of the sequence or when ctx ends.
func (d *Debouncer[T]) All(ctx context.Context) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok, err := d.Next(ctx)
			if err != nil || !ok {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Close drops the debouncer: the pending item, if any, is discarded without
// being emitted and Next reports the end of the sequence from now on.
// It must not be called while Next is in flight.
func (d *Debouncer[T]) Close() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.upstream = nil
	d.ended = true
}

// Stats returns a snapshot of the counters. Safe to call from any goroutine.
func (d *Debouncer[T]) Stats() Stats {
	return d.stats.snapshot()
}

// drain takes every item the upstream has ready without blocking. It reports
// true when the upstream is closed and nothing is left to flush.
func (d *Debouncer[T]) drain(ctx context.Context) bool {
	for d.upstream != nil {
		select {
		case item, ok := <-d.upstream:
			if !ok {
				d.upstream = nil
				continue
			}
			d.arm(ctx, item)
		default:
			return false
		}
	}
	return d.pending == nil
}

// wait suspends until the pending timer fires, the upstream has something, or
// ctx ends. Whatever happened is recorded for the next drain.
func (d *Debouncer[T]) wait(ctx context.Context) error {
	var fired <-chan time.Time
	if d.pending != nil {
		fired = d.pending.ready()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case item, ok := <-d.upstream:
		if !ok {
			d.upstream = nil
			return nil
		}
		d.arm(ctx, item)
	case <-fired:
		d.pending.fire()
	}
	return nil
}

// arm replaces the pending item with item and a full window.
func (d *Debouncer[T]) arm(ctx context.Context, item T) {
	now := d.clock.Now()
	d.stats.received.Add(1)
	d.stats.lastArrival.Store(now)
	metrics.Debounce.Received.Add(ctx, 1, d.attrs)

	if d.pending != nil {
		d.pending.Stop()
		d.stats.superseded.Add(1)
		metrics.Debounce.Superseded.Add(ctx, 1, d.attrs)
	}

	d.pending = NewDelayed(item, d.window, d.clock)
	d.armedAt = now
	zerolog.Ctx(ctx).Debug().
		Str("debouncer", d.name).
		Time("deadline", d.pending.Deadline()).
		Msg("pending item armed")
}

func (d *Debouncer[T]) emitted(ctx context.Context) {
	now := d.clock.Now()
	d.stats.emitted.Add(1)
	d.stats.lastEmit.Store(now)
	metrics.Debounce.Emitted.Add(ctx, 1, d.attrs)
	metrics.Debounce.Latency.Record(ctx, now.Sub(d.armedAt).Seconds(), d.attrs)
	zerolog.Ctx(ctx).Debug().
		Str("debouncer", d.name).
		Dur("quiet", now.Sub(d.armedAt)).
		Msg("pending item emitted")
}
