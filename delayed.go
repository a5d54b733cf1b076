package debouncez

import (
	"context"
	"time"
)

// Delayed is a value that only becomes available once a fixed duration has
// elapsed on its clock. It is single-use: the value is handed out exactly once,
// after which the instance must not be driven again.
//
// A Delayed is owned by one goroutine. It is not safe for concurrent use.
type Delayed[T any] struct {
	value    T
	timer    Timer
	deadline time.Time
	elapsed  bool
	consumed bool
}

// NewDelayed creates a value that resolves after duration d on the given clock.
// The countdown starts immediately. A non-positive duration resolves on the
// first Poll or Await without arming a timer.
//
// Example:
//
//	// Resolve "ready" after 250ms
//	d := debouncez.NewDelayed("ready", 250*time.Millisecond, debouncez.RealClock)
//	v, err := d.Await(ctx)
//
// Parameters:
//   - value: The value handed out once the duration has elapsed
//   - d: The fixed delay, never adjusted after construction
//   - clock: Clock interface for time operations
func NewDelayed[T any](value T, d time.Duration, clock Clock) *Delayed[T] {
	dv := &Delayed[T]{
		value:    value,
		deadline: clock.Now().Add(d),
	}
	if d <= 0 {
		dv.elapsed = true
		return dv
	}
	dv.timer = clock.NewTimer(d)
	return dv
}

// Delay returns a value that resolves after duration d of real time.
func Delay[T any](value T, d time.Duration) *Delayed[T] {
	return NewDelayed(value, d, RealClock)
}

// Deadline returns the instant, on the owning clock, at which the value resolves.
func (d *Delayed[T]) Deadline() time.Time {
	return d.deadline
}

// Poll reports whether the delay has elapsed without blocking. When it has,
// Poll returns the value and consumes the instance.
func (d *Delayed[T]) Poll() (T, bool) {
	d.mustLive()

	if !d.elapsed {
		select {
		case <-d.timer.C():
			d.elapsed = true
		default:
			var zero T
			return zero, false
		}
	}
	return d.take(), true
}

// Await blocks until the delay has elapsed and returns the value.
// If ctx ends first, Await returns ctx.Err() and the instance keeps waiting
// for the same deadline; it can be awaited again.
func (d *Delayed[T]) Await(ctx context.Context) (T, error) {
	d.mustLive()

	if !d.elapsed {
		select {
		case <-d.timer.C():
			d.elapsed = true
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
	return d.take(), nil
}

// Stop discards the value and releases the timer. The value is never handed out.
// Stopping an already consumed or stopped instance is a no-op.
func (d *Delayed[T]) Stop() {
	if d.consumed {
		return
	}
	d.release()
}

// ready returns the channel the timer fires on, nil once the delay has elapsed.
// A receive from it must be followed by fire.
func (d *Delayed[T]) ready() <-chan time.Time {
	if d.elapsed {
		return nil
	}
	return d.timer.C()
}

func (d *Delayed[T]) fire() {
	d.elapsed = true
}

func (d *Delayed[T]) take() T {
	v := d.value
	d.release()
	return v
}

func (d *Delayed[T]) release() {
	if d.timer != nil {
		d.timer.Stop()
	}
	var zero T
	d.value = zero
	d.consumed = true
}

func (d *Delayed[T]) mustLive() {
	if d.consumed {
		panic(ErrConsumed)
	}
}
