package debouncez

import (
	"context"
	"time"
)

// Debounce emits items only after a quiet period with no new items.
// It is the channel-to-channel form of Debouncer.
//
//nolint:govet // fieldalignment: struct layout optimized for readability
type Debounce[T any] struct {
	name     string
	clock    Clock
	duration time.Duration
}

// NewDebounce creates a processor that delays and coalesces rapid events.
// Only the last item in a rapid sequence is emitted after the specified duration of inactivity.
//
// When to use:
//   - User input handling (e.g., search-as-you-type)
//   - Sensor readings that fluctuate rapidly
//   - File system change notifications
//   - Preventing excessive API calls from UI events
//
// Example:
//
//	// Debounce search queries - only search after 300ms of no typing
//	debounce := debouncez.NewDebounce[string](300*time.Millisecond, debouncez.RealClock)
//	debounced := debounce.Process(ctx, searchQueries)
//
// Parameters:
//   - duration: The quiet period before emitting an item
//   - clock: Clock interface for time operations
func NewDebounce[T any](duration time.Duration, clock Clock) *Debounce[T] {
	return &Debounce[T]{
		duration: duration,
		name:     "debounce",
		clock:    clock,
	}
}

// WithName sets a custom name for this processor.
func (d *Debounce[T]) WithName(name string) *Debounce[T] {
	d.name = name
	return d
}

// Process debounces in. When in is closed, the pending item (if any) is
// flushed after its window and the output is closed. When ctx is canceled,
// the output is closed at once and the pending item is dropped.
func (d *Debounce[T]) Process(ctx context.Context, in <-chan T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		debouncer := NewDebouncer(in, d.duration, d.clock).WithName(d.name)
		defer debouncer.Close()

		for {
			item, ok, err := debouncer.Next(ctx)
			if err != nil || !ok {
				return
			}

			select {
			case out <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (d *Debounce[T]) Name() string {
	return d.name
}
