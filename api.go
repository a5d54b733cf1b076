// Package debouncez provides two composable asynchronous primitives built on
// Go channels and an injectable clock: a delayed value, and a trailing
// debounce over a sequence of items.
//
// A [Delayed] resolves to a fixed value once a fixed duration has elapsed.
// A [Debouncer] wraps an upstream channel and yields only the most recent item
// of each burst, once a quiet period (the window) has passed with no newer
// item. Closing the upstream flushes whatever is still pending and then ends
// the sequence.
//
// Basic usage:
//
//	ctx := context.Background()
//	keystrokes := make(chan string)
//
//	// Pull-based
//	d := debouncez.Debounced(keystrokes, 300*time.Millisecond)
//	for query := range d.All(ctx) {
//		search(query)
//	}
//
//	// Channel-to-channel
//	debounce := debouncez.NewDebounce[string](300*time.Millisecond, debouncez.RealClock)
//	for query := range debounce.Process(ctx, keystrokes) {
//		search(query)
//	}
//
// Only trailing-edge debounce is provided: the first item of a burst is never
// emitted early.
//
// All timing goes through [Clock], so tests can drive a fake clock from
// github.com/zoobzio/clockz instead of sleeping.
package debouncez

import "context"

// Processor is the interface for channel-to-channel stream components.
// It transforms an input channel of type In to an output channel of type Out.
// Processors should:
//   - Close the output channel when the input channel is closed
//   - Respect context cancellation
//   - Be safe for concurrent use
type Processor[In, Out any] interface {
	// Process transforms the input channel to an output channel.
	// It should close the output channel when processing is complete.
	Process(ctx context.Context, in <-chan In) <-chan Out

	// Name returns a descriptive name for the processor, useful for debugging.
	Name() string
}

var _ Processor[int, int] = (*Debounce[int])(nil)
