package debouncez

import (
	"context"
	"iter"
)

// FromSlice returns a channel that yields items in order and is then closed.
// Sending stops early if ctx ends.
func FromSlice[T any](ctx context.Context, items []T) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for _, item := range items {
			select {
			case out <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// FromSeq returns a channel fed by seq and closed when seq is exhausted.
// If ctx ends first, seq is abandoned and the channel is closed.
func FromSeq[T any](ctx context.Context, seq iter.Seq[T]) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for item := range seq {
			select {
			case out <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
