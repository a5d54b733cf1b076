package debouncez

import "errors"

// The core has no recoverable failures: timers do not fail and the end of the
// upstream is a normal outcome. The values below are panic values for misuse,
// exported so tests and callers that recover can match them with errors.Is.
var (
	// ErrConsumed is raised when a Delayed is driven after it handed out its
	// value or was stopped.
	ErrConsumed = errors.New("debouncez: delayed value already consumed")

	// ErrConcurrentNext is raised when Next is called on a Debouncer while
	// another Next on the same Debouncer is still in flight.
	ErrConcurrentNext = errors.New("debouncez: concurrent Debouncer.Next calls; a debouncer has a single consumer")
)
