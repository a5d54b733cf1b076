package debouncez

import "github.com/zoobzio/clockz"

// Clock provides time operations for deterministic testing.
// Every delayed value and debouncer reads time and arms timers through it.
type Clock = clockz.Clock

// Timer represents a single event timer.
type Timer = clockz.Timer

// RealClock is the default Clock using standard time.
var RealClock Clock = clockz.RealClock
