package player

import "time"

// Clock provides time for players. The default implementation uses system
// time. Tests inject a fake clock with SetClock or [WithClock] to drive
// frames deterministically.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the default clock used by players created without
// [WithClock]. Returns the previous clock so callers can restore it during
// cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the package clock.
func Now() time.Time { return clock.Now() }
