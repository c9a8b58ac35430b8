package sched

import "time"

// Clock supplies the current time. Tests inject a virtual clock so sweep and
// timer behavior is checked without wall-clock waits.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }
