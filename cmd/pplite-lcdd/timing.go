package main

import "time"

// clock is a minimal wall-clock stopwatch, the Go port of clock.hh's
// timing helper used by the --timings option. It has no process-clock
// (CPU time) mode: Go offers no portable equivalent without cgo, so
// only wall-clock elapsed time is reported.
type clock struct {
	start time.Time
}

func startClock() clock { return clock{start: time.Now()} }

func (c clock) Elapsed() time.Duration { return time.Since(c.start) }
