package bench

import "time"

// Stopwatch measures wall-clock time from the moment it is started. It is a
// plain value; each measurement owns its own.
type Stopwatch struct {
	start time.Time
}

// StartStopwatch returns a running stopwatch.
func StartStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Elapsed returns the time since the stopwatch was started. It uses the
// monotonic clock reading carried by time.Now.
func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Milliseconds converts d to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
