package core

import "time"

// TimeProvider abstracts the clock for delivery timestamps, export file names and latency metrics
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
