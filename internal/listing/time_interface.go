package listing

import "time"

// FixedTimeProvider returns the times it holds, one per call, repeating the
// last one when it runs out.
type FixedTimeProvider struct {
	Times []time.Time
	calls int
}

// Now returns the next configured time.
func (f *FixedTimeProvider) Now() time.Time {
	if len(f.Times) == 0 {
		return time.Time{}
	}

	idx := min(f.calls, len(f.Times)-1)
	f.calls++

	return f.Times[idx]
}

// RealTimeProvider implements TimeProvider using the wall clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (r *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// TimeProvider provides the current time for dependency injection.
type TimeProvider interface {
	Now() time.Time
}
