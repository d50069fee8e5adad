package timer

import "time"

var _ Timer = WallTimer{}

// WallTimer reads the system clock directly on every call.
// It is the default time source for buckets.
type WallTimer struct{}

// Now returns time.Now.
func (WallTimer) Now() time.Time {
	return time.Now()
}

// Stop is a no-op; there is nothing to release.
func (WallTimer) Stop() {}
