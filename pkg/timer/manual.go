package timer

import (
	"sync"
	"time"
)

var _ Timer = (*ManualTimer)(nil)

// ManualTimer is a deterministic time source that only moves when Advance
// is called. Intended for tests that assert on recorded epochs.
type ManualTimer struct {
	mu      sync.Mutex
	current time.Time
}

// NewManualTimer creates a ManualTimer starting at the given time.
func NewManualTimer(start time.Time) *ManualTimer {
	return &ManualTimer{current: start}
}

// Now returns the current manual time.
func (t *ManualTimer) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Advance moves the timer forward by d. Non-positive durations are ignored
// so the timer can never run backwards.
func (t *ManualTimer) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	t.mu.Lock()
	t.current = t.current.Add(d)
	t.mu.Unlock()
}

// Stop is a no-op; there is nothing to release.
func (t *ManualTimer) Stop() {}
