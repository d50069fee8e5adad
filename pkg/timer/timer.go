package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Timer is the time source used to stamp bucket history entries.
// Successive calls to Now must return non-decreasing times.
type Timer interface {
	Now() time.Time
	Stop()
}

// CachedTimer serves a coarse time updated on a fixed step by a background
// goroutine. It trades timestamp precision for avoiding a time.Now call on
// every poll, which is enough when entries only carry epoch seconds.
type CachedTimer struct {
	now    atomic.Value
	step   time.Duration
	ticker *time.Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewCachedTimer creates a CachedTimer advancing every step.
func NewCachedTimer(step time.Duration) *CachedTimer {
	t := &CachedTimer{
		step:   step,
		ticker: time.NewTicker(step),
		done:   make(chan struct{}),
	}
	t.now.Store(time.Now())

	t.wg.Add(1)
	go t.run()

	return t
}

func (t *CachedTimer) run() {
	defer t.wg.Done()

	current := t.Now()

	for {
		select {
		case <-t.ticker.C:
			current = current.Add(t.step)
			t.now.Store(current)
		case <-t.done:
			t.ticker.Stop()
			return
		}
	}
}

// Now returns the cached time. It never moves backwards.
func (t *CachedTimer) Now() time.Time {
	return t.now.Load().(time.Time)
}

// Stop terminates the update goroutine. The last cached time remains
// readable after Stop.
func (t *CachedTimer) Stop() {
	close(t.done)
	t.wg.Wait()
}
