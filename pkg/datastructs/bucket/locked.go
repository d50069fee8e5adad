package bucket

import "sync"

// Locked wraps a Bucket with the external mutual exclusion the core leaves
// to the caller. Every method holds the lock for the full call; multi-step
// sequences that must stay atomic (an add-then-poll pair, a poll followed
// by a conditional undo) go through Do so the whole sequence runs under one
// lock hold.
type Locked[T any] struct {
	mu sync.Mutex
	b  *Bucket[T]
}

// NewLocked wraps b. The caller must not touch b directly afterwards.
func NewLocked[T any](b *Bucket[T]) *Locked[T] {
	return &Locked[T]{b: b}
}

// Do runs fn with exclusive access to the underlying bucket.
// The bucket must not escape fn.
func (l *Locked[T]) Do(fn func(b *Bucket[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.b)
}

// AddItem appends an item under the lock.
func (l *Locked[T]) AddItem(item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.AddItem(item)
}

// AddItems appends a batch under the lock.
func (l *Locked[T]) AddItems(items ...T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.AddItems(items...)
}

// Poll removes the front item under the lock.
func (l *Locked[T]) Poll() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Poll()
}

// Undo restores the most recent history entry under the lock.
func (l *Locked[T]) Undo() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.b.Undo()
}

// Len returns the queue length under the lock.
func (l *Locked[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Len()
}

// HistoryLen returns the history length under the lock.
func (l *Locked[T]) HistoryLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.HistoryLen()
}
