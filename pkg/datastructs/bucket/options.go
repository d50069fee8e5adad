package bucket

import "github.com/gntem/rbuckets/pkg/timer"

// Option configures a Bucket at construction time.
type Option[T any] func(*Bucket[T])

// WithItemsLimit overrides the queue limit. The value is not validated;
// zero or negative makes the items guard fire on the next guarded mutation.
func WithItemsLimit[T any](n int) Option[T] {
	return func(b *Bucket[T]) {
		b.itemsLimit = n
	}
}

// WithHistoryLimit overrides the history limit. The value is not validated;
// zero or negative makes the history guard fire on the next poll.
func WithHistoryLimit[T any](n int) Option[T] {
	return func(b *Bucket[T]) {
		b.historyLimit = n
	}
}

// WithTimer replaces the wall clock as the history timestamp source.
func WithTimer[T any](t timer.Timer) Option[T] {
	return func(b *Bucket[T]) {
		b.timer = t
	}
}

// WithCloneFunc installs a deep-duplication hook used when recording
// history snapshots and cloning the bucket. Without it items are duplicated
// by plain assignment.
func WithCloneFunc[T any](fn func(T) T) Option[T] {
	return func(b *Bucket[T]) {
		b.clone = fn
	}
}
