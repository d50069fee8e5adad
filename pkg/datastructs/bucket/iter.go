package bucket

import "iter"

// Iter returns a read-only traversal of the queued items in FIFO order.
// The sequence reads the live queue, not a snapshot: ranging over it again
// restarts from the current front. Mutating the bucket while a single
// traversal is in progress is undefined.
func (b *Bucket[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range b.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Range calls fn for each queued item in FIFO order.
// It stops early if fn returns false.
func (b *Bucket[T]) Range(fn func(item T) bool) {
	for _, item := range b.items {
		if !fn(item) {
			return
		}
	}
}
