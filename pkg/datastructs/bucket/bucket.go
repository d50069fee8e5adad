package bucket

import (
	"fmt"

	"github.com/gntem/rbuckets/pkg/timer"
)

// defaultLimit applies to both the item queue and the history log when no
// override is given at construction.
const defaultLimit = 100

// Entry is a single history record: the snapshot taken when an item left
// the queue via Poll, stamped with epoch seconds. Snapshots are never
// mutated after recording.
type Entry[T any] struct {
	Snapshot []T
	Epoch    int64
}

// Bucket is a named FIFO queue that keeps a capped history of polled items
// and supports a single-step undo.
//
// Both the queue and the history are capacity-limited with a clear-on-breach
// policy: when a guard finds its sequence at or over the configured limit,
// the whole sequence is wiped rather than trimmed. Limits are not validated;
// a zero or negative limit makes the corresponding guard fire on the next
// guarded mutation.
//
// A Bucket performs no internal locking. Shared use across goroutines must
// go through external synchronization such as Locked.
type Bucket[T any] struct {
	name    string
	items   []T
	history []Entry[T]

	itemsLimit   int
	historyLimit int

	timer timer.Timer
	clone func(T) T
}

// New creates an empty Bucket with the given name. Limits default to 100
// and timestamps come from the wall clock unless overridden by options.
func New[T any](name string, opts ...Option[T]) *Bucket[T] {
	b := &Bucket[T]{
		name:         name,
		itemsLimit:   defaultLimit,
		historyLimit: defaultLimit,
		timer:        timer.WallTimer{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the bucket's immutable label.
func (b *Bucket[T]) Name() string {
	return b.name
}

// String returns a short diagnostic description of the bucket.
func (b *Bucket[T]) String() string {
	return fmt.Sprintf("bucket(%s) items=%d history=%d", b.name, len(b.items), len(b.history))
}

// AddItem appends an item to the tail of the queue.
// The items-limit guard runs first: if it fires, the existing items are
// wiped, the new item is discarded and AddItem returns false.
func (b *Bucket[T]) AddItem(item T) bool {
	if b.ItemsLimitGuard() {
		return false
	}
	b.items = append(b.items, item)
	return true
}

// AddItems appends items to the tail of the queue in call order.
// The items-limit guard runs once, before the batch: if it fires, the
// existing items are wiped and the whole batch is discarded. There is no
// partial insertion, and a batch admitted while under the limit is appended
// in full even when it pushes the queue past the cap.
func (b *Bucket[T]) AddItems(items ...T) bool {
	if b.ItemsLimitGuard() {
		return false
	}
	b.items = append(b.items, items...)
	return true
}

// Poll removes and returns the front item, recording it in history as a
// single-element snapshot stamped with the current epoch seconds. Returns
// (zero, false) when the queue is empty.
//
// Both guards run before removal: the items guard as a re-check against a
// limit lowered since the last add, and the history guard to make room for
// the new entry. A poll that removes nothing records nothing and leaves
// history untouched.
func (b *Bucket[T]) Poll() (T, bool) {
	b.ItemsLimitGuard()

	if len(b.items) == 0 {
		var zero T
		return zero, false
	}

	b.HistoryLimitGuard()

	item := b.items[0]
	var zero T
	b.items[0] = zero // release the vacated slot
	b.items = b.items[1:]

	b.history = append(b.history, Entry[T]{
		Snapshot: []T{b.cloneItem(item)},
		Epoch:    b.timer.Now().Unix(),
	})
	return item, true
}

// Undo pops the most recent history entry and re-appends its snapshot to
// the tail of the queue. No-op when history is empty.
//
// Undo deliberately skips the items-limit guard, so it can push the queue
// past the configured cap: it is a correction mechanism, not an insert.
func (b *Bucket[T]) Undo() {
	if len(b.history) == 0 {
		return
	}
	last := b.history[len(b.history)-1]
	b.history[len(b.history)-1] = Entry[T]{}
	b.history = b.history[:len(b.history)-1]
	b.items = append(b.items, last.Snapshot...)
}

// ClearItems unconditionally empties the queue.
func (b *Bucket[T]) ClearItems() {
	b.items = nil
}

// ClearHistory unconditionally empties the history log.
func (b *Bucket[T]) ClearHistory() {
	b.history = nil
}

// SetItemsLimit replaces the queue limit. The new value takes effect at the
// next guard check; current contents are not re-checked.
func (b *Bucket[T]) SetItemsLimit(n int) {
	b.itemsLimit = n
}

// SetHistoryLimit replaces the history limit. The new value takes effect at
// the next guard check; current contents are not re-checked.
func (b *Bucket[T]) SetHistoryLimit(n int) {
	b.historyLimit = n
}

// ItemsLimitReached reports whether the queue is at or over its limit.
func (b *Bucket[T]) ItemsLimitReached() bool {
	return len(b.items) >= b.itemsLimit
}

// HistoryLimitReached reports whether the history is at or over its limit.
func (b *Bucket[T]) HistoryLimitReached() bool {
	return len(b.history) >= b.historyLimit
}

// ItemsLimitGuard wipes the queue if its limit is reached.
// Reports whether it fired.
func (b *Bucket[T]) ItemsLimitGuard() bool {
	if !b.ItemsLimitReached() {
		return false
	}
	b.ClearItems()
	return true
}

// HistoryLimitGuard wipes the history if its limit is reached.
// Reports whether it fired.
func (b *Bucket[T]) HistoryLimitGuard() bool {
	if !b.HistoryLimitReached() {
		return false
	}
	b.ClearHistory()
	return true
}

// Len returns the number of queued items.
func (b *Bucket[T]) Len() int {
	return len(b.items)
}

// IsEmpty returns true if the queue holds no items.
func (b *Bucket[T]) IsEmpty() bool {
	return len(b.items) == 0
}

// HistoryLen returns the number of history entries.
func (b *Bucket[T]) HistoryLen() int {
	return len(b.history)
}

// Items returns a copy of the queued items in FIFO order.
func (b *Bucket[T]) Items() []T {
	if len(b.items) == 0 {
		return nil
	}
	out := make([]T, len(b.items))
	copy(out, b.items)
	return out
}

// History returns a copy of the history entries, oldest first.
// The snapshots inside the entries are shared and must not be modified.
func (b *Bucket[T]) History() []Entry[T] {
	if len(b.history) == 0 {
		return nil
	}
	out := make([]Entry[T], len(b.history))
	copy(out, b.history)
	return out
}

// Clone returns a fresh-start copy: same name, items, limits and timer,
// with an empty history. Items are duplicated through the clone hook when
// one is configured.
func (b *Bucket[T]) Clone() *Bucket[T] {
	dup := &Bucket[T]{
		name:         b.name,
		itemsLimit:   b.itemsLimit,
		historyLimit: b.historyLimit,
		timer:        b.timer,
		clone:        b.clone,
	}
	if len(b.items) > 0 {
		dup.items = make([]T, len(b.items))
		for i, item := range b.items {
			dup.items[i] = b.cloneItem(item)
		}
	}
	return dup
}

// cloneItem duplicates an item through the configured hook, falling back to
// value assignment. The fallback is only an independent duplicate for value
// types; reference-holding types need WithCloneFunc.
func (b *Bucket[T]) cloneItem(item T) T {
	if b.clone != nil {
		return b.clone(item)
	}
	return item
}
