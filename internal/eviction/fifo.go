package eviction

import (
	"math"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/vnykmshr/cacheinventory/internal/entry"
)

// FIFO implements first-in-first-out overflow eviction on top of an
// insertion-ordered list. Reads never reorder entries; rewriting a key moves
// it to the newest position. A full store always gives up its oldest entry
// on Add, even when the key being added is already present.
type FIFO[K comparable, V any] struct {
	list     *simplelru.LRU[K, *entry.Entry[K, V]]
	capacity int
}

// NewFIFO creates a FIFO store holding at most capacity entries.
// A capacity of 0 means unbounded.
func NewFIFO[K comparable, V any](capacity int) (*FIFO[K, V], error) {
	size := capacity
	if size <= 0 {
		size = math.MaxInt
	}

	// No evict callback: simplelru fires it on every removal, and the
	// inventory reports removals itself with the right reason.
	list, err := simplelru.NewLRU[K, *entry.Entry[K, V]](size, nil)
	if err != nil {
		return nil, err
	}

	return &FIFO[K, V]{
		list:     list,
		capacity: capacity,
	}, nil
}

// Add stores e. When the store is full, the oldest entry is removed before e
// is admitted and returned as displaced. The oldest entry may be the one e
// replaces.
func (f *FIFO[K, V]) Add(e *entry.Entry[K, V]) (*entry.Entry[K, V], bool) {
	var displaced *entry.Entry[K, V]
	evicted := false

	if f.capacity > 0 && f.list.Len() >= f.capacity {
		_, displaced, evicted = f.list.RemoveOldest()
	}

	f.list.Add(e.Name(), e)
	return displaced, evicted
}

// Peek retrieves an entry without changing the eviction order
func (f *FIFO[K, V]) Peek(key K) (*entry.Entry[K, V], bool) {
	return f.list.Peek(key)
}

// Remove removes an entry from the FIFO tracker
func (f *FIFO[K, V]) Remove(key K) bool {
	return f.list.Remove(key)
}

// Contains checks if a key exists in the FIFO tracker
func (f *FIFO[K, V]) Contains(key K) bool {
	return f.list.Contains(key)
}

// Keys returns all keys, oldest first
func (f *FIFO[K, V]) Keys() []K {
	return f.list.Keys()
}

// Entries returns all entries, oldest first
func (f *FIFO[K, V]) Entries() []*entry.Entry[K, V] {
	keys := f.list.Keys()
	entries := make([]*entry.Entry[K, V], 0, len(keys))
	for _, key := range keys {
		if e, ok := f.list.Peek(key); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Len returns the number of entries currently tracked
func (f *FIFO[K, V]) Len() int {
	return f.list.Len()
}

// Clear removes all entries from the FIFO tracker
func (f *FIFO[K, V]) Clear() {
	f.list.Purge()
}

// Capacity returns the maximum number of entries this store can hold
func (f *FIFO[K, V]) Capacity() int {
	return f.capacity
}

var _ Strategy[string, any] = (*FIFO[string, any])(nil)
