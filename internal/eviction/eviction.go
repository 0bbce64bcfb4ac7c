package eviction

import (
	"github.com/vnykmshr/cacheinventory/internal/entry"
)

// Strategy defines the ordered store an inventory keeps its entries in.
// Implementations are not safe for concurrent use; the owner serializes access.
type Strategy[K comparable, V any] interface {
	// Add stores an entry keyed by its name. If room had to be made, the
	// displaced entry is returned with evicted set to true.
	Add(e *entry.Entry[K, V]) (displaced *entry.Entry[K, V], evicted bool)

	// Peek retrieves an entry without changing its position
	Peek(key K) (*entry.Entry[K, V], bool)

	// Remove removes an entry, reporting whether it was present
	Remove(key K) bool

	// Contains checks if a key is tracked
	Contains(key K) bool

	// Keys returns all keys in eviction order, next victim first
	Keys() []K

	// Entries returns all entries in eviction order, next victim first
	Entries() []*entry.Entry[K, V]

	// Len returns the number of entries currently tracked
	Len() int

	// Clear removes all entries
	Clear()

	// Capacity returns the maximum number of entries, 0 meaning unbounded
	Capacity() int
}
