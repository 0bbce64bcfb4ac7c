package inventory

import (
	"time"

	"github.com/vnykmshr/cacheinventory/internal/entry"
)

// Entry is a named value with a TTL and a hit counter. Build one with NewEntry
// and hand it to exactly one Inventory.
type Entry[K comparable, V any] = entry.Entry[K, V]

// NewEntry creates an entry created now. A ttl of 0 means the entry never
// expires; a negative ttl is rejected by Add.
func NewEntry[K comparable, V any](name K, value V, ttl time.Duration) *Entry[K, V] {
	return entry.New(name, value, ttl)
}

// NewEntryAt creates an entry with an explicit creation time. Use it when the
// inventory runs on a custom Config.Clock, so that entries are stamped by the
// same time source their expiration is judged against.
func NewEntryAt[K comparable, V any](name K, value V, ttl time.Duration, createdAt time.Time) *Entry[K, V] {
	return entry.NewAt(name, value, ttl, createdAt)
}

// EntryInfo is a read-only snapshot of an entry's metadata
type EntryInfo[K comparable] struct {
	Name      K
	Hits      int64
	TTL       time.Duration
	CreatedAt time.Time
}

func infoOf[K comparable, V any](e *Entry[K, V]) EntryInfo[K] {
	return EntryInfo[K]{
		Name:      e.Name(),
		Hits:      e.Hits(),
		TTL:       e.TTL(),
		CreatedAt: e.CreatedAt(),
	}
}
