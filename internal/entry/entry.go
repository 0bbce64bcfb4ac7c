package entry

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Entry represents a named cache entry with TTL and hit information
type Entry[K comparable, V any] struct {
	name  K
	value V

	// ttl of 0 means the entry never expires
	ttl time.Duration

	// createdAt is fixed at construction
	createdAt time.Time

	// hits is bumped by the owning inventory on every successful lookup
	hits atomic.Int64
}

// New creates a new entry stamped with the current time
func New[K comparable, V any](name K, value V, ttl time.Duration) *Entry[K, V] {
	return NewAt(name, value, ttl, time.Now())
}

// NewAt creates a new entry with an explicit creation time
func NewAt[K comparable, V any](name K, value V, ttl time.Duration, createdAt time.Time) *Entry[K, V] {
	return &Entry[K, V]{
		name:      name,
		value:     value,
		ttl:       ttl,
		createdAt: createdAt,
	}
}

// Name returns the entry name, which is also its storage key
func (e *Entry[K, V]) Name() K {
	return e.name
}

// Value returns the cached payload
func (e *Entry[K, V]) Value() V {
	return e.value
}

// TTL returns the configured time-to-live
func (e *Entry[K, V]) TTL() time.Duration {
	return e.ttl
}

// CreatedAt returns when the entry was created
func (e *Entry[K, V]) CreatedAt() time.Time {
	return e.createdAt
}

// Hits returns how many times the entry was successfully retrieved
func (e *Entry[K, V]) Hits() int64 {
	return e.hits.Load()
}

// Hit increments the hit counter and returns the new count
func (e *Entry[K, V]) Hit() int64 {
	return e.hits.Add(1)
}

// HasExpiry returns true if the entry has a non-zero TTL
func (e *Entry[K, V]) HasExpiry() bool {
	return e.ttl != 0
}

// ExpiresAt returns the expiration instant, or the zero time for entries without expiry
func (e *Entry[K, V]) ExpiresAt() time.Time {
	if !e.HasExpiry() {
		return time.Time{}
	}
	return e.createdAt.Add(e.ttl)
}

// IsExpiredAt reports whether the entry is expired at the given instant.
// An entry is expired from createdAt+ttl onwards.
func (e *Entry[K, V]) IsExpiredAt(now time.Time) bool {
	if !e.HasExpiry() {
		return false
	}
	return !now.Before(e.ExpiresAt())
}

// Valid returns an error if the entry cannot be stored
func (e *Entry[K, V]) Valid() error {
	if e.ttl < 0 {
		return fmt.Errorf("negative ttl %s", e.ttl)
	}
	return nil
}

// String returns a string representation of the entry (for debugging)
func (e *Entry[K, V]) String() string {
	status := fmt.Sprintf("Entry{name: %v, hits: %d, ", e.name, e.Hits())
	if !e.HasExpiry() {
		status += "no-expiry}"
	} else {
		status += "expires: " + e.ExpiresAt().Format(time.RFC3339) + "}"
	}
	return status
}
