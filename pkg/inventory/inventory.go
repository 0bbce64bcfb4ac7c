package inventory

import (
	"fmt"
	"sync"
	"time"

	"github.com/vnykmshr/cacheinventory/internal/eviction"
	"github.com/vnykmshr/cacheinventory/internal/housekeeping"
)

func (inv *Inventory[K, V]) lock(fn func()) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	fn()
}

func (inv *Inventory[K, V]) notify(level Level, msg, event string, fields ...Field) {
	inv.sink.Notify(level, msg, append([]Field{F(FieldEvent, event)}, fields...)...)
}

// Inventory is a bounded, insertion-ordered store of named entries with
// per-entry TTL, first-in-first-out overflow eviction, and an optional
// background sweep of expired entries
type Inventory[K comparable, V any] struct {
	config  Config
	entries eviction.Strategy[K, V]
	sink    Sink
	now     func() time.Time
	mu      sync.Mutex
	closed  bool

	housekeeper *housekeeping.Scheduler
}

// New creates an Inventory holding at most maxSize entries (0 for unbounded)
// and sweeping expired entries every housekeepingInterval (0 to disable)
func New[K comparable, V any](maxSize int, housekeepingInterval time.Duration) (*Inventory[K, V], error) {
	return NewWithConfig[K, V](NewConfig(maxSize, housekeepingInterval))
}

// NewWithConfig creates an Inventory from config. Negative bounds yield a
// *ConfigurationError and no inventory.
func NewWithConfig[K comparable, V any](config *Config) (*Inventory[K, V], error) {
	if config == nil {
		config = NewDefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	entries, err := eviction.NewFIFO[K, V](config.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry store: %w", err)
	}

	inv := &Inventory[K, V]{
		config:  *config,
		entries: entries,
		sink:    config.Sink,
		now:     config.Clock,
	}
	if inv.sink == nil {
		inv.sink = NoOpSink()
	}
	if inv.now == nil {
		inv.now = time.Now
	}

	inv.housekeeper = housekeeping.New(config.HousekeepingInterval, func() {
		inv.Sweep()
	})
	inv.housekeeper.Start()

	return inv, nil
}

// Add stores e under its name. When the inventory is full, the oldest entry
// is evicted first, whether or not the name is already present. Re-adding a
// name replaces the previous entry and moves it to the newest position.
func (inv *Inventory[K, V]) Add(e *Entry[K, V]) error {
	if e == nil {
		return fmt.Errorf("%w: nil entry", ErrInvalidArgument)
	}
	if err := e.Valid(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	var err error
	inv.lock(func() {
		if inv.closed {
			err = ErrClosed
			return
		}

		if displaced, evicted := inv.entries.Add(e); evicted {
			inv.notify(LevelDebug, "Inventory full, evicted oldest entry", EventEvicted,
				F(FieldKey, displaced.Name()),
				F(FieldReason, ReasonCapacity),
				F(FieldHits, displaced.Hits()),
			)
		}

		inv.notify(LevelDebug, "Entry added", EventAdded,
			F(FieldKey, e.Name()),
			F(FieldTTL, e.TTL()),
		)
	})

	return err
}

// Get returns the value stored under name. Expired entries are removed and
// reported as absent. Each successful Get increments the entry's hit count.
func (inv *Inventory[K, V]) Get(name K) (V, bool) {
	var value V
	var found bool

	inv.lock(func() {
		e, ok := inv.liveLocked(name)
		if !ok {
			return
		}

		hits := e.Hit()
		inv.notify(LevelDebug, "Entry retrieved", EventRetrieved,
			F(FieldKey, name),
			F(FieldHits, hits),
		)

		value = e.Value()
		found = true
	})

	return value, found
}

// Contains reports whether name is present and not expired, without
// counting a hit
func (inv *Inventory[K, V]) Contains(name K) bool {
	var exists bool
	inv.lock(func() {
		_, exists = inv.liveLocked(name)
	})
	return exists
}

// Delete removes name regardless of its expiration state. It returns
// ErrNotFound when name is absent.
func (inv *Inventory[K, V]) Delete(name K) error {
	var err error

	inv.lock(func() {
		if !inv.entries.Remove(name) {
			inv.notify(LevelDebug, "Entry not found", EventNotFound, F(FieldKey, name))
			err = ErrNotFound
			return
		}
		inv.notify(LevelDebug, "Entry removed", EventRemoved, F(FieldKey, name))
	})

	return err
}

// Clear removes all entries
func (inv *Inventory[K, V]) Clear() {
	inv.lock(func() {
		removed := inv.entries.Len()
		inv.entries.Clear()
		inv.notify(LevelInfo, "Inventory cleared", EventCleared, F(FieldRemoved, removed))
	})
}

// Info returns a snapshot of the metadata for name. Expired entries are
// removed and reported as ErrNotFound, as Get and Contains do.
func (inv *Inventory[K, V]) Info(name K) (EntryInfo[K], error) {
	var info EntryInfo[K]
	err := ErrNotFound

	inv.lock(func() {
		if e, ok := inv.liveLocked(name); ok {
			info = infoOf(e)
			err = nil
		}
	})

	return info, err
}

// Len returns the number of stored entries, including expired entries that
// have not been looked up or swept yet
func (inv *Inventory[K, V]) Len() int {
	var length int
	inv.lock(func() {
		length = inv.entries.Len()
	})
	return length
}

// Keys returns the stored names, oldest first
func (inv *Inventory[K, V]) Keys() []K {
	var keys []K
	inv.lock(func() {
		keys = inv.entries.Keys()
	})
	return keys
}

// Sweep removes every entry expired at the time of the call and returns the
// number removed. The background housekeeper calls it on every interval.
func (inv *Inventory[K, V]) Sweep() int {
	var removed int

	inv.lock(func() {
		snapshot := inv.entries.Entries()
		inv.notify(LevelInfo, "Starting inventory housekeeping", EventHousekeepingStarted,
			F(FieldInspected, len(snapshot)),
		)

		now := inv.now()
		for _, e := range snapshot {
			if inv.expireLocked(e, now, ReasonSweep) {
				removed++
			}
		}

		inv.notify(LevelInfo, "Inventory housekeeping completed", EventHousekeepingCompleted,
			F(FieldInspected, len(snapshot)),
			F(FieldRemoved, removed),
		)
	})

	return removed
}

// Close stops the housekeeper and discards all entries. Close is safe to
// call multiple times.
func (inv *Inventory[K, V]) Close() error {
	// Stop outside the lock: an in-flight sweep needs it to finish.
	inv.housekeeper.Stop()

	inv.lock(func() {
		if inv.closed {
			return
		}
		inv.closed = true
		inv.entries.Clear()
	})

	return nil
}

// MaxSize returns the configured entry bound
func (inv *Inventory[K, V]) MaxSize() int {
	return inv.config.MaxSize
}

// HousekeepingInterval returns the configured sweep interval
func (inv *Inventory[K, V]) HousekeepingInterval() time.Duration {
	return inv.config.HousekeepingInterval
}

// liveLocked returns the entry for name if it is present and not expired.
// Callers must hold inv.mu.
func (inv *Inventory[K, V]) liveLocked(name K) (*Entry[K, V], bool) {
	e, ok := inv.entries.Peek(name)
	if !ok {
		return nil, false
	}
	if inv.expireLocked(e, inv.now(), ReasonLazy) {
		return nil, false
	}
	return e, true
}

// expireLocked removes e if it is expired at now. Callers must hold inv.mu.
func (inv *Inventory[K, V]) expireLocked(e *Entry[K, V], now time.Time, reason string) bool {
	if !e.IsExpiredAt(now) {
		return false
	}

	inv.entries.Remove(e.Name())
	inv.notify(LevelDebug, "Entry expired and removed", EventExpired,
		F(FieldKey, e.Name()),
		F(FieldReason, reason),
		F(FieldHits, e.Hits()),
		F(FieldTTL, e.TTL()),
	)
	return true
}
