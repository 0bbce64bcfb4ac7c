package inventory

import (
	"sync"
	"time"
)

// fakeClock is a manually advanced time source
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// recordedEvent is a single captured notification
type recordedEvent struct {
	Level   Level
	Message string
	Fields  []Field
}

func (e recordedEvent) field(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// recordingSink captures every notification for assertions
type recordingSink struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (s *recordingSink) Notify(level Level, msg string, fields ...Field) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, recordedEvent{Level: level, Message: msg, Fields: fields})
}

func (s *recordingSink) withEvent(event string) []recordedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	var filtered []recordedEvent
	for _, e := range s.events {
		if v, ok := e.field(FieldEvent); ok && v == event {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func (s *recordingSink) reset() {
	s.mu.Lock()
	s.events = nil
	s.mu.Unlock()
}

// newTestInventory builds an inventory on a fake clock with a recording sink
func newTestInventory[K comparable, V any](maxSize int, interval time.Duration) (*Inventory[K, V], *fakeClock, *recordingSink, error) {
	clock := newFakeClock()
	sink := &recordingSink{}
	config := NewConfig(maxSize, interval).WithClock(clock.Now).WithSink(sink)
	inv, err := NewWithConfig[K, V](config)
	return inv, clock, sink, err
}

// entryAt builds an entry stamped with the fake clock's current time
func entryAt[K comparable, V any](clock *fakeClock, name K, value V, ttl time.Duration) *Entry[K, V] {
	return NewEntryAt(name, value, ttl, clock.Now())
}
