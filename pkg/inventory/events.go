package inventory

// Level defines the severity of an inventory event
type Level int

const (
	// LevelDebug is used for per-entry traffic (adds, hits, expirations)
	LevelDebug Level = iota

	// LevelInfo is used for housekeeping summaries and bulk operations
	LevelInfo

	// LevelWarn is reserved for degraded conditions
	LevelWarn

	// LevelError is reserved for failures
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field represents a key-value pair attached to an event
type Field struct {
	Key   string
	Value any
}

// F is a convenience function to create an event field
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Sink receives the events an inventory emits. Notify is called while the
// inventory lock is held; implementations must not call back into the inventory.
type Sink interface {
	Notify(level Level, msg string, fields ...Field)
}

// Event names carried in the "event" field of every notification
const (
	EventAdded                 = "entry_added"
	EventEvicted               = "entry_evicted"
	EventExpired               = "entry_expired"
	EventRetrieved             = "entry_retrieved"
	EventRemoved               = "entry_removed"
	EventNotFound              = "entry_not_found"
	EventCleared               = "inventory_cleared"
	EventHousekeepingStarted   = "housekeeping_started"
	EventHousekeepingCompleted = "housekeeping_completed"
)

// Field keys used by the inventory
const (
	FieldEvent     = "event"
	FieldKey       = "key"
	FieldReason    = "reason"
	FieldHits      = "hits"
	FieldTTL       = "ttl"
	FieldInspected = "inspected"
	FieldRemoved   = "removed"
)

// Reasons attached to eviction and expiration events
const (
	ReasonCapacity = "capacity"
	ReasonLazy     = "lazy"
	ReasonSweep    = "sweep"
)

type noopSink struct{}

func (noopSink) Notify(Level, string, ...Field) {}

// NoOpSink returns a sink that discards every event
func NoOpSink() Sink {
	return noopSink{}
}
