// Package sink provides inventory.Sink implementations: a structured logger
// adapter, Prometheus and OpenTelemetry event counters, and a fan-out sink.
package sink

import (
	"github.com/vnykmshr/cacheinventory/pkg/inventory"
)

// LogSink renders inventory events through a Logger
type LogSink struct {
	logger Logger
}

// NewLogSink creates a sink writing to logger. A nil logger discards events.
func NewLogSink(logger Logger) *LogSink {
	if logger == nil {
		logger = NoOpLogger{}
	}
	return &LogSink{logger: logger}
}

// Notify logs the event at the matching logger level
func (s *LogSink) Notify(level inventory.Level, msg string, fields ...inventory.Field) {
	switch level {
	case inventory.LevelDebug:
		s.logger.Debug(msg, fields...)
	case inventory.LevelInfo:
		s.logger.Info(msg, fields...)
	case inventory.LevelWarn:
		s.logger.Warn(msg, fields...)
	default:
		s.logger.Error(msg, fields...)
	}
}

// MultiSink forwards every event to several sinks in order
type MultiSink struct {
	sinks []inventory.Sink
}

// NewMultiSink creates a sink that notifies each of sinks; nil entries are skipped
func NewMultiSink(sinks ...inventory.Sink) *MultiSink {
	filtered := make([]inventory.Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			filtered = append(filtered, s)
		}
	}
	return &MultiSink{sinks: filtered}
}

// Notify forwards the event to all configured sinks
func (m *MultiSink) Notify(level inventory.Level, msg string, fields ...inventory.Field) {
	for _, s := range m.sinks {
		s.Notify(level, msg, fields...)
	}
}

// eventOf extracts the event name and reason from an event's fields
func eventOf(fields []inventory.Field) (event, reason string) {
	for _, f := range fields {
		switch f.Key {
		case inventory.FieldEvent:
			event, _ = f.Value.(string)
		case inventory.FieldReason:
			reason, _ = f.Value.(string)
		}
	}
	return event, reason
}

// intField returns the integer value of the named field
func intField(fields []inventory.Field, key string) (int64, bool) {
	for _, f := range fields {
		if f.Key != key {
			continue
		}
		switch v := f.Value.(type) {
		case int:
			return int64(v), true
		case int64:
			return v, true
		case int32:
			return int64(v), true
		}
		return 0, false
	}
	return 0, false
}

var (
	_ inventory.Sink = (*LogSink)(nil)
	_ inventory.Sink = (*MultiSink)(nil)
)
