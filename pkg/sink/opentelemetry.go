package sink

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/vnykmshr/cacheinventory/pkg/inventory"
)

const instrumentationName = "github.com/vnykmshr/cacheinventory"

// OpenTelemetryConfig holds OpenTelemetry-specific configuration
type OpenTelemetryConfig struct {
	// Meter is the OpenTelemetry meter to use
	// If nil, a meter from the global MeterProvider is used
	Meter metric.Meter

	// Context is the context to use for metric operations
	Context context.Context

	// Attributes are applied to every measurement
	Attributes []attribute.KeyValue
}

// OpenTelemetrySink counts inventory events with OpenTelemetry instruments
type OpenTelemetrySink struct {
	ctx   context.Context
	attrs []attribute.KeyValue

	events        metric.Int64Counter
	sweptEntries  metric.Int64Counter
	lastInspected metric.Int64Gauge
}

// NewOpenTelemetrySink creates the sink's instruments on the configured meter
func NewOpenTelemetrySink(config *OpenTelemetryConfig) (*OpenTelemetrySink, error) {
	if config == nil {
		config = &OpenTelemetryConfig{}
	}

	meter := config.Meter
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}

	ctx := config.Context
	if ctx == nil {
		ctx = context.Background()
	}

	s := &OpenTelemetrySink{
		ctx:   ctx,
		attrs: config.Attributes,
	}

	var err error
	s.events, err = meter.Int64Counter(
		"inventory.events",
		metric.WithDescription("Total number of inventory events by event and reason"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create events counter: %w", err)
	}

	s.sweptEntries, err = meter.Int64Counter(
		"inventory.housekeeping.removed",
		metric.WithDescription("Total number of expired entries removed by housekeeping"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create housekeeping counter: %w", err)
	}

	s.lastInspected, err = meter.Int64Gauge(
		"inventory.housekeeping.inspected",
		metric.WithDescription("Number of entries inspected by the most recent housekeeping sweep"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create inspected gauge: %w", err)
	}

	return s, nil
}

// Notify records the event
func (s *OpenTelemetrySink) Notify(_ inventory.Level, _ string, fields ...inventory.Field) {
	event, reason := eventOf(fields)
	if event == "" {
		return
	}

	attrs := make([]attribute.KeyValue, len(s.attrs), len(s.attrs)+2)
	copy(attrs, s.attrs)
	attrs = append(attrs, attribute.String("event", event))
	if reason != "" {
		attrs = append(attrs, attribute.String("reason", reason))
	}

	s.events.Add(s.ctx, 1, metric.WithAttributes(attrs...))

	if event == inventory.EventHousekeepingCompleted {
		if removed, ok := intField(fields, inventory.FieldRemoved); ok {
			s.sweptEntries.Add(s.ctx, removed, metric.WithAttributes(s.attrs...))
		}
		if inspected, ok := intField(fields, inventory.FieldInspected); ok {
			s.lastInspected.Record(s.ctx, inspected, metric.WithAttributes(s.attrs...))
		}
	}
}

var _ inventory.Sink = (*OpenTelemetrySink)(nil)
