package sink

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/cacheinventory/pkg/inventory"
)

// PrometheusConfig holds Prometheus-specific configuration
type PrometheusConfig struct {
	// Registry is the Prometheus registry to use (optional, uses default if nil)
	Registry prometheus.Registerer

	// Namespace is prepended to all metric names
	// Default: "inventory"
	Namespace string

	// ConstLabels are applied to all metrics, e.g. {"inventory": "sessions"}
	ConstLabels prometheus.Labels
}

// PrometheusSink counts inventory events in Prometheus collectors
type PrometheusSink struct {
	events           *prometheus.CounterVec
	housekeepingRuns prometheus.Counter
	sweptEntries     prometheus.Counter
	lastInspected    prometheus.Gauge
}

// NewPrometheusSink creates and registers the sink's collectors
func NewPrometheusSink(config *PrometheusConfig) (*PrometheusSink, error) {
	if config == nil {
		config = &PrometheusConfig{}
	}

	registry := config.Registry
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	namespace := config.Namespace
	if namespace == "" {
		namespace = "inventory"
	}

	s := &PrometheusSink{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "events_total",
			Help:        "Total number of inventory events by event and reason",
			ConstLabels: config.ConstLabels,
		}, []string{"event", "reason"}),
		housekeepingRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "housekeeping_runs_total",
			Help:        "Total number of completed housekeeping sweeps",
			ConstLabels: config.ConstLabels,
		}),
		sweptEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "housekeeping_removed_total",
			Help:        "Total number of expired entries removed by housekeeping",
			ConstLabels: config.ConstLabels,
		}),
		lastInspected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "housekeeping_last_inspected",
			Help:        "Number of entries inspected by the most recent housekeeping sweep",
			ConstLabels: config.ConstLabels,
		}),
	}

	for _, c := range []prometheus.Collector{s.events, s.housekeepingRuns, s.sweptEntries, s.lastInspected} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register inventory collector: %w", err)
		}
	}

	return s, nil
}

// Notify counts the event
func (s *PrometheusSink) Notify(_ inventory.Level, _ string, fields ...inventory.Field) {
	event, reason := eventOf(fields)
	if event == "" {
		return
	}

	s.events.WithLabelValues(event, reason).Inc()

	if event == inventory.EventHousekeepingCompleted {
		s.housekeepingRuns.Inc()
		if removed, ok := intField(fields, inventory.FieldRemoved); ok {
			s.sweptEntries.Add(float64(removed))
		}
		if inspected, ok := intField(fields, inventory.FieldInspected); ok {
			s.lastInspected.Set(float64(inspected))
		}
	}
}

var _ inventory.Sink = (*PrometheusSink)(nil)
