package inventory

import (
	"time"
)

// Config defines the configuration options for an Inventory
type Config struct {
	// MaxSize bounds the number of entries; 0 means unbounded
	// Default: 0
	MaxSize int

	// HousekeepingInterval sets how often expired entries are swept;
	// 0 disables the background sweep and leaves expiration purely lazy
	// Default: 0
	HousekeepingInterval time.Duration

	// Sink receives inventory events
	// If nil, events are discarded
	Sink Sink

	// Clock supplies the current time for expiration checks
	// If nil, time.Now is used. NewEntry always stamps entries with
	// time.Now; with a custom clock, build entries with NewEntryAt(..., clock())
	Clock func() time.Time
}

// NewDefaultConfig returns an unbounded Config with housekeeping disabled
func NewDefaultConfig() *Config {
	return &Config{
		Sink:  NoOpSink(),
		Clock: time.Now,
	}
}

// NewConfig returns a Config with the given bounds and default collaborators
func NewConfig(maxSize int, housekeepingInterval time.Duration) *Config {
	return NewDefaultConfig().
		WithMaxSize(maxSize).
		WithHousekeepingInterval(housekeepingInterval)
}

// WithMaxSize sets the maximum number of entries
func (c *Config) WithMaxSize(maxSize int) *Config {
	c.MaxSize = maxSize
	return c
}

// WithHousekeepingInterval sets the background sweep interval
func (c *Config) WithHousekeepingInterval(interval time.Duration) *Config {
	c.HousekeepingInterval = interval
	return c
}

// WithSink sets the event sink
func (c *Config) WithSink(sink Sink) *Config {
	c.Sink = sink
	return c
}

// WithClock sets the time source used for expiration checks
func (c *Config) WithClock(clock func() time.Time) *Config {
	c.Clock = clock
	return c
}

// Validate returns a *ConfigurationError for negative bounds
func (c *Config) Validate() error {
	if c.MaxSize < 0 {
		return &ConfigurationError{Field: "MaxSize", Value: c.MaxSize}
	}
	if c.HousekeepingInterval < 0 {
		return &ConfigurationError{Field: "HousekeepingInterval", Value: c.HousekeepingInterval}
	}
	return nil
}
