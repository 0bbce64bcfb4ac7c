package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError
	ErrConfiguration = errors.New("inventory: invalid configuration")

	// ErrNotFound is returned when a name is absent or its entry has expired
	ErrNotFound = errors.New("inventory: entry not found")

	// ErrInvalidArgument is returned when Add receives an entry it cannot store
	ErrInvalidArgument = errors.New("inventory: invalid argument")

	// ErrClosed is returned when mutating an inventory after Close
	ErrClosed = errors.New("inventory: closed")
)

// ConfigurationError reports a configuration value New refused to start with
type ConfigurationError struct {
	Field string
	Value any
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("inventory: invalid configuration: %s must not be negative (got %v)", e.Field, e.Value)
}

// Unwrap allows errors.Is(err, ErrConfiguration)
func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
