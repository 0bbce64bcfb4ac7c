package inventory

import (
	"errors"
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	config := NewDefaultConfig()

	if config.MaxSize != 0 {
		t.Fatalf("Expected MaxSize 0, got %d", config.MaxSize)
	}
	if config.HousekeepingInterval != 0 {
		t.Fatalf("Expected HousekeepingInterval 0, got %v", config.HousekeepingInterval)
	}
	if config.Sink == nil {
		t.Fatal("Expected Sink to be non-nil")
	}
	if config.Clock == nil {
		t.Fatal("Expected Clock to be non-nil")
	}
	if err := config.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
}

func TestConfigBuilders(t *testing.T) {
	sink := &recordingSink{}
	clock := newFakeClock()

	config := NewDefaultConfig().
		WithMaxSize(500).
		WithHousekeepingInterval(30 * time.Second).
		WithSink(sink).
		WithClock(clock.Now)

	if config.MaxSize != 500 {
		t.Fatalf("Expected MaxSize 500, got %d", config.MaxSize)
	}
	if config.HousekeepingInterval != 30*time.Second {
		t.Fatalf("Expected HousekeepingInterval 30s, got %v", config.HousekeepingInterval)
	}
	if config.Sink != sink {
		t.Fatal("Expected custom sink to be set")
	}
	if !config.Clock().Equal(clock.Now()) {
		t.Fatal("Expected custom clock to be set")
	}
}

func TestNewConfig(t *testing.T) {
	config := NewConfig(3, time.Minute)

	if config.MaxSize != 3 || config.HousekeepingInterval != time.Minute {
		t.Fatalf("Expected 3/1m, got %d/%v", config.MaxSize, config.HousekeepingInterval)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{"Zero", NewConfig(0, 0), false},
		{"Positive", NewConfig(10, time.Second), false},
		{"NegativeMaxSize", NewConfig(-5, time.Second), true},
		{"NegativeInterval", NewConfig(10, -time.Nanosecond), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrConfiguration) {
				t.Errorf("Expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestConfigIsCopied(t *testing.T) {
	config := NewConfig(2, 0)
	inv, err := NewWithConfig[string, int](config)
	if err != nil {
		t.Fatal(err)
	}
	defer inv.Close()

	config.WithMaxSize(100)
	if inv.MaxSize() != 2 {
		t.Errorf("Expected inventory bounds to be fixed at construction, got %d", inv.MaxSize())
	}
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := &ConfigurationError{Field: "MaxSize", Value: -1}
	want := "inventory: invalid configuration: MaxSize must not be negative (got -1)"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}
