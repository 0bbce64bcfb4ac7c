// Package inventory provides a thread-safe, in-process cache of named entries
// bounded by an entry count and by per-entry time-to-live (TTL).
//
// # Overview
//
// An Inventory keeps entries in insertion order. When it is full, every Add
// evicts the oldest entry first, whatever its hit count or remaining TTL and
// even when the added name is already present.
// Expired entries are treated as absent everywhere: Get, Contains and Info
// remove them on sight, and an optional background housekeeper sweeps the
// whole store on a fixed interval.
//
// # Basic Usage
//
//	inv, err := inventory.New[string, *User](1000, time.Minute)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer inv.Close()
//
//	// Cache a user for 30 seconds
//	if err := inv.Add(inventory.NewEntry("user:123", user, 30*time.Second)); err != nil {
//	    log.Printf("Failed to add entry: %v", err)
//	}
//
//	if u, found := inv.Get("user:123"); found {
//	    fmt.Printf("Found user: %+v\n", u)
//	}
//
//	info, err := inv.Info("user:123")
//	if err == nil {
//	    fmt.Printf("hits=%d ttl=%s\n", info.Hits, info.TTL)
//	}
//
// # Configuration
//
//	config := inventory.NewDefaultConfig().
//	    WithMaxSize(500).
//	    WithHousekeepingInterval(5 * time.Minute).
//	    WithSink(sink.NewLogSink(sink.NewTextLogger(inventory.LevelInfo)))
//
//	inv, err := inventory.NewWithConfig[string, []byte](config)
//
// A MaxSize of 0 means unbounded and a HousekeepingInterval of 0 disables the
// background sweep. Negative values are rejected with a *ConfigurationError.
//
// Expiration is judged against Config.Clock. NewEntry stamps entries with
// time.Now, so an inventory on a custom clock should be fed entries built with
// NewEntryAt:
//
//	inv, _ := inventory.NewWithConfig[string, int](inventory.NewDefaultConfig().WithClock(clock))
//	_ = inv.Add(inventory.NewEntryAt("k", 1, time.Minute, clock()))
//
// # Events
//
// The inventory never writes output itself. Every addition, eviction,
// expiration, retrieval, removal and housekeeping run is reported to the
// configured Sink with an "event" field naming what happened. See package
// sink for logging and metrics-backed implementations.
//
// # Thread Safety
//
// All operations, including the background sweep, are serialized behind a
// single lock per inventory. Sinks are notified with that lock held and must
// not call back into the inventory.
package inventory
