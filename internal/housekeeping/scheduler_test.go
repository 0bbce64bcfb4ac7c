package housekeeping

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestSchedulerRunsRepeatedly(t *testing.T) {
	var runs atomic.Int64
	s := New(5*time.Millisecond, func() { runs.Add(1) })
	s.Start()
	defer s.Stop()

	waitFor(t, 2*time.Second, func() bool { return runs.Load() >= 3 })

	if !s.Running() {
		t.Error("Expected scheduler to be running")
	}
}

func TestSchedulerDisabled(t *testing.T) {
	var runs atomic.Int64
	s := New(0, func() { runs.Add(1) })
	s.Start()

	time.Sleep(20 * time.Millisecond)
	s.Stop()

	if runs.Load() != 0 {
		t.Errorf("Expected no runs with zero interval, got %d", runs.Load())
	}
	if s.Running() {
		t.Error("Disabled scheduler should not report running")
	}
}

func TestSchedulerFirstRunAfterInterval(t *testing.T) {
	var runs atomic.Int64
	s := New(time.Hour, func() { runs.Add(1) })
	s.Start()
	defer s.Stop()

	time.Sleep(20 * time.Millisecond)
	if runs.Load() != 0 {
		t.Errorf("Expected no run before the first interval elapsed, got %d", runs.Load())
	}
}

func TestSchedulerNoOverlap(t *testing.T) {
	var active, maxActive, runs atomic.Int64
	s := New(time.Millisecond, func() {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		runs.Add(1)
	})
	s.Start()

	waitFor(t, 2*time.Second, func() bool { return runs.Load() >= 5 })
	s.Stop()

	if maxActive.Load() != 1 {
		t.Errorf("Expected at most one run at a time, saw %d", maxActive.Load())
	}
}

func TestSchedulerStopWaitsForInFlightRun(t *testing.T) {
	started := make(chan struct{})
	var once sync.Once
	var finished atomic.Bool

	s := New(time.Millisecond, func() {
		once.Do(func() { close(started) })
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
	})
	s.Start()

	<-started
	s.Stop()

	if !finished.Load() {
		t.Error("Stop returned before the in-flight run finished")
	}
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	var runs atomic.Int64
	s := New(time.Millisecond, func() { runs.Add(1) })
	s.Start()
	waitFor(t, 2*time.Second, func() bool { return runs.Load() >= 1 })

	s.Stop()
	s.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	if runs.Load() != after {
		t.Errorf("Expected no runs after Stop, got %d more", runs.Load()-after)
	}

	// Start after Stop must not revive the loop.
	s.Start()
	if s.Running() {
		t.Error("Start after Stop should be a no-op")
	}
}
