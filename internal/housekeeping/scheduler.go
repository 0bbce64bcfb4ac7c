// Package housekeeping runs a task on a fixed interval in a goroutine owned
// by the caller. The next run is armed only once the previous one returns,
// so runs never overlap and a slow run delays, rather than stacks, the next.
package housekeeping

import (
	"sync"
	"time"
)

// Scheduler runs a task every interval until stopped
type Scheduler struct {
	interval time.Duration
	task     func()

	mu      sync.Mutex
	started bool
	stopped bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

// New creates a scheduler for task. Nothing runs until Start is called.
func New(interval time.Duration, task func()) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
		stop:     make(chan struct{}),
	}
}

// Start arms the first run one interval from now. It is a no-op when the
// interval is not positive, or when the scheduler was already started or stopped.
func (s *Scheduler) Start() {
	if s.interval <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	s.wg.Add(1)
	go s.loop()
}

// Stop cancels pending runs and waits for an in-flight run to finish.
// Stop is safe to call multiple times and must not be called from the task.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stop)
	s.mu.Unlock()

	s.wg.Wait()
}

// Running reports whether the background loop is active
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started && !s.stopped
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			// Stop may have raced with the timer firing.
			select {
			case <-s.stop:
				return
			default:
			}

			s.task()
			timer.Reset(s.interval)
		case <-s.stop:
			return
		}
	}
}
