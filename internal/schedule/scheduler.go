// Package schedule provides keyed, cancellable one-shot timers.
// Each key holds at most one pending timer: scheduling a key replaces the
// previous timer, and Stop cancels everything for teardown.
package schedule

import (
	"errors"
	"sync"
	"time"
)

// ErrStopped is returned when scheduling on a stopped Scheduler.
var ErrStopped = errors.New("schedule: scheduler stopped")

// Timer is a handle to a pending callback.
type Timer interface {
	Stop() bool
}

// Clock creates timers. It exists so tests can drive time by hand.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock returns a Clock backed by the time package.
func RealClock() Clock { return realClock{} }

type entry struct {
	timer Timer
	gen   uint64
}

// Scheduler owns a set of keyed timers.
type Scheduler struct {
	mu      sync.Mutex
	clock   Clock
	timers  map[string]entry
	gen     uint64
	stopped bool
}

// New creates a Scheduler. A nil clock uses RealClock.
func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock()
	}
	return &Scheduler{clock: clock, timers: make(map[string]entry)}
}

// Schedule runs fn after d under key, cancelling any timer already pending
// for that key. fn runs on the clock's goroutine. A callback whose timer
// was superseded, cancelled or stopped never runs, even if it already
// fired and is waiting on the lock.
func (s *Scheduler) Schedule(key string, d time.Duration, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	s.cancelLocked(key)

	s.gen++
	gen := s.gen
	t := s.clock.AfterFunc(d, func() {
		s.mu.Lock()
		e, ok := s.timers[key]
		if !ok || e.gen != gen || s.stopped {
			s.mu.Unlock()
			return
		}
		delete(s.timers, key)
		s.mu.Unlock()
		fn()
	})
	s.timers[key] = entry{timer: t, gen: gen}
	return nil
}

// Cancel stops the timer pending under key. It reports whether one was
// pending.
func (s *Scheduler) Cancel(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelLocked(key)
}

func (s *Scheduler) cancelLocked(key string) bool {
	e, ok := s.timers[key]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.timers, key)
	return true
}

// Pending reports whether a timer is pending under key.
func (s *Scheduler) Pending(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[key]
	return ok
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels every pending timer and rejects further scheduling.
// It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for key := range s.timers {
		s.cancelLocked(key)
	}
}

// Stopped reports whether Stop has been called.
func (s *Scheduler) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}
