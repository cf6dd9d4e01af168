package engine

import (
	"sync"
	"time"
)

// Scheduler drives a single periodic tick whose interval can be changed.
// Reset cancels the pending period and starts a new one at the given interval
type Scheduler interface {
	Start(interval time.Duration)
	Reset(interval time.Duration)
	Stop()
	Running() bool
	Interval() time.Duration
	// Ticks returns the channel to select on; nil while stopped
	Ticks() <-chan time.Time
}

// ClockScheduler is the wall-clock Scheduler backed by a time.Ticker
type ClockScheduler struct {
	mu       sync.Mutex
	ticker   *time.Ticker
	interval time.Duration
	running  bool
}

// NewClockScheduler creates a stopped scheduler
func NewClockScheduler() *ClockScheduler {
	return &ClockScheduler{}
}

// Start begins ticking at interval, replacing any previous ticker
func (cs *ClockScheduler) Start(interval time.Duration) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.ticker != nil {
		cs.ticker.Stop()
	}
	cs.ticker = time.NewTicker(interval)
	cs.interval = interval
	cs.running = true
}

// Reset changes the period; a stopped scheduler is started
func (cs *ClockScheduler) Reset(interval time.Duration) {
	cs.mu.Lock()
	if cs.ticker == nil || !cs.running {
		cs.mu.Unlock()
		cs.Start(interval)
		return
	}
	defer cs.mu.Unlock()

	cs.ticker.Reset(interval)
	cs.interval = interval
}

// Stop halts ticking; pending ticks are discarded
func (cs *ClockScheduler) Stop() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.ticker != nil {
		cs.ticker.Stop()
	}
	cs.running = false
}

// Running reports whether ticks are being delivered
func (cs *ClockScheduler) Running() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.running
}

// Interval returns the current period
func (cs *ClockScheduler) Interval() time.Duration {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.interval
}

// Ticks returns the ticker channel, or nil when stopped so a select blocks on it
func (cs *ClockScheduler) Ticks() <-chan time.Time {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if !cs.running || cs.ticker == nil {
		return nil
	}
	return cs.ticker.C
}

// ManualScheduler is a Scheduler stepped by hand, for tests and replays
type ManualScheduler struct {
	mu       sync.Mutex
	interval time.Duration
	running  bool
	ch       chan time.Time
	clock    *MockTimeProvider

	Starts int
	Resets []time.Duration
	Stops  int
}

// NewManualScheduler creates a stopped manual scheduler; clock may be nil
func NewManualScheduler(clock *MockTimeProvider) *ManualScheduler {
	return &ManualScheduler{
		ch:    make(chan time.Time, 1),
		clock: clock,
	}
}

func (ms *ManualScheduler) Start(interval time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.interval = interval
	ms.running = true
	ms.Starts++
}

func (ms *ManualScheduler) Reset(interval time.Duration) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.interval = interval
	ms.running = true
	ms.Resets = append(ms.Resets, interval)
}

func (ms *ManualScheduler) Stop() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.running = false
	ms.Stops++
}

func (ms *ManualScheduler) Running() bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.running
}

func (ms *ManualScheduler) Interval() time.Duration {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.interval
}

func (ms *ManualScheduler) Ticks() <-chan time.Time {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if !ms.running {
		return nil
	}
	return ms.ch
}

// Fire advances the attached clock by one interval and queues a tick.
// Returns false when stopped or when a tick is already queued
func (ms *ManualScheduler) Fire() bool {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if !ms.running {
		return false
	}

	now := time.Time{}
	if ms.clock != nil {
		ms.clock.Advance(ms.interval)
		now = ms.clock.Now()
	}

	select {
	case ms.ch <- now:
		return true
	default:
		return false
	}
}
