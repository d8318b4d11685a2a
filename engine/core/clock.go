package core

import (
	"sync"
	"time"
)

// TimeSource abstracts the wall clock so frame timing can be driven
// deterministically in tests.
type TimeSource interface {
	Now() time.Time
}

// SystemTimeSource reads the real monotonic clock.
type SystemTimeSource struct{}

func (SystemTimeSource) Now() time.Time {
	return time.Now()
}

// ManualTimeSource is a controllable time source for tests.
type ManualTimeSource struct {
	mu      sync.RWMutex
	current time.Time
}

func NewManualTimeSource(start time.Time) *ManualTimeSource {
	return &ManualTimeSource{current: start}
}

func (m *ManualTimeSource) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Advance moves the current time forward by d.
func (m *ManualTimeSource) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

type Clock struct {
	source    TimeSource
	startTime time.Time
	elapsed   time.Duration
	started   bool
}

func NewClock(source TimeSource) *Clock {
	if source == nil {
		source = SystemTimeSource{}
	}
	return &Clock{source: source}
}

// Updates the clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.started {
		c.elapsed = c.source.Now().Sub(c.startTime)
	}
}

// Starts the clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.source.Now()
	c.elapsed = 0
	c.started = true
}

// Stops the clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.started = false
}

func (c *Clock) Elapsed() time.Duration {
	return c.elapsed
}

// ElapsedSeconds returns the elapsed time as fractional seconds, the unit
// used by frame deltas throughout the engine.
func (c *Clock) ElapsedSeconds() float64 {
	return c.elapsed.Seconds()
}
