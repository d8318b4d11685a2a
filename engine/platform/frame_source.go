package platform

import (
	"sync"
	"time"
)

// FrameCallback is invoked with the time at which the frame signal fired.
type FrameCallback func(now time.Time)

// FrameSource delivers the host "next frame" signal. RequestFrame arms a
// one-shot callback for the next refresh; the signal fires at most once
// per refresh and callbacks never run concurrently. A callback that wants
// another frame must re-arm itself.
type FrameSource interface {
	RequestFrame(fn FrameCallback)
	Stop()
}

// TickerFrameSource emits frame signals at a fixed refresh rate. It stands
// in for a display vsync callback when the engine runs without a window.
type TickerFrameSource struct {
	interval time.Duration

	mu      sync.Mutex
	pending FrameCallback
	started bool
	done    chan struct{}
}

func NewTickerFrameSource(refreshHz int) *TickerFrameSource {
	if refreshHz <= 0 {
		refreshHz = 60
	}
	return &TickerFrameSource{
		interval: time.Second / time.Duration(refreshHz),
		done:     make(chan struct{}),
	}
}

func (t *TickerFrameSource) RequestFrame(fn FrameCallback) {
	t.mu.Lock()
	t.pending = fn
	if !t.started {
		t.started = true
		go t.run()
	}
	t.mu.Unlock()
}

func (t *TickerFrameSource) run() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			t.mu.Lock()
			fn := t.pending
			t.pending = nil
			t.mu.Unlock()
			if fn != nil {
				fn(now)
			}
		case <-t.done:
			return
		}
	}
}

func (t *TickerFrameSource) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		close(t.done)
		t.started = false
	}
	t.pending = nil
}

// ManualFrameSource is a frame source driven explicitly by tests.
type ManualFrameSource struct {
	pending FrameCallback
}

func NewManualFrameSource() *ManualFrameSource {
	return &ManualFrameSource{}
}

func (m *ManualFrameSource) RequestFrame(fn FrameCallback) {
	m.pending = fn
}

func (m *ManualFrameSource) Stop() {
	m.pending = nil
}

// HasPending reports whether a callback is armed for the next frame.
func (m *ManualFrameSource) HasPending() bool {
	return m.pending != nil
}

// Fire delivers one frame signal at the given time. It returns false if no
// callback was armed.
func (m *ManualFrameSource) Fire(now time.Time) bool {
	fn := m.pending
	if fn == nil {
		return false
	}
	m.pending = nil
	fn(now)
	return true
}
