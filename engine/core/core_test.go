package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusInvokesListenersInOrder(t *testing.T) {
	bus := NewEventBus()

	var order []string
	bus.Register(EventCodeResized, func(context EventContext) bool {
		order = append(order, "first")
		return false
	})
	bus.Register(EventCodeResized, func(context EventContext) bool {
		order = append(order, "second")
		return false
	})

	handled := bus.Fire(EventContext{Type: EventCodeResized})
	assert.False(t, handled)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestEventBusStopsPropagationWhenHandled(t *testing.T) {
	bus := NewEventBus()

	var order []string
	bus.Register(EventCodeResized, func(context EventContext) bool {
		order = append(order, "first")
		return true
	})
	bus.Register(EventCodeResized, func(context EventContext) bool {
		order = append(order, "second")
		return false
	})

	handled := bus.Fire(EventContext{Type: EventCodeResized})
	assert.True(t, handled)
	assert.Equal(t, []string{"first"}, order)
}

func TestEventBusFireWithoutListeners(t *testing.T) {
	bus := NewEventBus()
	assert.False(t, bus.Fire(EventContext{Type: EventCodeApplicationQuit}))
}

func TestClockElapsedWithManualTime(t *testing.T) {
	ts := NewManualTimeSource(time.Unix(100, 0))
	c := NewClock(ts)

	c.Start()
	ts.Advance(250 * time.Millisecond)
	c.Update()

	assert.Equal(t, 250*time.Millisecond, c.Elapsed())
	assert.InDelta(t, 0.25, c.ElapsedSeconds(), 1e-9)

	// A stopped clock no longer advances.
	c.Stop()
	ts.Advance(time.Second)
	c.Update()
	assert.Equal(t, 250*time.Millisecond, c.Elapsed())
}

func TestMetricsComputesFPSOverOneSecond(t *testing.T) {
	m := NewMetrics()

	// 61 frames at ~16.7ms cross the one-second boundary.
	for i := 0; i < 61; i++ {
		m.Update(1.0 / 60.0)
	}
	fps, frameTime := m.Frame()
	assert.InDelta(t, 60, fps, 1)
	assert.InDelta(t, 1000.0/60.0, frameTime, 0.5)
}

func TestClampBounds(t *testing.T) {
	assert.Equal(t, 5, Clamp(10, 0, 5))
	assert.Equal(t, 0, Clamp(-1, 0, 5))
	assert.Equal(t, 3, Clamp(3, 0, 5))
	assert.Equal(t, float32(0.01), Clamp(float32(0.001), 0.01, 100))
}

func TestGenerateIDIsUnique(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	require.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestDuplicateIDErrorMatchesWithErrorsAs(t *testing.T) {
	err := &DuplicateIDError{Kind: "camera", ID: "cam1"}
	assert.True(t, IsDuplicateID(err))
	assert.Contains(t, err.Error(), "cam1")
	assert.False(t, IsDuplicateID(ErrNotFound))
}
