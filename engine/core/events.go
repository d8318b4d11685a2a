package core

// System event codes. Applications should use codes beyond 255.
type SystemEventCode int

const (
	// Shuts the application down on the next frame.
	EventCodeApplicationQuit SystemEventCode = 0x01

	// Resized/resolution changed from the host environment.
	EventCodeResized SystemEventCode = 0x02

	MaxEventCode SystemEventCode = 0xFF
)

// EventContext carries the payload of a fired event.
type EventContext struct {
	Type SystemEventCode
	// Data holds the event payload; the concrete type depends on Type.
	Data interface{}
}

// SystemEvent is the payload of EventCodeResized.
type SystemEvent struct {
	WindowWidth  uint32
	WindowHeight uint32
}

// FnOnEvent handles a fired event. Returning true marks the event handled
// and stops propagation to later listeners.
type FnOnEvent func(context EventContext) bool

type registeredEvent struct {
	callback FnOnEvent
}

// EventBus is an owned, single-threaded event dispatcher. Listeners for a
// code are invoked in registration order.
type EventBus struct {
	registered map[SystemEventCode][]*registeredEvent
}

func NewEventBus() *EventBus {
	return &EventBus{
		registered: make(map[SystemEventCode][]*registeredEvent),
	}
}

// Register adds a listener for the given event code.
func (eb *EventBus) Register(code SystemEventCode, onEvent FnOnEvent) {
	eb.registered[code] = append(eb.registered[code], &registeredEvent{callback: onEvent})
}

// Fire dispatches an event to listeners of its code. If a handler returns
// true the event is considered handled and is not passed on to any more
// listeners.
func (eb *EventBus) Fire(context EventContext) bool {
	events := eb.registered[context.Type]
	if len(events) == 0 {
		return false
	}
	for _, e := range events {
		if e.callback(context) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}
