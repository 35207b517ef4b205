package game

type EventType int

const (
	EventThrottleImpulse EventType = iota
	EventThrottleReleased
	EventBrakeEngaged
	EventBrakeReleased
	EventTurned
	EventEmergencyStop
)

func (t EventType) String() string {
	switch t {
	case EventThrottleImpulse:
		return "throttle-impulse"
	case EventThrottleReleased:
		return "throttle-released"
	case EventBrakeEngaged:
		return "brake-engaged"
	case EventBrakeReleased:
		return "brake-released"
	case EventTurned:
		return "turned"
	case EventEmergencyStop:
		return "emergency-stop"
	}
	return "unknown"
}

type Event struct {
	Type    EventType
	Frame   uint64
	Speed   float64
	Heading float64 // radians
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventThrottleImpulse; t <= EventEmergencyStop; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
