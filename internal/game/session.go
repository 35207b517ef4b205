package game

import (
	"go.uber.org/zap"

	"f1demo/internal/vehicle"
)

// Observer consumes the telemetry published after each Step.
type Observer interface {
	Observe(vehicle.Telemetry)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(vehicle.Telemetry)

func (f ObserverFunc) Observe(t vehicle.Telemetry) { f(t) }

// Session is the whole simulation state for one run. The frame loop owns
// it: apply input events with Handle, then call Step once per frame.
type Session struct {
	Config Config
	Motion *vehicle.Motion
	Driver *vehicle.Driver
	Wheels [2]*vehicle.Wheel
	Bus    *EventBus

	Time  float64
	Frame uint64

	observers []Observer
	last      vehicle.Telemetry
	log       *zap.Logger
}

func NewSession(cfg Config, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	m := vehicle.NewMotion(cfg.Tuning())
	s := &Session{
		Config: cfg,
		Motion: m,
		Driver: vehicle.NewDriver(m),
		Bus:    NewEventBus(),
		log:    log,
	}
	for i, side := range []vehicle.Side{vehicle.LeftWheel, vehicle.RightWheel} {
		s.Wheels[i] = vehicle.NewWheel(m, side, cfg.Wheels.MaxSteerDeg, cfg.Wheels.SteerRate)
	}
	s.Bus.SubscribeAll(s.logEvent)
	s.last = vehicle.Snapshot(m, vehicle.ControlState{})
	return s
}

// AddObserver registers o. Observers run in registration order.
func (s *Session) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Telemetry returns the snapshot published by the last Step.
func (s *Session) Telemetry() vehicle.Telemetry { return s.last }

// Handle forwards one key event to the driver and emits the matching event.
func (s *Session) Handle(c vehicle.Control, a vehicle.Action) {
	var t EventType
	switch s.Driver.Handle(c, a) {
	case vehicle.EffectThrottle:
		t = EventThrottleImpulse
	case vehicle.EffectThrottleRelease:
		t = EventThrottleReleased
	case vehicle.EffectBrake:
		t = EventBrakeEngaged
	case vehicle.EffectBrakeRelease:
		t = EventBrakeReleased
	case vehicle.EffectTurn:
		t = EventTurned
	default:
		return
	}
	s.emit(t)
}

// Step advances the simulation by dt seconds and notifies observers.
// dt is clamped to [0, MaxFrameStep].
func (s *Session) Step(dt float64) vehicle.Telemetry {
	if !(dt > 0) {
		dt = 0
	}
	if dt > MaxFrameStep {
		dt = MaxFrameStep
	}

	stops := s.Motion.EmergencyStops()
	s.Motion.Update(dt)
	controls := s.Driver.State()
	for _, w := range s.Wheels {
		w.Update(dt, controls)
	}

	s.Time += dt
	s.Frame++
	if s.Motion.EmergencyStops() != stops {
		s.emit(EventEmergencyStop)
	}

	tel := vehicle.Snapshot(s.Motion, controls)
	tel.Frame = s.Frame
	tel.Time = s.Time
	s.last = tel
	for _, o := range s.observers {
		o.Observe(tel)
	}
	return tel
}

func (s *Session) emit(t EventType) {
	s.Bus.Emit(Event{
		Type:    t,
		Frame:   s.Frame,
		Speed:   s.Motion.Speed(),
		Heading: s.Motion.Heading(),
	})
}

func (s *Session) logEvent(e Event) {
	s.log.Debug("vehicle event",
		zap.Stringer("type", e.Type),
		zap.Uint64("frame", e.Frame),
		zap.Float64("speed", e.Speed),
		zap.Float64("heading", e.Heading),
	)
}
