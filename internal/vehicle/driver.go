package vehicle

import "github.com/go-gl/mathgl/mgl64"

// Action is a key event as delivered by the window layer.
type Action int

const (
	Press Action = iota
	Repeat
	Release
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	case Release:
		return "release"
	}
	return "unknown"
}

// Effect reports what a handled event did to the motion model.
type Effect int

const (
	EffectNone Effect = iota
	EffectThrottle
	EffectThrottleRelease
	EffectBrake
	EffectBrakeRelease
	EffectTurn
)

// Driver turns key events into ControlState changes and motion calls.
//
// Turning is edge-triggered: one step per Press, auto-repeat is ignored.
// Throttle keeps adding impulses on Repeat so a held key keeps
// accelerating.
type Driver struct {
	motion *Motion
	state  ControlState
	step   mgl64.Vec3
}

func NewDriver(m *Motion) *Driver {
	return &Driver{motion: m, step: m.Tuning().ThrottleStep}
}

// State returns the held inputs.
func (d *Driver) State() ControlState { return d.state }

// Handle applies one key event.
func (d *Driver) Handle(c Control, a Action) Effect {
	switch c {
	case Throttle:
		switch a {
		case Press, Repeat:
			d.state.Throttle = true
			if d.motion.BrakeEngaged() {
				return EffectNone
			}
			d.motion.ApplyThrottleImpulse(d.step)
			return EffectThrottle
		case Release:
			d.state.Throttle = false
			d.motion.ReleaseThrottle()
			return EffectThrottleRelease
		}

	case Brake:
		switch a {
		case Press:
			d.state.Brake = true
			d.motion.SetBrake(true)
			return EffectBrake
		case Release:
			d.state.Brake = false
			d.motion.SetBrake(false)
			return EffectBrakeRelease
		}

	case TurnLeft, TurnRight:
		dir := Left
		if c == TurnRight {
			dir = Right
		}
		switch a {
		case Press:
			if d.state.Engaged(c) {
				return EffectNone
			}
			d.state.Set(c, true)
			d.motion.Turn(dir, true)
			return EffectTurn
		case Release:
			d.state.Set(c, false)
			d.motion.Turn(dir, false)
		}
	}
	return EffectNone
}
