package vehicle

// Direction selects the sign of a turn step.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Control names one of the four driver inputs.
type Control int

const (
	Throttle Control = iota
	Brake
	TurnLeft
	TurnRight
)

func (c Control) String() string {
	switch c {
	case Throttle:
		return "throttle"
	case Brake:
		return "brake"
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	}
	return "unknown"
}

// ControlState is the set of currently held driver inputs.
// Any combination is legal; conflicts are resolved by Motion.
type ControlState struct {
	Throttle  bool
	Brake     bool
	TurnLeft  bool
	TurnRight bool
}

// Set records whether c is held.
func (s *ControlState) Set(c Control, engaged bool) {
	switch c {
	case Throttle:
		s.Throttle = engaged
	case Brake:
		s.Brake = engaged
	case TurnLeft:
		s.TurnLeft = engaged
	case TurnRight:
		s.TurnRight = engaged
	}
}

// Engaged reports whether c is held.
func (s ControlState) Engaged(c Control) bool {
	switch c {
	case Throttle:
		return s.Throttle
	case Brake:
		return s.Brake
	case TurnLeft:
		return s.TurnLeft
	case TurnRight:
		return s.TurnRight
	}
	return false
}

func (s ControlState) ThrottleIntensity() float64 { return boolIntensity(s.Throttle) }
func (s ControlState) BrakeIntensity() float64    { return boolIntensity(s.Brake) }

func boolIntensity(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
