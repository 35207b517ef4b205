package vehicle

import "github.com/go-gl/mathgl/mgl64"

// Default tuning, matching the F1 demo constants.
const (
	DefaultBrakeDecel  = 5.0    // distance units / s²
	DefaultTurnStep    = 5.0    // degrees per turn step
	DefaultMaxStep     = 1.0    // longest dt a single Update integrates
	DefaultRPMPerSpeed = 20.0   // rpm per distance unit / s
	DefaultMaxRPM      = 8000.0 // gauge and audio ceiling
)

// Tuning holds the constants of the motion model.
type Tuning struct {
	BrakeDecel   float64    // magnitude of the braking vector
	ThrottleStep mgl64.Vec3 // local-frame acceleration added per throttle impulse
	TurnStep     float64    // degrees per turn step
	MaxAccel     float64    // cap on |acceleration| from throttle; 0 disables the cap
	MaxStep      float64    // dt above this is clamped; 0 disables the clamp
	RPMPerSpeed  float64
	MaxRPM       float64
	Scale        mgl64.Vec3
	Color        mgl64.Vec3
}

func DefaultTuning() Tuning {
	return Tuning{
		BrakeDecel:   DefaultBrakeDecel,
		ThrottleStep: mgl64.Vec3{1, 0, 0},
		TurnStep:     DefaultTurnStep,
		MaxStep:      DefaultMaxStep,
		RPMPerSpeed:  DefaultRPMPerSpeed,
		MaxRPM:       DefaultMaxRPM,
		Scale:        mgl64.Vec3{1, 1, 1},
		Color:        mgl64.Vec3{1, 0, 0},
	}
}
