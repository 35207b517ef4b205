package vehicle

import "github.com/go-gl/mathgl/mgl64"

// KPHPerUnit converts speed in distance units per second to km/h,
// treating one distance unit as one metre.
const KPHPerUnit = 3.6

// Telemetry is the per-frame snapshot read by the renderer, audio and
// dashboard after Update has run.
type Telemetry struct {
	Frame    uint64
	Time     float64
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Heading  float64
	Speed    float64
	SpeedKPH float64
	RPM      float64
	Throttle float64 // 0..1
	Brake    float64 // 0..1
}

// Snapshot builds the telemetry for the current state of m under controls c.
func Snapshot(m *Motion, c ControlState) Telemetry {
	speed := m.Speed()
	return Telemetry{
		Position: m.Position(),
		Velocity: m.Velocity(),
		Heading:  m.Heading(),
		Speed:    speed,
		SpeedKPH: speed * KPHPerUnit,
		RPM:      m.RPM(),
		Throttle: c.ThrottleIntensity(),
		Brake:    c.BrakeIntensity(),
	}
}
