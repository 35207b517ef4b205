// Package vehicle implements the car's kinematics: an acceleration
// accumulator driven by discrete throttle, brake and turn events, Euler
// integration of velocity and position, and a heading that is rotated in
// fixed steps about the vertical axis.
//
// The car's local forward axis is +X and up is +Y. Turning left rotates
// the heading by a positive angle about +Y.
package vehicle

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	forwardAxis = mgl64.Vec3{1, 0, 0}
	zeroVec     = mgl64.Vec3{}
)

// Motion is the vehicle motion model. It is owned by a single frame loop;
// none of its methods are safe for concurrent use.
type Motion struct {
	tuning Tuning

	position     mgl64.Vec3
	velocity     mgl64.Vec3
	acceleration mgl64.Vec3

	// Rotation is tracked apart from the drawing transform so scale and
	// translation never leak into direction vectors.
	heading  float64
	rotation mgl64.Mat3
	model    mgl64.Mat4

	brakeEngaged bool
	stops        int
}

// NewMotion returns a car at the origin, at rest, facing +X.
func NewMotion(t Tuning) *Motion {
	m := &Motion{
		tuning:   t,
		rotation: mgl64.Ident3(),
	}
	m.updateModel()
	return m
}

func (m *Motion) Tuning() Tuning           { return m.tuning }
func (m *Motion) Position() mgl64.Vec3     { return m.position }
func (m *Motion) Velocity() mgl64.Vec3     { return m.velocity }
func (m *Motion) Acceleration() mgl64.Vec3 { return m.acceleration }
func (m *Motion) Speed() float64           { return m.velocity.Len() }
func (m *Motion) Heading() float64         { return m.heading }
func (m *Motion) Rotation() mgl64.Mat3     { return m.rotation }
func (m *Motion) Model() mgl64.Mat4        { return m.model }
func (m *Motion) Color() mgl64.Vec3        { return m.tuning.Color }
func (m *Motion) BrakeEngaged() bool       { return m.brakeEngaged }
func (m *Motion) Forward() mgl64.Vec3      { return m.rotation.Mul3x1(forwardAxis) }
func (m *Motion) SetColor(c mgl64.Vec3)    { m.tuning.Color = c }
func (m *Motion) SetVelocity(v mgl64.Vec3) { m.velocity = v }
func (m *Motion) EmergencyStops() int      { return m.stops }

func (m *Motion) SetPosition(p mgl64.Vec3) {
	m.position = p
	m.updateModel()
}

func (m *Motion) SetScale(s mgl64.Vec3) {
	m.tuning.Scale = s
	m.updateModel()
}

// ApplyThrottleImpulse adds delta, expressed in the car's local frame, to
// the acceleration accumulator. Impulses are dropped while the brake is
// latched. When Tuning.MaxAccel is positive the accumulated magnitude is
// capped there.
func (m *Motion) ApplyThrottleImpulse(delta mgl64.Vec3) {
	if m.brakeEngaged {
		return
	}
	m.acceleration = m.acceleration.Add(delta)
	if limit := m.tuning.MaxAccel; limit > 0 {
		if l := m.acceleration.Len(); l > limit {
			m.acceleration = m.acceleration.Mul(limit / l)
		}
	}
}

// ReleaseThrottle clears the accumulated throttle. A latched brake vector
// is kept.
func (m *Motion) ReleaseThrottle() {
	if m.brakeEngaged {
		return
	}
	m.acceleration = zeroVec
}

// SetBrake latches the brake. Engaging while moving replaces the
// acceleration with a world-frame vector of magnitude BrakeDecel opposing
// the velocity; engaging at rest leaves the acceleration as it is.
// Releasing zeroes the acceleration.
func (m *Motion) SetBrake(engaged bool) {
	m.brakeEngaged = engaged
	if !engaged {
		m.acceleration = zeroVec
		return
	}
	m.aimBrake()
}

func (m *Motion) aimBrake() {
	speed := m.velocity.Len()
	if speed == 0 {
		return
	}
	m.acceleration = m.velocity.Mul(-m.tuning.BrakeDecel / speed)
}

// Turn rotates the heading by one TurnStep when engaged is true and
// redirects the current speed along the new forward axis. A release is a
// no-op. Each engaged call is one step; callers decide how often to call.
func (m *Motion) Turn(dir Direction, engaged bool) {
	if !engaged {
		return
	}
	step := mgl64.DegToRad(m.tuning.TurnStep)
	if dir == Right {
		step = -step
	}
	m.heading = wrapAngle(m.heading + step)
	m.rotation = mgl64.Rotate3DY(m.heading)

	speed := m.velocity.Len()
	m.velocity = m.Forward().Mul(speed)
	if m.brakeEngaged {
		m.aimBrake()
	}
	m.updateModel()
}

// Update advances the model by dt seconds. Non-positive or NaN dt is
// ignored and dt above Tuning.MaxStep is clamped.
//
// While the brake is latched the acceleration is a world-frame vector. If
// one step of it would remove more speed than the car has, velocity and
// acceleration are both reset to zero instead, so braking never reverses
// the car. Otherwise the acceleration is local to the car and is rotated
// into the world frame before integration.
func (m *Motion) Update(dt float64) {
	if !(dt > 0) {
		return
	}
	if limit := m.tuning.MaxStep; limit > 0 && dt > limit {
		dt = limit
	}

	if m.brakeEngaged {
		prev := m.velocity
		if m.acceleration.Len()*dt > prev.Len() {
			m.emergencyStop()
		} else {
			m.velocity = prev.Add(m.acceleration.Mul(dt))
			if m.velocity.Dot(prev) < 0 {
				m.emergencyStop()
			}
		}
	} else {
		m.velocity = m.velocity.Add(m.rotation.Mul3x1(m.acceleration).Mul(dt))
	}

	m.position = m.position.Add(m.velocity.Mul(dt))
	m.updateModel()
}

func (m *Motion) emergencyStop() {
	m.acceleration = zeroVec
	m.velocity = zeroVec
	m.stops++
}

// RPM is the speed-derived engine proxy used by the gauge and audio.
func (m *Motion) RPM() float64 {
	return RPMFor(m.Speed(), m.tuning.RPMPerSpeed, m.tuning.MaxRPM)
}

// RPMFor maps speed to an rpm proxy clamped to [0, maxRPM].
func RPMFor(speed, perSpeed, maxRPM float64) float64 {
	if math.IsNaN(speed) {
		return 0
	}
	return clampF(speed*perSpeed, 0, maxRPM)
}

func (m *Motion) updateModel() {
	s := m.tuning.Scale
	m.model = mgl64.Translate3D(m.position[0], m.position[1], m.position[2]).
		Mul4(m.rotation.Mat4()).
		Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
}
