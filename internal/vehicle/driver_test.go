package vehicle

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestDriver_TurnIsEdgeTriggered(t *testing.T) {
	m := NewMotion(DefaultTuning())
	d := NewDriver(m)

	assert.Equal(t, EffectTurn, d.Handle(TurnLeft, Press))
	assert.Equal(t, EffectNone, d.Handle(TurnLeft, Repeat))
	assert.Equal(t, EffectNone, d.Handle(TurnLeft, Repeat))
	assert.Equal(t, EffectNone, d.Handle(TurnLeft, Press))
	assert.True(t, d.State().TurnLeft)

	d.Handle(TurnLeft, Release)
	assert.False(t, d.State().TurnLeft)
	assert.InDelta(t, mgl64.DegToRad(5), m.Heading(), eps)

	assert.Equal(t, EffectTurn, d.Handle(TurnLeft, Press))
	assert.InDelta(t, mgl64.DegToRad(10), m.Heading(), eps)
}

func TestDriver_LeftThenRightCancels(t *testing.T) {
	m := NewMotion(DefaultTuning())
	d := NewDriver(m)

	d.Handle(TurnLeft, Press)
	d.Handle(TurnRight, Press)

	assert.InDelta(t, 0, m.Heading(), eps)
	assert.True(t, d.State().TurnLeft)
	assert.True(t, d.State().TurnRight)
}

func TestDriver_ThrottleRepeatAccumulates(t *testing.T) {
	m := NewMotion(DefaultTuning())
	d := NewDriver(m)

	assert.Equal(t, EffectThrottle, d.Handle(Throttle, Press))
	d.Handle(Throttle, Repeat)
	d.Handle(Throttle, Repeat)
	assertVec(t, mgl64.Vec3{3, 0, 0}, m.Acceleration())
	assert.Equal(t, 1.0, d.State().ThrottleIntensity())

	assert.Equal(t, EffectThrottleRelease, d.Handle(Throttle, Release))
	assertVec(t, mgl64.Vec3{}, m.Acceleration())
	assert.Equal(t, 0.0, d.State().ThrottleIntensity())
}

func TestDriver_BrakeWinsOverThrottle(t *testing.T) {
	m := NewMotion(DefaultTuning())
	d := NewDriver(m)
	m.SetVelocity(mgl64.Vec3{10, 0, 0})

	assert.Equal(t, EffectBrake, d.Handle(Brake, Press))
	assert.Equal(t, EffectNone, d.Handle(Throttle, Press))
	assert.Equal(t, EffectNone, d.Handle(Brake, Repeat))

	assert.True(t, d.State().Throttle)
	assert.True(t, d.State().Brake)
	assertVec(t, mgl64.Vec3{-5, 0, 0}, m.Acceleration())

	assert.Equal(t, EffectBrakeRelease, d.Handle(Brake, Release))
	assert.False(t, m.BrakeEngaged())
	assertVec(t, mgl64.Vec3{}, m.Acceleration())
}

func TestControlState_SetAndEngaged(t *testing.T) {
	var s ControlState
	for _, c := range []Control{Throttle, Brake, TurnLeft, TurnRight} {
		assert.False(t, s.Engaged(c), c.String())
		s.Set(c, true)
		assert.True(t, s.Engaged(c), c.String())
	}
	assert.Equal(t, ControlState{Throttle: true, Brake: true, TurnLeft: true, TurnRight: true}, s)
	assert.Equal(t, 1.0, s.BrakeIntensity())
}
