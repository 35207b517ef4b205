package vehicle

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestWheel_SteersTowardLockAndBack(t *testing.T) {
	m := NewMotion(DefaultTuning())
	w := NewWheel(m, LeftWheel, 30, 60)

	w.Update(0.25, ControlState{TurnLeft: true})
	assert.InDelta(t, 15, w.Steer(), eps)

	w.Update(1, ControlState{TurnLeft: true})
	assert.InDelta(t, 30, w.Steer(), eps)

	w.Update(0.25, ControlState{})
	assert.InDelta(t, 15, w.Steer(), eps)

	w.Update(10, ControlState{TurnRight: true})
	assert.InDelta(t, -30, w.Steer(), eps)

	w.Update(10, ControlState{TurnLeft: true, TurnRight: true})
	assert.InDelta(t, 0, w.Steer(), eps)
}

func TestWheel_FollowsParent(t *testing.T) {
	m := NewMotion(DefaultTuning())
	w := NewWheel(m, RightWheel, DefaultMaxSteer, DefaultSteerRate)

	m.SetPosition(mgl64.Vec3{10, 0, 0})
	for i := 0; i < 18; i++ {
		m.Turn(Left, true)
	}

	hub := w.Model().Col(3).Vec3()
	// Offset (1.2, 0, 0.6) rotated 90 degrees left about +Y is (0.6, 0, -1.2).
	assertVec(t, mgl64.Vec3{10.6, 0, -1.2}, hub)
}

func TestWheel_SidesMirror(t *testing.T) {
	l := DefaultWheelOffset(LeftWheel)
	r := DefaultWheelOffset(RightWheel)
	assert.Equal(t, l.X(), r.X())
	assert.Equal(t, -l.Z(), r.Z())
}
