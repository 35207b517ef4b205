//go:build !android

package desktop

import (
	"github.com/go-gl/mathgl/mgl64"

	"f1demo/internal/vehicle"
)

// Camera is either parked looking down the start straight or trailing
// the car.
type Camera struct {
	Follow bool

	Eye   mgl64.Vec3
	Front mgl64.Vec3
	Up    mgl64.Vec3
}

func NewCamera() *Camera {
	return &Camera{
		Eye:   mgl64.Vec3{-8, 2, 0},
		Front: mgl64.Vec3{1, -0.2, 0},
		Up:    mgl64.Vec3{0, 1, 0},
	}
}

// View returns the view matrix for the current mode.
func (c *Camera) View(m *vehicle.Motion) mgl64.Mat4 {
	if !c.Follow {
		return mgl64.LookAtV(c.Eye, c.Eye.Add(c.Front), c.Up)
	}
	target := m.Position()
	eye := target.Sub(m.Forward().Mul(8)).Add(mgl64.Vec3{0, 2, 0})
	return mgl64.LookAtV(eye, target, c.Up)
}

// EyePos returns the camera position used for specular lighting.
func (c *Camera) EyePos(m *vehicle.Motion) mgl64.Vec3 {
	if !c.Follow {
		return c.Eye
	}
	return m.Position().Sub(m.Forward().Mul(8)).Add(mgl64.Vec3{0, 2, 0})
}
