package vehicle

import "github.com/go-gl/mathgl/mgl64"

// Wheel defaults.
const (
	DefaultMaxSteer  = 30.0  // degrees
	DefaultSteerRate = 180.0 // degrees per second
)

// Frame is the read-only view a wheel has of the car body.
type Frame interface {
	Model() mgl64.Mat4
	Heading() float64
}

// Side identifies a front wheel.
type Side int

const (
	LeftWheel Side = iota
	RightWheel
)

// DefaultWheelOffset is the wheel hub position in the car's local frame.
// Left is -Z because the car faces +X with +Y up.
func DefaultWheelOffset(s Side) mgl64.Vec3 {
	if s == LeftWheel {
		return mgl64.Vec3{1.2, 0, -0.6}
	}
	return mgl64.Vec3{1.2, 0, 0.6}
}

// Wheel is the visual front wheel. It owns only its steering angle; the
// body transform comes from the parent frame.
type Wheel struct {
	parent   Frame
	side     Side
	offset   mgl64.Vec3
	steer    float64 // degrees, positive to the left
	maxSteer float64
	rate     float64
}

func NewWheel(parent Frame, side Side, maxSteer, rate float64) *Wheel {
	return &Wheel{
		parent:   parent,
		side:     side,
		offset:   DefaultWheelOffset(side),
		maxSteer: maxSteer,
		rate:     rate,
	}
}

func (w *Wheel) Side() Side             { return w.side }
func (w *Wheel) Steer() float64         { return w.steer }
func (w *Wheel) Offset() mgl64.Vec3     { return w.offset }
func (w *Wheel) SetOffset(o mgl64.Vec3) { w.offset = o }

// Update eases the steering angle toward full lock while exactly one turn
// input is held and back to centre otherwise.
func (w *Wheel) Update(dt float64, c ControlState) {
	if !(dt > 0) {
		return
	}
	target := 0.0
	switch {
	case c.TurnLeft && !c.TurnRight:
		target = w.maxSteer
	case c.TurnRight && !c.TurnLeft:
		target = -w.maxSteer
	}
	w.steer = approach(w.steer, target, w.rate*dt)
}

// Model composes the parent body transform with the hub offset and the
// steering rotation.
func (w *Wheel) Model() mgl64.Mat4 {
	return w.parent.Model().
		Mul4(mgl64.Translate3D(w.offset[0], w.offset[1], w.offset[2])).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(w.steer)))
}
