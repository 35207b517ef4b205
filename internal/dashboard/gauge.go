// Package dashboard holds the 2D RPM gauge: arc and needle geometry in
// screen pixels, and the mapping from rpm to needle angle.
package dashboard

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"f1demo/internal/vehicle"
)

// Gauge layout, in degrees and screen pixels.
const (
	StartAngle   = -135.0
	EndAngle     = 135.0
	Radius       = 100.0
	NeedleLength = 95.0
	Segments     = 40
	Margin       = 120.0 // gauge centre distance from the left and bottom edges
)

// NeedleAngle maps rpm onto the gauge sweep. The result is clamped to
// [StartAngle, EndAngle].
func NeedleAngle(rpm, maxRPM float64) float64 {
	if maxRPM <= 0 || math.IsNaN(rpm) {
		return StartAngle
	}
	ratio := mgl64.Clamp(rpm/maxRPM, 0, 1)
	return StartAngle + ratio*(EndAngle-StartAngle)
}

// ArcVertices returns segments+1 points of the gauge arc around the
// origin, flattened as x,y pairs.
func ArcVertices(segments int, radius float64) []float32 {
	if segments < 1 {
		segments = 1
	}
	start := mgl64.DegToRad(StartAngle)
	step := (mgl64.DegToRad(EndAngle) - start) / float64(segments)
	out := make([]float32, 0, 2*(segments+1))
	for i := 0; i <= segments; i++ {
		a := start + float64(i)*step
		out = append(out, float32(radius*math.Cos(a)), float32(radius*math.Sin(a)))
	}
	return out
}

// NeedleTip returns the needle end point relative to the gauge centre for
// a needle drawn at angle degrees, in the same frame as ArcVertices.
func NeedleTip(angle float64) mgl64.Vec2 {
	a := mgl64.DegToRad(angle)
	return mgl64.Vec2{NeedleLength * math.Cos(a), NeedleLength * math.Sin(a)}
}

// Centre returns the gauge centre for a y-down framebuffer of height h.
func Centre(h int) mgl64.Vec2 {
	return mgl64.Vec2{Margin, float64(h) - Margin}
}

// Gauge keeps the latest reading for the renderer.
type Gauge struct {
	MaxRPM float64

	rpm float64
	kph float64
}

func NewGauge(maxRPM float64) *Gauge {
	return &Gauge{MaxRPM: maxRPM}
}

func (g *Gauge) Observe(t vehicle.Telemetry) {
	g.rpm = t.RPM
	g.kph = t.SpeedKPH
}

func (g *Gauge) RPM() float64      { return g.rpm }
func (g *Gauge) SpeedKPH() float64 { return g.kph }

// Needle returns the current needle angle in degrees.
func (g *Gauge) Needle() float64 {
	return NeedleAngle(g.rpm, g.MaxRPM)
}

// Geometry returns the arc line strip and the needle line, both already
// translated to the centre for a framebuffer of height h.
func (g *Gauge) Geometry(h int) (arc, needle []float32) {
	c := Centre(h)
	arc = ArcVertices(Segments, Radius)
	for i := 0; i < len(arc); i += 2 {
		arc[i] += float32(c.X())
		arc[i+1] += float32(c.Y())
	}
	tip := NeedleTip(g.Needle()).Add(c)
	needle = []float32{
		float32(c.X()), float32(c.Y()),
		float32(tip.X()), float32(tip.Y()),
	}
	return arc, needle
}
