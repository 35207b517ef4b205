package dashboard

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f1demo/internal/vehicle"
)

func TestNeedleAngle(t *testing.T) {
	tests := []struct {
		name string
		rpm  float64
		want float64
	}{
		{"idle", 0, -135},
		{"half", 4000, 0},
		{"max", 8000, 135},
		{"over", 12000, 135},
		{"negative", -50, -135},
		{"nan", math.NaN(), -135},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NeedleAngle(tt.rpm, 8000), 1e-9)
		})
	}
	assert.Equal(t, StartAngle, NeedleAngle(100, 0))
}

func TestArcVertices(t *testing.T) {
	v := ArcVertices(Segments, Radius)
	require.Len(t, v, 2*(Segments+1))

	for i := 0; i < len(v); i += 2 {
		r := math.Hypot(float64(v[i]), float64(v[i+1]))
		assert.InDelta(t, Radius, r, 1e-3)
	}
	// Endpoints mirror across the x axis.
	n := len(v)
	assert.InDelta(t, v[0], v[n-2], 1e-4)
	assert.InDelta(t, v[1], -v[n-1], 1e-4)

	assert.Len(t, ArcVertices(0, 1), 4)
}

func TestGauge_ObserveAndGeometry(t *testing.T) {
	g := NewGauge(8000)
	g.Observe(vehicle.Telemetry{RPM: 4000, SpeedKPH: 72})

	assert.Equal(t, 4000.0, g.RPM())
	assert.Equal(t, 72.0, g.SpeedKPH())
	assert.InDelta(t, 0, g.Needle(), 1e-9)

	arc, needle := g.Geometry(800)
	require.Len(t, needle, 4)
	assert.Equal(t, float32(120), needle[0])
	assert.Equal(t, float32(680), needle[1])
	// At 0 degrees the needle points along +x.
	assert.InDelta(t, 120+NeedleLength, needle[2], 1e-3)
	assert.InDelta(t, 680, needle[3], 1e-3)
	assert.Len(t, arc, 2*(Segments+1))
}
