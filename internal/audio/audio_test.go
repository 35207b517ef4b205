package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f1demo/internal/vehicle"
)

func TestMixFor(t *testing.T) {
	t.Run("idle", func(t *testing.T) {
		m := MixFor(vehicle.Telemetry{}, 8000)
		assert.True(t, m.Engine.Active)
		assert.InDelta(t, 0.3, m.Engine.Volume, 1e-12)
		assert.InDelta(t, 0.8, m.Engine.Pitch, 1e-12)
		assert.False(t, m.Throttle.Active)
		assert.False(t, m.Brake.Active)
	})

	t.Run("redline with throttle", func(t *testing.T) {
		m := MixFor(vehicle.Telemetry{RPM: 9000, Throttle: 1}, 8000)
		assert.InDelta(t, 1.0, m.Engine.Volume, 1e-12)
		assert.InDelta(t, 2.0, m.Engine.Pitch, 1e-12)
		assert.True(t, m.Throttle.Active)
		assert.InDelta(t, 0.8, m.Throttle.Volume, 1e-12)
		assert.InDelta(t, 1.2, m.Throttle.Pitch, 1e-12)
	})

	t.Run("braking", func(t *testing.T) {
		m := MixFor(vehicle.Telemetry{RPM: 4000, Brake: 1}, 8000)
		assert.InDelta(t, 0.65, m.Engine.Volume, 1e-12)
		assert.True(t, m.Brake.Active)
		assert.InDelta(t, 1.0, m.Brake.Volume, 1e-12)
		assert.InDelta(t, 0.7, m.Brake.Pitch, 1e-12)
	})

	t.Run("no max rpm", func(t *testing.T) {
		m := MixFor(vehicle.Telemetry{RPM: 4000}, 0)
		assert.InDelta(t, 0.3, m.Engine.Volume, 1e-12)
	})
}

func TestEngineStream_Read(t *testing.T) {
	s := NewEngineStream()
	s.Set(MixFor(vehicle.Telemetry{RPM: 6000, Throttle: 1, Brake: 1}, 8000))

	buf := make([]byte, 8*4096+3)
	n, err := s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 8*4096, n)

	var nonZero bool
	for i := 0; i < n; i += 8 {
		l := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
		r := math.Float32frombits(binary.LittleEndian.Uint32(buf[i+4:]))
		require.Equal(t, l, r)
		require.LessOrEqual(t, math.Abs(float64(l)), 1.0)
		if l != 0 {
			nonZero = true
		}
	}
	assert.True(t, nonZero)

	n, err = s.Read(make([]byte, 7))
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestFeedback_Observe(t *testing.T) {
	s := NewEngineStream()
	f := NewFeedback(s, 8000)

	f.Observe(vehicle.Telemetry{RPM: 8000, Brake: 1})

	assert.True(t, f.Last().Brake.Active)
	active, vol, pitch := s.voice(0)
	assert.True(t, active)
	assert.InDelta(t, 1.0, vol, 1e-12)
	assert.InDelta(t, 2.0, pitch, 1e-12)
}
