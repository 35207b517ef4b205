package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"f1demo/internal/vehicle"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f1demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig_MatchesTuning(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, vehicle.DefaultTuning(), cfg.Tuning())
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, "Formula 1", cfg.Window.Title)
}

func TestLoadConfig_EmptyPathGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
vehicle:
  brake_decel: 8
  max_accel: 12
  color: [0, 0.5, 1]
audio:
  enabled: false
log:
  level: debug
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8.0, cfg.Vehicle.BrakeDecel)
	assert.Equal(t, 12.0, cfg.Vehicle.MaxAccel)
	assert.Equal(t, vehicle.DefaultTurnStep, cfg.Vehicle.TurnStepDeg)
	assert.Equal(t, mgl64.Vec3{0, 0.5, 1}, cfg.Tuning().Color)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, WindowHeight, cfg.Window.Height)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"negative decel", "vehicle:\n  brake_decel: -1\n", true},
		{"zero window", "window:\n  width: 0\n", true},
		{"loud audio", "audio:\n  volume: 2\n", true},
		{"bad yaml", "vehicle: [\n", false},
		{"short color", "vehicle:\n  color: [1, 2]\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigFromEnv(t *testing.T) {
	path := writeConfig(t, "vehicle:\n  turn_step_deg: 10\n")
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.Tuning().TurnStep)
	assert.Equal(t, "warn", cfg.Log.Level)
}
