package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"f1demo/internal/vehicle"
)

// Environment overrides.
const (
	EnvConfigPath = "F1DEMO_CONFIG"
	EnvLogLevel   = "F1DEMO_LOG"
)

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 800
	WindowTitle  = "Formula 1"
)

// MaxFrameStep caps a single frame's dt so a stall (window drag, debugger)
// does not launch the car.
const MaxFrameStep = 0.1

const maxConfigSize = 1 << 20

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Vehicle VehicleConfig `yaml:"vehicle"`
	Wheels  WheelConfig   `yaml:"wheels"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type VehicleConfig struct {
	BrakeDecel   float64    `yaml:"brake_decel"`
	ThrottleStep float64    `yaml:"throttle_step"`
	TurnStepDeg  float64    `yaml:"turn_step_deg"`
	MaxAccel     float64    `yaml:"max_accel"`
	MaxStep      float64    `yaml:"max_step"`
	RPMPerSpeed  float64    `yaml:"rpm_per_speed"`
	MaxRPM       float64    `yaml:"max_rpm"`
	Scale        [3]float64 `yaml:"scale,flow"`
	Color        [3]float64 `yaml:"color,flow"`
}

type WheelConfig struct {
	MaxSteerDeg float64 `yaml:"max_steer_deg"`
	SteerRate   float64 `yaml:"steer_rate"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() Config {
	t := vehicle.DefaultTuning()
	return Config{
		Window: WindowConfig{Width: WindowWidth, Height: WindowHeight, Title: WindowTitle},
		Vehicle: VehicleConfig{
			BrakeDecel:   t.BrakeDecel,
			ThrottleStep: t.ThrottleStep.X(),
			TurnStepDeg:  t.TurnStep,
			MaxAccel:     t.MaxAccel,
			MaxStep:      t.MaxStep,
			RPMPerSpeed:  t.RPMPerSpeed,
			MaxRPM:       t.MaxRPM,
			Scale:        t.Scale,
			Color:        t.Color,
		},
		Wheels: WheelConfig{MaxSteerDeg: vehicle.DefaultMaxSteer, SteerRate: vehicle.DefaultSteerRate},
		Audio:  AudioConfig{Enabled: true, Volume: 0.5},
		Log:    LogConfig{Level: "info"},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults. Fields missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	clean := filepath.Clean(path)
	info, err := os.Stat(clean)
	if err != nil {
		return cfg, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", clean, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFromEnv loads the file named by F1DEMO_CONFIG and applies the
// F1DEMO_LOG level override.
func LoadConfigFromEnv() (Config, error) {
	cfg, err := LoadConfig(os.Getenv(EnvConfigPath))
	if err != nil {
		return cfg, err
	}
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	v := c.Vehicle
	checks := []struct {
		name string
		val  float64
	}{
		{"vehicle.brake_decel", v.BrakeDecel},
		{"vehicle.turn_step_deg", v.TurnStepDeg},
		{"vehicle.max_accel", v.MaxAccel},
		{"vehicle.max_step", v.MaxStep},
		{"vehicle.rpm_per_speed", v.RPMPerSpeed},
		{"vehicle.max_rpm", v.MaxRPM},
		{"wheels.max_steer_deg", c.Wheels.MaxSteerDeg},
		{"wheels.steer_rate", c.Wheels.SteerRate},
	}
	for _, ch := range checks {
		if ch.val < 0 {
			return fmt.Errorf("%w: %s is negative (%v)", ErrInvalidConfig, ch.name, ch.val)
		}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %v outside [0,1]", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}

// Tuning converts the vehicle section to motion model tuning.
func (c Config) Tuning() vehicle.Tuning {
	v := c.Vehicle
	return vehicle.Tuning{
		BrakeDecel:   v.BrakeDecel,
		ThrottleStep: mgl64.Vec3{v.ThrottleStep, 0, 0},
		TurnStep:     v.TurnStepDeg,
		MaxAccel:     v.MaxAccel,
		MaxStep:      v.MaxStep,
		RPMPerSpeed:  v.RPMPerSpeed,
		MaxRPM:       v.MaxRPM,
		Scale:        mgl64.Vec3(v.Scale),
		Color:        mgl64.Vec3(v.Color),
	}
}
