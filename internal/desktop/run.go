//go:build !android

// Package desktop is the windowed front end: it turns GLFW key events into
// driver input, steps the session once per frame and renders the car, the
// dashboard gauge and the engine sound.
package desktop

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"f1demo/internal/audio"
	"f1demo/internal/dashboard"
	"f1demo/internal/game"
)

// Run opens the window and drives the session until the window closes.
func Run(cfg game.Config, log *zap.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("window ready",
		zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	session := game.NewSession(cfg, log)
	gauge := dashboard.NewGauge(cfg.Vehicle.MaxRPM)
	session.AddObserver(gauge)

	if cfg.Audio.Enabled {
		stream := audio.NewEngineStream()
		out, err := startAudio(stream, cfg.Audio.Volume, log)
		if err != nil {
			log.Warn("audio init failed, continuing without sound", zap.Error(err))
		} else {
			defer out.Close()
			session.AddObserver(audio.NewFeedback(stream, cfg.Vehicle.MaxRPM))
		}
	}

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	cam := NewCamera()
	keys := &keyHandler{handle: session.Handle, cam: cam}
	window.SetKeyCallback(keys.onKey)

	gl.ClearColor(0.5, 0.7, 0.9, 1)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		session.Step(dt)

		fbW, fbH := window.GetFramebufferSize()
		if fbW > 0 && fbH > 0 {
			rend.DrawScene(session, cam, fbW, fbH)
			rend.DrawDashboard(gauge, fbW, fbH)
		}
		window.SwapBuffers()
	}

	t := session.Telemetry()
	log.Info("session ended",
		zap.Uint64("frames", t.Frame),
		zap.Float64("time", t.Time),
		zap.Int("emergency_stops", session.Motion.EmergencyStops()),
	)
	return nil
}
