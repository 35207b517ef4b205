//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"f1demo/internal/vehicle"
)

var driveKeys = map[glfw.Key]vehicle.Control{
	glfw.KeyUp:    vehicle.Throttle,
	glfw.KeyDown:  vehicle.Brake,
	glfw.KeyLeft:  vehicle.TurnLeft,
	glfw.KeyRight: vehicle.TurnRight,
}

func toAction(a glfw.Action) (vehicle.Action, bool) {
	switch a {
	case glfw.Press:
		return vehicle.Press, true
	case glfw.Repeat:
		return vehicle.Repeat, true
	case glfw.Release:
		return vehicle.Release, true
	}
	return 0, false
}

// keyHandler is installed as the window key callback. Callbacks fire
// inside glfw.PollEvents, so every event lands before the frame's Step.
type keyHandler struct {
	handle func(vehicle.Control, vehicle.Action)
	cam    *Camera
}

func (k *keyHandler) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
		return
	}
	if key == glfw.KeyC && action == glfw.Press {
		k.cam.Follow = !k.cam.Follow
		return
	}
	c, ok := driveKeys[key]
	if !ok {
		return
	}
	a, ok := toAction(action)
	if !ok {
		return
	}
	k.handle(c, a)
}
