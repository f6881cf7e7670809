package internal

import "github.com/veandco/go-sdl2/sdl"

var controllers = map[sdl.JoystickID]*sdl.GameController{}

func openAttachedControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		OpenController(i)
	}
}

// OpenController opens the joystick at deviceIndex if SDL recognises it as a
// game controller.
func OpenController(deviceIndex int) {
	if !sdl.IsGameController(deviceIndex) {
		return
	}
	c := sdl.GameControllerOpen(deviceIndex)
	if c == nil {
		GetInternalLogger().Warn("Failed to open controller", "index", deviceIndex, "error", sdl.GetError())
		return
	}
	id := c.Joystick().InstanceID()
	controllers[id] = c
	GetInternalLogger().Debug("Controller attached", "name", c.Name(), "id", id)
}

func CloseController(id sdl.JoystickID) {
	if c, ok := controllers[id]; ok {
		c.Close()
		delete(controllers, id)
	}
}

func CloseAllControllers() {
	for id, c := range controllers {
		c.Close()
		delete(controllers, id)
	}
}
