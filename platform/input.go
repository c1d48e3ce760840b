package platform

import (
	"github.com/gekko3d/gridworld"
	"github.com/gekko3d/gridworld/app"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type keyBinding struct {
	key       glfw.Key
	direction gridworld.InputDirection
}

// Checked in order; the first held key wins.
var directionKeys = []keyBinding{
	{glfw.KeyW, gridworld.DirectionUp},
	{glfw.KeyUp, gridworld.DirectionUp},
	{glfw.KeyS, gridworld.DirectionDown},
	{glfw.KeyDown, gridworld.DirectionDown},
	{glfw.KeyA, gridworld.DirectionLeft},
	{glfw.KeyLeft, gridworld.DirectionLeft},
	{glfw.KeyD, gridworld.DirectionRight},
	{glfw.KeyRight, gridworld.DirectionRight},
}

// InputModule polls glfw once per frame into app.Input. It must be installed
// after WindowModule.
type InputModule struct{}

func (mod InputModule) Install(a *app.App, cmd *app.Commands) {
	cmd.UseSystem(app.System(inputSystem).InStage(app.PreUpdate))
}

func directionFromKeys(pressed func(glfw.Key) bool) gridworld.InputDirection {
	for _, b := range directionKeys {
		if pressed(b.key) {
			return b.direction
		}
	}
	return gridworld.NoDirection
}

func inputSystem(w *Window, input *app.Input) {
	glfw.PollEvents()

	pressed := func(key glfw.Key) bool {
		return w.glfw.GetKey(key) == glfw.Press
	}
	input.Direction = directionFromKeys(pressed)

	mx, my := w.glfw.GetCursorPos()
	input.MouseX, input.MouseY = int(mx), int(my)

	if pressed(glfw.KeyEscape) || w.ShouldClose() {
		input.Quit = true
	}
}
