package app

import "github.com/gekko3d/gridworld"

// Input is filled once per frame by the platform layer, before Update.
type Input struct {
	Direction      gridworld.InputDirection
	MouseX, MouseY int
	// Quit ends Run after the current frame.
	Quit bool
}

// Viewport is the framebuffer size in pixels, kept current by the platform
// layer.
type Viewport struct {
	Width, Height int
}
