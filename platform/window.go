// Package platform connects the app to a glfw window with an OpenGL 4.1 core
// context. Everything in it must run on the main OS thread.
package platform

import (
	"fmt"

	"github.com/gekko3d/gridworld/app"
	"github.com/gekko3d/gridworld/gpu/glbackend"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the shared window resource.
type Window struct {
	glfw       *glfw.Window
	device     *glbackend.Device
	clearColor [3]float32
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.glfw.ShouldClose()
}

// WindowModule creates the window and GL device and installs them as the
// Window, app.GPU and app.Viewport resources.
type WindowModule struct {
	Width      int
	Height     int
	Title      string
	ClearColor [3]float32
	VSync      bool
}

func (m WindowModule) Install(a *app.App, cmd *app.Commands) {
	if app.Resource[Window](a) != nil {
		return
	}
	log := app.Resource[app.Log](a)

	if err := glfw.Init(); err != nil {
		cmd.Fail(fmt.Errorf("failed to initialize glfw: %w", err))
		return
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(m.Width, m.Height, m.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		cmd.Fail(fmt.Errorf("failed to create window: %w", err))
		return
	}
	win.MakeContextCurrent()
	if m.VSync {
		glfw.SwapInterval(1)
	}

	device, err := glbackend.New()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		cmd.Fail(err)
		return
	}
	if log != nil {
		log.Infof("OpenGL %s", device.Version())
	}

	fbWidth, fbHeight := win.GetFramebufferSize()
	device.Viewport(fbWidth, fbHeight)

	cmd.AddResources(
		&Window{glfw: win, device: device, clearColor: m.ClearColor},
		&app.GPU{Device: device},
		&app.Viewport{Width: fbWidth, Height: fbHeight},
	)
	cmd.OnShutdown(func() {
		device.Release()
		win.Destroy()
		glfw.Terminate()
	})

	cmd.UseSystem(app.System(viewportSystem).InStage(app.PreUpdate))
	cmd.UseSystem(app.System(clearSystem).InStage(app.Render))
	cmd.UseSystem(app.System(swapSystem).InStage(app.PostRender))
}

func viewportSystem(w *Window, vp *app.Viewport) {
	width, height := w.glfw.GetFramebufferSize()
	if width == vp.Width && height == vp.Height {
		return
	}
	vp.Width, vp.Height = width, height
	w.device.Viewport(width, height)
}

func clearSystem(w *Window) {
	w.device.Clear(w.clearColor[0], w.clearColor[1], w.clearColor[2])
}

func swapSystem(w *Window, input *app.Input) {
	w.glfw.SwapBuffers()
	if w.ShouldClose() {
		input.Quit = true
	}
}
