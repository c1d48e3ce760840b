package app

import (
	"errors"
	"io/fs"

	"github.com/gekko3d/gridworld"
	"github.com/gekko3d/gridworld/gpu"
)

// GPU carries the device the platform layer created.
type GPU struct {
	Device gpu.Device
}

// WorldModule builds the GameWorld on the GPU resource and schedules the
// camera and draw systems. It must be installed after the module providing
// GPU.
type WorldModule struct {
	Mode    gridworld.ApplicationMode
	Shaders fs.FS
	Options gridworld.WorldOptions
}

func (mod WorldModule) Install(app *App, cmd *Commands) {
	device := Resource[GPU](app)
	if device == nil || device.Device == nil {
		cmd.Fail(errors.New("no GPU resource installed"))
		return
	}

	opts := mod.Options
	if opts.Logger == nil {
		opts.Logger = logger(app)
	}

	world, err := gridworld.NewGameWorld(device.Device, mod.Mode, mod.Shaders, opts)
	if err != nil {
		cmd.Fail(err)
		return
	}

	cmd.AddResources(world)
	cmd.OnShutdown(world.Release)
	cmd.UseSystem(System(cameraSystem).InStage(Update))
	cmd.UseSystem(System(drawSystem).InStage(Render))

	if Resource[Viewport](app) != nil {
		cmd.UseSystem(System(viewportSystem(opts.ManagerOptions)).InStage(PreUpdate))
	}
}

// viewportSystem refreshes the projection whenever the framebuffer size
// differs from the one it last saw.
func viewportSystem(opts gridworld.ManagerOptions) func(*Viewport, *gridworld.GameWorld) {
	lastW, lastH := opts.ViewportWidth, opts.ViewportHeight
	return func(vp *Viewport, world *gridworld.GameWorld) {
		if vp.Width == lastW && vp.Height == lastH {
			return
		}
		lastW, lastH = vp.Width, vp.Height
		fov, near, far := opts.FieldOfView, opts.Near, opts.Far
		if fov <= 0 {
			fov = 45
		}
		if near <= 0 {
			near = 0.1
		}
		if far <= near {
			far = 1000
		}
		world.Manager().SetViewport(vp.Width, vp.Height, fov, near, far)
	}
}

func cameraSystem(input *Input, world *gridworld.GameWorld) {
	world.UpdateCameraPosition(input.Direction, input.MouseX, input.MouseY)
}

func drawSystem(world *gridworld.GameWorld) error {
	return world.Draw()
}
