package main

import (
	"flag"
	"io/fs"
	"os"
	"runtime"

	"github.com/gekko3d/gridworld"
	"github.com/gekko3d/gridworld/app"
	"github.com/gekko3d/gridworld/platform"
	"github.com/gekko3d/gridworld/shaders"
)

func init() {
	// glfw and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	mode := flag.String("mode", "", "vertex stage: transform, rotate or scale (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log := gridworld.NewDefaultLogger("gridworld", *debug)

	cfg, err := gridworld.LoadConfig(*configPath)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	if *mode != "" {
		if cfg.Mode, err = gridworld.ParseApplicationMode(*mode); err != nil {
			log.Errorf("%v", err)
			os.Exit(2)
		}
	}
	if cfg.Debug {
		log.SetDebug(true)
	}

	if err := run(cfg, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(cfg gridworld.Config, log gridworld.Logger) error {
	var shaderFS fs.FS = shaders.FS
	if cfg.ShaderDir != "" {
		shaderFS = os.DirFS(cfg.ShaderDir)
	}

	builder := app.NewAppBuilder().
		UseModule(
			app.LoggingModule{Logger: log},
			app.TimeModule{},
			platform.WindowModule{
				Width:      cfg.Window.Width,
				Height:     cfg.Window.Height,
				Title:      cfg.Window.Title,
				ClearColor: cfg.Render.ClearColor,
				VSync:      true,
			},
			platform.InputModule{},
			app.WorldModule{
				Mode:    cfg.Mode,
				Shaders: shaderFS,
				Options: cfg.WorldOptions(log),
			},
		)
	if cfg.HotReload {
		builder.UseModule(app.ShaderReloadModule{Dir: cfg.ShaderDir})
	}

	application, err := builder.Build()
	if err != nil {
		return err
	}
	log.Infof("running in %s mode", cfg.Mode)
	return application.Run()
}
