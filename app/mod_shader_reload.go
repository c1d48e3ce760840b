package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gekko3d/gridworld"

	"github.com/fsnotify/fsnotify"
)

// ShaderReload carries change notifications from the watcher goroutine to
// the render thread.
type ShaderReload struct {
	dir     string
	pending chan struct{}
	watcher *fsnotify.Watcher
	log     gridworld.Logger
	// Reloads counts programs swapped in since start.
	Reloads int
}

// ShaderReloadModule rebuilds the world program when a shader source in Dir
// changes. It must be installed after WorldModule.
type ShaderReloadModule struct {
	Dir string
}

func (mod ShaderReloadModule) Install(app *App, cmd *Commands) {
	log := logger(app)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		cmd.Fail(fmt.Errorf("failed to create shader watcher: %w", err))
		return
	}
	if err := watcher.Add(mod.Dir); err != nil {
		watcher.Close()
		cmd.Fail(fmt.Errorf("failed to watch %s: %w", mod.Dir, err))
		return
	}

	reload := &ShaderReload{
		dir:     mod.Dir,
		pending: make(chan struct{}, 1),
		watcher: watcher,
		log:     log,
	}
	go reload.watch()

	cmd.AddResources(reload)
	cmd.OnShutdown(func() { watcher.Close() })
	cmd.UseSystem(System(shaderReloadSystem).InStage(PreUpdate))
	log.Infof("watching %s for shader changes", mod.Dir)
}

func isShaderSource(name string) bool {
	switch filepath.Ext(name) {
	case ".vert", ".frag":
		return true
	}
	return false
}

// watch runs until the watcher is closed. Bursts of events collapse into a
// single pending reload.
func (r *ShaderReload) watch() {
	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !isShaderSource(event.Name) {
				continue
			}
			r.Trigger()
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.log.Warnf("shader watcher: %v", err)
		}
	}
}

// Trigger schedules a reload for the next frame. It never blocks.
func (r *ShaderReload) Trigger() {
	select {
	case r.pending <- struct{}{}:
	default:
	}
}

func shaderReloadSystem(r *ShaderReload, world *gridworld.GameWorld) {
	select {
	case <-r.pending:
	default:
		return
	}

	manager := world.Manager()
	vertex, fragment, err := gridworld.LoadShaderSources(os.DirFS(r.dir), manager.Mode())
	if err != nil {
		r.log.Errorf("shader reload: %v", err)
		return
	}
	if err := manager.ReloadProgram(vertex, fragment); err != nil {
		r.log.Errorf("shader reload kept program %d: %v", manager.Program(), err)
		return
	}
	r.Reloads++
	r.log.Infof("shader reload: program %d", manager.Program())
}
