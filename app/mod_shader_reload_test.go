package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gekko3d/gridworld"
	"github.com/gekko3d/gridworld/gpu/gputest"
	"github.com/gekko3d/gridworld/shaders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shaderDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.CopyFS(dir, shaders.FS))
	return dir
}

func TestShaderReload_SwapsProgram(t *testing.T) {
	dev := gputest.New()
	dir := shaderDir(t)
	app := buildWorldApp(t, dev, ShaderReloadModule{Dir: dir})

	manager := Resource[gridworld.GameWorld](app).Manager()
	reload := Resource[ShaderReload](app)
	before := manager.Program()

	reload.Trigger()
	require.NoError(t, app.Step())

	assert.Equal(t, 1, reload.Reloads)
	assert.NotEqual(t, before, manager.Program())
	assert.Contains(t, dev.DeletedProgs, before)
}

func TestShaderReload_BrokenSourceKeepsProgram(t *testing.T) {
	dev := gputest.New()
	dir := shaderDir(t)
	app := buildWorldApp(t, dev, ShaderReloadModule{Dir: dir})

	manager := Resource[gridworld.GameWorld](app).Manager()
	reload := Resource[ShaderReload](app)
	before := manager.Program()

	vert := filepath.Join(dir, gridworld.ModeTransform.VertexShaderFile())
	require.NoError(t, os.WriteFile(vert, []byte("#version 410 core\nvoid main( {\n"), 0o644))
	reload.Trigger()

	require.NoError(t, app.Step(), "a failed reload does not stop the frame")
	assert.Zero(t, reload.Reloads)
	assert.Equal(t, before, manager.Program())
	assert.Len(t, dev.Draws, 2)
}

func TestShaderReload_WatchesDirectory(t *testing.T) {
	dev := gputest.New()
	dir := shaderDir(t)
	app := buildWorldApp(t, dev, ShaderReloadModule{Dir: dir})
	reload := Resource[ShaderReload](app)

	vert := filepath.Join(dir, gridworld.ModeTransform.VertexShaderFile())
	src, err := os.ReadFile(vert)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(vert, append(src, "\n// edited\n"...), 0o644))

	deadline := time.Now().Add(5 * time.Second)
	for reload.Reloads == 0 && time.Now().Before(deadline) {
		require.NoError(t, app.Step())
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 1, reload.Reloads)
}

func TestShaderReload_MissingDir(t *testing.T) {
	dev := gputest.New()
	_, err := NewAppBuilder().UseModule(
		gpuModule{dev: dev},
		WorldModule{Mode: gridworld.ModeTransform, Shaders: shaders.FS},
		ShaderReloadModule{Dir: filepath.Join(t.TempDir(), "missing")},
	).Build()

	assert.Error(t, err)
	assert.Zero(t, dev.LiveBuffers(), "the world is released when install fails")
}

func TestIsShaderSource(t *testing.T) {
	assert.True(t, isShaderSource("/x/rotate.vert"))
	assert.True(t, isShaderSource("fragment.frag"))
	assert.False(t, isShaderSource("fragment.frag.swp"))
}
