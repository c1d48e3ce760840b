package gridworld

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadConfig_EmptyPathIsDefault(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridworld.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
mode: rotate
window:
  width: 1280
  height: 720
spacing: 1.5
seed:
  - {type: pyramid, x: 0, y: 0, z: 0}
  - {type: cube, x: -2, y: 1, z: 3}
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ModeRotate, cfg.Mode)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, "gridworld", cfg.Window.Title, "unset keys keep their default")
	assert.Equal(t, float32(45), cfg.Render.FieldOfView)

	opts := cfg.WorldOptions(nil)
	assert.Equal(t, float32(1.5), opts.Spacing)
	assert.Equal(t, []SeedAsset{
		{Type: AssetPyramid, At: GridCoord{0, 0, 0}},
		{Type: AssetCube, At: GridCoord{-2, 1, 3}},
	}, opts.Seed)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseConfig_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown mode":    "mode: wobble",
		"unknown asset":   "seed: [{type: sphere}]",
		"bad width":       "window: {width: 0}",
		"bad fov":         "render: {fov: 200}",
		"far before near": "render: {near: 10, far: 1}",
		"zero spacing":    "spacing: 0",
		"reload no dir":   "hot_reload: true",
		"wrong type":      "window: {width: wide}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestConfig_WorldOptionsWithoutSeed(t *testing.T) {
	opts := DefaultConfig().WorldOptions(nil)

	assert.Nil(t, opts.Seed, "nil seed falls back to the default world")
	assert.Equal(t, 640, opts.ViewportWidth)
}

func TestApplicationMode_YAMLRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(struct {
		Mode ApplicationMode `yaml:"mode"`
	}{ModeScale})
	require.NoError(t, err)
	assert.Equal(t, "mode: scale\n", string(out))
}

func TestParseApplicationMode(t *testing.T) {
	m, err := ParseApplicationMode(" Scale ")
	require.NoError(t, err)
	assert.Equal(t, ModeScale, m)
	assert.Equal(t, "scale.vert", m.VertexShaderFile())

	m, err = ParseApplicationMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeTransform, m)

	_, err = ParseApplicationMode("shear")
	assert.Error(t, err)
}
