package gridworld

import (
	"testing"

	"github.com/gekko3d/gridworld/gpu/gputest"
	"github.com/gekko3d/gridworld/shaders"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameWorld_DrawSeededAssets(t *testing.T) {
	for _, mode := range []ApplicationMode{ModeTransform, ModeRotate, ModeScale} {
		t.Run(mode.String(), func(t *testing.T) {
			dev := gputest.New()
			world, err := NewGameWorld(dev, mode, shaders.FS, WorldOptions{})
			require.NoError(t, err)

			require.NoError(t, world.Draw())

			require.Len(t, dev.Draws, 2)
			assert.Equal(t, int32(36), dev.Draws[0].Count)
			assert.Equal(t, int32(18), dev.Draws[1].Count)
			assert.NoError(t, dev.Err())
		})
	}
}

func TestGameWorld_CustomSeed(t *testing.T) {
	dev := gputest.New()
	world, err := NewGameWorld(dev, ModeTransform, shaders.FS, WorldOptions{
		Seed: []SeedAsset{
			{Type: AssetPyramid, At: GridCoord{0, 0, 0}},
			{Type: AssetPyramid, At: GridCoord{0, 1, 0}},
			{Type: AssetCube, At: GridCoord{0, 2, 0}},
		},
	})
	require.NoError(t, err)

	require.NoError(t, world.Draw())
	assert.Len(t, dev.Draws, 3)
	assert.Equal(t, 3, world.Manager().Len())
}

func TestGameWorld_EmptySeed(t *testing.T) {
	dev := gputest.New()
	world, err := NewGameWorld(dev, ModeTransform, shaders.FS, WorldOptions{Seed: []SeedAsset{}})
	require.NoError(t, err)

	require.NoError(t, world.Draw())
	assert.Empty(t, dev.Draws)
}

func TestGameWorld_UnknownSeedTypeReleases(t *testing.T) {
	dev := gputest.New()
	_, err := NewGameWorld(dev, ModeTransform, shaders.FS, WorldOptions{
		Seed: []SeedAsset{
			{Type: AssetCube, At: GridCoord{0, 0, 0}},
			{Type: AssetType(7), At: GridCoord{1, 0, 0}},
		},
	})

	assert.Error(t, err)
	assert.Zero(t, dev.LiveBuffers())
	assert.Len(t, dev.DeletedProgs, 1)
}

func TestGameWorld_UpdateCameraPositionForwards(t *testing.T) {
	dev := gputest.New()
	world, err := NewGameWorld(dev, ModeTransform, shaders.FS, WorldOptions{})
	require.NoError(t, err)

	world.UpdateCameraPosition(DirectionUp, 0, 0)
	world.UpdateCameraPosition(DirectionUp, 0, 0)
	require.NoError(t, world.Draw())

	cam := world.Manager().Camera()
	assert.InDelta(t, 0.2, cam.Position().Z(), 1e-5)
	assert.Equal(t, cam.ViewMatrix(), dev.Draws[0].Matrices[UniformView])
	assert.Equal(t, mgl32.Vec3{-3, 1.5, cam.Position().Z()}, cam.Position())
}

func TestGameWorld_Release(t *testing.T) {
	dev := gputest.New()
	world, err := NewGameWorld(dev, ModeTransform, shaders.FS, WorldOptions{})
	require.NoError(t, err)

	world.Release()

	assert.Zero(t, dev.LiveBuffers())
	assert.Len(t, dev.DeletedProgs, 1)
}
