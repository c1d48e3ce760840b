package gridworld

import (
	"fmt"
	"io/fs"

	"github.com/gekko3d/gridworld/gpu"
)

// SeedAsset is an asset placed when the world is created.
type SeedAsset struct {
	Type AssetType
	At   GridCoord
}

// DefaultSeed is one cube at the origin and one pyramid two cells along x.
var DefaultSeed = []SeedAsset{
	{Type: AssetCube, At: GridCoord{0, 0, 0}},
	{Type: AssetPyramid, At: GridCoord{2, 0, 0}},
}

type WorldOptions struct {
	ManagerOptions
	// Seed replaces DefaultSeed when non-nil.
	Seed []SeedAsset
}

// GameWorld keeps the frame loop away from the asset manager. It has no state
// of its own.
type GameWorld struct {
	manager *GameAssetManager
}

func NewGameWorld(dev gpu.Device, mode ApplicationMode, shaders fs.FS, opts WorldOptions) (*GameWorld, error) {
	manager, err := NewGameAssetManager(dev, mode, shaders, opts.ManagerOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create asset manager: %w", err)
	}

	seed := opts.Seed
	if seed == nil {
		seed = DefaultSeed
	}
	for _, s := range seed {
		asset, err := NewAsset(dev, s.Type)
		if err != nil {
			manager.Release()
			return nil, err
		}
		manager.AddAsset(asset, s.At.X, s.At.Y, s.At.Z)
	}

	return &GameWorld{manager: manager}, nil
}

// NewAsset builds the asset variant for t.
func NewAsset(dev gpu.Device, t AssetType) (Asset, error) {
	switch t {
	case AssetCube:
		cube, err := NewCubeAsset(dev)
		if err != nil {
			return nil, err
		}
		return cube, nil
	case AssetPyramid:
		pyramid, err := NewPyramidAsset(dev)
		if err != nil {
			return nil, err
		}
		return pyramid, nil
	}
	return nil, fmt.Errorf("unknown asset type %s", t)
}

func (w *GameWorld) Draw() error {
	return w.manager.Draw()
}

func (w *GameWorld) UpdateCameraPosition(direction InputDirection, mouseX, mouseY int) {
	w.manager.UpdateCameraPosition(direction, mouseX, mouseY)
}

func (w *GameWorld) Manager() *GameAssetManager {
	return w.manager
}

func (w *GameWorld) Release() {
	w.manager.Release()
}
