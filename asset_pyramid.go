package gridworld

import (
	"github.com/gekko3d/gridworld/gpu"
)

// Square based pyramid with its apex on +y, same extent as the cube.
var pyramidVertices = []float32{
	-0.5, -0.5, 0.5,  // 0
	0.5, -0.5, 0.5,   // 1
	0.5, -0.5, -0.5,  // 2
	-0.5, -0.5, -0.5, // 3
	0.0, 0.5, 0.0,    // 4 apex
}

var pyramidIndices = []uint32{
	0, 2, 1, 0, 3, 2, // base
	0, 1, 4,
	1, 2, 4,
	2, 3, 4,
	3, 0, 4,
}

type PyramidAsset struct {
	*mesh
}

var _ Asset = (*PyramidAsset)(nil)

func NewPyramidAsset(dev gpu.Device) (*PyramidAsset, error) {
	m, err := newMesh(dev, AssetPyramid, pyramidVertices, pyramidIndices)
	if err != nil {
		return nil, err
	}
	return &PyramidAsset{mesh: m}, nil
}
