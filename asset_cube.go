package gridworld

import (
	"github.com/gekko3d/gridworld/gpu"
)

// Unit cube centred on the origin.
var cubeVertices = []float32{
	// front
	-0.5, -0.5, 0.5, // 0
	-0.5, 0.5, 0.5,  // 1
	0.5, -0.5, 0.5,  // 2
	0.5, 0.5, 0.5,   // 3

	// back
	-0.5, -0.5, -0.5, // 4
	-0.5, 0.5, -0.5,  // 5
	0.5, -0.5, -0.5,  // 6
	0.5, 0.5, -0.5,   // 7
}

// Two triangles per face.
var cubeIndices = []uint32{
	0, 2, 1, 1, 2, 3, // front
	4, 5, 6, 5, 7, 6, // back
	1, 3, 5, 3, 7, 5, // top
	0, 4, 2, 2, 4, 6, // bottom
	0, 1, 4, 1, 5, 4, // left
	2, 6, 3, 3, 6, 7, // right
}

type CubeAsset struct {
	*mesh
}

var _ Asset = (*CubeAsset)(nil)

func NewCubeAsset(dev gpu.Device) (*CubeAsset, error) {
	m, err := newMesh(dev, AssetCube, cubeVertices, cubeIndices)
	if err != nil {
		return nil, err
	}
	return &CubeAsset{mesh: m}, nil
}
