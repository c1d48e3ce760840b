package gridworld

import (
	"testing"

	"github.com/gekko3d/gridworld/gpu"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type stubAsset struct {
	id AssetId
	t  AssetType
}

func (s *stubAsset) ID() AssetId                    { return s.id }
func (s *stubAsset) AssetType() AssetType           { return s.t }
func (s *stubAsset) Draw(program gpu.Program) error { return nil }
func (s *stubAsset) Release()                       {}

func TestAssetGrid_PutReplaces(t *testing.T) {
	grid := NewAssetGrid()
	a := &stubAsset{id: "a"}
	b := &stubAsset{id: "b"}

	assert.Nil(t, grid.Put(GridCoord{1, 2, 3}, a))
	assert.Same(t, a, grid.Put(GridCoord{1, 2, 3}, b))
	assert.Same(t, b, grid.Get(GridCoord{1, 2, 3}))
	assert.Equal(t, 1, grid.Len())
}

func TestAssetGrid_SparseAndNegative(t *testing.T) {
	grid := NewAssetGrid()
	a := &stubAsset{id: "a"}

	grid.Put(GridCoord{-4, 0, 9000}, a)
	grid.Put(GridCoord{3, -1, 0}, a)

	assert.Equal(t, 2, grid.Len())
	assert.Nil(t, grid.Get(GridCoord{0, 0, 0}))
	assert.Same(t, a, grid.Get(GridCoord{-4, 0, 9000}))
}

func TestAssetGrid_CoordsAreOrdered(t *testing.T) {
	grid := NewAssetGrid()
	a := &stubAsset{id: "a"}
	for _, c := range []GridCoord{{2, 0, 0}, {0, 1, 0}, {0, 0, 5}, {-1, 9, 9}, {0, 0, 1}} {
		grid.Put(c, a)
	}

	assert.Equal(t, []GridCoord{{-1, 9, 9}, {0, 0, 1}, {0, 0, 5}, {0, 1, 0}, {2, 0, 0}}, grid.Coords())
}

func TestAssetGrid_Remove(t *testing.T) {
	grid := NewAssetGrid()
	a := &stubAsset{id: "a"}
	grid.Put(GridCoord{1, 1, 1}, a)

	assert.Same(t, a, grid.Remove(GridCoord{1, 1, 1}))
	assert.Nil(t, grid.Remove(GridCoord{1, 1, 1}))
	assert.Zero(t, grid.Len())
}

func TestAssetGrid_EachStops(t *testing.T) {
	grid := NewAssetGrid()
	a := &stubAsset{id: "a"}
	grid.Put(GridCoord{0, 0, 0}, a)
	grid.Put(GridCoord{1, 0, 0}, a)
	grid.Put(GridCoord{2, 0, 0}, a)

	visited := 0
	grid.Each(func(c GridCoord, asset Asset) bool {
		visited++
		return c.X < 1
	})
	assert.Equal(t, 2, visited)
}

func TestGridCoord_TranslateMatrix(t *testing.T) {
	m := GridCoord{2, 3, 1}.TranslateMatrix(1.5)

	assert.Equal(t, mgl32.Vec4{3, 4.5, 1.5, 1}, m.Col(3))
	assert.Equal(t, "(2, 3, 1)", GridCoord{2, 3, 1}.String())
}
