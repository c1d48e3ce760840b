package gridworld

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

type GridCoord struct {
	X, Y, Z int
}

// Offset is the world space position of the cell centre.
func (c GridCoord) Offset(spacing float32) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X) * spacing, float32(c.Y) * spacing, float32(c.Z) * spacing}
}

// TranslateMatrix places a unit model at the cell.
func (c GridCoord) TranslateMatrix(spacing float32) mgl32.Mat4 {
	o := c.Offset(spacing)
	return mgl32.Translate3D(o.X(), o.Y(), o.Z())
}

func compareCoords(a, b GridCoord) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.Z, b.Z)
}

// AssetGrid is a sparse 3D container with at most one asset per cell. It
// grows on demand and accepts negative coordinates.
type AssetGrid struct {
	cells map[GridCoord]Asset
}

func NewAssetGrid() *AssetGrid {
	return &AssetGrid{cells: make(map[GridCoord]Asset)}
}

// Put stores asset at c and returns the previous occupant, or nil.
func (g *AssetGrid) Put(c GridCoord, asset Asset) Asset {
	prev := g.cells[c]
	g.cells[c] = asset
	return prev
}

func (g *AssetGrid) Get(c GridCoord) Asset {
	return g.cells[c]
}

// Remove empties c and returns what was there, or nil.
func (g *AssetGrid) Remove(c GridCoord) Asset {
	prev, ok := g.cells[c]
	if !ok {
		return nil
	}
	delete(g.cells, c)
	return prev
}

func (g *AssetGrid) Len() int {
	return len(g.cells)
}

// Coords lists the occupied cells in ascending x, y, z order.
func (g *AssetGrid) Coords() []GridCoord {
	coords := make([]GridCoord, 0, len(g.cells))
	for c := range g.cells {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, compareCoords)
	return coords
}

// Each visits every occupied cell once, in Coords order, until fn returns false.
func (g *AssetGrid) Each(fn func(c GridCoord, asset Asset) bool) {
	for _, c := range g.Coords() {
		if !fn(c, g.cells[c]) {
			return
		}
	}
}

func (c GridCoord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}
