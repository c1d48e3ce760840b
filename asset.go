package gridworld

import (
	"fmt"

	"github.com/gekko3d/gridworld/gpu"

	"github.com/google/uuid"
)

type AssetId string

type AssetType int

const (
	AssetCube AssetType = iota
	AssetPyramid
)

func (t AssetType) String() string {
	switch t {
	case AssetCube:
		return "cube"
	case AssetPyramid:
		return "pyramid"
	default:
		return fmt.Sprintf("AssetType(%d)", int(t))
	}
}

// PositionAttribute is the vertex attribute every asset feeds.
const PositionAttribute = "position"

// Asset is a drawable, GPU resident piece of geometry.
type Asset interface {
	ID() AssetId
	AssetType() AssetType
	// Draw issues the asset's draw call with program, which must be linked.
	Draw(program gpu.Program) error
	// Release frees the GPU buffers. Safe to call more than once.
	Release()
}

// mesh owns one vertex and one index buffer uploaded at construction.
type mesh struct {
	id        AssetId
	assetType AssetType
	dev       gpu.Device

	vertexBuffer gpu.Buffer
	indexBuffer  gpu.Buffer
	vertexCount  int
	indexCount   int32
	released     bool
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// newMesh uploads positions (xyz triples) and triangle indices. Each buffer
// is written exactly once.
func newMesh(dev gpu.Device, assetType AssetType, positions []float32, indices []uint32) (*mesh, error) {
	m := &mesh{
		id:          makeAssetId(),
		assetType:   assetType,
		dev:         dev,
		vertexCount: len(positions) / 3,
		indexCount:  int32(len(indices)),
	}

	m.vertexBuffer = dev.GenBuffer()
	dev.BindBuffer(gpu.ArrayBuffer, m.vertexBuffer)
	dev.BufferFloats(gpu.ArrayBuffer, positions)

	m.indexBuffer = dev.GenBuffer()
	dev.BindBuffer(gpu.ElementArrayBuffer, m.indexBuffer)
	dev.BufferIndices(gpu.ElementArrayBuffer, indices)

	if err := dev.Err(); err != nil {
		m.Release()
		return nil, fmt.Errorf("failed to upload %s buffers: %w", assetType, err)
	}
	return m, nil
}

func (m *mesh) ID() AssetId {
	return m.id
}

func (m *mesh) AssetType() AssetType {
	return m.assetType
}

func (m *mesh) VertexCount() int {
	return m.vertexCount
}

func (m *mesh) IndexCount() int {
	return int(m.indexCount)
}

func (m *mesh) VertexBuffer() gpu.Buffer {
	return m.vertexBuffer
}

func (m *mesh) IndexBuffer() gpu.Buffer {
	return m.indexBuffer
}

func (m *mesh) Draw(program gpu.Program) error {
	if m.released {
		return fmt.Errorf("draw %s %s: %w", m.assetType, m.id, ErrAssetReleased)
	}
	if !m.dev.IsProgram(program) {
		return &InvalidProgramError{Program: program, Asset: m.assetType}
	}

	position := m.dev.AttribLocation(program, PositionAttribute)
	if position == gpu.NoLocation {
		return &UniformNotFoundError{Name: PositionAttribute, Attribute: true}
	}

	m.dev.BindBuffer(gpu.ArrayBuffer, m.vertexBuffer)
	m.dev.EnableAttrib(position)
	m.dev.AttribPointer(position, 3)
	m.dev.BindBuffer(gpu.ElementArrayBuffer, m.indexBuffer)
	m.dev.DrawIndexed(m.indexCount)
	m.dev.DisableAttrib(position)

	if err := m.dev.Err(); err != nil {
		return fmt.Errorf("draw %s %s: %w", m.assetType, m.id, err)
	}
	return nil
}

func (m *mesh) Release() {
	if m.released {
		return
	}
	m.released = true
	if m.vertexBuffer != 0 {
		m.dev.DeleteBuffer(m.vertexBuffer)
	}
	if m.indexBuffer != 0 {
		m.dev.DeleteBuffer(m.indexBuffer)
	}
}
