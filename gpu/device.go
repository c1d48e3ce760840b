package gpu

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Opaque handles handed out by a Device. Zero is never a valid handle.
type (
	Buffer  uint32
	Shader  uint32
	Program uint32
)

// Location is an attribute or uniform slot. NoLocation marks a failed lookup.
type Location int32

const NoLocation Location = -1

type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the graphics API as seen by the renderer. All calls must happen
// on the goroutine that owns the context.
type Device interface {
	GenBuffer() Buffer
	BindBuffer(target BufferTarget, buf Buffer)
	BufferFloats(target BufferTarget, data []float32)
	BufferIndices(target BufferTarget, data []uint32)
	DeleteBuffer(buf Buffer)

	// CompileShader returns the driver's info log as the error on failure.
	CompileShader(stage ShaderStage, source string) (Shader, error)
	DeleteShader(shader Shader)
	// LinkProgram returns the driver's info log as the error on failure.
	LinkProgram(shaders ...Shader) (Program, error)
	// IsProgram reports whether p names a successfully linked program.
	IsProgram(p Program) bool
	UseProgram(p Program)
	DeleteProgram(p Program)

	AttribLocation(p Program, name string) Location
	UniformLocation(p Program, name string) Location
	EnableAttrib(loc Location)
	DisableAttrib(loc Location)
	// AttribPointer describes a tightly packed float attribute of size components.
	AttribPointer(loc Location, size int32)

	UniformMatrix4(loc Location, m mgl32.Mat4)
	Uniform1f(loc Location, v float32)

	// DrawIndexed draws count uint32 indices from the bound element buffer as triangles.
	DrawIndexed(count int32)

	// Err returns and clears the pending error state, nil if none.
	Err() error
}
