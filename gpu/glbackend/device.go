// Package glbackend implements gpu.Device on top of an OpenGL 4.1 core context.
package glbackend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gekko3d/gridworld/gpu"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type Device struct {
	vao uint32
}

var _ gpu.Device = (*Device)(nil)

// New loads the GL function pointers for the current context and binds the
// vertex array object every draw goes through. The context must already be
// current on the calling thread.
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	d := &Device{}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return d, nil
}

// Version reports the driver's GL version string.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) Clear(r, g, b float32) {
	gl.ClearColor(r, g, b, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) Release() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func (d *Device) GenBuffer() gpu.Buffer {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return gpu.Buffer(buf)
}

func (d *Device) BindBuffer(target gpu.BufferTarget, buf gpu.Buffer) {
	gl.BindBuffer(glTarget(target), uint32(buf))
}

func (d *Device) BufferFloats(target gpu.BufferTarget, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(glTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) BufferIndices(target gpu.BufferTarget, data []uint32) {
	if len(data) == 0 {
		return
	}
	gl.BufferData(glTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) DeleteBuffer(buf gpu.Buffer) {
	b := uint32(buf)
	gl.DeleteBuffers(1, &b)
}

func (d *Device) CompileShader(stage gpu.ShaderStage, source string) (gpu.Shader, error) {
	shader := gl.CreateShader(glStage(stage))

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}

	return gpu.Shader(shader), nil
}

func (d *Device) DeleteShader(shader gpu.Shader) {
	gl.DeleteShader(uint32(shader))
}

func (d *Device) LinkProgram(shaders ...gpu.Shader) (gpu.Program, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, uint32(s))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, errors.New(strings.TrimRight(log, "\x00"))
	}

	for _, s := range shaders {
		gl.DetachShader(program, uint32(s))
	}
	return gpu.Program(program), nil
}

func (d *Device) IsProgram(p gpu.Program) bool {
	if p == 0 || !gl.IsProgram(uint32(p)) {
		return false
	}
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) UseProgram(p gpu.Program) {
	gl.UseProgram(uint32(p))
}

func (d *Device) DeleteProgram(p gpu.Program) {
	gl.DeleteProgram(uint32(p))
}

func (d *Device) AttribLocation(p gpu.Program, name string) gpu.Location {
	return gpu.Location(gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00")))
}

func (d *Device) UniformLocation(p gpu.Program, name string) gpu.Location {
	return gpu.Location(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

func (d *Device) EnableAttrib(loc gpu.Location) {
	gl.EnableVertexAttribArray(uint32(loc))
}

func (d *Device) DisableAttrib(loc gpu.Location) {
	gl.DisableVertexAttribArray(uint32(loc))
}

func (d *Device) AttribPointer(loc gpu.Location, size int32) {
	gl.VertexAttribPointer(uint32(loc), size, gl.FLOAT, false, 0, gl.PtrOffset(0))
}

func (d *Device) UniformMatrix4(loc gpu.Location, m mgl32.Mat4) {
	gl.UniformMatrix4fv(int32(loc), 1, false, &m[0])
}

func (d *Device) Uniform1f(loc gpu.Location, v float32) {
	gl.Uniform1f(int32(loc), v)
}

func (d *Device) DrawIndexed(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (d *Device) Err() error {
	var first error
	// glGetError only clears one flag per call
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if first == nil {
			first = &gpu.GraphicsAPIError{Code: code}
		}
	}
	return first
}

func glTarget(target gpu.BufferTarget) uint32 {
	if target == gpu.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func glStage(stage gpu.ShaderStage) uint32 {
	if stage == gpu.FragmentStage {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}
