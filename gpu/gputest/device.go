// Package gputest provides a recording gpu.Device for tests that have no GL
// context. It keeps enough state to validate call order and records every
// draw with the uniform values current at the time.
package gputest

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gekko3d/gridworld/gpu"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawCall is a snapshot of the pipeline state at one DrawIndexed.
type DrawCall struct {
	Program      gpu.Program
	VertexBuffer gpu.Buffer
	IndexBuffer  gpu.Buffer
	Count        int32
	Attribs      []string
	Matrices     map[string]mgl32.Mat4
	Floats       map[string]float32
}

type bufferState struct {
	floats  []float32
	indices []uint32
	uploads int
}

type shaderState struct {
	stage      gpu.ShaderStage
	attributes []string
	uniforms   []string
}

type programState struct {
	attributes map[string]gpu.Location
	uniforms   map[string]gpu.Location
}

type Device struct {
	nextHandle uint32

	buffers  map[gpu.Buffer]*bufferState
	shaders  map[gpu.Shader]*shaderState
	programs map[gpu.Program]*programState

	bound   map[gpu.BufferTarget]gpu.Buffer
	current gpu.Program
	enabled map[gpu.Location]bool

	matrices map[gpu.Program]map[gpu.Location]mgl32.Mat4
	floats   map[gpu.Program]map[gpu.Location]float32

	pending []uint32

	// FailLink makes the next LinkProgram fail with this log.
	FailLink string

	Draws          []DrawCall
	DeletedBuffers []gpu.Buffer
	DeletedShaders []gpu.Shader
	DeletedProgs   []gpu.Program
}

var _ gpu.Device = (*Device)(nil)

func New() *Device {
	return &Device{
		buffers:  make(map[gpu.Buffer]*bufferState),
		shaders:  make(map[gpu.Shader]*shaderState),
		programs: make(map[gpu.Program]*programState),
		bound:    make(map[gpu.BufferTarget]gpu.Buffer),
		enabled:  make(map[gpu.Location]bool),
		matrices: make(map[gpu.Program]map[gpu.Location]mgl32.Mat4),
		floats:   make(map[gpu.Program]map[gpu.Location]float32),
	}
}

func (d *Device) handle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

// InjectError queues an error code for the next Err call.
func (d *Device) InjectError(code uint32) {
	d.pending = append(d.pending, code)
}

func (d *Device) GenBuffer() gpu.Buffer {
	b := gpu.Buffer(d.handle())
	d.buffers[b] = &bufferState{}
	return b
}

func (d *Device) BindBuffer(target gpu.BufferTarget, buf gpu.Buffer) {
	if _, ok := d.buffers[buf]; !ok && buf != 0 {
		d.pending = append(d.pending, gpu.CodeInvalidValue)
		return
	}
	d.bound[target] = buf
}

func (d *Device) boundBuffer(target gpu.BufferTarget) *bufferState {
	b, ok := d.buffers[d.bound[target]]
	if !ok {
		d.pending = append(d.pending, gpu.CodeInvalidOperation)
		return nil
	}
	return b
}

func (d *Device) BufferFloats(target gpu.BufferTarget, data []float32) {
	if b := d.boundBuffer(target); b != nil {
		b.floats = append([]float32(nil), data...)
		b.uploads++
	}
}

func (d *Device) BufferIndices(target gpu.BufferTarget, data []uint32) {
	if b := d.boundBuffer(target); b != nil {
		b.indices = append([]uint32(nil), data...)
		b.uploads++
	}
}

func (d *Device) DeleteBuffer(buf gpu.Buffer) {
	if _, ok := d.buffers[buf]; !ok {
		return
	}
	delete(d.buffers, buf)
	for target, b := range d.bound {
		if b == buf {
			d.bound[target] = 0
		}
	}
	d.DeletedBuffers = append(d.DeletedBuffers, buf)
}

// Floats returns the data uploaded to buf.
func (d *Device) Floats(buf gpu.Buffer) []float32 {
	if b, ok := d.buffers[buf]; ok {
		return b.floats
	}
	return nil
}

// Indices returns the index data uploaded to buf.
func (d *Device) Indices(buf gpu.Buffer) []uint32 {
	if b, ok := d.buffers[buf]; ok {
		return b.indices
	}
	return nil
}

// Uploads counts the data uploads into buf.
func (d *Device) Uploads(buf gpu.Buffer) int {
	if b, ok := d.buffers[buf]; ok {
		return b.uploads
	}
	return 0
}

// LiveBuffers is the number of buffers not yet deleted.
func (d *Device) LiveBuffers() int {
	return len(d.buffers)
}

// CompileShader accepts any source that has a main function and balanced
// braces, and records its in/uniform declarations.
func (d *Device) CompileShader(stage gpu.ShaderStage, source string) (gpu.Shader, error) {
	if !strings.Contains(source, "void main(") {
		return 0, fmt.Errorf("0:1(1): error: %s shader has no main function", stage)
	}
	if strings.Count(source, "{") != strings.Count(source, "}") {
		return 0, errors.New("0:1(1): error: syntax error, unexpected end of file")
	}

	st := &shaderState{stage: stage}
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "//") {
			continue
		}
		fields := strings.Fields(line)
		for i, f := range fields {
			if i+2 >= len(fields) {
				break
			}
			name := strings.TrimSuffix(fields[i+2], ";")
			if f == "uniform" {
				st.uniforms = append(st.uniforms, name)
				break
			}
			if f == "in" && stage == gpu.VertexStage {
				st.attributes = append(st.attributes, name)
				break
			}
		}
	}

	s := gpu.Shader(d.handle())
	d.shaders[s] = st
	return s, nil
}

func (d *Device) DeleteShader(shader gpu.Shader) {
	if _, ok := d.shaders[shader]; !ok {
		return
	}
	delete(d.shaders, shader)
	d.DeletedShaders = append(d.DeletedShaders, shader)
}

// LiveShaders is the number of shader objects not yet deleted.
func (d *Device) LiveShaders() int {
	return len(d.shaders)
}

func (d *Device) LinkProgram(shaders ...gpu.Shader) (gpu.Program, error) {
	if d.FailLink != "" {
		log := d.FailLink
		d.FailLink = ""
		return 0, errors.New(log)
	}

	var hasVertex, hasFragment bool
	attributes := map[string]struct{}{}
	uniforms := map[string]struct{}{}
	for _, s := range shaders {
		st, ok := d.shaders[s]
		if !ok {
			return 0, fmt.Errorf("error: shader %d is not a valid shader object", s)
		}
		switch st.stage {
		case gpu.VertexStage:
			hasVertex = true
		case gpu.FragmentStage:
			hasFragment = true
		}
		for _, a := range st.attributes {
			attributes[a] = struct{}{}
		}
		for _, u := range st.uniforms {
			uniforms[u] = struct{}{}
		}
	}
	if !hasVertex || !hasFragment {
		return 0, errors.New("error: program lacks a vertex or fragment stage")
	}

	p := gpu.Program(d.handle())
	d.programs[p] = &programState{
		attributes: assignLocations(attributes),
		uniforms:   assignLocations(uniforms),
	}
	d.matrices[p] = make(map[gpu.Location]mgl32.Mat4)
	d.floats[p] = make(map[gpu.Location]float32)
	return p, nil
}

func assignLocations(names map[string]struct{}) map[string]gpu.Location {
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
	}
	sort.Strings(sorted)

	locs := make(map[string]gpu.Location, len(sorted))
	for i, n := range sorted {
		locs[n] = gpu.Location(i)
	}
	return locs
}

func (d *Device) IsProgram(p gpu.Program) bool {
	_, ok := d.programs[p]
	return ok
}

func (d *Device) UseProgram(p gpu.Program) {
	if _, ok := d.programs[p]; !ok && p != 0 {
		d.pending = append(d.pending, gpu.CodeInvalidOperation)
		return
	}
	d.current = p
}

// CurrentProgram is the program last passed to UseProgram.
func (d *Device) CurrentProgram() gpu.Program {
	return d.current
}

func (d *Device) DeleteProgram(p gpu.Program) {
	if _, ok := d.programs[p]; !ok {
		return
	}
	delete(d.programs, p)
	delete(d.matrices, p)
	delete(d.floats, p)
	if d.current == p {
		d.current = 0
	}
	d.DeletedProgs = append(d.DeletedProgs, p)
}

func (d *Device) AttribLocation(p gpu.Program, name string) gpu.Location {
	ps, ok := d.programs[p]
	if !ok {
		d.pending = append(d.pending, gpu.CodeInvalidOperation)
		return gpu.NoLocation
	}
	if loc, ok := ps.attributes[name]; ok {
		return loc
	}
	return gpu.NoLocation
}

func (d *Device) UniformLocation(p gpu.Program, name string) gpu.Location {
	ps, ok := d.programs[p]
	if !ok {
		d.pending = append(d.pending, gpu.CodeInvalidOperation)
		return gpu.NoLocation
	}
	if loc, ok := ps.uniforms[name]; ok {
		return loc
	}
	return gpu.NoLocation
}

func (d *Device) EnableAttrib(loc gpu.Location) {
	if loc < 0 {
		d.pending = append(d.pending, gpu.CodeInvalidValue)
		return
	}
	d.enabled[loc] = true
}

func (d *Device) DisableAttrib(loc gpu.Location) {
	if loc < 0 {
		d.pending = append(d.pending, gpu.CodeInvalidValue)
		return
	}
	delete(d.enabled, loc)
}

// EnabledAttribs is the number of attribute arrays currently enabled.
func (d *Device) EnabledAttribs() int {
	return len(d.enabled)
}

func (d *Device) AttribPointer(loc gpu.Location, size int32) {
	if loc < 0 || size < 1 || size > 4 {
		d.pending = append(d.pending, gpu.CodeInvalidValue)
		return
	}
	if d.bound[gpu.ArrayBuffer] == 0 {
		d.pending = append(d.pending, gpu.CodeInvalidOperation)
	}
}

// Uniform writes with location -1 are silently ignored, as in GL.
func (d *Device) UniformMatrix4(loc gpu.Location, m mgl32.Mat4) {
	if loc < 0 {
		return
	}
	if d.current == 0 {
		d.pending = append(d.pending, gpu.CodeInvalidOperation)
		return
	}
	d.matrices[d.current][loc] = m
}

func (d *Device) Uniform1f(loc gpu.Location, v float32) {
	if loc < 0 {
		return
	}
	if d.current == 0 {
		d.pending = append(d.pending, gpu.CodeInvalidOperation)
		return
	}
	d.floats[d.current][loc] = v
}

func (d *Device) DrawIndexed(count int32) {
	ps, ok := d.programs[d.current]
	if !ok || d.bound[gpu.ElementArrayBuffer] == 0 {
		d.pending = append(d.pending, gpu.CodeInvalidOperation)
		return
	}

	call := DrawCall{
		Program:      d.current,
		VertexBuffer: d.bound[gpu.ArrayBuffer],
		IndexBuffer:  d.bound[gpu.ElementArrayBuffer],
		Count:        count,
		Matrices:     make(map[string]mgl32.Mat4),
		Floats:       make(map[string]float32),
	}
	for name, loc := range ps.attributes {
		if d.enabled[loc] {
			call.Attribs = append(call.Attribs, name)
		}
	}
	sort.Strings(call.Attribs)
	for name, loc := range ps.uniforms {
		if m, ok := d.matrices[d.current][loc]; ok {
			call.Matrices[name] = m
		}
		if f, ok := d.floats[d.current][loc]; ok {
			call.Floats[name] = f
		}
	}
	d.Draws = append(d.Draws, call)
}

func (d *Device) Err() error {
	if len(d.pending) == 0 {
		return nil
	}
	code := d.pending[0]
	d.pending = d.pending[:0]
	return &gpu.GraphicsAPIError{Code: code}
}
