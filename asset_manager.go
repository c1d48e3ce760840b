package gridworld

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/gekko3d/gridworld/gpu"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// Names shared with the shader sources.
const (
	UniformProjection = "projection_matrix"
	UniformView       = "view_matrix"
	UniformTranslate  = "translate_matrix"
	UniformRed        = "shape_red_value"
	UniformGreen      = "shape_green_value"
	UniformBlue       = "shape_blue_value"
)

var defaultAssetColors = map[AssetType]color.RGBA{
	AssetCube:    colornames.Crimson,
	AssetPyramid: colornames.Seagreen,
}

type ManagerOptions struct {
	ViewportWidth  int
	ViewportHeight int
	FieldOfView    float32 // degrees
	Near, Far      float32
	// Spacing is the world distance between neighbouring grid cells.
	Spacing float32
	// Colors overrides the per asset type base colour.
	Colors map[AssetType]color.RGBA
	Logger Logger
}

func (o ManagerOptions) withDefaults() ManagerOptions {
	if o.ViewportWidth <= 0 {
		o.ViewportWidth = 640
	}
	if o.ViewportHeight <= 0 {
		o.ViewportHeight = 480
	}
	if o.FieldOfView <= 0 {
		o.FieldOfView = 45
	}
	if o.Near <= 0 {
		o.Near = 0.1
	}
	if o.Far <= o.Near {
		o.Far = 1000
	}
	if o.Spacing == 0 {
		o.Spacing = 1
	}
	o.Logger = loggerOrNop(o.Logger)
	return o
}

// programLinks are the attribute and uniform slots resolved once per program.
type programLinks struct {
	position   gpu.Location
	projection gpu.Location
	view       gpu.Location
	translate  gpu.Location
	red        gpu.Location
	green      gpu.Location
	blue       gpu.Location
}

func resolveProgramLinks(dev gpu.Device, program gpu.Program) (programLinks, error) {
	links := programLinks{
		position: dev.AttribLocation(program, PositionAttribute),
	}
	if links.position == gpu.NoLocation {
		return links, &UniformNotFoundError{Name: PositionAttribute, Attribute: true}
	}

	uniforms := []struct {
		name string
		loc  *gpu.Location
	}{
		{UniformProjection, &links.projection},
		{UniformView, &links.view},
		{UniformTranslate, &links.translate},
		{UniformRed, &links.red},
		{UniformGreen, &links.green},
		{UniformBlue, &links.blue},
	}
	for _, u := range uniforms {
		*u.loc = dev.UniformLocation(program, u.name)
		if *u.loc == gpu.NoLocation {
			return links, &UniformNotFoundError{Name: u.name}
		}
	}
	return links, nil
}

// LoadShaderSources reads the vertex and fragment stage for mode from fsys.
func LoadShaderSources(fsys fs.FS, mode ApplicationMode) (vertex, fragment string, err error) {
	vs, err := fs.ReadFile(fsys, mode.VertexShaderFile())
	if err != nil {
		return "", "", fmt.Errorf("failed to read vertex shader: %w", err)
	}
	frag, err := fs.ReadFile(fsys, FragmentShaderFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to read fragment shader: %w", err)
	}
	return string(vs), string(frag), nil
}

// GameAssetManager owns the shader program, the camera and the world grid,
// and draws every asset in the grid once per frame.
type GameAssetManager struct {
	dev    gpu.Device
	mode   ApplicationMode
	log    Logger
	camera *Camera

	program gpu.Program
	links   programLinks

	projection mgl32.Mat4
	view       mgl32.Mat4
	translate  mgl32.Mat4

	spacing float32
	colors  map[AssetType]color.RGBA

	grid  *AssetGrid
	owned map[AssetId]Asset
}

func NewGameAssetManager(dev gpu.Device, mode ApplicationMode, shaders fs.FS, opts ManagerOptions) (*GameAssetManager, error) {
	opts = opts.withDefaults()

	colors := make(map[AssetType]color.RGBA, len(defaultAssetColors))
	for t, c := range defaultAssetColors {
		colors[t] = c
	}
	for t, c := range opts.Colors {
		colors[t] = c
	}

	m := &GameAssetManager{
		dev:       dev,
		mode:      mode,
		log:       opts.Logger,
		camera:    NewCamera(),
		translate: mgl32.Ident4(),
		spacing:   opts.Spacing,
		colors:    colors,
		grid:      NewAssetGrid(),
		owned:     make(map[AssetId]Asset),
	}

	vertex, fragment, err := LoadShaderSources(shaders, mode)
	if err != nil {
		return nil, err
	}
	if err := m.ReloadProgram(vertex, fragment); err != nil {
		return nil, err
	}

	aspect := float32(opts.ViewportWidth) / float32(opts.ViewportHeight)
	m.projection = mgl32.Perspective(mgl32.DegToRad(opts.FieldOfView), aspect, opts.Near, opts.Far)
	m.view = m.camera.ViewMatrix()

	m.log.Infof("asset manager ready: mode=%s program=%d", mode, m.program)
	return m, nil
}

// CreateGLProgram compiles both stages and links them. The stage objects are
// deleted before returning, whatever the outcome.
func (m *GameAssetManager) CreateGLProgram(vertexSource, fragmentSource string) (gpu.Program, error) {
	vs, err := m.createShader(gpu.VertexStage, vertexSource)
	if err != nil {
		return 0, err
	}
	defer m.dev.DeleteShader(vs)

	frag, err := m.createShader(gpu.FragmentStage, fragmentSource)
	if err != nil {
		return 0, err
	}
	defer m.dev.DeleteShader(frag)

	program, err := m.dev.LinkProgram(vs, frag)
	if err != nil {
		m.log.Errorf("program link failed: %v", err)
		return 0, &LinkError{Log: err.Error()}
	}
	return program, nil
}

func (m *GameAssetManager) createShader(stage gpu.ShaderStage, source string) (gpu.Shader, error) {
	shader, err := m.dev.CompileShader(stage, source)
	if err != nil {
		m.log.Errorf("%s shader compile failed: %v", stage, err)
		return 0, &ShaderCompileError{Stage: stage, Log: err.Error()}
	}
	return shader, nil
}

// ReloadProgram builds a program from new sources and swaps it in. On any
// failure the current program stays in use.
func (m *GameAssetManager) ReloadProgram(vertexSource, fragmentSource string) error {
	program, err := m.CreateGLProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}

	links, err := resolveProgramLinks(m.dev, program)
	if err != nil {
		m.dev.DeleteProgram(program)
		return fmt.Errorf("program %d: %w", program, err)
	}

	if m.program != 0 {
		m.dev.DeleteProgram(m.program)
		m.log.Debugf("replaced program %d with %d", m.program, program)
	}
	m.program = program
	m.links = links
	return nil
}

// AddAsset places asset at (x, y, z). An occupied cell is overwritten and the
// previous occupant returned; a nil asset empties the cell.
func (m *GameAssetManager) AddAsset(asset Asset, x, y, z int) Asset {
	c := GridCoord{x, y, z}
	if asset == nil {
		return m.RemoveAsset(x, y, z)
	}

	m.owned[asset.ID()] = asset
	prev := m.grid.Put(c, asset)
	if prev != nil && prev.ID() != asset.ID() {
		m.log.Warnf("cell %s: %s %s replaced by %s %s", c, prev.AssetType(), prev.ID(), asset.AssetType(), asset.ID())
	}
	return prev
}

// RemoveAsset empties (x, y, z). The asset keeps its GPU buffers until Release.
func (m *GameAssetManager) RemoveAsset(x, y, z int) Asset {
	return m.grid.Remove(GridCoord{x, y, z})
}

func (m *GameAssetManager) AssetAt(x, y, z int) Asset {
	return m.grid.Get(GridCoord{x, y, z})
}

// Len is the number of occupied cells.
func (m *GameAssetManager) Len() int {
	return m.grid.Len()
}

// Draw renders every occupied cell once. The frame stops at the first error.
func (m *GameAssetManager) Draw() error {
	coords := m.grid.Coords()
	if len(coords) == 0 {
		return nil
	}
	if !m.dev.IsProgram(m.program) {
		first := m.grid.Get(coords[0])
		return fmt.Errorf("draw %s at %s: %w", first.AssetType(), coords[0],
			&InvalidProgramError{Program: m.program, Asset: first.AssetType()})
	}

	m.dev.UseProgram(m.program)
	for _, c := range coords {
		asset := m.grid.Get(c)
		m.translate = c.TranslateMatrix(m.spacing)

		m.dev.UniformMatrix4(m.links.projection, m.projection)
		m.dev.UniformMatrix4(m.links.view, m.view)
		m.dev.UniformMatrix4(m.links.translate, m.translate)
		m.setColor(asset.AssetType())

		if err := asset.Draw(m.program); err != nil {
			return fmt.Errorf("draw %s at %s: %w", asset.AssetType(), c, err)
		}
	}
	return nil
}

func (m *GameAssetManager) setColor(t AssetType) {
	c, ok := m.colors[t]
	if !ok {
		c = colornames.White
	}
	m.dev.Uniform1f(m.links.red, float32(c.R)/255)
	m.dev.Uniform1f(m.links.green, float32(c.G)/255)
	m.dev.Uniform1f(m.links.blue, float32(c.B)/255)
}

// UpdateCameraPosition moves the camera and keeps its view for the next Draw.
func (m *GameAssetManager) UpdateCameraPosition(direction InputDirection, mouseX, mouseY int) {
	m.view = m.camera.UpdateCameraPosition(direction, mouseX, mouseY)
	if direction != NoDirection {
		m.log.Debugf("camera %s -> %v", direction, m.camera.Position())
	}
}

// SetViewport recomputes the projection for a new aspect ratio.
func (m *GameAssetManager) SetViewport(width, height int, fovDegrees, near, far float32) {
	if width <= 0 || height <= 0 {
		return
	}
	m.projection = mgl32.Perspective(mgl32.DegToRad(fovDegrees), float32(width)/float32(height), near, far)
}

// Release deletes the program and every asset the manager has held, each once.
func (m *GameAssetManager) Release() {
	for id, asset := range m.owned {
		asset.Release()
		delete(m.owned, id)
	}
	if m.program != 0 {
		m.dev.DeleteProgram(m.program)
		m.program = 0
	}
	m.log.Debugf("asset manager released")
}

func (m *GameAssetManager) Mode() ApplicationMode {
	return m.mode
}

func (m *GameAssetManager) Program() gpu.Program {
	return m.program
}

func (m *GameAssetManager) Camera() *Camera {
	return m.camera
}

func (m *GameAssetManager) ViewMatrix() mgl32.Mat4 {
	return m.view
}

func (m *GameAssetManager) ProjectionMatrix() mgl32.Mat4 {
	return m.projection
}

func (m *GameAssetManager) Spacing() float32 {
	return m.spacing
}
