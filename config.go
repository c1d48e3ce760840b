package gridworld

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type RenderConfig struct {
	FieldOfView float32    `yaml:"fov"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	ClearColor  [3]float32 `yaml:"clear_color"`
}

type SeedConfig struct {
	Type AssetType `yaml:"type"`
	X    int       `yaml:"x"`
	Y    int       `yaml:"y"`
	Z    int       `yaml:"z"`
}

// Config is the on-disk configuration of the viewer.
type Config struct {
	Mode    ApplicationMode `yaml:"mode"`
	Window  WindowConfig    `yaml:"window"`
	Render  RenderConfig    `yaml:"render"`
	Spacing float32         `yaml:"spacing"`
	Seed    []SeedConfig    `yaml:"seed"`

	// ShaderDir loads shader sources from disk instead of the embedded set.
	ShaderDir string `yaml:"shader_dir"`
	// HotReload rebuilds the program when a file in ShaderDir changes.
	HotReload bool `yaml:"hot_reload"`
	Debug     bool `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Mode: ModeTransform,
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "gridworld",
		},
		Render: RenderConfig{
			FieldOfView: 45,
			Near:        0.1,
			Far:         1000,
			ClearColor:  [3]float32{0.0, 0.0, 0.2},
		},
		Spacing: 1,
	}
}

// LoadConfig reads path on top of DefaultConfig. An empty path yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
			return Config{}, fmt.Errorf("invalid config: %s", typeErr.Errors[0])
		}
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Render.FieldOfView <= 0 || c.Render.FieldOfView >= 180 {
		errs = append(errs, fmt.Errorf("fov %v must be in (0, 180)", c.Render.FieldOfView))
	}
	if c.Render.Near <= 0 || c.Render.Far <= c.Render.Near {
		errs = append(errs, fmt.Errorf("clip planes near=%v far=%v must satisfy 0 < near < far", c.Render.Near, c.Render.Far))
	}
	if c.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("spacing %v must be positive", c.Spacing))
	}
	if c.HotReload && c.ShaderDir == "" {
		errs = append(errs, errors.New("hot_reload needs shader_dir"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// WorldOptions maps the configuration onto the world constructor.
func (c Config) WorldOptions(logger Logger) WorldOptions {
	opts := WorldOptions{
		ManagerOptions: ManagerOptions{
			ViewportWidth:  c.Window.Width,
			ViewportHeight: c.Window.Height,
			FieldOfView:    c.Render.FieldOfView,
			Near:           c.Render.Near,
			Far:            c.Render.Far,
			Spacing:        c.Spacing,
			Logger:         logger,
		},
	}
	if len(c.Seed) > 0 {
		opts.Seed = make([]SeedAsset, 0, len(c.Seed))
		for _, s := range c.Seed {
			opts.Seed = append(opts.Seed, SeedAsset{Type: s.Type, At: GridCoord{s.X, s.Y, s.Z}})
		}
	}
	return opts
}

func (m *ApplicationMode) UnmarshalYAML(value *yaml.Node) error {
	mode, err := ParseApplicationMode(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = mode
	return nil
}

func (m ApplicationMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

func (t *AssetType) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "cube":
		*t = AssetCube
	case "pyramid":
		*t = AssetPyramid
	default:
		return fmt.Errorf("line %d: unknown asset type %q", value.Line, value.Value)
	}
	return nil
}

func (t AssetType) MarshalYAML() (any, error) {
	return t.String(), nil
}
