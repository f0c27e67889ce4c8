package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballfield/internal/field"
)

const (
	DefaultPreset     = "login"
	DefaultFrames     = 600
	DefaultWidth      = 1280.0
	DefaultHeight     = 720.0
	DefaultTheme      = "slate"
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

type Config struct {
	Preset     string        `yaml:"preset"`
	Seed       int64         `yaml:"seed"`
	Frames     int           `yaml:"frames"`
	FPS        int           `yaml:"fps"`
	Width      float64       `yaml:"width"`
	Height     float64       `yaml:"height"`
	Theme      string        `yaml:"theme"`
	CellWidth  float64       `yaml:"cell_width"`
	CellHeight float64       `yaml:"cell_height"`
	Scenario   string        `yaml:"scenario"`
	Physics    PhysicsConfig `yaml:"physics"`
}

// PhysicsConfig mirrors field.Params in file form.
type PhysicsConfig struct {
	Bodies            int      `yaml:"bodies"`
	MinRadius         float64  `yaml:"min_radius"`
	MaxRadius         float64  `yaml:"max_radius"`
	InitialSpeed      float64  `yaml:"initial_speed"`
	Wander            float64  `yaml:"wander"`
	MaxSpeed          float64  `yaml:"max_speed"`
	RepulsionRadius   float64  `yaml:"repulsion_radius"`
	RepulsionStrength float64  `yaml:"repulsion_strength"`
	Bounce            float64  `yaml:"bounce"`
	Restitution       float64  `yaml:"restitution"`
	ThrowScale        float64  `yaml:"throw_scale"`
	Palette           []string `yaml:"palette,omitempty"`
}

func DefaultPhysics() PhysicsConfig {
	p := field.DefaultParams()
	return PhysicsConfig{
		Bodies:            p.Count,
		MinRadius:         p.MinRadius,
		MaxRadius:         p.MaxRadius,
		InitialSpeed:      p.InitialSpeed,
		Wander:            p.Wander,
		MaxSpeed:          p.MaxSpeed,
		RepulsionRadius:   p.RepulsionRadius,
		RepulsionStrength: p.RepulsionStrength,
		Bounce:            p.Bounce,
		Restitution:       p.Restitution,
		ThrowScale:        p.ThrowScale,
		Palette:           p.Palette,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Preset:     DefaultPreset,
		Frames:     DefaultFrames,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Theme:      DefaultTheme,
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Physics:    DefaultPhysics(),
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the file at path onto cfg. Keys missing from the file
// keep their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the physics section into simulator parameters.
func (c *Config) Params() field.Params {
	p := c.Physics
	params := field.Params{
		Count:             p.Bodies,
		MinRadius:         p.MinRadius,
		MaxRadius:         p.MaxRadius,
		InitialSpeed:      p.InitialSpeed,
		Wander:            p.Wander,
		MaxSpeed:          p.MaxSpeed,
		RepulsionRadius:   p.RepulsionRadius,
		RepulsionStrength: p.RepulsionStrength,
		Bounce:            p.Bounce,
		Restitution:       p.Restitution,
		ThrowScale:        p.ThrowScale,
		Palette:           p.Palette,
	}
	if len(params.Palette) == 0 {
		params.Palette = append([]string(nil), field.DefaultPaletteHex...)
	}
	return params
}

func (c *Config) Validate() error {
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.Frames)
	}
	if c.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", c.FPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("cell size must be positive, got %gx%g", c.CellWidth, c.CellHeight)
	}
	return c.Params().Validate()
}
