// Package config handles demo configuration loading and validation.
package config

import (
	"errors"
	"fmt"

	"gldemos/internal/input"
)

// Demo names.
const (
	DemoRectangle = "rectangle"
	DemoWindmill  = "windmill"
	DemoPyramid   = "pyramid"
)

// Config holds all settings of one demo.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Shaders ShaderConfig  `yaml:"shaders"`
	Input   InputConfig   `yaml:"input"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds the drawable surface settings.
type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	VSync    bool   `yaml:"vsync"`
	FPSLimit int    `yaml:"fps_limit"`
	Hidden   bool   `yaml:"hidden"`
}

// RenderConfig holds fixed GL state.
type RenderConfig struct {
	ClearColor [4]float32 `yaml:"clear_color"`
	Overlay    string     `yaml:"overlay"` // instructional text, empty for none
	Texture    string     `yaml:"texture"` // image under the shader root, empty for vertex colors only
}

// ShaderConfig locates the demo's program sources. Paths are relative to Dir.
type ShaderConfig struct {
	Dir      string `yaml:"dir"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// InputConfig holds keyboard movement settings.
type InputConfig struct {
	Scheme   string  `yaml:"scheme"`
	MoveStep float32 `yaml:"move_step"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the settings the named demo ships with.
func Default(demo string) (*Config, error) {
	cfg := &Config{
		Window: WindowConfig{
			Width:    700,
			Height:   700,
			Title:    demo,
			VSync:    true,
			FPSLimit: 0,
		},
		Shaders: ShaderConfig{
			Dir:      "assets/shaders",
			Vertex:   demo + "/shVert.glsl",
			Fragment: demo + "/shFrag.glsl",
		},
		Input: InputConfig{
			Scheme:   string(input.SchemeMixed),
			MoveStep: 0.01,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}

	switch demo {
	case DemoRectangle:
		cfg.Window.Width, cfg.Window.Height = 600, 600
		cfg.Render.ClearColor = [4]float32{0, 0, 0, 1}
		cfg.Render.Overlay = "Use arrow keys to move the rectangle"
	case DemoWindmill:
		cfg.Render.ClearColor = [4]float32{0.1, 0.2, 0.3, 1}
	case DemoPyramid:
		cfg.Render.ClearColor = [4]float32{0.7, 0.8, 0.9, 1}
		cfg.Render.Overlay = "N: toggle face/vertex normals"
	default:
		return nil, fmt.Errorf("unknown demo %q", demo)
	}
	return cfg, nil
}

// Aspect returns the window's width to height ratio.
func (c *Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("fps_limit %d must not be negative", c.Window.FPSLimit))
	}
	for i, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("clear_color[%d]=%v out of [0,1]", i, v))
		}
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		errs = append(errs, errors.New("shader paths must be set"))
	}
	if _, err := input.ParseScheme(c.Input.Scheme); err != nil {
		errs = append(errs, err)
	}
	if c.Input.MoveStep <= 0 {
		errs = append(errs, fmt.Errorf("move_step %v must be positive", c.Input.MoveStep))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}
	return errors.Join(errs...)
}
