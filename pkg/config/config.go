package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the root render configuration
type Config struct {
	Render     RenderConfig              `yaml:"render"`
	Camera     CameraConfig              `yaml:"camera"`
	Background BackgroundConfig          `yaml:"background"`
	Materials  map[string]MaterialConfig `yaml:"materials"`
	Spheres    []SphereConfig            `yaml:"spheres"`
}

// RenderConfig contains sampling and output resolution settings
type RenderConfig struct {
	Width   int   `yaml:"width"`
	Height  int   `yaml:"height"`
	Samples int   `yaml:"samples"`
	Bounces int   `yaml:"bounces"`
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"` // <= 0 means one worker per CPU
}

// CameraConfig contains camera placement and lens settings
type CameraConfig struct {
	LookFrom [3]float64 `yaml:"look_from"`
	LookAt   [3]float64 `yaml:"look_at"`
	FOV      float64    `yaml:"fov"` // vertical field of view, degrees
	Aperture float64    `yaml:"aperture"`
}

// BackgroundConfig contains the sky color
type BackgroundConfig struct {
	Color [3]float64 `yaml:"color"`
}

// MaterialConfig describes one named material. Type is one of
// "diffuse", "reflective", "dielectric" or "debug".
type MaterialConfig struct {
	Type      string     `yaml:"type"`
	Color     [3]float64 `yaml:"color"`
	Fuzziness float64    `yaml:"fuzziness"`
	IOR       float64    `yaml:"ior"`
}

// SphereConfig describes one sphere and the named material it uses
type SphereConfig struct {
	Center   [3]float64 `yaml:"center"`
	Radius   float64    `yaml:"radius"`
	Material string     `yaml:"material"`
}

// Default returns the configuration used when no file is given: the
// built-in demo scene's render settings
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:   640,
			Height:  360,
			Samples: 300,
			Bounces: 20,
			Seed:    42,
			Workers: 0,
		},
		Camera: CameraConfig{
			LookFrom: [3]float64{0, 3, -5},
			LookAt:   [3]float64{0, 0, 2},
			FOV:      45,
			Aperture: 0.1,
		},
		Background: BackgroundConfig{
			Color: [3]float64{156.0 / 255.0, 233.0 / 255.0, 1.0},
		},
	}
}

// Load reads and validates a YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the renderer cannot use
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render.width and render.height must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Samples <= 0 {
		return fmt.Errorf("render.samples must be positive, got %d", c.Render.Samples)
	}
	if c.Render.Bounces <= 0 {
		return fmt.Errorf("render.bounces must be positive, got %d", c.Render.Bounces)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera.fov must be in (0, 180), got %g", c.Camera.FOV)
	}
	if c.Camera.Aperture < 0 {
		return fmt.Errorf("camera.aperture must be non-negative, got %g", c.Camera.Aperture)
	}
	if c.Camera.LookFrom == c.Camera.LookAt {
		return fmt.Errorf("camera.look_from and camera.look_at must differ")
	}

	for name, mat := range c.Materials {
		switch mat.Type {
		case "diffuse", "reflective", "debug":
		case "dielectric":
			if mat.IOR <= 0 {
				return fmt.Errorf("material %q: ior must be positive, got %g", name, mat.IOR)
			}
		default:
			return fmt.Errorf("material %q: unknown type %q", name, mat.Type)
		}
	}

	for i, sph := range c.Spheres {
		if sph.Radius <= 0 {
			return fmt.Errorf("sphere %d: radius must be positive, got %g", i, sph.Radius)
		}
		if _, ok := c.Materials[sph.Material]; !ok {
			return fmt.Errorf("sphere %d: unknown material %q", i, sph.Material)
		}
	}

	return nil
}
