// Package config handles configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/shaggy/internal/engine/shader"
)

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Shaders  ShadersConfig  `yaml:"shaders"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and GL context settings.
type GraphicsConfig struct {
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	Fullscreen   bool `yaml:"fullscreen"`
	VSync        bool `yaml:"vsync"`
	GLMajor      int  `yaml:"gl_major"`
	GLMinor      int  `yaml:"gl_minor"`
	DebugContext bool `yaml:"debug_context"`
}

// ShadersConfig holds shader discovery settings.
type ShadersConfig struct {
	Dir       string          `yaml:"dir"`       // Directory scanned at startup
	Extension string          `yaml:"extension"` // Source suffix, e.g. "glsl"
	Programs  []ProgramConfig `yaml:"programs"`  // Programs linked after the scan
}

// ProgramConfig names a program and the stages it is linked from.
type ProgramConfig struct {
	Name   string   `yaml:"name"`
	Stages []string `yaml:"stages"` // Stage tags: vert, frag, tess-control, tess-eval, geom
}

// StageSet parses the program's stage tags.
func (p ProgramConfig) StageSet() (shader.StageSet, error) {
	return shader.ParseStageSet(p.Stages)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:        800,
			Height:       600,
			Fullscreen:   false,
			VSync:        true,
			GLMajor:      4,
			GLMinor:      1,
			DebugContext: false,
		},
		Shaders: ShadersConfig{
			Dir:       "shaders",
			Extension: shader.DefaultExtension,
			Programs: []ProgramConfig{
				{Name: "basic", Stages: []string{"vert", "frag"}},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Shaders.Dir == "" {
		errs = append(errs, errors.New("shaders: dir is required"))
	}
	for i, p := range c.Shaders.Programs {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("shaders: program %d has no name", i))
		}
		if len(p.Stages) == 0 {
			errs = append(errs, fmt.Errorf("shaders: program %q has no stages", p.Name))
		}
		if _, err := p.StageSet(); err != nil {
			errs = append(errs, fmt.Errorf("shaders: program %q: %w", p.Name, err))
		}
	}
	return errors.Join(errs...)
}
