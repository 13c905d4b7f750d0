// Package config loads game settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/tetris/engine"
)

// Front end kinds.
const (
	Terminal = "terminal"
	GUI      = "gui"
)

// Config holds all game configuration
type Config struct {
	Game     GameConfig     `yaml:"game"`
	Frontend FrontendConfig `yaml:"frontend"`
	Sound    SoundConfig    `yaml:"sound"`
	LogFile  string         `yaml:"log_file"` // terminal front end only
}

// GameConfig holds rules settings
type GameConfig struct {
	InitialLevel int    `yaml:"initial_level"`
	Seed         uint64 `yaml:"seed"` // 0 picks a random seed
}

// FrontendConfig holds presentation settings
type FrontendConfig struct {
	Kind      string `yaml:"kind"`
	FrameRate int    `yaml:"frame_rate"` // Hz
	CellSize  int    `yaml:"cell_size"`  // pixels, gui only
}

// SoundConfig holds sound effect settings
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Frontend: FrontendConfig{
			Kind:      Terminal,
			FrameRate: engine.FrameRate,
			CellSize:  30,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// Load reads configuration from a YAML file. Keys missing from the file keep their
// default values. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate clamps numeric settings into range and rejects unknown front ends.
func (c *Config) Validate() error {
	switch c.Frontend.Kind {
	case "":
		c.Frontend.Kind = Terminal
	case Terminal, GUI:
	default:
		return fmt.Errorf("unknown frontend kind %q", c.Frontend.Kind)
	}

	c.Game.InitialLevel = max(0, min(c.Game.InitialLevel, engine.MaxLevel))

	if c.Frontend.FrameRate <= 0 {
		c.Frontend.FrameRate = engine.FrameRate
	}
	if c.Frontend.CellSize <= 0 {
		c.Frontend.CellSize = 30
	}
	c.Sound.Volume = max(0, min(c.Sound.Volume, 1))
	return nil
}
