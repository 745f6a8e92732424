package sapling

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ShakeConfig bounds the legacy shake offset along the view axis.
type ShakeConfig struct {
	MinExtent float64 `yaml:"min_extent"`
	MaxExtent float64 `yaml:"max_extent"`
}

// InputConfig tunes InputController2d.
type InputConfig struct {
	MoveSpeed  float64 `yaml:"move_speed"` // world units per second
	ZoomStep   float64 `yaml:"zoom_step"`  // zoom change per wheel notch
	MinZoom    float64 `yaml:"min_zoom"`
	MaxZoom    float64 `yaml:"max_zoom"`
	DragButton string  `yaml:"drag_button"` // left, right or middle
}

// Config holds engine-level settings for a Scene.
type Config struct {
	// GameMode is true when running as a game. In editor mode camera nodes
	// do not write to the shared cameras, leaving them to the editor.
	GameMode bool `yaml:"game_mode"`
	Debug    bool `yaml:"debug"`

	FixedStep       float64 `yaml:"fixed_step"`
	MaxCatchUpSteps int     `yaml:"max_catch_up_steps"`

	Shake ShakeConfig `yaml:"shake"`
	Input InputConfig `yaml:"input"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		GameMode:        true,
		FixedStep:       DefaultFixedStep,
		MaxCatchUpSteps: DefaultMaxCatchUpSteps,
		Shake: ShakeConfig{
			MinExtent: DefaultMinShakeExtent,
			MaxExtent: DefaultMaxShakeExtent,
		},
		Input: InputConfig{
			MoveSpeed:  200,
			ZoomStep:   0.1,
			MinZoom:    0.1,
			MaxZoom:    10,
			DragButton: "middle",
		},
	}
}

// ParseConfig decodes YAML over DefaultConfig, so missing keys keep their
// defaults, then validates the result.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports inconsistent settings.
func (c *Config) Validate() error {
	var errs []error
	if c.FixedStep <= 0 {
		errs = append(errs, fmt.Errorf("config: fixed_step must be positive, got %v", c.FixedStep))
	}
	if c.MaxCatchUpSteps < 0 {
		errs = append(errs, fmt.Errorf("config: max_catch_up_steps must not be negative, got %d", c.MaxCatchUpSteps))
	}
	if c.Shake.MinExtent > c.Shake.MaxExtent {
		errs = append(errs, fmt.Errorf("config: shake.min_extent %v > shake.max_extent %v", c.Shake.MinExtent, c.Shake.MaxExtent))
	}
	if c.Input.MinZoom <= 0 || c.Input.MinZoom > c.Input.MaxZoom {
		errs = append(errs, fmt.Errorf("config: invalid zoom range [%v, %v]", c.Input.MinZoom, c.Input.MaxZoom))
	}
	if _, ok := parseMouseButton(c.Input.DragButton); !ok {
		errs = append(errs, fmt.Errorf("config: unknown input.drag_button %q", c.Input.DragButton))
	}
	return errors.Join(errs...)
}

func parseMouseButton(name string) (MouseButton, bool) {
	switch name {
	case "left":
		return MouseButtonLeft, true
	case "right":
		return MouseButtonRight, true
	case "middle", "":
		return MouseButtonMiddle, true
	}
	return MouseButtonMiddle, false
}
