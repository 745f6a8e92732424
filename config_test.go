package sapling

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
game_mode: false
fixed_step: 0.05
shake:
  max_extent: 4
input:
  drag_button: left
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.GameMode {
		t.Error("game_mode should be false")
	}
	assertNear(t, "FixedStep", cfg.FixedStep, 0.05)
	assertNear(t, "MaxExtent", cfg.Shake.MaxExtent, 4)
	assertNear(t, "MinExtent (default)", cfg.Shake.MinExtent, DefaultMinShakeExtent)
	if cfg.MaxCatchUpSteps != DefaultMaxCatchUpSteps {
		t.Errorf("MaxCatchUpSteps = %d, want default", cfg.MaxCatchUpSteps)
	}
	if cfg.Input.DragButton != "left" || cfg.Input.MoveSpeed != 200 {
		t.Errorf("Input = %+v", cfg.Input)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"fixed step", func(c *Config) { c.FixedStep = 0 }, "fixed_step"},
		{"catch-up", func(c *Config) { c.MaxCatchUpSteps = -1 }, "max_catch_up_steps"},
		{"extents", func(c *Config) { c.Shake.MinExtent = 5; c.Shake.MaxExtent = 1 }, "min_extent"},
		{"zoom", func(c *Config) { c.Input.MinZoom = 0 }, "zoom range"},
		{"button", func(c *Config) { c.Input.DragButton = "thumb" }, "drag_button"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestConfigValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FixedStep = -1
	cfg.Input.DragButton = "thumb"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "fixed_step") || !strings.Contains(msg, "drag_button") {
		t.Errorf("error should list both problems, got %q", msg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	if _, err := ParseConfig([]byte("fixed_step: [1, 2]")); err == nil {
		t.Error("bad YAML type should fail")
	}
	if _, err := ParseConfig([]byte("fixed_step: 0")); err == nil {
		t.Error("invalid value should fail validation")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sapling.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
