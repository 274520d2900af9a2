package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/orbitcam"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Camera.DollySpeed != orbitcam.DefaultDollySpeed {
		t.Errorf("expected dolly speed %f, got %f", orbitcam.DefaultDollySpeed, cfg.Camera.DollySpeed)
	}
	if cfg.Camera.RotateSpeed != orbitcam.DefaultRotateSpeed {
		t.Errorf("expected rotate speed %f, got %f", orbitcam.DefaultRotateSpeed, cfg.Camera.RotateSpeed)
	}
	if cfg.Camera.EyeVec() != (mgl64.Vec3{0, 4, 12}) {
		t.Errorf("expected eye (0, 4, 12), got %v", cfg.Camera.EyeVec())
	}
	if cfg.Camera.AtVec() != (mgl64.Vec3{}) {
		t.Errorf("expected at origin, got %v", cfg.Camera.AtVec())
	}
	if !cfg.Scene.Grid {
		t.Error("expected grid to be on by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "viewer.yaml")

	yamlContent := `
window:
  width: 1280
  title: "demo"

camera:
  eye: [1, 2, 3]
  rotate_speed: 3.5

scene:
  grid: false
  cubes: 5

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 600 {
		t.Errorf("expected height to keep default 600, got %d", cfg.Window.Height)
	}
	if cfg.Window.Title != "demo" {
		t.Errorf("expected title 'demo', got %s", cfg.Window.Title)
	}
	if cfg.Camera.EyeVec() != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("expected eye (1, 2, 3), got %v", cfg.Camera.EyeVec())
	}
	if cfg.Camera.RotateSpeed != 3.5 {
		t.Errorf("expected rotate speed 3.5, got %f", cfg.Camera.RotateSpeed)
	}
	if cfg.Camera.DollySpeed != orbitcam.DefaultDollySpeed {
		t.Errorf("expected dolly speed to keep default, got %f", cfg.Camera.DollySpeed)
	}
	if cfg.Scene.Grid {
		t.Error("expected grid off")
	}
	if cfg.Scene.Cubes != 5 {
		t.Errorf("expected 5 cubes, got %d", cfg.Scene.Cubes)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	if err := loadFromFile(Default(), filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("window: [1, 2"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if err := loadFromFile(Default(), bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"Valid", func(*Config) {}, nil},
		{"Zero width", func(c *Config) { c.Window.Width = 0 }, ErrWindowSize},
		{"Negative height", func(c *Config) { c.Window.Height = -1 }, ErrWindowSize},
		{"Zero near", func(c *Config) { c.Camera.Near = 0 }, ErrClipPlanes},
		{"Far before near", func(c *Config) { c.Camera.Far = 0.05 }, ErrClipPlanes},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)
			err := cfg.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
