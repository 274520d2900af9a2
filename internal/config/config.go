// Package config holds the viewer settings.
package config

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/smasonuk/orbitcam"
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig sets the home view and gesture speeds.
type CameraConfig struct {
	Eye         [3]float64 `yaml:"eye"`
	At          [3]float64 `yaml:"at"`
	DollySpeed  float64    `yaml:"dolly_speed"`
	RotateSpeed float64    `yaml:"rotate_speed"`
	WheelStep   float64    `yaml:"wheel_step"` // dolly delta per wheel notch
	Near        float64    `yaml:"near"`
	Far         float64    `yaml:"far"`
}

type SceneConfig struct {
	Grid     bool    `yaml:"grid"`
	GridSize float64 `yaml:"grid_size"`
	Cubes    int     `yaml:"cubes"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "orbitcam",
		},
		Camera: CameraConfig{
			Eye:         [3]float64{0, 4, 12},
			At:          [3]float64{0, 0, 0},
			DollySpeed:  orbitcam.DefaultDollySpeed,
			RotateSpeed: orbitcam.DefaultRotateSpeed,
			WheelStep:   1.0,
			Near:        0.1,
			Far:         200,
		},
		Scene: SceneConfig{
			Grid:     true,
			GridSize: 10,
			Cubes:    3,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func (c CameraConfig) EyeVec() mgl64.Vec3 {
	return mgl64.Vec3(c.Eye)
}

func (c CameraConfig) AtVec() mgl64.Vec3 {
	return mgl64.Vec3(c.At)
}
