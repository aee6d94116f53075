// Package config handles terrain viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/terrainscroll/internal/engine/lighting"
	"github.com/Faultbox/terrainscroll/internal/engine/terrain"
	"github.com/Faultbox/terrainscroll/internal/engine/theme"
	"github.com/Faultbox/terrainscroll/internal/game/world"
	"github.com/Faultbox/terrainscroll/internal/logger"
)

// Offscreen capture bounds, matching the renderer's target limit.
const (
	minCaptureSize = 64
	maxCaptureSize = 8192
)

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Controls ControlsConfig `yaml:"controls"`
	View     ViewConfig     `yaml:"view"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"`
}

// TerrainConfig sizes the generated grid.
type TerrainConfig struct {
	GridSize   float32 `yaml:"grid_size"`   // Physical edge length
	Resolution int     `yaml:"resolution"`  // Samples per edge, at least 2
	SpeedScale float32 `yaml:"speed_scale"` // Offset units per shader unit
}

// ControlsConfig holds mouse interaction factors.
type ControlsConfig struct {
	AngleFactor      float32 `yaml:"angle_factor"`
	ScaleFactor      float32 `yaml:"scale_factor"`
	MinScale         float32 `yaml:"min_scale"`
	WheelClickFactor float32 `yaml:"wheel_click_factor"`
}

// ViewConfig holds the startup theme and scroll mode by name.
type ViewConfig struct {
	Theme      string `yaml:"theme"`
	ScrollMode string `yaml:"scroll_mode"`
}

// RenderConfig holds renderer behavior.
type RenderConfig struct {
	StrictShaders bool    `yaml:"strict_shaders"`
	ScreenshotDir string  `yaml:"screenshot_dir"`
	CaptureSize   int     `yaml:"capture_size"` // Edge of the offscreen capture, in pixels
	SunAzimuth    float32 `yaml:"sun_azimuth"`  // Degrees from +Z toward +X
	SunElevation  float32 `yaml:"sun_elevation"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config matching the classic demo.
func Default() *Config {
	c := world.DefaultControls()
	sun := lighting.DefaultSun()
	return &Config{
		Window: WindowConfig{
			Title:  "Terrain Scroll",
			Width:  1000,
			Height: 1000,
			VSync:  true,
		},
		Terrain: TerrainConfig{
			GridSize:   100,
			Resolution: 100,
			SpeedScale: 100,
		},
		Controls: ControlsConfig{
			AngleFactor:      c.AngleFactor,
			ScaleFactor:      c.ScaleFactor,
			MinScale:         c.MinScale,
			WheelClickFactor: c.WheelClickFactor,
		},
		View: ViewConfig{
			Theme:      theme.Earth.String(),
			ScrollMode: world.Manual.String(),
		},
		Render: RenderConfig{
			ScreenshotDir: "screenshots",
			CaptureSize:   2048,
			SunAzimuth:    sun.Azimuth,
			SunElevation:  sun.Elevation,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.Samples < 0 {
		errs = append(errs, fmt.Errorf("window: samples %d must not be negative", c.Window.Samples))
	}
	if err := terrain.Validate(c.Terrain.GridSize, c.Terrain.Resolution); err != nil {
		errs = append(errs, fmt.Errorf("terrain: %w", err))
	}
	if c.Terrain.SpeedScale == 0 {
		errs = append(errs, errors.New("terrain: speed_scale must not be zero"))
	}
	if c.Controls.MinScale < world.ScaleFloor {
		errs = append(errs, fmt.Errorf("controls: min_scale %g must be at least %g", c.Controls.MinScale, world.ScaleFloor))
	}
	if c.Render.CaptureSize < minCaptureSize || c.Render.CaptureSize > maxCaptureSize {
		errs = append(errs, fmt.Errorf("render: capture_size %d must be in [%d, %d]",
			c.Render.CaptureSize, minCaptureSize, maxCaptureSize))
	}
	if c.Render.SunElevation < -90 || c.Render.SunElevation > 90 {
		errs = append(errs, fmt.Errorf("render: sun_elevation %g must be in [-90, 90]", c.Render.SunElevation))
	}
	if _, err := theme.Parse(c.View.Theme); err != nil {
		errs = append(errs, fmt.Errorf("view: %w", err))
	}
	if _, err := world.ParseMode(c.View.ScrollMode); err != nil {
		errs = append(errs, fmt.Errorf("view: %w", err))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

// ThemeID returns the configured startup theme, or Earth if the name is unknown.
func (c *Config) ThemeID() theme.ID {
	id, err := theme.Parse(c.View.Theme)
	if err != nil {
		return theme.Earth
	}
	return id
}

// ScrollMode returns the configured startup mode, or Manual if the name is unknown.
func (c *Config) ScrollMode() world.Mode {
	m, err := world.ParseMode(c.View.ScrollMode)
	if err != nil {
		return world.Manual
	}
	return m
}

// WorldControls converts the controls section for the view state.
func (c *Config) WorldControls() world.Controls {
	return world.Controls{
		AngleFactor:      c.Controls.AngleFactor,
		ScaleFactor:      c.Controls.ScaleFactor,
		MinScale:         c.Controls.MinScale,
		WheelClickFactor: c.Controls.WheelClickFactor,
	}
}

// Sun returns the configured light direction angles.
func (c *Config) Sun() lighting.Sun {
	return lighting.Sun{Azimuth: c.Render.SunAzimuth, Elevation: c.Render.SunElevation}
}
