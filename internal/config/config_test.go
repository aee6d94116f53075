package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/terrainscroll/internal/engine/lighting"
	"github.com/Faultbox/terrainscroll/internal/engine/theme"
	"github.com/Faultbox/terrainscroll/internal/game/world"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1000 || cfg.Window.Height != 1000 {
		t.Errorf("expected 1000x1000 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Terrain.GridSize != 100 || cfg.Terrain.Resolution != 100 || cfg.Terrain.SpeedScale != 100 {
		t.Errorf("unexpected terrain defaults: %+v", cfg.Terrain)
	}

	if cfg.WorldControls() != world.DefaultControls() {
		t.Errorf("controls should match world defaults, got %+v", cfg.WorldControls())
	}

	if cfg.ThemeID() != theme.Earth {
		t.Errorf("expected earth theme, got %s", cfg.ThemeID())
	}
	if cfg.ScrollMode() != world.Manual {
		t.Errorf("expected manual scroll, got %s", cfg.ScrollMode())
	}

	if cfg.Render.CaptureSize != 2048 || cfg.Render.ScreenshotDir != "screenshots" {
		t.Errorf("unexpected render defaults: %+v", cfg.Render)
	}
	if cfg.Sun() != lighting.DefaultSun() {
		t.Errorf("expected default sun, got %+v", cfg.Sun())
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
  fullscreen: true
  vsync: false
  samples: 4

terrain:
  grid_size: 200
  resolution: 257
  speed_scale: 50

controls:
  angle_factor: 0.5
  min_scale: 0.1

view:
  theme: "Wire Dark"
  scroll_mode: auto

render:
  strict_shaders: true
  screenshot_dir: /tmp/shots

logging:
  level: "debug"
  log_file: "terrain.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1600 || cfg.Window.Height != 900 {
		t.Errorf("expected 1600x900, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen || cfg.Window.VSync || cfg.Window.Samples != 4 {
		t.Errorf("unexpected window section: %+v", cfg.Window)
	}
	if cfg.Terrain != (TerrainConfig{GridSize: 200, Resolution: 257, SpeedScale: 50}) {
		t.Errorf("unexpected terrain section: %+v", cfg.Terrain)
	}

	// Keys missing from the file keep their defaults.
	if cfg.Controls.AngleFactor != 0.5 || cfg.Controls.MinScale != 0.1 {
		t.Errorf("controls not loaded: %+v", cfg.Controls)
	}
	if cfg.Controls.ScaleFactor != 0.005 || cfg.Controls.WheelClickFactor != 5 {
		t.Errorf("unset controls lost their defaults: %+v", cfg.Controls)
	}

	if cfg.ThemeID() != theme.WireDark {
		t.Errorf("expected wire-dark theme, got %s", cfg.ThemeID())
	}
	if cfg.ScrollMode() != world.Auto {
		t.Errorf("expected auto scroll, got %s", cfg.ScrollMode())
	}
	if !cfg.Render.StrictShaders || cfg.Render.ScreenshotDir != "/tmp/shots" {
		t.Errorf("unexpected render section: %+v", cfg.Render)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "terrain.log" {
		t.Errorf("unexpected logging section: %+v", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  resolutoin: 50\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for misspelled key")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("empty file should load: %v", err)
	}
	if cfg.Terrain.Resolution != 100 {
		t.Errorf("empty file changed defaults: %+v", cfg.Terrain)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"resolution below two", func(c *Config) { c.Terrain.Resolution = 1 }, "resolution"},
		{"zero grid size", func(c *Config) { c.Terrain.GridSize = 0 }, "size"},
		{"negative grid size", func(c *Config) { c.Terrain.GridSize = -5 }, "size"},
		{"zero speed scale", func(c *Config) { c.Terrain.SpeedScale = 0 }, "speed_scale"},
		{"zero min scale", func(c *Config) { c.Controls.MinScale = 0 }, "min_scale"},
		{"min scale below floor", func(c *Config) { c.Controls.MinScale = 0.01 }, "min_scale"},
		{"unknown theme", func(c *Config) { c.View.Theme = "vaporwave" }, "vaporwave"},
		{"unknown scroll mode", func(c *Config) { c.View.ScrollMode = "sideways" }, "sideways"},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }, "loud"},
		{"empty window", func(c *Config) { c.Window.Width = 0 }, "window"},
		{"negative samples", func(c *Config) { c.Window.Samples = -1 }, "samples"},
		{"tiny capture", func(c *Config) { c.Render.CaptureSize = 16 }, "capture_size"},
		{"huge capture", func(c *Config) { c.Render.CaptureSize = 10000 }, "capture_size"},
		{"sun below nadir", func(c *Config) { c.Render.SunElevation = -95 }, "sun_elevation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Terrain.Resolution = 0
	cfg.View.Theme = "nope"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "resolution") || !strings.Contains(err.Error(), "nope") {
		t.Errorf("expected both problems in %q", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "theme and scroll flags",
			setup: func() {
				*flagTheme = "synthwave"
				*flagScroll = "auto"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.ThemeID() != theme.Synthwave {
					t.Errorf("expected synthwave, got %s", cfg.ThemeID())
				}
				if cfg.ScrollMode() != world.Auto {
					t.Errorf("expected auto, got %s", cfg.ScrollMode())
				}
			},
			teardown: func() {
				*flagTheme = ""
				*flagScroll = ""
			},
		},
		{
			name: "terrain flags",
			setup: func() {
				*flagResolution = 33
				*flagSize = 64
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.Resolution != 33 || cfg.Terrain.GridSize != 64 {
					t.Errorf("unexpected terrain: %+v", cfg.Terrain)
				}
			},
			teardown: func() {
				*flagResolution = 0
				*flagSize = 0
			},
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "strict shaders flag",
			setup: func() { *flagStrictShaders = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Render.StrictShaders {
					t.Error("expected strict shaders")
				}
			},
			teardown: func() { *flagStrictShaders = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
terrain:
  resolution: 64
  grid_size: 50
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagResolution = 128
	defer func() {
		*flagConfig = ""
		*flagResolution = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Terrain.Resolution != 128 {
		t.Errorf("expected resolution 128 from flag, got %d", cfg.Terrain.Resolution)
	}
	if cfg.Terrain.GridSize != 50 {
		t.Errorf("expected grid size 50 from file, got %g", cfg.Terrain.GridSize)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	*flagTheme = "plaid"
	defer func() { *flagTheme = "" }()

	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if _, err := Load(); err == nil {
		t.Error("expected Load to fail validation")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.View.Theme = theme.Heatmap.String()
	cfg.Terrain.Resolution = 42

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestSave(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	path, err := Default().Save()
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}
