package config

import "flag"

var (
	flagConfig        = flag.String("config", "", "Path to config file")
	flagDebug         = flag.Bool("debug", false, "Enable debug logging")
	flagTheme         = flag.String("theme", "", "Startup color theme (earth, solid, wire-light, wire-dark, synthwave, tron, heatmap, normal-map)")
	flagScroll        = flag.String("scroll", "", "Startup scroll mode (manual, auto)")
	flagResolution    = flag.Int("resolution", 0, "Terrain samples per edge")
	flagSize          = flag.Float64("size", 0, "Terrain edge length")
	flagWindowed      = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen    = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth         = flag.Int("width", 0, "Window width")
	flagHeight        = flag.Int("height", 0, "Window height")
	flagStrictShaders = flag.Bool("strict-shaders", false, "Exit if the terrain shader fails to build")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTheme != "" {
		cfg.View.Theme = *flagTheme
	}
	if *flagScroll != "" {
		cfg.View.ScrollMode = *flagScroll
	}
	if *flagResolution > 0 {
		cfg.Terrain.Resolution = *flagResolution
	}
	if *flagSize > 0 {
		cfg.Terrain.GridSize = float32(*flagSize)
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagStrictShaders {
		cfg.Render.StrictShaders = true
	}
}
