// Package game implements the main loop of the terrain viewer.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainscroll/internal/config"
	"github.com/Faultbox/terrainscroll/internal/engine/camera"
	"github.com/Faultbox/terrainscroll/internal/engine/debug"
	"github.com/Faultbox/terrainscroll/internal/engine/input"
	"github.com/Faultbox/terrainscroll/internal/engine/picking"
	"github.com/Faultbox/terrainscroll/internal/engine/renderer"
	"github.com/Faultbox/terrainscroll/internal/engine/terrain"
	"github.com/Faultbox/terrainscroll/internal/engine/theme"
	"github.com/Faultbox/terrainscroll/internal/engine/ui2d"
	"github.com/Faultbox/terrainscroll/internal/engine/window"
	"github.com/Faultbox/terrainscroll/internal/game/menu"
	"github.com/Faultbox/terrainscroll/internal/game/world"
	"github.com/Faultbox/terrainscroll/internal/logger"
)

const hudHint = "right-click: menu   WASD: scroll   F11: capture   F12: screenshot"

// Game is the viewer instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.TerrainRenderer
	overlay  *ui2d.Renderer
	input    *input.Input

	state  *world.State
	driver *world.Driver
	menu   *menu.Menu
	metric menu.Metrics

	screenshots    *debug.ScreenshotCapture
	wantScreenshot bool
	wantCapture    bool
	showHUD        bool
	lastFrame      world.Frame

	// Where the right button opened the menu, to ignore its own release.
	menuPressX, menuPressY int
	mouseX, mouseY         int
}

// clearingBackend clears with the new theme's color before the terrain draw,
// so a theme switch shows on the same frame.
type clearingBackend struct {
	r *renderer.TerrainRenderer
}

func (b clearingBackend) ApplyTheme(rec theme.Record) {
	b.r.ApplyTheme(rec)
	b.r.Begin()
}

func (b clearingBackend) DrawTerrain(f world.Frame) {
	b.r.DrawTerrain(f)
}

// New creates the window, GL resources and view state.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing terrain viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Float32("grid_size", cfg.Terrain.GridSize),
		zap.Int("resolution", cfg.Terrain.Resolution),
	)

	g := &Game{
		cfg:         cfg,
		input:       input.New(),
		metric:      menu.DefaultMetrics(1),
		screenshots: debug.NewScreenshotCapture(cfg.Render.ScreenshotDir, "terrain"),
		showHUD:     true,
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:         dw,
		Height:        dh,
		StrictShaders: cfg.Render.StrictShaders,
		Sun:           cfg.Sun(),
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	start := time.Now()
	mesh := terrain.GenerateMesh(cfg.Terrain.GridSize, cfg.Terrain.Resolution)
	if err := g.renderer.Upload(mesh); err != nil {
		g.renderer.Close()
		g.window.Close()
		return nil, fmt.Errorf("failed to upload terrain: %w", err)
	}
	logger.Info("terrain ready",
		zap.Int("cells", mesh.CellCount()),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Duration("elapsed", time.Since(start)),
	)

	ww, wh := g.window.GetSize()
	g.overlay, err = ui2d.New(ww, wh)
	if err != nil {
		g.renderer.Close()
		g.window.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	rig := camera.DefaultRig(cfg.Terrain.GridSize)
	rig.SpeedScale = cfg.Terrain.SpeedScale

	g.state = world.NewState(cfg.WorldControls(), cfg.ThemeID(), cfg.ScrollMode())
	g.driver = world.NewDriver(rig)
	g.menu = menu.New(g.metric)

	logger.Info("viewer initialized",
		zap.Stringer("theme", g.state.Theme),
		zap.Stringer("scroll", g.state.Mode),
		zap.Bool("shader_ready", g.renderer.ShaderReady()),
	)
	return g, nil
}

// Run starts the main loop and returns when the user quits.
func (g *Game) Run() error {
	g.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for g.running {
		if g.input.Update() {
			g.running = false
			break
		}
		for _, e := range g.input.Events() {
			g.handleEvent(e)
		}
		if !g.running {
			break
		}

		g.lastFrame = g.driver.Step(g.state, clearingBackend{g.renderer})

		// The offscreen capture reuses this frame, so it precedes the overlay.
		if g.wantCapture {
			g.wantCapture = false
			g.captureOffscreen()
		}

		g.drawOverlay()

		if g.wantScreenshot {
			g.wantScreenshot = false
			g.captureScreenshot()
		}

		g.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			g.window.SetTitle(fmt.Sprintf("%s - %.0f FPS", g.cfg.Window.Title, fps))
			logger.Debug("fps",
				zap.Float64("fps", fps),
				zap.Float32("offset_x", g.state.Offset.X),
				zap.Float32("offset_z", g.state.Offset.Z),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up resources, renderer first.
func (g *Game) Close() {
	logger.Info("closing viewer")

	if g.overlay != nil {
		g.overlay.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

var directionKeys = map[sdl.Scancode]world.Key{
	sdl.SCANCODE_W: world.KeyForward,
	sdl.SCANCODE_S: world.KeyBack,
	sdl.SCANCODE_A: world.KeyLeft,
	sdl.SCANCODE_D: world.KeyRight,
}

func (g *Game) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		dw, dh := g.window.DrawableSize()
		g.renderer.Resize(dw, dh)
		g.overlay.Resize(e.Width, e.Height)
		g.menu.Close()

	case input.EventKeyDown:
		if k, ok := directionKeys[e.Key]; ok {
			g.state.SetKey(k, true)
			return
		}
		switch e.Key {
		case sdl.SCANCODE_ESCAPE:
			if g.menu.IsOpen() {
				g.menu.Close()
				return
			}
			g.running = false
		case sdl.SCANCODE_F12:
			g.wantScreenshot = true
		case sdl.SCANCODE_F11:
			g.wantCapture = true
		case sdl.SCANCODE_H:
			g.showHUD = !g.showHUD
		}

	case input.EventKeyUp:
		if k, ok := directionKeys[e.Key]; ok {
			g.state.SetKey(k, false)
		}

	case input.EventMouseMove:
		g.mouseX, g.mouseY = e.MouseX, e.MouseY
		if g.menu.IsOpen() {
			g.menu.Hover(float32(e.MouseX), float32(e.MouseY))
			return
		}
		g.state.MoveMouse(e.MouseX, e.MouseY)

	case input.EventMouseDown:
		if g.menu.IsOpen() {
			return
		}
		if e.Button == sdl.BUTTON_RIGHT {
			ww, wh := g.window.GetSize()
			g.menu.Open(float32(e.MouseX), float32(e.MouseY), float32(ww), float32(wh))
			g.menuPressX, g.menuPressY = e.MouseX, e.MouseY
			return
		}
		if b, ok := worldButton(e.Button); ok {
			g.state.PressButton(b, e.MouseX, e.MouseY)
		}

	case input.EventMouseUp:
		if b, ok := worldButton(e.Button); ok {
			g.state.ReleaseButton(b)
		}
		if !g.menu.IsOpen() {
			return
		}
		if e.Button == sdl.BUTTON_RIGHT && e.MouseX == g.menuPressX && e.MouseY == g.menuPressY {
			return
		}
		if a, ok := g.menu.Click(float32(e.MouseX), float32(e.MouseY)); ok {
			g.apply(a)
		}

	case input.EventMouseWheel:
		g.state.Wheel(e.Wheel)
	}
}

func worldButton(b uint8) (world.Button, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return world.ButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return world.ButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return world.ButtonRight, true
	}
	return 0, false
}

func (g *Game) apply(a menu.Action) {
	logger.Debug("menu action",
		zap.Int("kind", int(a.Kind)),
		zap.Stringer("theme", a.Theme),
		zap.Stringer("mode", a.Mode),
	)
	if a.Apply(g.state) {
		g.running = false
	}
}

func (g *Game) drawOverlay() {
	dw, dh := g.window.DrawableSize()
	g.overlay.Begin()

	if g.showHUD {
		g.drawHUD()
	}
	for _, p := range g.menu.Panels(g.state.Theme, g.state.Mode) {
		g.drawPanel(p)
	}

	g.overlay.End(dw, dh)
}

func (g *Game) drawHUD() {
	_, wh := g.overlay.GetScreenSize()
	bg := ui2d.FromVec4(theme.Lookup(g.state.Theme).ClearColor)
	fg := bg.Contrast().WithAlpha(0.8)

	status := fmt.Sprintf("%s | %s | scale %.2f", g.state.Theme.Label(), g.state.Mode.Label(), g.state.Scale)
	if hit, ok := g.pick(); ok {
		status += fmt.Sprintf(" | cell %d,%d", hit.CellX, hit.CellZ)
	}
	_, lh := g.overlay.MeasureText(status, 1)
	g.overlay.DrawText(8, float32(wh)-2*lh-12, status, 1, fg)
	g.overlay.DrawText(8, float32(wh)-lh-8, hudHint, 1, fg.WithAlpha(0.5))
}

// pick returns the grid cell under the mouse for the last drawn frame.
func (g *Game) pick() (picking.Hit, bool) {
	vp := g.renderer.Viewport()
	if vp.Width <= 0 {
		return picking.Hit{}, false
	}
	_, dh := g.window.DrawableSize()
	scale := g.window.PixelScale()

	// Viewport rows count up from the bottom; mouse rows count down from the top.
	top := float32(dh) - float32(vp.Y) - float32(vp.Height)
	x := float32(g.mouseX)*scale - float32(vp.X)
	y := float32(g.mouseY)*scale - top
	w, h := float32(vp.Width), float32(vp.Height)
	if x < 0 || y < 0 || x >= w || y >= h {
		return picking.Hit{}, false
	}

	tr := g.lastFrame.Transforms
	ray := picking.ScreenToRay(x, y, w, h, tr.View, tr.Projection)
	return picking.PickGrid(ray, tr.Model, g.cfg.Terrain.GridSize, g.cfg.Terrain.Resolution)
}

func (g *Game) drawPanel(p menu.Panel) {
	r := p.Rect
	g.overlay.DrawRect(r.X+3, r.Y+3, r.W, r.H, ui2d.ColorShadow)
	g.overlay.DrawPanel(r.X, r.Y, r.W, r.H, ui2d.ColorPanelBg, ui2d.ColorPanelBorder)

	pad := g.metric.Padding
	cw := g.metric.CharWidth
	for _, it := range p.Items {
		text := ui2d.ColorText
		if it.Hovered {
			g.overlay.DrawRect(it.Rect.X+1, it.Rect.Y+1, it.Rect.W-2, it.Rect.H-2, ui2d.ColorItemHover)
			text = ui2d.ColorTextHover
		}
		y := it.Rect.Y + pad
		if it.Active {
			g.overlay.DrawText(it.Rect.X+pad, y, "*", 1, text)
		}
		g.overlay.DrawText(it.Rect.X+pad+2*cw, y, it.Label, 1, text)
		if it.HasSub {
			g.overlay.DrawText(it.Rect.X+it.Rect.W-pad-cw, y, ">", 1, text)
		}
	}
}

func (g *Game) captureScreenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (g *Game) captureOffscreen() {
	size := g.cfg.Render.CaptureSize
	pixels, err := g.renderer.Capture(g.lastFrame, size)
	if err != nil {
		logger.Warn("offscreen capture failed", zap.Error(err))
		return
	}
	path, err := g.screenshots.CaptureFromPixels(pixels, size, size)
	if err != nil {
		logger.Warn("offscreen capture failed", zap.Error(err))
		return
	}
	logger.Info("capture saved", zap.String("path", path), zap.Int("size", size))
}
