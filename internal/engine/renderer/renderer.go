// Package renderer draws the terrain grid with OpenGL.
package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainscroll/internal/engine/framebuffer"
	"github.com/Faultbox/terrainscroll/internal/engine/lighting"
	"github.com/Faultbox/terrainscroll/internal/engine/shader"
	"github.com/Faultbox/terrainscroll/internal/engine/shaders"
	"github.com/Faultbox/terrainscroll/internal/engine/terrain"
	"github.com/Faultbox/terrainscroll/internal/engine/theme"
	"github.com/Faultbox/terrainscroll/internal/game/world"
	"github.com/Faultbox/terrainscroll/internal/logger"
)

// Vertex attribute locations shared with terrain.vert.
const (
	attribVertex    = 0
	attribTexCoords = 1
)

var (
	// ErrNoMesh is returned by operations that need an uploaded mesh.
	ErrNoMesh = errors.New("renderer: no mesh uploaded")
	// ErrNoShader is returned when the terrain program failed to build.
	ErrNoShader = errors.New("renderer: terrain shader unavailable")
)

var uniformNames = []string{
	"uModelMatrix", "uNormalMatrix", "uViewMatrix", "uProjectionMatrix",
	"uOffsetX", "uOffsetZ", "uTime",
	"uBaseColor", "uColor0", "uColor1", "uColor2", "uColor3",
	"uMultiColor", "uNormalMap",
	"uKa", "uKd", "uKs", "uSh",
	"uLightDir",
}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	// StrictShaders makes a shader build failure a startup error instead of
	// a logged one that leaves the terrain undrawn.
	StrictShaders bool

	Sun lighting.Sun
}

// Viewport is a GL viewport rectangle in pixels.
type Viewport struct {
	X, Y, Width, Height int32
}

// TerrainRenderer owns the terrain program and its vertex buffers.
// It implements world.Backend.
type TerrainRenderer struct {
	config Config

	program  uint32
	uniforms *shader.Uniforms

	vao         uint32
	positionVBO uint32
	texCoordVBO uint32
	vertexCount int32

	viewport Viewport
	lightDir mgl32.Vec3
}

var _ world.Backend = (*TerrainRenderer)(nil)

// New creates the terrain renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*TerrainRenderer, error) {
	r := &TerrainRenderer{
		config:   cfg,
		lightDir: cfg.Sun.Direction(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	program, err := shader.CompileProgramWithGeometry(
		shaders.TerrainVertexShader,
		shaders.TerrainGeometryShader,
		shaders.TerrainFragmentShader,
	)
	if err != nil {
		if cfg.StrictShaders {
			return nil, fmt.Errorf("terrain shader: %w", err)
		}
		// Keep running with nothing to draw.
		logger.Error("terrain shader did not compile", zap.Error(err))
	} else {
		r.program = program
		r.uniforms = shader.NewUniforms(program, uniformNames...)
		if missing := r.uniforms.Missing(); len(missing) > 0 {
			logger.Debug("inactive terrain uniforms", zap.Strings("names", missing))
		}
		logger.Info("terrain shader compiled", zap.Uint32("program", program))
	}

	gl.GenVertexArrays(1, &r.vao)
	r.Resize(cfg.Width, cfg.Height)

	return r, nil
}

// ShaderReady reports whether the terrain program built successfully.
func (r *TerrainRenderer) ShaderReady() bool {
	return r.program != 0
}

// Upload sends the mesh positions and texcoords to two static VBOs.
func (r *TerrainRenderer) Upload(mesh *terrain.Mesh) error {
	positions, texCoords := mesh.Flatten()
	if len(positions) == 0 {
		return ErrNoMesh
	}

	r.deleteBuffers()

	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.positionVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.positionVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, unsafe.Pointer(&positions[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(attribVertex, terrain.PosCoordsPerVert, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(attribVertex)

	gl.GenBuffers(1, &r.texCoordVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.texCoordVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(texCoords)*4, unsafe.Pointer(&texCoords[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointer(attribTexCoords, terrain.TexCoordsPerVert, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(attribTexCoords)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.vertexCount = int32(mesh.VertexCount())

	logger.Debug("terrain mesh uploaded",
		zap.Int("resolution", mesh.Resolution),
		zap.Float32("size", mesh.Size),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Uint32("vao", r.vao),
	)
	return nil
}

// Begin clears the back buffer with the current clear color.
func (r *TerrainRenderer) Begin() {
	gl.Viewport(r.viewport.X, r.viewport.Y, r.viewport.Width, r.viewport.Height)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ApplyTheme sets polygon mode, clear color and the theme uniforms.
func (r *TerrainRenderer) ApplyTheme(rec theme.Record) {
	if rec.Fill == theme.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	c := rec.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	if !r.ShaderReady() {
		return
	}

	gl.UseProgram(r.program)
	u := r.uniforms
	setVec4(u.Loc("uBaseColor"), rec.BaseColor)
	setVec4(u.Loc("uColor0"), rec.Gradient[0])
	setVec4(u.Loc("uColor1"), rec.Gradient[1])
	setVec4(u.Loc("uColor2"), rec.Gradient[2])
	setVec4(u.Loc("uColor3"), rec.Gradient[3])
	gl.Uniform1i(u.Loc("uMultiColor"), boolToInt(rec.UseGradient))
	gl.Uniform1i(u.Loc("uNormalMap"), boolToInt(rec.UseNormalMap))
	gl.Uniform1f(u.Loc("uKa"), rec.Ambient)
	gl.Uniform1f(u.Loc("uKd"), rec.Diffuse)
	gl.Uniform1f(u.Loc("uKs"), rec.Specular)
	gl.Uniform1f(u.Loc("uSh"), rec.Shininess)
}

// DrawTerrain uploads the frame transforms and draws the grid as triangles.
func (r *TerrainRenderer) DrawTerrain(f world.Frame) {
	if !r.ShaderReady() || r.vertexCount == 0 {
		return
	}

	gl.UseProgram(r.program)
	u := r.uniforms
	t := f.Transforms
	gl.UniformMatrix4fv(u.Loc("uModelMatrix"), 1, false, &t.Model[0])
	gl.UniformMatrix3fv(u.Loc("uNormalMatrix"), 1, false, &t.Normal[0])
	gl.UniformMatrix4fv(u.Loc("uViewMatrix"), 1, false, &t.View[0])
	gl.UniformMatrix4fv(u.Loc("uProjectionMatrix"), 1, false, &t.Projection[0])
	gl.Uniform1f(u.Loc("uOffsetX"), t.TerrainOffset[0])
	gl.Uniform1f(u.Loc("uOffsetZ"), t.TerrainOffset[1])
	gl.Uniform1f(u.Loc("uTime"), f.Time)
	gl.Uniform3f(u.Loc("uLightDir"), r.lightDir[0], r.lightDir[1], r.lightDir[2])

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	// Overlays are always filled.
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// Resize recomputes the square viewport centered in a width x height drawable.
func (r *TerrainRenderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.viewport = SquareViewport(width, height)
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int32("viewport", r.viewport.Width),
	)
}

// Viewport returns the current terrain viewport.
func (r *TerrainRenderer) Viewport() Viewport {
	return r.viewport
}

// SquareViewport returns the largest square centered in a width x height area.
func SquareViewport(width, height int) Viewport {
	v := min(width, height)
	return Viewport{
		X:      int32((width - v) / 2),
		Y:      int32((height - v) / 2),
		Width:  int32(v),
		Height: int32(v),
	}
}

// ReadPixels reads the whole back buffer as bottom-up RGBA rows.
func (r *TerrainRenderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Capture renders f into a size x size offscreen target and returns its
// pixels as bottom-up RGBA rows. The on-screen viewport is left untouched.
func (r *TerrainRenderer) Capture(f world.Frame, size int) ([]byte, error) {
	if !r.ShaderReady() {
		return nil, ErrNoShader
	}
	if r.vertexCount == 0 {
		return nil, ErrNoMesh
	}

	target, err := framebuffer.New(size, size)
	if err != nil {
		return nil, fmt.Errorf("capture target: %w", err)
	}
	defer target.Destroy()

	restore := target.Bind()
	defer restore()

	r.ApplyTheme(f.Theme)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.DrawTerrain(f)

	return target.ReadPixels(), nil
}

// Close cleans up renderer resources.
func (r *TerrainRenderer) Close() {
	logger.Info("closing renderer")
	r.deleteBuffers()
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

func (r *TerrainRenderer) deleteBuffers() {
	if r.positionVBO != 0 {
		gl.DeleteBuffers(1, &r.positionVBO)
		r.positionVBO = 0
	}
	if r.texCoordVBO != 0 {
		gl.DeleteBuffers(1, &r.texCoordVBO)
		r.texCoordVBO = 0
	}
	r.vertexCount = 0
}

func setVec4(loc int32, v [4]float32) {
	gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
