// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// stage is one shader source bound for a program.
type stage struct {
	kind uint32
	name string
	src  string
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	return build(
		stage{gl.VERTEX_SHADER, "vertex", vertexSrc},
		stage{gl.FRAGMENT_SHADER, "fragment", fragmentSrc},
	)
}

// CompileProgramWithGeometry compiles vertex, geometry and fragment shaders
// and links them into a program.
func CompileProgramWithGeometry(vertexSrc, geometrySrc, fragmentSrc string) (uint32, error) {
	return build(
		stage{gl.VERTEX_SHADER, "vertex", vertexSrc},
		stage{gl.GEOMETRY_SHADER, "geometry", geometrySrc},
		stage{gl.FRAGMENT_SHADER, "fragment", fragmentSrc},
	)
}

func build(stages ...stage) (uint32, error) {
	shaders := make([]uint32, 0, len(stages))
	defer func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}()

	for _, st := range stages {
		s, err := compileShader(st.src, st.kind, st.name)
		if err != nil {
			return 0, err
		}
		shaders = append(shaders, s)
	}

	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		msg := infoLog(logLen, func(buf *uint8) {
			gl.GetProgramInfoLog(program, logLen, nil, buf)
		})
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}

	for _, s := range shaders {
		gl.DetachShader(program, s)
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		msg := infoLog(logLen, func(buf *uint8) {
			gl.GetShaderInfoLog(shader, logLen, nil, buf)
		})
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, msg)
	}

	return shader, nil
}

func infoLog(n int32, read func(*uint8)) string {
	if n <= 0 {
		return "(no log)"
	}
	buf := make([]uint8, n)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

// GetUniform returns the uniform location for the given name, or -1 if it is
// missing or optimized out.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Uniforms caches uniform locations of one program by name.
type Uniforms struct {
	program uint32
	locs    map[string]int32
}

// NewUniforms resolves the given names against program.
// Names the driver reports as inactive resolve to -1 and are ignored by gl.Uniform*.
func NewUniforms(program uint32, names ...string) *Uniforms {
	u := &Uniforms{program: program, locs: make(map[string]int32, len(names))}
	for _, n := range names {
		u.locs[n] = GetUniform(program, n)
	}
	return u
}

// Loc returns the cached location for name, resolving it on first use.
func (u *Uniforms) Loc(name string) int32 {
	if loc, ok := u.locs[name]; ok {
		return loc
	}
	loc := GetUniform(u.program, name)
	u.locs[name] = loc
	return loc
}

// Missing returns the cached names the program does not expose.
func (u *Uniforms) Missing() []string {
	var out []string
	for n, loc := range u.locs {
		if loc < 0 {
			out = append(out, n)
		}
	}
	return out
}
