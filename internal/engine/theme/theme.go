// Package theme defines the terrain color themes and their shader uniform bundles.
package theme

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ID identifies a color theme.
type ID int

const (
	Earth ID = iota
	Solid
	WireLight
	WireDark
	Synthwave
	Tron
	Heatmap
	NormalMap

	numThemes
)

// FillMode is the polygon rasterization mode used by a theme.
type FillMode int

const (
	Filled FillMode = iota
	Wireframe
)

// Record is the full set of appearance parameters for one theme.
type Record struct {
	Fill       FillMode
	ClearColor mgl32.Vec4
	BaseColor  mgl32.Vec4

	// Gradient is the 4-stop height ramp, only meaningful when UseGradient is set.
	Gradient     [4]mgl32.Vec4
	UseGradient  bool
	UseNormalMap bool

	// Phong coefficients
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32
}

var names = [numThemes]string{
	Earth:     "earth",
	Solid:     "solid",
	WireLight: "wire-light",
	WireDark:  "wire-dark",
	Synthwave: "synthwave",
	Tron:      "tron",
	Heatmap:   "heatmap",
	NormalMap: "normal-map",
}

var labels = [numThemes]string{
	Earth:     "Earth",
	Solid:     "Solid",
	WireLight: "Wire Light",
	WireDark:  "Wire Dark",
	Synthwave: "Synthwave",
	Tron:      "TRON",
	Heatmap:   "Heat Map",
	NormalMap: "Normal Map",
}

var (
	white   = mgl32.Vec4{1, 1, 1, 1}
	black   = mgl32.Vec4{0, 0, 0, 1}
	skyBlue = mgl32.Vec4{.65, .72, .77, 1}
)

var records = [numThemes]Record{
	Earth: {
		Fill:       Filled,
		ClearColor: skyBlue,
		BaseColor:  white,
		Gradient: [4]mgl32.Vec4{
			{.17, .44, .50, 1}, // water
			{.45, .54, .28, 1}, // grass
			{.46, .35, .25, 1}, // rock
			{1, 1, 1, 1},       // snow
		},
		UseGradient: true,
		Ambient:     0.4,
		Diffuse:     0.8,
		Specular:    0.2,
	},
	Solid: {
		Fill:       Filled,
		ClearColor: mgl32.Vec4{.7, .7, .7, 1},
		BaseColor:  white,
		Ambient:    0.4,
		Diffuse:    0.8,
	},
	WireLight: {
		Fill:       Wireframe,
		ClearColor: white,
		BaseColor:  black,
		Ambient:    1,
	},
	WireDark: {
		Fill:       Wireframe,
		ClearColor: black,
		BaseColor:  white,
		Ambient:    1,
	},
	Synthwave: {
		Fill:       Wireframe,
		ClearColor: mgl32.Vec4{.10, .01, .22, 1},
		BaseColor:  mgl32.Vec4{.95, .24, .94, 1},
		Ambient:    1,
	},
	Tron: {
		Fill:       Wireframe,
		ClearColor: mgl32.Vec4{.01, .09, .12, 1},
		BaseColor:  mgl32.Vec4{.32, .92, .92, 1},
		Ambient:    1,
	},
	Heatmap: {
		Fill:       Filled,
		ClearColor: skyBlue,
		BaseColor:  white,
		Gradient: [4]mgl32.Vec4{
			{0, 0, 1, 1},
			{0, 1, 0, 1},
			{1, 1, 0, 1},
			{1, 0, 0, 1},
		},
		UseGradient: true,
		Ambient:     0.2,
		Diffuse:     0.8,
		Specular:    0.2,
	},
	NormalMap: {
		Fill:         Filled,
		ClearColor:   white,
		BaseColor:    white,
		UseNormalMap: true,
	},
}

// All returns every theme in menu order.
func All() []ID {
	ids := make([]ID, numThemes)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// Valid reports whether id is one of the defined themes.
func (id ID) Valid() bool {
	return id >= 0 && id < numThemes
}

// String returns the config name of the theme (e.g. "wire-dark").
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("theme(%d)", int(id))
	}
	return names[id]
}

// Label returns the human-readable menu label.
func (id ID) Label() string {
	if !id.Valid() {
		return id.String()
	}
	return labels[id]
}

// Parse converts a config name or menu label into a theme ID.
// Matching ignores case, spaces, dashes and underscores.
func Parse(s string) (ID, error) {
	key := normalize(s)
	for i := range names {
		if normalize(names[i]) == key || normalize(labels[i]) == key {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown theme %q", s)
}

// Lookup returns the appearance record for id.
// The theme space is closed, so an undefined id is a programming error and panics.
func Lookup(id ID) Record {
	if !id.Valid() {
		panic(fmt.Sprintf("theme: lookup of undefined %s", id))
	}
	return records[id]
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
