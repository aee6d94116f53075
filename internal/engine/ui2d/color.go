package ui2d

import "github.com/go-gl/mathgl/mgl32"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Menu palette.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}

	ColorPanelBg     = Color{0.94, 0.94, 0.94, 0.97}
	ColorPanelBorder = Color{0.45, 0.45, 0.45, 1}
	ColorItemHover   = Color{0.20, 0.45, 0.80, 1}
	ColorText        = Color{0.08, 0.08, 0.08, 1}
	ColorTextHover   = Color{1, 1, 1, 1}
	ColorShadow      = Color{0, 0, 0, 0.25}
)

// FromVec4 converts an mgl32 color.
func FromVec4(v mgl32.Vec4) Color {
	return Color{v[0], v[1], v[2], v[3]}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Luminance returns the perceived brightness in [0, 1].
func (c Color) Luminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Contrast returns black or white, whichever reads better on c.
func (c Color) Contrast() Color {
	if c.Luminance() > 0.5 {
		return ColorBlack
	}
	return ColorWhite
}
