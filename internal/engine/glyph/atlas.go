// Package glyph rasterizes a fixed-width bitmap font into a single-row atlas.
package glyph

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII range covered by the atlas.
const (
	First    = ' '
	Last     = '~'
	Count    = Last - First + 1
	Fallback = '?'
)

// Atlas is an 8-bit coverage image holding every printable ASCII glyph
// side by side, one cell per glyph.
type Atlas struct {
	Image *image.Alpha

	CellWidth  int
	CellHeight int
	Ascent     int
}

// NewAtlas rasterizes basicfont.Face7x13.
func NewAtlas() *Atlas {
	return NewAtlasFromFace(basicfont.Face7x13)
}

// NewAtlasFromFace rasterizes a monospace face. Each cell is the face's
// advance for 'M' wide and its line height tall.
func NewAtlasFromFace(face font.Face) *Atlas {
	m := face.Metrics()
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = m.Height / 2
	}

	cw := adv.Ceil()
	ch := (m.Ascent + m.Descent).Ceil()
	img := image.NewAlpha(image.Rect(0, 0, cw*Count, ch))

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
	}
	for i := 0; i < Count; i++ {
		d.Dot = fixed.Point26_6{
			X: fixed.I(i * cw),
			Y: m.Ascent,
		}
		d.DrawString(string(rune(First + i)))
	}

	return &Atlas{
		Image:      img,
		CellWidth:  cw,
		CellHeight: ch,
		Ascent:     m.Ascent.Ceil(),
	}
}

// Size returns the atlas image dimensions in pixels.
func (a *Atlas) Size() (int, int) {
	b := a.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Index returns the atlas cell of r, mapping anything unprintable to Fallback.
func Index(r rune) int {
	if r < First || r > Last {
		r = Fallback
	}
	return int(r - First)
}

// UV returns the normalized texture rectangle of r. v0 is the top row.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	w, _ := a.Size()
	i := Index(r)
	u0 = float32(i*a.CellWidth) / float32(w)
	u1 = float32((i+1)*a.CellWidth) / float32(w)
	return u0, 0, u1, 1
}

// Measure returns the pixel size of text drawn at the given scale.
// Newlines start a new line.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines, cols, widest := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cols = 0
			continue
		}
		cols++
		widest = max(widest, cols)
	}
	return float32(widest*a.CellWidth) * scale, float32(lines*a.CellHeight) * scale
}
