package ui2d

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/terrainscroll/internal/engine/glyph"
)

// Font is a glyph atlas resident on the GPU as a single-channel texture.
type Font struct {
	atlas   *glyph.Atlas
	texture uint32
}

// NewFont rasterizes the built-in bitmap face and uploads it.
func NewFont() *Font {
	f := &Font{atlas: glyph.NewAtlas()}
	w, h := f.atlas.Size()

	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)

	// Rows of an 8-bit image are not 4-byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(w), int32(h), 0,
		gl.RED, gl.UNSIGNED_BYTE, unsafe.Pointer(&f.atlas.Image.Pix[0]))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f
}

// TextureID returns the GL texture holding the atlas.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// GlyphSize returns the cell size of one glyph in pixels.
func (f *Font) GlyphSize() (int, int) {
	return f.atlas.CellWidth, f.atlas.CellHeight
}

// GetGlyphUV returns the texture rectangle of r.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	return f.atlas.UV(r)
}

// MeasureText returns the pixel size of text at the given scale.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	return f.atlas.Measure(text, scale)
}

// Close releases the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
