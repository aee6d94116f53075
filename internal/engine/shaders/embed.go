// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader displaces the flat grid by noise sampled at the scrolled texcoords.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainGeometryShader computes a per-face normal and projects each triangle.
//
//go:embed terrain.geom
var TerrainGeometryShader string

// TerrainFragmentShader shades the terrain with the active theme.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// OverlayVertexShader is the vertex shader for 2D overlay quads.
//
//go:embed overlay.vert
var OverlayVertexShader string

// OverlayFragmentShader is the fragment shader for 2D overlay quads and glyphs.
//
//go:embed overlay.frag
var OverlayFragmentShader string
