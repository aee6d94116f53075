// Package terrain provides procedural terrain mesh generation for the scrolling grid.
package terrain

import "github.com/go-gl/mathgl/mgl32"

const (
	// VertsPerCell is the number of vertices emitted per grid cell (two triangles).
	VertsPerCell = 6
	// PosCoordsPerVert is the number of floats per position in a flattened buffer.
	PosCoordsPerVert = 3
	// TexCoordsPerVert is the number of floats per texture coordinate in a flattened buffer.
	TexCoordsPerVert = 2
)

// Mesh holds the non-indexed terrain triangle list ready for GPU upload.
// Positions and TexCoords are parallel: TexCoords[i] belongs to Positions[i].
type Mesh struct {
	Positions []mgl32.Vec3
	TexCoords []mgl32.Vec2

	Size       float32 // Physical width/depth of the grid
	Resolution int     // Samples per side
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}
