package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// cellCorners lists the six grid corners emitted per cell, as (dx, dz) steps.
// The second triangle repeats the first one's third and second corners.
var cellCorners = [VertsPerCell][2]int{
	{0, 0}, {0, 1}, {1, 0},
	{1, 0}, {0, 1}, {1, 1},
}

// Validate reports whether a grid can be generated from size and resolution.
// GenerateMesh does not check its inputs; callers guard them with this.
func Validate(size float32, resolution int) error {
	if resolution < 2 {
		return fmt.Errorf("terrain resolution must be at least 2, got %d", resolution)
	}
	if size <= 0 {
		return fmt.Errorf("terrain size must be positive, got %g", size)
	}
	return nil
}

// GenerateMesh tessellates the square [0,size]x[0,size] on the XZ plane into
// (resolution-1)^2 cells of two triangles each.
//
// All heights are zero; displacement happens in the vertex shader. Texture
// coordinates are the XZ position divided by size, so they span [0,1]
// regardless of resolution. Vertices are not shared between triangles.
func GenerateMesh(size float32, resolution int) *Mesh {
	cells := resolution - 1

	count := VertsPerCell * cells * cells
	mesh := &Mesh{
		Positions:  make([]mgl32.Vec3, 0, count),
		TexCoords:  make([]mgl32.Vec2, 0, count),
		Size:       size,
		Resolution: resolution,
	}

	for z := 0; z < cells; z++ {
		for x := 0; x < cells; x++ {
			for _, c := range cellCorners {
				px := gridCoord(x+c[0], cells, size)
				pz := gridCoord(z+c[1], cells, size)

				mesh.Positions = append(mesh.Positions, mgl32.Vec3{px, 0, pz})
				mesh.TexCoords = append(mesh.TexCoords, mgl32.Vec2{px / size, pz / size})
			}
		}
	}

	return mesh
}

// gridCoord returns the position of grid line i out of cells. The far edge is
// size exactly so positions stay within [0,size] and texcoords within [0,1].
func gridCoord(i, cells int, size float32) float32 {
	if i >= cells {
		return size
	}
	return float32(i) * size / float32(cells)
}

// CellCount returns the number of grid cells in the mesh.
func (m *Mesh) CellCount() int {
	cells := m.Resolution - 1
	return cells * cells
}

// VertexCount returns the number of emitted vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// Flatten returns tightly packed position and texcoord buffers
// (3 and 2 floats per vertex) for glBufferData.
func (m *Mesh) Flatten() (positions, texCoords []float32) {
	positions = make([]float32, 0, len(m.Positions)*PosCoordsPerVert)
	for _, p := range m.Positions {
		positions = append(positions, p[0], p[1], p[2])
	}

	texCoords = make([]float32, 0, len(m.TexCoords)*TexCoordsPerVert)
	for _, t := range m.TexCoords {
		texCoords = append(texCoords, t[0], t[1])
	}
	return positions, texCoords
}

// Bounds returns the axis-aligned bounding box of the positions.
func (m *Mesh) Bounds() Bounds {
	if len(m.Positions) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < b.Min[i] {
				b.Min[i] = p[i]
			}
			if p[i] > b.Max[i] {
				b.Max[i] = p[i]
			}
		}
	}
	return b
}
