// Package picking maps screen positions onto the flat terrain grid.
package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line with a normalized direction.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// Hit is a grid point under the cursor, in mesh-local coordinates.
type Hit struct {
	Local    mgl32.Vec3
	TexCoord mgl32.Vec2
	CellX    int
	CellZ    int
}

// ScreenToRay converts a position inside a w x h viewport (origin top-left)
// into a world-space ray through the near and far planes.
func ScreenToRay(x, y, w, h float32, view, proj mgl32.Mat4) Ray {
	ndcX := 2*x/w - 1
	ndcY := 1 - 2*y/h

	inv := proj.Mul4(view).Inv()
	near := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, 1, 1})

	origin := near.Vec3().Mul(1 / near[3])
	end := far.Vec3().Mul(1 / far[3])

	return Ray{Origin: origin, Direction: end.Sub(origin).Normalize()}
}

// Transform returns the ray mapped by m. The direction is re-normalized, so
// distances along the result are not comparable with the input ray.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	o := m.Mul4x1(r.Origin.Vec4(1))
	d := m.Mul4x1(r.Direction.Vec4(0))
	return Ray{Origin: o.Vec3().Mul(1 / o[3]), Direction: d.Vec3().Normalize()}
}

// IntersectPlaneY returns the point where the ray crosses y = planeY.
func (r Ray) IntersectPlaneY(planeY float32) (mgl32.Vec3, bool) {
	if math.Abs(float64(r.Direction[1])) < 1e-6 {
		return mgl32.Vec3{}, false
	}
	t := (planeY - r.Origin[1]) / r.Direction[1]
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return r.Origin.Add(r.Direction.Mul(t)), true
}

// PickGrid intersects a world-space ray with the undisplaced grid drawn with
// the given model matrix. size and resolution describe the mesh.
func PickGrid(r Ray, model mgl32.Mat4, size float32, resolution int) (Hit, bool) {
	if resolution < 2 || size <= 0 {
		return Hit{}, false
	}

	// A zero scale collapses the grid; nothing to hit.
	if model.Det() == 0 {
		return Hit{}, false
	}

	local := r.Transform(model.Inv())
	p, ok := local.IntersectPlaneY(0)
	if !ok || p[0] < 0 || p[2] < 0 || p[0] > size || p[2] > size {
		return Hit{}, false
	}

	cells := resolution - 1
	delta := size / float32(cells)
	return Hit{
		Local:    p,
		TexCoord: mgl32.Vec2{p[0] / size, p[2] / size},
		CellX:    min(int(p[0]/delta), cells-1),
		CellZ:    min(int(p[2]/delta), cells-1),
	}, true
}
