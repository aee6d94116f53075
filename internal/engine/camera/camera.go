// Package camera composes the per-frame model, normal, view and projection matrices.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rig holds the fixed camera and projection parameters.
// The camera is static: Target is a point, not a direction.
type Rig struct {
	GridSize float32 // Physical terrain size, used to center the grid on the origin

	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	FovYDegrees float32
	Aspect      float32
	Near        float32
	Far         float32

	// SpeedScale divides the accumulated scroll offset before it reaches the shader.
	SpeedScale float32
}

// Transforms is the matrix set for one frame.
type Transforms struct {
	Model      mgl32.Mat4
	Normal     mgl32.Mat3
	View       mgl32.Mat4
	Projection mgl32.Mat4

	// TerrainOffset is the scroll offset in shader units (x, z).
	TerrainOffset mgl32.Vec2
}

// DefaultRig returns the demo camera looking down the -Z axis at a grid of the given size.
func DefaultRig(gridSize float32) *Rig {
	return &Rig{
		GridSize:    gridSize,
		Eye:         mgl32.Vec3{0, 5, 20},
		Target:      mgl32.Vec3{0, 0, -20},
		Up:          mgl32.Vec3{0, 1, 0},
		FovYDegrees: 70,
		Aspect:      1,
		Near:        0.1,
		Far:         1000,
		SpeedScale:  100,
	}
}

// Compose builds the frame transforms.
// Rotations are in degrees. The point is scaled, rotated about X, then about Y,
// then translated so the grid is centered on the origin.
// scale is used as given; clamping belongs to whoever mutates it.
func (r *Rig) Compose(scale, rotXDeg, rotYDeg float32, offset mgl32.Vec2) Transforms {
	model := r.ModelMatrix(scale, rotXDeg, rotYDeg)

	return Transforms{
		Model:         model,
		Normal:        NormalMatrix(model),
		View:          r.ViewMatrix(),
		Projection:    r.ProjectionMatrix(),
		TerrainOffset: offset.Mul(1 / r.SpeedScale),
	}
}

// ModelMatrix returns Translate * RotateY * RotateX * Scale.
func (r *Rig) ModelMatrix(scale, rotXDeg, rotYDeg float32) mgl32.Mat4 {
	half := r.GridSize / 2

	translate := mgl32.Translate3D(-half, 0, -half)
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	scaleM := mgl32.Scale3D(scale, scale, scale)

	return translate.Mul4(rotY).Mul4(rotX).Mul4(scaleM)
}

// ViewMatrix returns the look-at matrix for the fixed eye and target.
func (r *Rig) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(r.Eye, r.Target, r.Up)
}

// ProjectionMatrix returns the perspective projection.
func (r *Rig) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(r.FovYDegrees), r.Aspect, r.Near, r.Far)
}

// NormalMatrix returns the inverse transpose of the model's upper-left 3x3.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat3 {
	return model.Mat3().Inv().Transpose()
}
