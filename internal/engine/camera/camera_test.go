package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-4

func TestIdentityPoseIsPureTranslation(t *testing.T) {
	rig := DefaultRig(100)
	tr := rig.Compose(1, 0, 0, mgl32.Vec2{})

	want := mgl32.Translate3D(-50, 0, -50)
	if !tr.Model.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("model = %v, want %v", tr.Model, want)
	}

	if !tr.Normal.ApproxEqualThreshold(mgl32.Ident3(), epsilon) {
		t.Errorf("normal matrix for pure translation should be identity, got %v", tr.Normal)
	}
}

func TestModelAppliesScaleBeforeTranslate(t *testing.T) {
	rig := DefaultRig(100)
	model := rig.ModelMatrix(2, 0, 0)

	p := mgl32.TransformCoordinate(mgl32.Vec3{10, 0, 10}, model)
	want := mgl32.Vec3{-30, 0, -30} // 10*2 - 50
	if !p.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("transformed point = %v, want %v", p, want)
	}
}

func TestModelRotationOrder(t *testing.T) {
	rig := DefaultRig(0)

	// X first: (0,1,0) -> (0,0,1); then Y by 90: (0,0,1) -> (1,0,0)
	model := rig.ModelMatrix(1, 90, 90)
	p := mgl32.TransformCoordinate(mgl32.Vec3{0, 1, 0}, model)
	want := mgl32.Vec3{1, 0, 0}
	if !p.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("rotated point = %v, want %v", p, want)
	}
}

func TestNormalMatrixUnderScale(t *testing.T) {
	rig := DefaultRig(100)
	tr := rig.Compose(4, 30, 45, mgl32.Vec2{})

	// For uniform scale s and rotation R, inverse transpose is R / s.
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(45)).Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(30))).Mat3()
	want := rot.Mul(0.25)
	if !tr.Normal.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("normal = %v, want %v", tr.Normal, want)
	}
}

func TestViewMatrix(t *testing.T) {
	rig := DefaultRig(100)
	view := rig.ViewMatrix()

	eye := mgl32.TransformCoordinate(rig.Eye, view)
	if !eye.ApproxEqualThreshold(mgl32.Vec3{}, epsilon) {
		t.Errorf("eye should map to origin in view space, got %v", eye)
	}

	target := mgl32.TransformCoordinate(rig.Target, view)
	if target.X() > epsilon || target.X() < -epsilon || target.Y() > epsilon || target.Y() < -epsilon {
		t.Errorf("target should lie on the view axis, got %v", target)
	}
	if target.Z() >= 0 {
		t.Errorf("target should be in front of the camera (negative z), got %v", target)
	}
}

func TestProjectionMatrix(t *testing.T) {
	rig := DefaultRig(100)
	proj := rig.ProjectionMatrix()

	f := float32(1 / math.Tan(float64(mgl32.DegToRad(70))/2))
	if math.Abs(float64(proj.At(0, 0)-f)) > epsilon || math.Abs(float64(proj.At(1, 1)-f)) > epsilon {
		t.Errorf("focal terms = %f %f, want %f", proj.At(0, 0), proj.At(1, 1), f)
	}
	if proj.At(3, 2) != -1 {
		t.Errorf("perspective w row should be -1, got %f", proj.At(3, 2))
	}
	if proj.At(3, 3) != 0 {
		t.Errorf("perspective [3][3] should be 0, got %f", proj.At(3, 3))
	}
}

func TestTerrainOffsetScaled(t *testing.T) {
	rig := DefaultRig(100)
	tr := rig.Compose(1, 0, 0, mgl32.Vec2{-250, 40})

	want := mgl32.Vec2{-2.5, 0.4}
	if !tr.TerrainOffset.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("terrain offset = %v, want %v", tr.TerrainOffset, want)
	}
}

func TestDefaultRig(t *testing.T) {
	rig := DefaultRig(64)
	if rig.GridSize != 64 {
		t.Errorf("grid size = %f, want 64", rig.GridSize)
	}
	if rig.Eye != (mgl32.Vec3{0, 5, 20}) || rig.Target != (mgl32.Vec3{0, 0, -20}) || rig.Up != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("unexpected camera placement: eye %v target %v up %v", rig.Eye, rig.Target, rig.Up)
	}
	if rig.FovYDegrees != 70 || rig.Aspect != 1 || rig.Near != 0.1 || rig.Far != 1000 {
		t.Errorf("unexpected projection: fov %f aspect %f near %f far %f", rig.FovYDegrees, rig.Aspect, rig.Near, rig.Far)
	}
}
