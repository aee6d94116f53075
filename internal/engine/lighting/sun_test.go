package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDirectionAxes(t *testing.T) {
	tests := []struct {
		name string
		sun  Sun
		want mgl32.Vec3
	}{
		{"zenith", Sun{Azimuth: 0, Elevation: 90}, mgl32.Vec3{0, 1, 0}},
		{"south horizon", Sun{Azimuth: 0, Elevation: 0}, mgl32.Vec3{0, 0, 1}},
		{"east horizon", Sun{Azimuth: 90, Elevation: 0}, mgl32.Vec3{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sun.Direction()
			if got.Sub(tt.want).Len() > 1e-5 {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultSun(t *testing.T) {
	got := DefaultSun().Direction()
	want := mgl32.Vec3{0.3, 1, 0.4}.Normalize()

	if !got.ApproxEqualThreshold(want, 1e-3) {
		t.Errorf("default direction = %v, want %v", got, want)
	}
	if l := got.Len(); !mgl32.FloatEqualThreshold(l, 1, 1e-5) {
		t.Errorf("direction length = %f", l)
	}
}
