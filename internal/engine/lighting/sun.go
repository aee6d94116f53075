// Package lighting provides the directional light for the terrain shader.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sun is a directional light given by compass angles in degrees.
// Azimuth rotates about +Y starting from +Z toward +X; elevation is measured
// up from the horizon.
type Sun struct {
	Azimuth   float32
	Elevation float32
}

// DefaultSun lights the grid from above and slightly in front of the camera.
func DefaultSun() Sun {
	return Sun{Azimuth: 36.87, Elevation: 63.43}
}

// Direction returns the unit vector pointing toward the sun.
func (s Sun) Direction() mgl32.Vec3 {
	az := float64(s.Azimuth) * math.Pi / 180
	el := float64(s.Elevation) * math.Pi / 180

	return mgl32.Vec3{
		float32(math.Cos(el) * math.Sin(az)),
		float32(math.Sin(el)),
		float32(math.Cos(el) * math.Cos(az)),
	}.Normalize()
}
