package world

import (
	"time"

	"github.com/Faultbox/terrainscroll/internal/engine/camera"
	"github.com/Faultbox/terrainscroll/internal/engine/theme"
)

// timeScale converts elapsed seconds into the shader's animation time.
const timeScale = 10

// Frame is everything the rendering backend needs for one tick.
type Frame struct {
	Transforms camera.Transforms
	ThemeID    theme.ID
	Theme      theme.Record
	Time       float32 // Animation time, 10 units per elapsed second
}

// Backend receives the per-frame output of the driver.
type Backend interface {
	// ApplyTheme sets fill mode, clear color and theme uniforms.
	ApplyTheme(rec theme.Record)
	// DrawTerrain submits the terrain with the frame's transforms.
	DrawTerrain(f Frame)
}

// Driver advances the view state one tick at a time.
type Driver struct {
	rig   *camera.Rig
	start time.Time
	now   func() time.Time
}

// NewDriver creates a driver using the given camera rig and the wall clock.
func NewDriver(rig *camera.Rig) *Driver {
	return NewDriverWithClock(rig, time.Now)
}

// NewDriverWithClock creates a driver with a custom clock (used by tests).
func NewDriverWithClock(rig *camera.Rig, now func() time.Time) *Driver {
	return &Driver{
		rig:   rig,
		start: now(),
		now:   now,
	}
}

// Rig returns the driver's camera rig.
func (d *Driver) Rig() *camera.Rig {
	return d.rig
}

// Tick advances the scroll offset, composes the transforms and resolves the theme.
func (d *Driver) Tick(s *State) Frame {
	s.Offset.Advance(s.Mode, s.Input)

	tr := d.rig.Compose(s.Scale, s.RotX, s.RotY, s.Offset.Vec2())
	elapsed := d.now().Sub(d.start).Seconds()

	return Frame{
		Transforms: tr,
		ThemeID:    s.Theme,
		Theme:      theme.Lookup(s.Theme),
		Time:       float32(elapsed * timeScale),
	}
}

// Step runs one tick and hands the result to the backend.
func (d *Driver) Step(s *State, b Backend) Frame {
	f := d.Tick(s)
	b.ApplyTheme(f.Theme)
	b.DrawTerrain(f)
	return f
}
