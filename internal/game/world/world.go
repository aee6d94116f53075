// Package world holds the interactive terrain view state and the per-frame driver.
package world

import (
	"github.com/Faultbox/terrainscroll/internal/engine/theme"
)

// Button is a mouse button bit.
type Button uint8

const (
	ButtonRight Button = 1 << iota
	ButtonMiddle
	ButtonLeft
)

// Key is a directional control.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
)

// ScaleFloor is the smallest scale any configuration may allow.
const ScaleFloor = 0.05

// Controls holds the input interaction factors.
type Controls struct {
	AngleFactor      float32 // Degrees of rotation per pixel of left-drag
	ScaleFactor      float32 // Scale change per pixel of middle-drag
	MinScale         float32 // Scale never drops below this
	WheelClickFactor float32 // Pixels of middle-drag equivalent to one wheel click
}

// DefaultControls returns the classic demo interaction factors.
func DefaultControls() Controls {
	return Controls{
		AngleFactor:      1,
		ScaleFactor:      0.005,
		MinScale:         ScaleFloor,
		WheelClickFactor: 5,
	}
}

// State is the complete mutable view state, owned by the game loop and
// passed explicitly to the driver each tick.
type State struct {
	Scale float32
	RotX  float32 // Degrees
	RotY  float32 // Degrees

	Theme  theme.ID
	Mode   Mode
	Input  Input
	Offset Offset

	controls Controls
	buttons  Button
	mouseX   int
	mouseY   int
}

// NewState creates a state with the given controls, starting theme and scroll mode.
func NewState(controls Controls, th theme.ID, mode Mode) *State {
	s := &State{
		controls: controls,
		Theme:    th,
		Mode:     mode,
	}
	s.Reset()
	return s
}

// Controls returns the interaction factors.
func (s *State) Controls() Controls {
	return s.controls
}

// SetScale sets the uniform scale, flooring it at the minimum.
func (s *State) SetScale(v float32) {
	if v < s.controls.MinScale {
		v = s.controls.MinScale
	}
	s.Scale = v
}

// PressButton records a mouse button going down at (x, y).
func (s *State) PressButton(b Button, x, y int) {
	s.mouseX = x
	s.mouseY = y
	s.buttons |= b
}

// ReleaseButton records a mouse button going up.
func (s *State) ReleaseButton(b Button) {
	s.buttons &^= b
}

// Buttons returns the currently held mouse buttons.
func (s *State) Buttons() Button {
	return s.buttons
}

// MoveMouse applies a pointer move: left-drag rotates, middle-drag scales.
func (s *State) MoveMouse(x, y int) {
	dx := x - s.mouseX
	dy := y - s.mouseY

	if s.buttons&ButtonLeft != 0 {
		s.RotX += s.controls.AngleFactor * float32(dy)
		s.RotY += s.controls.AngleFactor * float32(dx)
	}

	if s.buttons&ButtonMiddle != 0 {
		s.SetScale(s.Scale + s.controls.ScaleFactor*float32(dx-dy))
	}

	s.mouseX = x
	s.mouseY = y
}

// Wheel zooms by the given number of clicks (positive grows the terrain).
func (s *State) Wheel(clicks int) {
	s.SetScale(s.Scale + s.controls.ScaleFactor*s.controls.WheelClickFactor*float32(clicks))
}

// SetKey records a directional key going down or up.
func (s *State) SetKey(k Key, down bool) {
	switch k {
	case KeyForward:
		s.Input.Forward = down
	case KeyBack:
		s.Input.Back = down
	case KeyLeft:
		s.Input.Left = down
	case KeyRight:
		s.Input.Right = down
	}
}

// SetTheme switches the active theme.
func (s *State) SetTheme(id theme.ID) {
	s.Theme = id
}

// SetMode switches the scroll mode.
func (s *State) SetMode(m Mode) {
	s.Mode = m
}

// Reset restores scale and rotation and drops held buttons.
// The scroll offset, theme and mode are kept.
func (s *State) Reset() {
	s.buttons = 0
	s.SetScale(1)
	s.RotX = 0
	s.RotY = 0
}
