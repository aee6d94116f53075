package world

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects how the terrain scroll offset advances each tick.
type Mode int

const (
	// Manual advances only along held directional inputs.
	Manual Mode = iota
	// Auto drifts forward by one unit per tick, ignoring input.
	Auto
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case Manual:
		return "manual"
	case Auto:
		return "auto"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Label returns the menu label of the mode.
func (m Mode) Label() string {
	switch m {
	case Manual:
		return "Manual"
	case Auto:
		return "Auto"
	default:
		return m.String()
	}
}

// ParseMode converts a config name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return Manual, nil
	case "auto":
		return Auto, nil
	default:
		return 0, fmt.Errorf("unknown scroll mode %q", s)
	}
}

// Input is the set of held directional controls.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
}

// Offset is the accumulated terrain scroll displacement.
// It is unbounded; the terrain scrolls forever.
type Offset struct {
	X float32
	Z float32
}

// Vec2 returns the offset as (x, z).
func (o Offset) Vec2() mgl32.Vec2 {
	return mgl32.Vec2{o.X, o.Z}
}

// Advance returns the offset after one tick.
// Each held direction moves one unit per tick, not per second, so the scroll
// speed follows the frame rate.
func Advance(mode Mode, in Input, off Offset) Offset {
	switch mode {
	case Auto:
		off.Z--
	case Manual:
		if in.Forward {
			off.Z--
		}
		if in.Back {
			off.Z++
		}
		if in.Left {
			off.X--
		}
		if in.Right {
			off.X++
		}
	}
	return off
}

// Advance moves the offset in place by one tick.
func (o *Offset) Advance(mode Mode, in Input) {
	*o = Advance(mode, in, *o)
}
