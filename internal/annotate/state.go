// Package annotate implements the interactive annotation session: space
// selection, marker placement modes and midline commands.
package annotate

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gofloor/internal/config"
	"github.com/philipparndt/gofloor/pkg/geometry"
)

// ErrIndexOutOfRange is returned when addressing a space or marker that does not exist
var ErrIndexOutOfRange = errors.New("index out of range")

// Mode is the active editing mode. At most one marker mode is active.
type Mode int

const (
	ModeNormal Mode = iota
	ModeElevatorEdit
	ModeStairsEdit
)

func (m Mode) String() string {
	switch m {
	case ModeElevatorEdit:
		return "elevator"
	case ModeStairsEdit:
		return "stairs"
	}
	return "normal"
}

// Toggle enters the edit mode of kind, or leaves it when already active.
// Entering one marker mode always leaves the other.
func (m Mode) Toggle(kind MarkerKind) Mode {
	target := kind.editMode()
	if m == target {
		return ModeNormal
	}
	return target
}

// Kind returns the marker kind edited in this mode
func (m Mode) Kind() (MarkerKind, bool) {
	switch m {
	case ModeElevatorEdit:
		return Elevator, true
	case ModeStairsEdit:
		return Stairs, true
	}
	return 0, false
}

// MarkerKind distinguishes elevators from stairs
type MarkerKind int

const (
	Elevator MarkerKind = iota
	Stairs
)

func (k MarkerKind) String() string {
	if k == Stairs {
		return "stairs"
	}
	return "elevator"
}

func (k MarkerKind) editMode() Mode {
	if k == Stairs {
		return ModeStairsEdit
	}
	return ModeElevatorEdit
}

// hitScale is the hit radius multiplier of the glyph: stairs are drawn as
// squares with side 2r and are hit within 2r
func (k MarkerKind) hitScale() float64 {
	if k == Stairs {
		return 2
	}
	return 1
}

// ParseMarkerKind accepts "elevator" or "stairs"
func ParseMarkerKind(s string) (MarkerKind, error) {
	switch s {
	case "elevator", "elevators":
		return Elevator, nil
	case "stairs":
		return Stairs, nil
	}
	return 0, fmt.Errorf("unknown marker kind %q", s)
}

// Space is a room polygon with its selection and display color
type Space struct {
	Polygon  geometry.Shape
	Selected bool
	Color    config.Color
}

// Marker is a placed elevator or stairs point
type Marker struct {
	Position geometry.Point
	ID       int
	Selected bool
}

// IDCursor is the ID given to the next marker, kept within [1, Max]
type IDCursor struct {
	Value int
	Max   int
}

// NewIDCursor starts at 1
func NewIDCursor(max int) IDCursor {
	return IDCursor{Value: 1, Max: max}
}

// Adjust moves the cursor by delta, clamped to [1, Max]
func (c IDCursor) Adjust(delta int) IDCursor {
	c.Value += delta
	if c.Value < 1 {
		c.Value = 1
	}
	if c.Value > c.Max {
		c.Value = c.Max
	}
	return c
}
