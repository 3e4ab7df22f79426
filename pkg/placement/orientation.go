// Package placement decides where a tooltip can be drawn next to a trigger
// without being clipped by the viewport.
//
// The package is pure: no rendering, no state. Evaluate picks an
// Orientation through a fixed priority cascade and Offset turns an
// Orientation into the tooltip's top-left corner.
package placement

import "fmt"

// Orientation is one of the eight named tooltip placements, or None.
type Orientation int

// Orientations in cascade order. None means nothing is placed.
const (
	None Orientation = iota
	North
	NorthEastFlip
	NorthWestFlip
	East
	South
	SouthEastFlip
	SouthWestFlip
	West
)

var orientationNames = [...]string{
	None:          "none",
	North:         "north",
	NorthEastFlip: "north-east-flip",
	NorthWestFlip: "north-west-flip",
	East:          "east",
	South:         "south",
	SouthEastFlip: "south-east-flip",
	SouthWestFlip: "south-west-flip",
	West:          "west",
}

// All returns the eight placeable orientations in cascade order.
func All() []Orientation {
	return []Orientation{North, NorthEastFlip, NorthWestFlip, East, South, SouthEastFlip, SouthWestFlip, West}
}

// String returns the class name of the orientation (e.g. "north-east-flip").
func (o Orientation) String() string {
	if o < None || int(o) >= len(orientationNames) {
		return fmt.Sprintf("orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// Valid reports whether o is one of the eight placeable orientations.
func (o Orientation) Valid() bool {
	return o > None && int(o) < len(orientationNames)
}

// Vertical reports whether the tooltip sits above or below the trigger
// (the North and South families).
func (o Orientation) Vertical() bool {
	switch o {
	case North, NorthEastFlip, NorthWestFlip, South, SouthEastFlip, SouthWestFlip:
		return true
	}
	return false
}

// Flip reports whether o is a flip variant.
func (o Orientation) Flip() bool {
	switch o {
	case NorthEastFlip, NorthWestFlip, SouthEastFlip, SouthWestFlip:
		return true
	}
	return false
}

// Mirror returns the orientation reflected across the horizontal axis
// (North <-> South and their flips). East and West map to themselves.
func (o Orientation) Mirror() Orientation {
	switch o {
	case North:
		return South
	case South:
		return North
	case NorthEastFlip:
		return SouthEastFlip
	case SouthEastFlip:
		return NorthEastFlip
	case NorthWestFlip:
		return SouthWestFlip
	case SouthWestFlip:
		return NorthWestFlip
	}
	return o
}

// ParseOrientation is the inverse of String.
func ParseOrientation(s string) (Orientation, error) {
	for i, name := range orientationNames {
		if name == s {
			return Orientation(i), nil
		}
	}
	return None, fmt.Errorf("unknown orientation %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(b []byte) error {
	v, err := ParseOrientation(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
