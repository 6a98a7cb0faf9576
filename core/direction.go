package core

import (
	"fmt"
	"strings"
)

// Direction is a unit step on the grid
type Direction struct {
	DX, DY int
}

// Cardinal directions, world y grows upward
var (
	DirUp    = Direction{DX: 0, DY: 1}
	DirDown  = Direction{DX: 0, DY: -1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Directions lists the four cardinal directions in a fixed order
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four cardinal unit vectors
func (d Direction) Valid() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	}
	return false
}

// Opposite returns the 180° reversal of d
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsReversalOf reports whether d points exactly against other on the same axis
func (d Direction) IsReversalOf(other Direction) bool {
	return d.DX == -other.DX && d.DY == -other.DY && d != (Direction{})
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// ParseDirection maps a case-insensitive name (up/down/left/right) to a Direction
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up", "u":
		return DirUp, true
	case "down", "d":
		return DirDown, true
	case "left", "l":
		return DirLeft, true
	case "right", "r":
		return DirRight, true
	}
	return Direction{}, false
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	if string(text) == "none" {
		*d = Direction{}
		return nil
	}
	v, ok := ParseDirection(string(text))
	if !ok {
		return fmt.Errorf("unknown direction %q", text)
	}
	*d = v
	return nil
}
