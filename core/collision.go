package core

import "fmt"

// CollisionCause identifies what ended a game
type CollisionCause uint8

const (
	CauseNone CollisionCause = iota
	CauseWall                // Head left the board
	CauseSelf                // Head entered a body cell
)

func (c CollisionCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	}
	return "none"
}

// MarshalText implements encoding.TextMarshaler
func (c CollisionCause) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CollisionCause) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none":
		*c = CauseNone
	case "wall":
		*c = CauseWall
	case "self":
		*c = CauseSelf
	default:
		return fmt.Errorf("unknown collision cause %q", text)
	}
	return nil
}
