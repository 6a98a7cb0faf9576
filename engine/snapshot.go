package engine

import (
	"fmt"

	"github.com/lixenwraith/vi-snake/core"
)

// SegmentRole tags an occupied cell for rendering
type SegmentRole uint8

const (
	RoleHead SegmentRole = iota
	RoleBody
)

func (r SegmentRole) String() string {
	if r == RoleHead {
		return "head"
	}
	return "body"
}

// MarshalText implements encoding.TextMarshaler
func (r SegmentRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *SegmentRole) UnmarshalText(text []byte) error {
	switch string(text) {
	case "head":
		*r = RoleHead
	case "body":
		*r = RoleBody
	default:
		return fmt.Errorf("unknown segment role %q", text)
	}
	return nil
}

// SegmentView is one occupied cell with its role
type SegmentView struct {
	Cell core.Cell   `json:"cell"`
	Role SegmentRole `json:"role"`
}

// Snapshot is an immutable copy of the board handed to renderers and remote readers
type Snapshot struct {
	Grid      core.Grid           `json:"grid"`
	Segments  []SegmentView       `json:"segments"` // Head first
	Food      *core.Cell          `json:"food,omitempty"`
	Direction core.Direction      `json:"direction"`
	Alive     bool                `json:"alive"`
	Cause     core.CollisionCause `json:"cause"`
	Length    int                 `json:"length"`
	Ticks     uint64              `json:"ticks"`
	Frames    uint64              `json:"frames"`
	Meals     int                 `json:"meals"`
}

// Head returns the head cell, false for an empty snapshot
func (s *Snapshot) Head() (core.Cell, bool) {
	if len(s.Segments) == 0 {
		return core.Cell{}, false
	}
	return s.Segments[0].Cell, true
}
