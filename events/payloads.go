package events

import "github.com/lixenwraith/vi-snake/core"

// DirectionRequestPayload carries a requested facing
type DirectionRequestPayload struct {
	Direction core.Direction
}

// FoodSpawnedPayload describes a placed food cell
type FoodSpawnedPayload struct {
	Cell     core.Cell
	Attempts int  // Rejection samples drawn
	Fallback bool // Placed by free-cell scan
}

// FoodEatenPayload describes a meal
type FoodEatenPayload struct {
	Cell   core.Cell
	Length int // Chain length after growth
}

// GameOverPayload describes a terminal collision
type GameOverPayload struct {
	Cause  core.CollisionCause
	Head   core.Cell
	Length int
	Ticks  uint64
}
