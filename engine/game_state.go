package engine

import "github.com/lixenwraith/vi-snake/core"

// GameState is the simulation state owned by GameContext
// Mutated only under the world lock by MovementSystem, FoodSystem and CollisionSystem
type GameState struct {
	Snake core.Entity // Snake root entity
	Food  core.Entity // 0 when absent

	// Eaten is set by the eat check and consumed by the tail-shrink gate within the same tick
	Eaten bool

	Alive bool
	Cause core.CollisionCause

	Ticks  uint64 // Movement ticks processed
	Frames uint64 // Frame updates processed
	Meals  int    // Food eaten since reset

	MealTick uint64 // Tick of the most recent meal, 0 before the first
}

// HasFood reports whether a food entity is present
func (s *GameState) HasFood() bool {
	return s.Food != 0
}

// reset returns the state to a fresh game bound to snake
func (s *GameState) reset(snake core.Entity) {
	*s = GameState{Snake: snake, Alive: true}
}
