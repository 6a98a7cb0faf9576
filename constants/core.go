package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the default fixed movement timestep
	// Observed cadences are 0.25s, 0.5s and 1s, the value is configurable
	GameUpdateInterval = 250 * time.Millisecond

	// MinGameUpdateInterval guards against configs that would tick every frame
	MinGameUpdateInterval = 20 * time.Millisecond

	// MaxTicksPerAdvance caps catch-up steps after a stall so the scheduler never spirals
	MaxTicksPerAdvance = 4
)

// ECS & Resource Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System Execution Priorities (lower runs first)
// Frame and fixed pipelines are ordered independently
const (
	PriorityFoodSpawn  = 10 // Frame: before collision observes the board
	PriorityCollision  = 30 // Frame and fixed: after movement
	PriorityMovement   = 10 // Fixed: grow, eat check, shrink
	PriorityFoodRefill = 40 // Fixed: replaces food eaten this tick before the next tick
)

// Grid Defaults
const (
	// DefaultGridWidth is the default board width in cells
	DefaultGridWidth = 20

	// DefaultGridHeight is the default board height in cells
	DefaultGridHeight = 20

	// DefaultCellSize is the default render size of one cell in pixels
	DefaultCellSize = 20
)
