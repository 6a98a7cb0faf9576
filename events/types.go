package events

// EventType represents the type of game event
type EventType int

const (
	// EventDirectionRequest carries a directional "just pressed" input
	// Trigger: InputHandler, HTTP direction endpoint
	// Consumer: DirectionSystem | Payload: *DirectionRequestPayload
	// Latency: applied on the next frame, effective on the next movement tick
	EventDirectionRequest EventType = iota

	// EventFoodSpawned signals food placement
	// Trigger: FoodSystem | Payload: *FoodSpawnedPayload
	EventFoodSpawned

	// EventFoodEaten signals the head entering the food cell
	// Trigger: eat check inside MovementSystem
	// Consumer: AudioSystem | Payload: *FoodEatenPayload
	EventFoodEaten

	// EventFoodExhausted signals that no free cell exists for food this frame
	// Trigger: FoodSystem after sampling and scan both fail | Payload: nil
	EventFoodExhausted

	// EventGameOver signals a terminal wall or self collision
	// Trigger: CollisionSystem
	// Consumer: AudioSystem, host loop | Payload: *GameOverPayload
	EventGameOver

	// EventGameReset signals a fresh snake after restart
	// Trigger: GameContext.Reset | Payload: nil
	EventGameReset

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Movement tick at emission
}
