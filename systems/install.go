package systems

import "github.com/lixenwraith/vi-snake/engine"

// Install wires every simulation stage into g
// Frame: direction dispatch, food spawn, collision
// Tick: movement with eat check, collision, refill of eaten food
func Install(g *engine.GameContext, player engine.AudioPlayer) {
	collision := NewCollisionSystem(g.World)
	food := NewFoodSystem(g.World)

	g.AddFrameSystem(food)
	g.AddFrameSystem(collision)

	g.AddTickSystem(NewMovementSystem(g.World))
	g.AddTickSystem(collision)
	g.AddTickSystem(NewFoodRefillSystem(food))

	g.RegisterHandler(NewDirectionSystem(g.World))
	if player != nil {
		g.RegisterHandler(NewAudioSystem(player))
	}
}
