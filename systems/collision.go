package systems

import (
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
)

// Detect checks the head against the board bounds and every other segment
// Food shares cells without colliding
func Detect(world *engine.World, grid core.Grid, chain *engine.Chain) core.CollisionCause {
	head := chain.HeadPosition()
	if !grid.Contains(head) {
		return core.CauseWall
	}

	headID := chain.Head()
	hit := world.Positions.AnyAt(head, func(e core.Entity) bool {
		return e != headID && world.Segments.Has(e)
	})
	if hit {
		return core.CauseSelf
	}
	return core.CauseNone
}

// CollisionSystem ends the game on wall or self collision
// Registered in both pipelines so a terminal state is caught right after movement
type CollisionSystem struct {
	res engine.CoreResources
}

// NewCollisionSystem creates the collision stage
func NewCollisionSystem(world *engine.World) *CollisionSystem {
	return &CollisionSystem{res: engine.GetCoreResources(world)}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update marks the game over and emits EventGameOver on the first collision
func (s *CollisionSystem) Update(world *engine.World, _ time.Duration) {
	st := s.res.State.State
	if !st.Alive {
		return
	}
	chain := engine.NewChain(world, st.Snake)

	cause := Detect(world, s.res.Config.Grid, chain)
	if cause == core.CauseNone {
		return
	}

	st.Alive = false
	st.Cause = cause
	s.res.Status.Ints.Get("game.over." + cause.String()).Add(1)
	s.res.Events.Queue.Emit(events.EventGameOver, &events.GameOverPayload{
		Cause:  cause,
		Head:   chain.HeadPosition(),
		Length: chain.Len(),
		Ticks:  st.Ticks,
	}, st.Ticks)
}
