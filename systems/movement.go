package systems

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
)

// MovementSystem advances the snake one cell per tick
// Grow at head, eat check, then drop the tail unless the snake just ate
type MovementSystem struct {
	res engine.CoreResources

	statMoves *atomic.Int64
}

// NewMovementSystem creates the fixed-tick movement stage
func NewMovementSystem(world *engine.World) *MovementSystem {
	res := engine.GetCoreResources(world)
	return &MovementSystem{
		res:       res,
		statMoves: res.Status.Ints.Get("snake.moves"),
	}
}

// Priority returns the system's priority
func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

// Update performs one movement step
func (s *MovementSystem) Update(world *engine.World, _ time.Duration) {
	st := s.res.State.State
	if !st.Alive {
		return
	}
	chain := engine.NewChain(world, st.Snake)

	next := chain.HeadPosition().Add(chain.Direction())
	chain.GrowAtHead(next)

	if CheckEat(world, st, next) {
		// Fed: keep the old tail for exactly this tick
		st.Eaten = false
		s.res.Events.Queue.Emit(events.EventFoodEaten, &events.FoodEatenPayload{
			Cell:   next,
			Length: chain.Len(),
		}, st.Ticks)
	} else if _, err := chain.ShrinkAtTail(); err != nil {
		panic(fmt.Errorf("movement tick %d: %w", st.Ticks, err))
	}

	s.statMoves.Add(1)
}
