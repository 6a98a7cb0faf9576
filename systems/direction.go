package systems

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
)

// ApplyDirection sets the head facing unless d is not a unit step or reverses the current facing
// Reports whether the facing was updated
func ApplyDirection(chain *engine.Chain, d core.Direction) bool {
	if !d.Valid() || d.IsReversalOf(chain.Direction()) {
		return false
	}
	chain.SetDirection(d)
	return true
}

// DirectionSystem applies queued direction requests during frame dispatch
// A change registered between ticks takes effect on the next movement tick
type DirectionSystem struct {
	res engine.CoreResources

	statAccepted *atomic.Int64
	statRejected *atomic.Int64
}

// NewDirectionSystem creates the direction controller
func NewDirectionSystem(world *engine.World) *DirectionSystem {
	res := engine.GetCoreResources(world)
	return &DirectionSystem{
		res:          res,
		statAccepted: res.Status.Ints.Get("input.accepted"),
		statRejected: res.Status.Ints.Get("input.rejected"),
	}
}

// EventTypes returns the event types DirectionSystem handles
func (s *DirectionSystem) EventTypes() []events.EventType {
	return []events.EventType{events.EventDirectionRequest}
}

// HandleEvent processes a direction request; reversals are silently ignored
func (s *DirectionSystem) HandleEvent(world *engine.World, event events.GameEvent) {
	payload, ok := event.Payload.(*events.DirectionRequestPayload)
	if !ok {
		return
	}
	st := s.res.State.State
	if !st.Alive {
		return
	}

	if ApplyDirection(engine.NewChain(world, st.Snake), payload.Direction) {
		s.statAccepted.Add(1)
	} else {
		s.statRejected.Add(1)
	}
}
