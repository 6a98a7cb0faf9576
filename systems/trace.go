package systems

import (
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
)

// EventTraceSystem logs routed events by registered name
// Installed by the host in debug mode; events.InitRegistry must run first
type EventTraceSystem struct {
	types []events.EventType
	logf  func(format string, args ...any)
}

// NewEventTraceSystem traces the given event types through logf
func NewEventTraceSystem(types []events.EventType, logf func(format string, args ...any)) *EventTraceSystem {
	return &EventTraceSystem{types: types, logf: logf}
}

// EventTypes returns the event types EventTraceSystem handles
func (s *EventTraceSystem) EventTypes() []events.EventType {
	return s.types
}

// HandleEvent writes one line per event
func (s *EventTraceSystem) HandleEvent(_ *engine.World, event events.GameEvent) {
	if event.Payload == nil {
		s.logf("[event] %s tick=%d", events.GetEventName(event.Type), event.Tick)
		return
	}
	s.logf("[event] %s tick=%d %+v", events.GetEventName(event.Type), event.Tick, event.Payload)
}
