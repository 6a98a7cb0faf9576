package events

import "testing"

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	h.seen = append(h.seen, ev.Type)
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	eat := &recordingHandler{types: []EventType{EventFoodEaten}}
	all := &recordingHandler{types: []EventType{EventFoodEaten, EventGameOver}}
	r.Register(eat)
	r.Register(all)

	if r.HandlerCount(EventFoodEaten) != 2 {
		t.Errorf("Expected 2 handlers, got %d", r.HandlerCount(EventFoodEaten))
	}

	q.Emit(EventFoodEaten, nil, 0)
	q.Emit(EventGameOver, nil, 0)
	q.Emit(EventFoodSpawned, nil, 0)

	calls := 0
	if n := r.DispatchAll(&calls); n != 3 {
		t.Errorf("Expected 3 consumed, got %d", n)
	}
	if calls != 3 {
		t.Errorf("Expected 3 handler calls, got %d", calls)
	}
	if len(eat.seen) != 1 || len(all.seen) != 2 {
		t.Errorf("Unexpected routing: eat=%v all=%v", eat.seen, all.seen)
	}
}

func TestHandlerFunc(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	fired := false
	r.Register(HandlerFunc[*int]{
		Types: []EventType{EventGameReset},
		Fn:    func(_ *int, _ GameEvent) { fired = true },
	})

	q.Emit(EventGameReset, nil, 0)
	var n int
	r.DispatchAll(&n)
	if !fired {
		t.Error("Expected handler func to fire")
	}
}

func TestRegistryNames(t *testing.T) {
	InitRegistry()
	InitRegistry()

	for et := EventType(0); et < eventTypeCount; et++ {
		name := GetEventName(et)
		if name == "EventUnknown" {
			t.Errorf("Event %d has no registered name", et)
			continue
		}
		back, ok := GetEventType(name)
		if !ok || back != et {
			t.Errorf("GetEventType(%q) = %d, %v", name, back, ok)
		}
	}

	if len(RegisteredTypes()) != int(eventTypeCount) {
		t.Errorf("Expected %d registered types, got %d", eventTypeCount, len(RegisteredTypes()))
	}
}

func TestParseEventTypes(t *testing.T) {
	InitRegistry()

	all, err := ParseEventTypes(" ")
	if err != nil || len(all) != int(eventTypeCount) {
		t.Fatalf("Empty list should select all types, got %v %v", all, err)
	}

	got, err := ParseEventTypes("EventGameOver, EventFoodEaten,EventGameOver")
	if err != nil {
		t.Fatalf("ParseEventTypes: %v", err)
	}
	if len(got) != 2 || got[0] != EventGameOver || got[1] != EventFoodEaten {
		t.Errorf("Unexpected types %v", got)
	}

	if _, err := ParseEventTypes("EventGameOver,EventTeleport"); err == nil {
		t.Error("Expected error for unknown event name")
	}
}
