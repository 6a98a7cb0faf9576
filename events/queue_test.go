package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Emit(EventFoodSpawned, nil, 1)
	q.Emit(EventFoodEaten, nil, 2)
	q.Emit(EventGameOver, nil, 3)

	if q.Pending() != 3 {
		t.Fatalf("Expected 3 pending, got %d", q.Pending())
	}

	evs := q.Consume()
	if len(evs) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(evs))
	}
	for i, want := range []EventType{EventFoodSpawned, EventFoodEaten, EventGameOver} {
		if evs[i].Type != want {
			t.Errorf("Event %d: expected %v, got %v", i, want, evs[i].Type)
		}
		if evs[i].Tick != uint64(i+1) {
			t.Errorf("Event %d: expected tick %d, got %d", i, i+1, evs[i].Tick)
		}
	}

	if q.Consume() != nil {
		t.Error("Expected empty queue after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Emit(EventDirectionRequest, nil, uint64(i))
	}

	evs := q.Consume()
	if len(evs) != constants.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", constants.EventQueueSize, len(evs))
	}
	if evs[0].Tick != 10 {
		t.Errorf("Expected oldest surviving tick 10, got %d", evs[0].Tick)
	}
	if q.Dropped() != 10 {
		t.Errorf("Expected 10 dropped, got %d", q.Dropped())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers = 8
	const perProducer = 20

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{
					Type:    EventDirectionRequest,
					Payload: &DirectionRequestPayload{Direction: core.DirUp},
				})
			}
		}()
	}
	wg.Wait()

	evs := q.Consume()
	if len(evs) != producers*perProducer {
		t.Fatalf("Expected %d events, got %d", producers*perProducer, len(evs))
	}
	for _, ev := range evs {
		p, ok := ev.Payload.(*DirectionRequestPayload)
		if !ok || p.Direction != core.DirUp {
			t.Fatalf("Corrupted payload %#v", ev.Payload)
		}
	}
}
