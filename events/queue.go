package events

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/constants"
)

// EventQueue is a lock-free MPSC ring buffer
// Producers are the input poller, the HTTP handlers and systems running under the world lock
// The single consumer is the frame dispatch in GameContext
//
// Overflow: oldest events are overwritten and counted in Dropped
type EventQueue struct {
	slots     [constants.EventQueueSize]GameEvent
	published [constants.EventQueueSize]atomic.Bool // Slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
	dropped   atomic.Uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push reserves a slot with CAS, writes it, then publishes
func (eq *EventQueue) Push(event GameEvent) {
	for {
		tail := eq.tail.Load()
		next := tail + 1
		if !eq.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & constants.EventBufferMask
		eq.slots[idx] = event
		eq.published[idx].Store(true) // MUST be after write

		head := eq.head.Load()
		if next-head > constants.EventQueueSize {
			if eq.head.CompareAndSwap(head, next-constants.EventQueueSize) {
				eq.dropped.Add(next - constants.EventQueueSize - head)
			}
		}
		return
	}
}

// Emit is shorthand for Push with a fresh GameEvent
func (eq *EventQueue) Emit(et EventType, payload any, tick uint64) {
	eq.Push(GameEvent{Type: et, Payload: payload, Tick: tick})
}

// Consume returns all published events in FIFO order and advances head
// Stops at the first slot whose writer has not finished
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return nil
		}

		available := tail - head
		if available > constants.EventQueueSize {
			available = constants.EventQueueSize
			head = tail - constants.EventQueueSize
		}

		out := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (head + i) & constants.EventBufferMask
			if !eq.published[idx].Load() {
				break
			}
			out = append(out, eq.slots[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Pending returns the number of reserved but unconsumed slots
func (eq *EventQueue) Pending() int {
	n := eq.tail.Load() - eq.head.Load()
	if n > constants.EventQueueSize {
		n = constants.EventQueueSize
	}
	return int(n)
}

// Dropped returns the number of events lost to overflow
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}
