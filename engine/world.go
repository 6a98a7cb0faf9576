package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/core"
)

// World is the arena of all entities and their components
// Entity ids are allocated monotonically and never reused, so a stale id can only miss, never alias
// Mutations are serialized by the world lock; systems run inside RunSafe
type World struct {
	mu           sync.RWMutex
	nextEntityID atomic.Uint64

	Resources *ResourceStore

	// Component Stores (Public for direct system access)
	Positions *PositionStore
	Snakes    *Store[components.SnakeComponent]
	Segments  *Store[components.SegmentComponent]
	Heads     *Store[components.HeadComponent]
	Tails     *Store[components.TailComponent]
	Foods     *Store[components.FoodComponent]

	// Lifecycle registry, every store implements AnyStore for uniform cleanup
	allStores []AnyStore
}

// NewWorld creates a world whose position index covers g
func NewWorld(g core.Grid) *World {
	w := &World{
		Resources: NewResourceStore(),
		Positions: NewPositionStore(g),
		Snakes:    NewStore[components.SnakeComponent](),
		Segments:  NewStore[components.SegmentComponent](),
		Heads:     NewStore[components.HeadComponent](),
		Tails:     NewStore[components.TailComponent](),
		Foods:     NewStore[components.FoodComponent](),
	}

	// PositionStore itself is registered so removals also clear the spatial index
	w.allStores = []AnyStore{
		w.Positions,
		w.Snakes,
		w.Segments,
		w.Heads,
		w.Tails,
		w.Foods,
	}
	return w
}

// CreateEntity reserves a new entity id without adding any components
func (w *World) CreateEntity() core.Entity {
	return core.Entity(w.nextEntityID.Add(1))
}

// DestroyEntity removes every component of e
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// HasEntity reports whether any store holds e
func (w *World) HasEntity(e core.Entity) bool {
	for _, s := range w.allStores {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Clear drops every component; the id counter keeps running
func (w *World) Clear() {
	for _, s := range w.allStores {
		s.Clear()
	}
}

// Grid returns the board covered by the position index
func (w *World) Grid() core.Grid {
	return w.Positions.index.Grid()
}

// Lock acquires the world write lock
func (w *World) Lock() { w.mu.Lock() }

// Unlock releases the world write lock
func (w *World) Unlock() { w.mu.Unlock() }

// RLock acquires the world read lock
func (w *World) RLock() { w.mu.RLock() }

// RUnlock releases the world read lock
func (w *World) RUnlock() { w.mu.RUnlock() }

// RunSafe executes fn under the world write lock
func (w *World) RunSafe(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn()
}

// RunRead executes fn under the world read lock
func (w *World) RunRead(fn func()) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	fn()
}
