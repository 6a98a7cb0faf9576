package engine

import (
	"reflect"
	"sync"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine/status"
	"github.com/lixenwraith/vi-snake/events"
)

// ResourceStore is a thread-safe container for global game resources
// Systems reach shared config, state and queue without coupling to GameContext
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its dynamic type
// Pointers are recommended so systems observe in-place updates
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Used for core resources that must exist
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("Required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// --- Core Resources ---

// ConfigResource holds the simulation configuration
type ConfigResource struct {
	Grid             core.Grid
	InitialLength    int
	InitialDirection core.Direction
	FoodMaxAttempts  int
	Seed             uint64
}

// EventQueueResource wraps the event queue for system access
type EventQueueResource struct {
	Queue *events.EventQueue
}

// GameStateResource wraps GameState for systems
type GameStateResource struct {
	State *GameState
}

// CoreResources provides cached pointers to singleton resources
// Initialized once per system to eliminate runtime map lookups
type CoreResources struct {
	Config *ConfigResource
	State  *GameStateResource
	Events *EventQueueResource
	Status *status.Registry
}

// GetCoreResources populates CoreResources from the world's resource store
// Call once during system construction; pointers remain valid for the world lifetime
func GetCoreResources(w *World) CoreResources {
	return CoreResources{
		Config: MustGetResource[*ConfigResource](w.Resources),
		State:  MustGetResource[*GameStateResource](w.Resources),
		Events: MustGetResource[*EventQueueResource](w.Resources),
		Status: MustGetResource[*status.Registry](w.Resources),
	}
}
