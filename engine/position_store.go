package engine

import (
	"sync"

	"github.com/lixenwraith/vi-snake/components"
	"github.com/lixenwraith/vi-snake/core"
)

// PositionStore is a Store of PositionComponent kept consistent with a SpatialGrid
// Positions off the board are stored but not indexed, so a head that left the board is still addressable
type PositionStore struct {
	*Store[components.PositionComponent]
	index   *SpatialGrid
	indexMu sync.RWMutex
}

// NewPositionStore creates a position store indexed over g
func NewPositionStore(g core.Grid) *PositionStore {
	return &PositionStore{
		Store: NewStore[components.PositionComponent](),
		index: NewSpatialGrid(g),
	}
}

// Set places or moves an entity, updating the index atomically with the component
func (ps *PositionStore) Set(e core.Entity, pos components.PositionComponent) {
	ps.indexMu.Lock()
	defer ps.indexMu.Unlock()

	if old, exists := ps.Store.Get(e); exists {
		ps.index.Remove(e, old.Cell())
	}
	ps.Store.Set(e, pos)
	ps.index.Add(e, pos.Cell())
}

// SetCell is Set for a core.Cell
func (ps *PositionStore) SetCell(e core.Entity, c core.Cell) {
	ps.Set(e, components.PositionAt(c))
}

// Remove deletes the entity's position and its index entry
func (ps *PositionStore) Remove(e core.Entity) {
	ps.indexMu.Lock()
	defer ps.indexMu.Unlock()

	if pos, exists := ps.Store.Get(e); exists {
		ps.index.Remove(e, pos.Cell())
	}
	ps.Store.Remove(e)
}

// CellOf returns the cell an entity occupies
func (ps *PositionStore) CellOf(e core.Entity) (core.Cell, bool) {
	pos, ok := ps.Store.Get(e)
	return pos.Cell(), ok
}

// EntitiesAt returns a copy of the entities at c
func (ps *PositionStore) EntitiesAt(c core.Cell) []core.Entity {
	ps.indexMu.RLock()
	defer ps.indexMu.RUnlock()

	view := ps.index.EntitiesAt(c)
	if len(view) == 0 {
		return nil
	}
	out := make([]core.Entity, len(view))
	copy(out, view)
	return out
}

// AnyAt reports whether any entity at c satisfies match, without allocating
func (ps *PositionStore) AnyAt(c core.Cell, match func(core.Entity) bool) bool {
	ps.indexMu.RLock()
	defer ps.indexMu.RUnlock()

	for _, e := range ps.index.EntitiesAt(c) {
		if match(e) {
			return true
		}
	}
	return false
}

// HasAny returns true if any entity is indexed at c
func (ps *PositionStore) HasAny(c core.Cell) bool {
	ps.indexMu.RLock()
	defer ps.indexMu.RUnlock()
	return ps.index.HasAny(c)
}

// Clear removes all positions and empties the index
func (ps *PositionStore) Clear() {
	ps.indexMu.Lock()
	defer ps.indexMu.Unlock()

	ps.Store.Clear()
	ps.index.Clear()
}
