package engine

import "github.com/lixenwraith/vi-snake/core"

// MaxEntitiesPerCell keeps gridCell at one cache line when Entity is uint64
// 7 * 8 (Entities) + 1 (Count) + 7 (Padding) = 64 bytes
// A live board holds at most head, one body segment and food in a cell during a collision tick
const MaxEntitiesPerCell = 7

// gridCell is a value type designed for contiguous memory layout
type gridCell struct {
	Count    uint8
	_        [7]byte
	Entities [MaxEntitiesPerCell]core.Entity
}

// SpatialGrid is a dense occupancy index over a centered board
// Cells outside the board are never stored
type SpatialGrid struct {
	grid  core.Grid
	cells []gridCell // Indexed by core.Grid.Index
}

// NewSpatialGrid creates an index covering every cell of g
func NewSpatialGrid(g core.Grid) *SpatialGrid {
	return &SpatialGrid{
		grid:  g,
		cells: make([]gridCell, g.Size()),
	}
}

// Add inserts an entity at c
// O(1), returns false if c is off the board or the cell is full
func (sg *SpatialGrid) Add(e core.Entity, c core.Cell) bool {
	idx := sg.grid.Index(c)
	if idx < 0 {
		return false
	}

	cell := &sg.cells[idx]
	if cell.Count >= MaxEntitiesPerCell {
		return false
	}
	cell.Entities[cell.Count] = e
	cell.Count++
	return true
}

// Remove deletes an entity at c using swap-remove to keep the cell dense
func (sg *SpatialGrid) Remove(e core.Entity, c core.Cell) {
	idx := sg.grid.Index(c)
	if idx < 0 {
		return
	}

	cell := &sg.cells[idx]
	for i := uint8(0); i < cell.Count; i++ {
		if cell.Entities[i] != e {
			continue
		}
		cell.Count--
		if i < cell.Count {
			cell.Entities[i] = cell.Entities[cell.Count]
		}
		cell.Entities[cell.Count] = 0
		return
	}
}

// EntitiesAt returns a view of the entities at c
// INTERNAL USE ONLY - callers must copy or hold external lock
func (sg *SpatialGrid) EntitiesAt(c core.Cell) []core.Entity {
	idx := sg.grid.Index(c)
	if idx < 0 {
		return nil
	}
	cell := &sg.cells[idx]
	if cell.Count == 0 {
		return nil
	}
	return cell.Entities[:cell.Count]
}

// HasAny returns true if at least one entity sits at c. O(1)
func (sg *SpatialGrid) HasAny(c core.Cell) bool {
	idx := sg.grid.Index(c)
	return idx >= 0 && sg.cells[idx].Count > 0
}

// Clear empties every cell
func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].Count = 0
	}
}

// Grid returns the board this index covers
func (sg *SpatialGrid) Grid() core.Grid {
	return sg.grid
}
