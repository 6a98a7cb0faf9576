package engine

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestSpatialGridAddRemove(t *testing.T) {
	sg := NewSpatialGrid(core.NewGrid(20, 20, 1))
	c := core.Cell{X: -10, Y: 9}

	if !sg.Add(1, c) || !sg.Add(2, c) {
		t.Fatal("Expected adds to succeed")
	}
	if got := sg.EntitiesAt(c); len(got) != 2 {
		t.Fatalf("Expected 2 entities, got %v", got)
	}

	sg.Remove(1, c)
	got := sg.EntitiesAt(c)
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("Expected [2] after swap-remove, got %v", got)
	}

	sg.Remove(2, c)
	if sg.HasAny(c) {
		t.Error("Expected empty cell")
	}
}

func TestSpatialGridOffBoard(t *testing.T) {
	sg := NewSpatialGrid(core.NewGrid(20, 20, 1))

	if sg.Add(1, core.Cell{X: 10, Y: 0}) {
		t.Error("Expected off-board add to fail")
	}
	if sg.HasAny(core.Cell{X: 10, Y: 0}) {
		t.Error("Off-board cell should never report entities")
	}
	sg.Remove(1, core.Cell{X: 10, Y: 0})
}

func TestSpatialGridCellCapacity(t *testing.T) {
	sg := NewSpatialGrid(core.NewGrid(4, 4, 1))
	c := core.Cell{}
	for i := 0; i < MaxEntitiesPerCell; i++ {
		if !sg.Add(core.Entity(i+1), c) {
			t.Fatalf("Add %d failed before capacity", i)
		}
	}
	if sg.Add(99, c) {
		t.Error("Expected add beyond capacity to fail")
	}
}

func TestPositionStoreMoveReindexes(t *testing.T) {
	ps := NewPositionStore(core.NewGrid(20, 20, 1))
	from := core.Cell{X: 1, Y: 1}
	to := core.Cell{X: 2, Y: 1}

	ps.SetCell(5, from)
	ps.SetCell(5, to)

	if ps.HasAny(from) {
		t.Error("Old cell still indexed after move")
	}
	if got := ps.EntitiesAt(to); len(got) != 1 || got[0] != 5 {
		t.Errorf("Expected [5] at new cell, got %v", got)
	}

	// Off-board positions are kept but not indexed
	off := core.Cell{X: 50, Y: 0}
	ps.SetCell(5, off)
	if cell, ok := ps.CellOf(5); !ok || cell != off {
		t.Errorf("Expected off-board position kept, got %v %v", cell, ok)
	}
	if ps.HasAny(to) {
		t.Error("Previous cell still indexed")
	}
}
