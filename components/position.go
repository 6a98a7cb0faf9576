package components

import "github.com/lixenwraith/vi-snake/core"

// PositionComponent places an entity on the board
type PositionComponent struct {
	X, Y int
}

// Cell returns the position as a grid cell
func (p PositionComponent) Cell() core.Cell {
	return core.Cell{X: p.X, Y: p.Y}
}

// PositionAt builds a PositionComponent from a cell
func PositionAt(c core.Cell) PositionComponent {
	return PositionComponent{X: c.X, Y: c.Y}
}
