package core

import "iter"

// Cell is an integer grid coordinate
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the cell one step from c along d
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Grid is a fixed-size board centered on the origin
// Valid cells span [MinX, MaxX] x [MinY, MaxY] inclusive
type Grid struct {
	Width    int `json:"width"`     // Cells along X
	Height   int `json:"height"`    // Cells along Y
	CellSize int `json:"cell_size"` // Render units per cell, does not affect simulation
}

// NewGrid creates a grid, dimensions below 1 are clamped to 1
func NewGrid(width, height, cellSize int) Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if cellSize < 1 {
		cellSize = 1
	}
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

func (g Grid) MinX() int { return -g.Width / 2 }
func (g Grid) MaxX() int { return g.MinX() + g.Width - 1 }
func (g Grid) MinY() int { return -g.Height / 2 }
func (g Grid) MaxY() int { return g.MinY() + g.Height - 1 }

// Size returns the number of cells on the board
func (g Grid) Size() int {
	return g.Width * g.Height
}

// Contains reports whether c lies inside the board
func (g Grid) Contains(c Cell) bool {
	return c.X >= g.MinX() && c.X <= g.MaxX() && c.Y >= g.MinY() && c.Y <= g.MaxY()
}

// Index maps an in-bounds cell to a dense row-major index, -1 when out of bounds
func (g Grid) Index(c Cell) int {
	if !g.Contains(c) {
		return -1
	}
	return (c.Y-g.MinY())*g.Width + (c.X - g.MinX())
}

// CellAt is the inverse of Index
func (g Grid) CellAt(idx int) Cell {
	return Cell{X: g.MinX() + idx%g.Width, Y: g.MinY() + idx/g.Width}
}

// Cells yields every cell of the board in row-major order starting at (MinX, MinY)
func (g Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := 0; i < g.Size(); i++ {
			if !yield(g.CellAt(i)) {
				return
			}
		}
	}
}

// Center returns the origin-nearest cell, which is (0,0) for any grid of width and height >= 1
func (g Grid) Center() Cell {
	return Cell{}
}
