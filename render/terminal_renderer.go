package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/engine/status"
)

// TerminalRenderer draws snapshots onto a tcell screen
// Layout: bordered board at the top-left, two status rows below it
// Each board cell spans TerminalCellWidth columns whatever the grid's pixel CellSize
// World y grows upward so rows are flipped
type TerminalRenderer struct {
	screen tcell.Screen
	status *status.Registry
}

// NewTerminalRenderer creates a renderer; reg may be nil to hide metrics
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		status: reg,
	}
}

// CellToScreen maps a board cell to the screen column and row of its first glyph
func CellToScreen(grid core.Grid, c core.Cell) (int, int) {
	col := 1 + (c.X-grid.MinX())*constants.TerminalCellWidth
	row := 1 + (grid.MaxY() - c.Y)
	return col, row
}

// BoardSize returns the screen columns and rows the bordered board occupies
func BoardSize(grid core.Grid) (int, int) {
	return grid.Width*constants.TerminalCellWidth + 2, grid.Height + 2
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, paused bool) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.drawBorder(snap.Grid, defaultStyle)

	if snap.Food != nil {
		r.drawCell(snap.Grid, *snap.Food, constants.GlyphFood, defaultStyle.Foreground(RgbFood))
	}

	// Tail first so the head glyph wins if a terminal frame overlaps cells
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		if !snap.Grid.Contains(seg.Cell) {
			continue
		}
		if seg.Role == engine.RoleHead {
			r.drawCell(snap.Grid, seg.Cell, constants.GlyphHead, defaultStyle.Foreground(RgbHead).Bold(true))
		} else {
			r.drawCell(snap.Grid, seg.Cell, constants.GlyphBody, defaultStyle.Foreground(RgbBody))
		}
	}

	r.drawStatusBar(snap, paused, defaultStyle)

	if !snap.Alive {
		r.drawGameOver(snap, defaultStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(grid core.Grid, defaultStyle tcell.Style) {
	w, h := BoardSize(grid)
	style := defaultStyle.Foreground(RgbBorder)

	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, constants.GlyphBorder, nil, style)
		r.screen.SetContent(x, h-1, constants.GlyphBorder, nil, style)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, constants.GlyphBorder, nil, style)
		r.screen.SetContent(w-1, y, constants.GlyphBorder, nil, style)
		for x := 1; x < w-1; x++ {
			r.screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
	}
}

func (r *TerminalRenderer) drawCell(grid core.Grid, c core.Cell, glyph rune, style tcell.Style) {
	col, row := CellToScreen(grid, c)
	r.screen.SetContent(col, row, glyph, nil, style)
	for i := 1; i < constants.TerminalCellWidth; i++ {
		r.screen.SetContent(col+i, row, ' ', nil, style)
	}
}

func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, paused bool, defaultStyle tcell.Style) {
	_, boardH := BoardSize(snap.Grid)
	statusY := boardH

	var (
		modeText string
		modeBg   tcell.Color
		helpText = constants.HelpTextRunning
	)
	switch {
	case !snap.Alive:
		modeText = constants.StatusTextGameOver
		modeBg = RgbModeGameOverBg
		helpText = constants.HelpTextGameOver
	case paused:
		modeText = constants.StatusTextPaused
		modeBg = RgbModePausedBg
	default:
		modeText = constants.StatusTextRunning
		modeBg = RgbModeRunningBg
	}

	x := r.drawText(0, statusY, modeText, defaultStyle.Foreground(RgbModeText).Background(modeBg))

	info := fmt.Sprintf(" len %d  meals %d  ticks %d  dir %s", snap.Length, snap.Meals, snap.Ticks, snap.Direction)
	if r.status != nil {
		info += fmt.Sprintf("  spawned %d  fallbacks %d",
			r.status.Ints.Get("food.spawned").Load(),
			r.status.Ints.Get("food.fallbacks").Load())
	}
	r.drawText(x, statusY, info, defaultStyle.Foreground(RgbStatusText))

	r.drawText(0, statusY+1, helpText, defaultStyle.Foreground(RgbBorder))
}

func (r *TerminalRenderer) drawGameOver(snap engine.Snapshot, defaultStyle tcell.Style) {
	w, h := BoardSize(snap.Grid)
	msg := fmt.Sprintf(" GAME OVER: %s ", snap.Cause)
	x := max((w-len(msg))/2, 0)
	r.drawText(x, h/2, msg, defaultStyle.Foreground(RgbGameOver).Bold(true))
}

// drawText writes s at (x, y) clipped to the screen width and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	width, _ := r.screen.Size()
	for _, ch := range s {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
