package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// ImageRenderer draws snapshots as raster images, one square of CellSize pixels per cell
type ImageRenderer struct {
	cellSize int
}

// NewImageRenderer creates a renderer; cellSize below 1 falls back to DefaultCellSize
func NewImageRenderer(cellSize int) *ImageRenderer {
	if cellSize < 1 {
		cellSize = constants.DefaultCellSize
	}
	return &ImageRenderer{cellSize: cellSize}
}

// CellToPixel returns the top-left pixel of a board cell
func (r *ImageRenderer) CellToPixel(grid core.Grid, c core.Cell) (int, int) {
	return (c.X - grid.MinX()) * r.cellSize, (grid.MaxY() - c.Y) * r.cellSize
}

// Render draws snap onto a new image
func (r *ImageRenderer) Render(snap engine.Snapshot) image.Image {
	width := snap.Grid.Width * r.cellSize
	height := snap.Grid.Height * r.cellSize
	dc := gg.NewContext(width, height)

	setRGB(dc, constants.RgbBackground)
	dc.Clear()

	r.drawGrid(dc, width, height)

	if snap.Food != nil {
		r.fillCell(dc, snap.Grid, *snap.Food, constants.RgbFood)
	}
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		seg := snap.Segments[i]
		if !snap.Grid.Contains(seg.Cell) {
			continue
		}
		if seg.Role == engine.RoleHead {
			r.fillCell(dc, snap.Grid, seg.Cell, constants.RgbHead)
		} else {
			r.fillCell(dc, snap.Grid, seg.Cell, constants.RgbBody)
		}
	}

	if !snap.Alive {
		c := constants.RgbGameOver
		dc.SetRGBA255(int(c[0]), int(c[1]), int(c[2]), 64)
		dc.DrawRectangle(0, 0, float64(width), float64(height))
		dc.Fill()
	}

	return dc.Image()
}

// EncodePNG renders snap and writes it to w as PNG
func (r *ImageRenderer) EncodePNG(w io.Writer, snap engine.Snapshot) error {
	return EncodeImagePNG(w, r.Render(snap))
}

// EncodeImagePNG writes img to w as PNG
func EncodeImagePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Thumbnail renders snap scaled to fit inside a maxSide square, preserving aspect ratio
func (r *ImageRenderer) Thumbnail(snap engine.Snapshot, maxSide int) image.Image {
	return imaging.Fit(r.Render(snap), maxSide, maxSide, imaging.Lanczos)
}

// SavePNG renders snap to a file, creating parent directories as needed
func (r *ImageRenderer) SavePNG(path string, snap engine.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	if err := imaging.Save(r.Render(snap), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (r *ImageRenderer) drawGrid(dc *gg.Context, width, height int) {
	c := constants.RgbBorder
	dc.SetRGBA255(int(c[0]), int(c[1]), int(c[2]), 96)
	dc.SetLineWidth(1)
	for x := 0; x <= width; x += r.cellSize {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += r.cellSize {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}

// fillCell paints a cell inset by one pixel so grid lines stay visible
func (r *ImageRenderer) fillCell(dc *gg.Context, grid core.Grid, c core.Cell, rgb [3]int32) {
	px, py := r.CellToPixel(grid, c)
	setRGB(dc, rgb)
	dc.DrawRectangle(float64(px+1), float64(py+1), float64(r.cellSize-2), float64(r.cellSize-2))
	dc.Fill()
}

func setRGB(dc *gg.Context, c [3]int32) {
	dc.SetRGB255(int(c[0]), int(c[1]), int(c[2]))
}
