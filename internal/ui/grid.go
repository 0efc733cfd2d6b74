package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/ytget/gallery-viewer/internal/model"
)

// GalleryGrid shows the tiles of the active set in a scrollable wrap grid
type GalleryGrid struct {
	grid   *fyne.Container
	scroll *container.Scroll
	tiles  []*GalleryTile
	side   float32
	locked bool

	onTap func(model.Tile)
}

// NewGalleryGrid creates an empty grid with square cells of side
func NewGalleryGrid(side float32, onTap func(model.Tile)) *GalleryGrid {
	gg := &GalleryGrid{
		side:  side,
		onTap: onTap,
	}
	gg.createUI()
	return gg
}

func (gg *GalleryGrid) createUI() {
	gg.grid = container.NewGridWrap(gg.cellSize())
	gg.scroll = container.NewVScroll(gg.grid)
}

// cellSize leaves room for the caption under the image
func (gg *GalleryGrid) cellSize() fyne.Size {
	return fyne.NewSize(gg.side, gg.side+TileCaptionH)
}

// Container returns the scrollable grid
func (gg *GalleryGrid) Container() fyne.CanvasObject {
	return gg.scroll
}

// SetTiles replaces every cell. When schedule is non-nil each tile fades in
// after its stagger delay.
func (gg *GalleryGrid) SetTiles(tiles []model.Tile, captionFormat string, schedule func(time.Duration, func())) {
	gg.tiles = make([]*GalleryTile, 0, len(tiles))
	objects := make([]fyne.CanvasObject, 0, len(tiles))

	for _, tile := range tiles {
		gt := NewGalleryTile(tile, tile.Caption(captionFormat), gg.side, gg.onTap)
		if schedule != nil {
			gt.FadeIn(schedule)
		}
		gg.tiles = append(gg.tiles, gt)
		objects = append(objects, gt)
	}

	gg.grid.Objects = objects
	gg.grid.Refresh()
}

// Tiles returns the tile widgets in index order
func (gg *GalleryGrid) Tiles() []*GalleryTile {
	return gg.tiles
}

// Clear removes every cell
func (gg *GalleryGrid) Clear() {
	gg.tiles = nil
	gg.grid.Objects = nil
	gg.grid.Refresh()
}

// FadeOut fades every tile to transparent
func (gg *GalleryGrid) FadeOut() {
	for _, gt := range gg.tiles {
		gt.FadeOut()
	}
}

// SetTileSide changes the cell size; existing tiles keep their images
func (gg *GalleryGrid) SetTileSide(side float32) {
	if side <= 0 || side == gg.side {
		return
	}
	gg.side = side
	gg.grid.Layout = layout.NewGridWrapLayout(gg.cellSize())
	gg.grid.Refresh()
}

// TileSide returns the current cell side
func (gg *GalleryGrid) TileSide() float32 {
	return gg.side
}

// LockScroll stops the grid from scrolling while the viewer is open
func (gg *GalleryGrid) LockScroll() {
	gg.locked = true
	gg.scroll.Direction = container.ScrollNone
	gg.scroll.Refresh()
}

// UnlockScroll restores vertical scrolling
func (gg *GalleryGrid) UnlockScroll() {
	gg.locked = false
	gg.scroll.Direction = container.ScrollVerticalOnly
	gg.scroll.Refresh()
}

// IsScrollLocked returns true while scrolling is locked
func (gg *GalleryGrid) IsScrollLocked() bool {
	return gg.locked
}
