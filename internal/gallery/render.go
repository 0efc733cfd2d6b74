// Package gallery builds the tile list for the active image set and tracks
// which set is active.
package gallery

import (
	"time"

	"github.com/ytget/gallery-viewer/internal/cache"
	"github.com/ytget/gallery-viewer/internal/model"
)

// Presentation timing. These only shape how the UI animates a render;
// Render itself never waits.
const (
	RenderDelay  = 300 * time.Millisecond // pause after clearing the grid
	FadeDuration = 300 * time.Millisecond // fade-out before a set switch
	TileStagger  = 50 * time.Millisecond  // per-index appearance delay
)

// Render returns one tile per index 1..total, in order. Tiles whose image is
// cached carry its handle; the rest are placeholders. The result depends only
// on the cache contents, so repeated calls are equivalent.
func Render(c *cache.Cache, set model.ImageSet, total int, ext string) []model.Tile {
	if total < 0 {
		total = 0
	}

	tiles := make([]model.Tile, 0, total)
	for i := 1; i <= total; i++ {
		tile := model.Tile{
			Index: i,
			Delay: time.Duration(i) * TileStagger,
		}
		if img, ok := c.Get(set.Name, i); ok {
			tile.Image = img
			tile.Address = img.Address
		} else {
			tile.Address = set.Address(i, ext)
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

// CountPlaceholders returns how many tiles have no image
func CountPlaceholders(tiles []model.Tile) int {
	n := 0
	for _, t := range tiles {
		if t.IsPlaceholder() {
			n++
		}
	}
	return n
}
