package model

import (
	"fmt"
	"image"
	"time"
)

// Image is a loaded, decoded image handle held by the cache
type Image struct {
	Address   string
	Image     image.Image
	Thumbnail image.Image // downscaled copy used by gallery tiles
	Format    string      // decoder name, e.g. "png"
	Size      int64       // encoded size in bytes
	LoadedAt  time.Time
}

// Width returns the decoded width in pixels, 0 if nothing is decoded
func (img *Image) Width() int {
	if img == nil || img.Image == nil {
		return 0
	}
	return img.Image.Bounds().Dx()
}

// Height returns the decoded height in pixels, 0 if nothing is decoded
func (img *Image) Height() int {
	if img == nil || img.Image == nil {
		return 0
	}
	return img.Image.Bounds().Dy()
}

// Preview returns the thumbnail when present, otherwise the full image
func (img *Image) Preview() image.Image {
	if img == nil {
		return nil
	}
	if img.Thumbnail != nil {
		return img.Thumbnail
	}
	return img.Image
}

// Tile is one rendered gallery entry; rebuilt wholesale on every render
type Tile struct {
	Index   int
	Address string
	Image   *Image        // nil for placeholder tiles
	Delay   time.Duration // staggered appearance delay, cosmetic only
}

// IsPlaceholder returns true when the tile has no loaded image
func (t Tile) IsPlaceholder() bool {
	return t.Image == nil
}

// Caption returns the per-tile caption; placeholders carry none
func (t Tile) Caption(format string) string {
	if t.IsPlaceholder() {
		return ""
	}
	return fmt.Sprintf(format, t.Index)
}

// Download describes a finished image download
type Download struct {
	ID         string
	Address    string
	FileName   string
	OutputPath string
	Size       int64
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the download took, 0 if unfinished
func (d *Download) Duration() time.Duration {
	if d.FinishedAt.IsZero() || d.StartedAt.IsZero() {
		return 0
	}
	return d.FinishedAt.Sub(d.StartedAt)
}
