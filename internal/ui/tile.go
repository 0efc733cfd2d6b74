package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gallery-viewer/internal/gallery"
	"github.com/ytget/gallery-viewer/internal/model"
)

// Translucency bounds used by fades
const (
	opaque      = 0.0
	transparent = 1.0
)

// GalleryTile is one cell of the gallery grid
type GalleryTile struct {
	widget.BaseWidget

	tile  model.Tile
	onTap func(model.Tile)

	// UI components
	image        *canvas.Image
	placeholder  *canvas.Rectangle
	icon         *canvas.Text
	captionLabel *widget.Label
	content      *fyne.Container

	fade *fyne.Animation
}

// NewGalleryTile creates a tile widget of the given side length
func NewGalleryTile(tile model.Tile, caption string, side float32, onTap func(model.Tile)) *GalleryTile {
	gt := &GalleryTile{
		tile:  tile,
		onTap: onTap,
	}
	gt.ExtendBaseWidget(gt)
	gt.createUI(caption, side)
	return gt
}

// createUI builds either the image or the placeholder layout
func (gt *GalleryTile) createUI(caption string, side float32) {
	gt.captionLabel = widget.NewLabel(caption)
	gt.captionLabel.Alignment = fyne.TextAlignCenter
	gt.captionLabel.Truncation = fyne.TextTruncateEllipsis

	gt.placeholder = canvas.NewRectangle(themeColor(ColorNamePlaceholder))
	gt.placeholder.CornerRadius = 6
	gt.placeholder.SetMinSize(fyne.NewSize(side, side))

	var body fyne.CanvasObject
	if gt.tile.IsPlaceholder() {
		gt.icon = canvas.NewText(IconImage, themeColor(theme.ColorNameDisabled))
		gt.icon.TextSize = side / 4
		gt.icon.Alignment = fyne.TextAlignCenter
		body = container.NewStack(gt.placeholder, container.NewCenter(gt.icon))
		gt.captionLabel.Hide()
	} else {
		gt.image = canvas.NewImageFromImage(gt.tile.Image.Preview())
		gt.image.FillMode = canvas.ImageFillContain
		gt.image.ScaleMode = canvas.ImageScaleSmooth
		gt.image.SetMinSize(fyne.NewSize(side, side))
		body = container.NewStack(gt.placeholder, gt.image)
	}

	gt.content = container.NewBorder(nil, gt.captionLabel, nil, nil, body)
}

// Tile returns the model the widget shows
func (gt *GalleryTile) Tile() model.Tile {
	return gt.tile
}

// Tapped opens the tile in the viewer
func (gt *GalleryTile) Tapped(*fyne.PointEvent) {
	if gt.onTap != nil {
		gt.onTap(gt.tile)
	}
}

// SetTranslucency sets the image translucency; placeholders have none
func (gt *GalleryTile) SetTranslucency(value float64) {
	if gt.image == nil {
		return
	}
	gt.image.Translucency = value
	gt.image.Refresh()
}

// Translucency returns the current image translucency
func (gt *GalleryTile) Translucency() float64 {
	if gt.image == nil {
		return opaque
	}
	return gt.image.Translucency
}

// FadeIn starts the tile transparent and fades it in after its stagger delay
func (gt *GalleryTile) FadeIn(schedule func(time.Duration, func())) {
	if gt.image == nil {
		return
	}
	gt.image.Translucency = transparent
	gt.fade = fyne.NewAnimation(gallery.FadeDuration, func(done float32) {
		gt.SetTranslucency(transparent - float64(done))
	})
	schedule(gt.tile.Delay, gt.fade.Start)
}

// FadeOut fades the image to transparent
func (gt *GalleryTile) FadeOut() {
	if gt.image == nil {
		return
	}
	if gt.fade != nil {
		gt.fade.Stop()
	}
	gt.fade = fyne.NewAnimation(gallery.FadeDuration, func(done float32) {
		gt.SetTranslucency(float64(done))
	})
	gt.fade.Start()
}

// CreateRenderer creates the widget renderer
func (gt *GalleryTile) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(gt.content)
}
