package ui

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gallery-viewer/internal/model"
	"github.com/ytget/gallery-viewer/internal/viewer"
)

// ModalViewer is the overlay that shows one image with zoom and actions.
// It only renders; state lives in the viewer reducer.
type ModalViewer struct {
	layer    *fyne.Container
	image    *canvas.Image
	imageBox *fyne.Container
	baseSize fyne.Size
	zoom     float64

	// UI components
	zoomLabel   *widget.Label
	zoomInBtn   *widget.Button
	zoomOutBtn  *widget.Button
	copyLinkBtn *widget.Button
	copyImgBtn  *widget.Button
	downloadBtn *widget.Button
	closeBtn    *widget.Button

	localization *Localization
	mobile       *MobileUI
	dispatch     func(viewer.Event)
}

// NewModalViewer creates a hidden viewer sending user input to dispatch
func NewModalViewer(localization *Localization, mobile *MobileUI, dispatch func(viewer.Event)) *ModalViewer {
	mv := &ModalViewer{
		localization: localization,
		mobile:       mobile,
		dispatch:     dispatch,
		zoom:         viewer.DefaultZoom,
	}
	mv.createUI()
	return mv
}

func (mv *ModalViewer) createUI() {
	mv.image = canvas.NewImageFromImage(nil)
	mv.image.FillMode = canvas.ImageFillContain
	mv.image.ScaleMode = canvas.ImageScaleSmooth

	// Taps on the image itself must not reach the backdrop
	mv.imageBox = container.NewCenter(mv.image)
	imageArea := newTapSink(container.NewScroll(mv.imageBox))

	mv.zoomLabel = widget.NewLabel(formatZoom(viewer.DefaultZoom))
	mv.zoomInBtn = mv.mobile.CreateControlButton(IconZoomIn, func() { mv.dispatch(viewer.ZoomIn{}) })
	mv.zoomOutBtn = mv.mobile.CreateControlButton(IconZoomOut, func() { mv.dispatch(viewer.ZoomOut{}) })
	mv.copyLinkBtn = mv.mobile.CreateControlButton("", func() { mv.dispatch(viewer.CopyLink{}) })
	mv.copyImgBtn = mv.mobile.CreateControlButton("", func() { mv.dispatch(viewer.CopyImage{}) })
	mv.downloadBtn = mv.mobile.CreateControlButton("", func() { mv.dispatch(viewer.Download{}) })
	mv.downloadBtn.Importance = widget.HighImportance
	mv.closeBtn = mv.mobile.CreateControlButton(IconClose, func() { mv.dispatch(viewer.Close{}) })
	mv.closeBtn.Importance = widget.LowImportance
	mv.RefreshTexts()

	controls := container.NewHBox(
		layout.NewSpacer(),
		mv.zoomOutBtn, mv.zoomLabel, mv.zoomInBtn,
		widget.NewSeparator(),
		mv.copyLinkBtn, mv.copyImgBtn, mv.downloadBtn,
		layout.NewSpacer(),
	)
	header := container.NewHBox(layout.NewSpacer(), mv.closeBtn)
	panel := container.NewBorder(header, controls, nil, nil, imageArea)

	shade := canvas.NewRectangle(themeColor(ColorNameBackdrop))
	back := newBackdrop(shade, func() { mv.dispatch(viewer.Close{}) }, mv.onGesture)

	mv.layer = container.NewStack(back, container.NewPadded(panel))
	mv.layer.Hide()
}

// onGesture closes the viewer on a vertical swipe
func (mv *ModalViewer) onGesture(gesture GestureType) {
	if gesture == GestureSwipeDown || gesture == GestureSwipeUp {
		mv.dispatch(viewer.Close{})
	}
}

// Layer returns the overlay object to stack above the gallery
func (mv *ModalViewer) Layer() fyne.CanvasObject {
	return mv.layer
}

// Show displays img at the default zoom
func (mv *ModalViewer) Show(img *model.Image) {
	if img == nil {
		return
	}
	mv.image.Image = img.Image
	mv.baseSize = fitSize(float32(img.Width()), float32(img.Height()), ModalImageMaxW, ModalImageMaxH)
	mv.ApplyZoom(viewer.DefaultZoom)
	mv.layer.Show()
	mv.layer.Refresh()
}

// Hide removes the overlay
func (mv *ModalViewer) Hide() {
	mv.layer.Hide()
}

// Visible returns true while the overlay is shown
func (mv *ModalViewer) Visible() bool {
	return mv.layer.Visible()
}

// ApplyZoom scales the image relative to its fitted size
func (mv *ModalViewer) ApplyZoom(zoom float64) {
	mv.zoom = zoom
	size := fyne.NewSize(mv.baseSize.Width*float32(zoom), mv.baseSize.Height*float32(zoom))
	mv.image.SetMinSize(size)
	mv.image.Refresh()
	mv.imageBox.Refresh()
	mv.zoomLabel.SetText(formatZoom(zoom))
}

// Zoom returns the zoom currently applied
func (mv *ModalViewer) Zoom() float64 {
	return mv.zoom
}

// ImageSize returns the current on-screen image size
func (mv *ModalViewer) ImageSize() fyne.Size {
	return mv.image.MinSize()
}

// RefreshTexts updates button labels after a language change
func (mv *ModalViewer) RefreshTexts() {
	mv.copyLinkBtn.SetText(IconLink + " " + mv.localization.GetText(KeyCopyLink))
	mv.copyImgBtn.SetText(IconCopy + " " + mv.localization.GetText(KeyCopyImage))
	mv.downloadBtn.SetText(IconDownload + " " + mv.localization.GetText(KeyDownload))
}

// fitSize scales w x h down to fit within maxW x maxH keeping the aspect ratio
func fitSize(w, h, maxW, maxH float32) fyne.Size {
	if w <= 0 || h <= 0 {
		return fyne.NewSize(maxW, maxH)
	}
	scale := float32(math.Min(float64(maxW/w), float64(maxH/h)))
	if scale > 1 {
		scale = 1
	}
	return fyne.NewSize(w*scale, h*scale)
}

func formatZoom(zoom float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(zoom*100)))
}

// tapSink absorbs taps so they do not fall through to the backdrop
type tapSink struct {
	widget.BaseWidget
	content fyne.CanvasObject
}

func newTapSink(content fyne.CanvasObject) *tapSink {
	ts := &tapSink{content: content}
	ts.ExtendBaseWidget(ts)
	return ts
}

// CreateRenderer creates the widget renderer
func (ts *tapSink) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ts.content)
}

// Tapped does nothing
func (ts *tapSink) Tapped(*fyne.PointEvent) {}
