package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// noticePanel is the transient message bubble at the bottom of the window.
// It implements notify.Display; calls may come from timer goroutines, so
// every change goes through run.
type noticePanel struct {
	label   *widget.Label
	bubble  *fyne.Container
	overlay *fyne.Container
	run     func(func())
}

func newNoticePanel(run func(func())) *noticePanel {
	np := &noticePanel{run: run}

	np.label = widget.NewLabel("")
	np.label.Alignment = fyne.TextAlignCenter
	np.label.Importance = widget.HighImportance

	background := canvas.NewRectangle(themeColor(ColorNameNotice))
	background.CornerRadius = 8
	np.bubble = container.NewStack(background, container.NewPadded(np.label))
	np.bubble.Hide()

	np.overlay = container.NewVBox(layout.NewSpacer(), container.NewPadded(container.NewCenter(np.bubble)))
	return np
}

// Container returns the overlay holding the bubble
func (np *noticePanel) Container() fyne.CanvasObject {
	return np.overlay
}

// SetText sets the message
func (np *noticePanel) SetText(text string) {
	np.run(func() { np.label.SetText(text) })
}

// Show makes the bubble visible
func (np *noticePanel) Show() {
	np.run(func() {
		np.bubble.Show()
		np.overlay.Refresh()
	})
}

// Hide hides the bubble
func (np *noticePanel) Hide() {
	np.run(func() {
		np.bubble.Hide()
		np.overlay.Refresh()
	})
}

// Text returns the message currently set
func (np *noticePanel) Text() string {
	return np.label.Text
}

// Visible returns true while the bubble is shown
func (np *noticePanel) Visible() bool {
	return np.bubble.Visible()
}
