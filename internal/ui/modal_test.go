package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/gallery-viewer/internal/model"
	"github.com/ytget/gallery-viewer/internal/viewer"
)

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h     float32
		expected fyne.Size
	}{
		{1800, 640, fyne.NewSize(900, 320)},
		{400, 1280, fyne.NewSize(200, 640)},
		{300, 200, fyne.NewSize(300, 200)}, // never upscaled
		{0, 0, fyne.NewSize(900, 640)},
	}

	for _, test := range tests {
		if result := fitSize(test.w, test.h, 900, 640); result != test.expected {
			t.Errorf("fitSize(%v, %v) = %v, expected %v", test.w, test.h, result, test.expected)
		}
	}
}

func TestFormatZoom(t *testing.T) {
	if formatZoom(1.1) != "110%" {
		t.Errorf("Unexpected label %s", formatZoom(1.1))
	}
	if formatZoom(0.3) != "30%" {
		t.Errorf("Unexpected label %s", formatZoom(0.3))
	}
}

func TestModalViewer(t *testing.T) {
	test.NewApp()

	var events []viewer.Event
	mv := NewModalViewer(NewLocalization(), NewMobileUI(nil), func(ev viewer.Event) {
		events = append(events, ev)
	})

	if mv.Visible() {
		t.Error("Viewer should start hidden")
	}

	mv.Show(&model.Image{Address: "a.png", Image: image.NewRGBA(image.Rect(0, 0, 300, 200))})
	if !mv.Visible() {
		t.Error("Viewer should be visible after Show")
	}
	if mv.ImageSize() != fyne.NewSize(300, 200) {
		t.Errorf("Unexpected image size %v", mv.ImageSize())
	}

	mv.ApplyZoom(1.5)
	if mv.ImageSize() != fyne.NewSize(450, 300) {
		t.Errorf("Expected zoomed size 450x300, got %v", mv.ImageSize())
	}
	if mv.zoomLabel.Text != "150%" {
		t.Errorf("Unexpected zoom label %s", mv.zoomLabel.Text)
	}

	test.Tap(mv.zoomInBtn)
	test.Tap(mv.downloadBtn)
	test.Tap(mv.closeBtn)
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}
	if _, ok := events[0].(viewer.ZoomIn); !ok {
		t.Errorf("Expected ZoomIn, got %T", events[0])
	}
	if _, ok := events[1].(viewer.Download); !ok {
		t.Errorf("Expected Download, got %T", events[1])
	}
	if _, ok := events[2].(viewer.Close); !ok {
		t.Errorf("Expected Close, got %T", events[2])
	}

	mv.onGesture(GestureSwipeDown)
	mv.onGesture(GestureSwipeLeft)
	if len(events) != 4 {
		t.Errorf("Only vertical swipes should close, got %d events", len(events))
	}

	mv.Hide()
	if mv.Visible() {
		t.Error("Viewer should be hidden")
	}
}

func TestGalleryGrid(t *testing.T) {
	test.NewApp()

	var tapped []int
	gg := NewGalleryGrid(160, func(tile model.Tile) { tapped = append(tapped, tile.Index) })

	tiles := []model.Tile{
		{Index: 1, Address: "image/1.png", Image: &model.Image{Address: "image/1.png", Image: image.NewRGBA(image.Rect(0, 0, 8, 8))}},
		{Index: 2, Address: "image/2.png"},
	}
	gg.SetTiles(tiles, "Image %d", nil)

	if len(gg.Tiles()) != 2 {
		t.Fatalf("Expected 2 tiles, got %d", len(gg.Tiles()))
	}
	if gg.Tiles()[0].captionLabel.Text != "Image 1" {
		t.Errorf("Unexpected caption %q", gg.Tiles()[0].captionLabel.Text)
	}
	if gg.Tiles()[1].captionLabel.Visible() {
		t.Error("Placeholders carry no caption")
	}

	test.Tap(gg.Tiles()[0])
	if len(tapped) != 1 || tapped[0] != 1 {
		t.Errorf("Unexpected taps %v", tapped)
	}

	gg.LockScroll()
	if !gg.IsScrollLocked() {
		t.Error("Expected scroll to be locked")
	}
	gg.UnlockScroll()
	if gg.IsScrollLocked() {
		t.Error("Expected scroll to be unlocked")
	}

	gg.SetTileSide(220)
	if gg.TileSide() != 220 {
		t.Errorf("Expected side 220, got %v", gg.TileSide())
	}

	gg.Clear()
	if len(gg.Tiles()) != 0 {
		t.Error("Expected an empty grid after Clear")
	}
}
