package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold   float32 = 50.0
	DefaultSwipeMaxDuration         = 600 * time.Millisecond
)

// GestureHandler turns a finished drag into a swipe gesture
type GestureHandler struct {
	onGesture func(GestureType)

	// Drag tracking
	dragStartTime time.Time
	dx, dy        float32

	// Gesture thresholds
	swipeThreshold   float32
	swipeMaxDuration time.Duration
	now              func() time.Time
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:        onGesture,
		swipeThreshold:   DefaultSwipeThreshold,
		swipeMaxDuration: DefaultSwipeMaxDuration,
		now:              time.Now,
	}
}

// Dragged accumulates drag movement
func (gh *GestureHandler) Dragged(delta fyne.Delta) {
	if gh.dragStartTime.IsZero() {
		gh.dragStartTime = gh.now()
	}
	gh.dx += delta.DX
	gh.dy += delta.DY
}

// DragEnd classifies the accumulated drag and resets tracking
func (gh *GestureHandler) DragEnd() {
	duration := gh.now().Sub(gh.dragStartTime)
	gesture := ClassifySwipe(gh.dx, gh.dy, duration, gh.swipeThreshold, gh.swipeMaxDuration)

	gh.dragStartTime = time.Time{}
	gh.dx, gh.dy = 0, 0

	if gesture != GestureNone && gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// ClassifySwipe determines the direction of a drag. Short or slow drags
// are not swipes.
func ClassifySwipe(dx, dy float32, duration time.Duration, threshold float32, maxDuration time.Duration) GestureType {
	if duration > maxDuration {
		return GestureNone
	}

	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}
	if absDx < threshold && absDy < threshold {
		return GestureNone
	}

	// Determine primary direction
	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// backdrop is the full-window layer behind the zoomed image. A tap or a
// vertical swipe closes the viewer; scroll events stop here so the gallery
// underneath never moves.
type backdrop struct {
	widget.BaseWidget

	content        fyne.CanvasObject
	onTap          func()
	gestureHandler *GestureHandler
}

func newBackdrop(content fyne.CanvasObject, onTap func(), onGesture func(GestureType)) *backdrop {
	b := &backdrop{
		content:        content,
		onTap:          onTap,
		gestureHandler: NewGestureHandler(onGesture),
	}
	b.ExtendBaseWidget(b)
	return b
}

// CreateRenderer creates the widget renderer
func (b *backdrop) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.content)
}

// Tapped handles a tap outside the image
func (b *backdrop) Tapped(*fyne.PointEvent) {
	if b.onTap != nil {
		b.onTap()
	}
}

// Scrolled swallows scroll events while the viewer is open
func (b *backdrop) Scrolled(*fyne.ScrollEvent) {}

// Dragged handles drag events for gesture detection
func (b *backdrop) Dragged(event *fyne.DragEvent) {
	b.gestureHandler.Dragged(event.Dragged)
}

// DragEnd handles the end of a drag
func (b *backdrop) DragEnd() {
	b.gestureHandler.DragEnd()
}
