package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
	IconZoomIn   = "+"
	IconZoomOut  = "−"
	IconCopy     = "📋"
	IconLink     = "🔗"
	IconDownload = "⬇"
	IconImage    = "🖼"
)

// Layout sizing (tiles / grid)
const (
	TileCaptionH float32 = 24

	// Mobile-specific sizing
	MobileTileMinSide float32 = 140
	MobileColumns             = 2

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Modal viewer sizing
const (
	ModalImageMaxW float32 = 900
	ModalImageMaxH float32 = 640
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Delays
const (
	// LoadingHideDelay keeps the loading indicator up briefly after the first render
	LoadingHideDelay = 500 * time.Millisecond
)

// Text fragments
const (
	ProgressLabelFormat = "%d / %d"
)
