package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(device fyne.Device) *MobileUI {
	return &MobileUI{device: device}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device != nil && m.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if m.device == nil {
		return true
	}
	orientation := m.device.Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// TileSide returns the tile side for a window of the given width. On
// desktop the preferred side is used as is; on mobile portrait screens the
// side shrinks so that MobileColumns tiles fit across.
func (m *MobileUI) TileSide(preferred, windowWidth float32) float32 {
	if !m.IsMobileDevice() || m.IsLandscape() || windowWidth <= 0 {
		return preferred
	}

	side := (windowWidth - m.GetSpacing()*(MobileColumns+1)) / MobileColumns
	if side < MobileTileMinSide {
		side = MobileTileMinSide
	}
	if side > preferred {
		side = preferred
	}
	return side
}

// CreateControlButton creates a viewer control sized for touch on mobile
func (m *MobileUI) CreateControlButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize))
	}

	return btn
}

// GetSpacing returns appropriate spacing for the device
func (m *MobileUI) GetSpacing() float32 {
	if m.IsMobileDevice() {
		return 16 // Larger spacing for mobile
	}
	return 8 // Standard spacing for desktop
}
