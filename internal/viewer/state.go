// Package viewer implements the modal image viewer as a pure reducer:
// Reduce(state, event) returns the next state and the side effects the UI
// must perform. Nothing here touches widgets, the clipboard or the network.
package viewer

import (
	"github.com/ytget/gallery-viewer/internal/model"
)

// Zoom defaults
const (
	DefaultZoom = 1.0
	ZoomStep    = 0.1
	ZoomFloor   = 0.2 // zoom-out never lands at or below this value
)

// State is the single viewer state owned by the UI
type State struct {
	Mode         model.SetName
	CurrentImage string // address shown in the modal, empty when none
	Zoom         float64
	Open         bool
}

// NewState returns a closed viewer for mode
func NewState(mode model.SetName) State {
	return State{Mode: mode, Zoom: DefaultZoom}
}

// HasImage returns true if an image address is current
func (s State) HasImage() bool {
	return s.CurrentImage != ""
}
