package viewer

import (
	"github.com/ytget/gallery-viewer/internal/model"
)

// Event is a user interaction fed to the reducer
type Event interface {
	isEvent()
}

// OpenTile is a tap on a gallery tile
type OpenTile struct {
	Tile model.Tile
}

// Close is the close control, a backdrop tap or Escape
type Close struct{}

// ZoomIn is the zoom-in control
type ZoomIn struct{}

// ZoomOut is the zoom-out control
type ZoomOut struct{}

// Key is a key press while the window has focus
type Key struct {
	Name string
}

// CopyLink copies the current address as text
type CopyLink struct{}

// CopyImage copies the current image
type CopyImage struct{}

// Download saves the current image
type Download struct{}

// SetMode records the active set after a switch
type SetMode struct {
	Mode model.SetName
}

func (OpenTile) isEvent()  {}
func (Close) isEvent()     {}
func (ZoomIn) isEvent()    {}
func (ZoomOut) isEvent()   {}
func (Key) isEvent()       {}
func (CopyLink) isEvent()  {}
func (CopyImage) isEvent() {}
func (Download) isEvent()  {}
func (SetMode) isEvent()   {}

// Key names understood while the modal is open
const (
	KeyEscape   = "Escape"
	KeyPlus     = "+"
	KeyEqual    = "="
	KeyMinus    = "-"
	KeyUnderbar = "_"
)
