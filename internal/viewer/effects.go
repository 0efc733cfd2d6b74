package viewer

import (
	"github.com/ytget/gallery-viewer/internal/model"
)

// EffectKind enumerates side effects requested by the reducer
type EffectKind int

const (
	EffectApplyZoom EffectKind = iota
	EffectLockScroll
	EffectUnlockScroll
	EffectCopyText
	EffectCopyImage
	EffectStartDownload
	EffectNotify
)

// String returns a readable name for logs
func (k EffectKind) String() string {
	switch k {
	case EffectApplyZoom:
		return "apply_zoom"
	case EffectLockScroll:
		return "lock_scroll"
	case EffectUnlockScroll:
		return "unlock_scroll"
	case EffectCopyText:
		return "copy_text"
	case EffectCopyImage:
		return "copy_image"
	case EffectStartDownload:
		return "start_download"
	case EffectNotify:
		return "notify"
	default:
		return "unknown"
	}
}

// Notice keys carried by EffectNotify; the UI localizes them
const (
	NoticeNothingToCopy     = "nothing_to_copy"
	NoticeNothingToDownload = "nothing_to_download"
)

// Effect is one side effect for the UI to perform
type Effect struct {
	Kind    EffectKind
	Zoom    float64       // EffectApplyZoom
	Address string        // EffectCopyText, EffectCopyImage, EffectStartDownload
	Mode    model.SetName // EffectStartDownload
	Notice  string        // EffectNotify
}
