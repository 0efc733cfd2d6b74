package viewer

import (
	"math"
)

// Reducer applies events to a viewer State
type Reducer struct {
	step  float64
	floor float64
}

// NewReducer creates a reducer with the default zoom step and floor
func NewReducer() *Reducer {
	return &Reducer{step: ZoomStep, floor: ZoomFloor}
}

// Reduce returns the state after ev and the effects to perform.
// The input state is never modified.
func (r *Reducer) Reduce(state State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case OpenTile:
		return r.open(state, e)
	case Close:
		return r.close(state)
	case ZoomIn:
		return r.zoomIn(state)
	case ZoomOut:
		return r.zoomOut(state)
	case Key:
		return r.key(state, e)
	case CopyLink:
		if !state.HasImage() {
			return state, notify(NoticeNothingToCopy)
		}
		return state, []Effect{{Kind: EffectCopyText, Address: state.CurrentImage}}
	case CopyImage:
		if !state.HasImage() {
			return state, notify(NoticeNothingToCopy)
		}
		return state, []Effect{{Kind: EffectCopyImage, Address: state.CurrentImage}}
	case Download:
		if !state.HasImage() {
			return state, notify(NoticeNothingToDownload)
		}
		return state, []Effect{{Kind: EffectStartDownload, Address: state.CurrentImage, Mode: state.Mode}}
	case SetMode:
		state.Mode = e.Mode
		return state, nil
	default:
		return state, nil
	}
}

func (r *Reducer) open(state State, e OpenTile) (State, []Effect) {
	if e.Tile.IsPlaceholder() {
		return state, nil
	}

	state.CurrentImage = e.Tile.Image.Address
	state.Zoom = DefaultZoom
	state.Open = true
	return state, []Effect{
		{Kind: EffectApplyZoom, Zoom: state.Zoom},
		{Kind: EffectLockScroll},
	}
}

func (r *Reducer) close(state State) (State, []Effect) {
	if !state.Open {
		return state, nil
	}
	state.Open = false
	return state, []Effect{{Kind: EffectUnlockScroll}}
}

func (r *Reducer) zoomIn(state State) (State, []Effect) {
	if !state.Open {
		return state, nil
	}
	state.Zoom = roundZoom(state.Zoom + r.step)
	return state, []Effect{{Kind: EffectApplyZoom, Zoom: state.Zoom}}
}

func (r *Reducer) zoomOut(state State) (State, []Effect) {
	if !state.Open {
		return state, nil
	}
	next := roundZoom(state.Zoom - r.step)
	if next <= r.floor {
		return state, nil
	}
	state.Zoom = next
	return state, []Effect{{Kind: EffectApplyZoom, Zoom: state.Zoom}}
}

func (r *Reducer) key(state State, e Key) (State, []Effect) {
	if !state.Open {
		return state, nil
	}

	switch e.Name {
	case KeyEscape:
		return r.close(state)
	case KeyPlus, KeyEqual:
		return r.zoomIn(state)
	case KeyMinus, KeyUnderbar:
		return r.zoomOut(state)
	default:
		return state, nil
	}
}

func notify(notice string) []Effect {
	return []Effect{{Kind: EffectNotify, Notice: notice}}
}

// roundZoom keeps repeated 0.1 steps from accumulating float error
func roundZoom(z float64) float64 {
	return math.Round(z*1000) / 1000
}
