package viewer

import (
	"math/rand"
	"testing"

	"github.com/ytget/gallery-viewer/internal/model"
)

func loadedTile(index int, address string) model.Tile {
	return model.Tile{Index: index, Address: address, Image: &model.Image{Address: address}}
}

func hasEffect(effects []Effect, kind EffectKind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func openState(t *testing.T) (*Reducer, State) {
	t.Helper()
	r := NewReducer()
	state, _ := r.Reduce(NewState(model.SetOriginal), OpenTile{Tile: loadedTile(1, "image/1.png")})
	return r, state
}

func TestReduce_OpenTile(t *testing.T) {
	r := NewReducer()
	state := NewState(model.SetOriginal)
	state.Zoom = 2.7

	next, effects := r.Reduce(state, OpenTile{Tile: loadedTile(4, "image/4.png")})

	if !next.Open {
		t.Error("Expected modal to be open")
	}
	if next.CurrentImage != "image/4.png" {
		t.Errorf("Expected current image image/4.png, got %s", next.CurrentImage)
	}
	if next.Zoom != DefaultZoom {
		t.Errorf("Expected zoom reset to %v, got %v", DefaultZoom, next.Zoom)
	}
	if !hasEffect(effects, EffectApplyZoom) || !hasEffect(effects, EffectLockScroll) {
		t.Errorf("Expected apply zoom and lock scroll effects, got %v", effects)
	}
	if state.Open || state.Zoom != 2.7 {
		t.Error("Reduce must not modify its input state")
	}
}

func TestReduce_OpenPlaceholderIsIgnored(t *testing.T) {
	r := NewReducer()
	state := NewState(model.SetOriginal)

	next, effects := r.Reduce(state, OpenTile{Tile: model.Tile{Index: 3, Address: "image/3.png"}})
	if next.Open || next.HasImage() {
		t.Error("Placeholder tiles must not open the modal")
	}
	if len(effects) != 0 {
		t.Errorf("Expected no effects, got %v", effects)
	}
}

func TestReduce_ReopenResetsZoom(t *testing.T) {
	r, state := openState(t)
	state, _ = r.Reduce(state, ZoomIn{})
	state, _ = r.Reduce(state, ZoomIn{})
	state, _ = r.Reduce(state, Close{})

	state, _ = r.Reduce(state, OpenTile{Tile: loadedTile(2, "image/2.png")})
	if state.Zoom != DefaultZoom {
		t.Errorf("Expected zoom %v after reopen, got %v", DefaultZoom, state.Zoom)
	}
	if state.CurrentImage != "image/2.png" {
		t.Errorf("Expected image/2.png, got %s", state.CurrentImage)
	}
}

func TestReduce_Close(t *testing.T) {
	r, state := openState(t)

	closed, effects := r.Reduce(state, Close{})
	if closed.Open {
		t.Error("Expected modal to be closed")
	}
	if !hasEffect(effects, EffectUnlockScroll) {
		t.Errorf("Expected unlock scroll effect, got %v", effects)
	}

	// Closing again is a safe no-op
	again, effects := r.Reduce(closed, Close{})
	if again != closed {
		t.Error("Closing a closed modal should not change state")
	}
	if len(effects) != 0 {
		t.Errorf("Expected no effects, got %v", effects)
	}
}

func TestReduce_ZoomIn(t *testing.T) {
	r, state := openState(t)

	for i := 0; i < 40; i++ {
		state, _ = r.Reduce(state, ZoomIn{})
	}
	if state.Zoom != 5.0 {
		t.Errorf("Expected unbounded zoom-in to reach 5.0, got %v", state.Zoom)
	}
}

func TestReduce_ZoomOutFloor(t *testing.T) {
	r, state := openState(t)

	var effects []Effect
	for i := 0; i < 20; i++ {
		state, effects = r.Reduce(state, ZoomOut{})
	}
	if state.Zoom <= ZoomFloor {
		t.Errorf("Zoom must stay above the floor, got %v", state.Zoom)
	}
	if state.Zoom != 0.3 {
		t.Errorf("Expected lowest zoom 0.3, got %v", state.Zoom)
	}
	if len(effects) != 0 {
		t.Errorf("Refused zoom-out should produce no effects, got %v", effects)
	}
}

func TestReduce_ZoomInvariantRandomWalk(t *testing.T) {
	r, state := openState(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		var ev Event = ZoomIn{}
		if rng.Intn(3) > 0 {
			ev = ZoomOut{}
		}
		prev := state.Zoom
		state, _ = r.Reduce(state, ev)

		if _, out := ev.(ZoomOut); out && state.Zoom != prev && state.Zoom <= ZoomFloor {
			t.Fatalf("Zoom-out from %v landed at %v", prev, state.Zoom)
		}
		if state.Zoom <= ZoomFloor-ZoomStep {
			t.Fatalf("Zoom dropped to %v", state.Zoom)
		}
	}
}

func TestReduce_ZoomIgnoredWhileClosed(t *testing.T) {
	r := NewReducer()
	state := NewState(model.SetOriginal)

	next, effects := r.Reduce(state, ZoomIn{})
	if next.Zoom != DefaultZoom || len(effects) != 0 {
		t.Error("Zoom-in should be ignored while closed")
	}
	next, effects = r.Reduce(state, ZoomOut{})
	if next.Zoom != DefaultZoom || len(effects) != 0 {
		t.Error("Zoom-out should be ignored while closed")
	}
}

func TestReduce_Keys(t *testing.T) {
	tests := []struct {
		key      string
		zoom     float64
		open     bool
		hasZoomF bool
	}{
		{KeyPlus, 1.1, true, true},
		{KeyEqual, 1.1, true, true},
		{KeyMinus, 0.9, true, true},
		{KeyUnderbar, 0.9, true, true},
		{KeyEscape, 1.0, false, false},
		{"a", 1.0, true, false},
	}

	for _, test := range tests {
		r, state := openState(t)
		next, effects := r.Reduce(state, Key{Name: test.key})
		if next.Zoom != test.zoom {
			t.Errorf("Key %q: expected zoom %v, got %v", test.key, test.zoom, next.Zoom)
		}
		if next.Open != test.open {
			t.Errorf("Key %q: expected open=%v, got %v", test.key, test.open, next.Open)
		}
		if hasEffect(effects, EffectApplyZoom) != test.hasZoomF {
			t.Errorf("Key %q: unexpected effects %v", test.key, effects)
		}
	}
}

func TestReduce_KeysIgnoredWhileClosed(t *testing.T) {
	r := NewReducer()
	state := NewState(model.SetOriginal)

	for _, key := range []string{KeyEscape, KeyPlus, KeyMinus} {
		next, effects := r.Reduce(state, Key{Name: key})
		if next != state || len(effects) != 0 {
			t.Errorf("Key %q should be ignored while closed", key)
		}
	}
}

func TestReduce_Actions(t *testing.T) {
	r, state := openState(t)

	_, effects := r.Reduce(state, CopyLink{})
	if len(effects) != 1 || effects[0].Kind != EffectCopyText || effects[0].Address != "image/1.png" {
		t.Errorf("Unexpected copy link effects: %v", effects)
	}

	_, effects = r.Reduce(state, CopyImage{})
	if len(effects) != 1 || effects[0].Kind != EffectCopyImage || effects[0].Address != "image/1.png" {
		t.Errorf("Unexpected copy image effects: %v", effects)
	}

	_, effects = r.Reduce(state, Download{})
	if len(effects) != 1 || effects[0].Kind != EffectStartDownload || effects[0].Mode != model.SetOriginal {
		t.Errorf("Unexpected download effects: %v", effects)
	}
}

func TestReduce_ActionsWithoutImage(t *testing.T) {
	r := NewReducer()
	state := NewState(model.SetCutout)

	tests := []struct {
		ev     Event
		notice string
	}{
		{CopyLink{}, NoticeNothingToCopy},
		{CopyImage{}, NoticeNothingToCopy},
		{Download{}, NoticeNothingToDownload},
	}

	for _, test := range tests {
		_, effects := r.Reduce(state, test.ev)
		if len(effects) != 1 || effects[0].Kind != EffectNotify || effects[0].Notice != test.notice {
			t.Errorf("%T: expected notify %s, got %v", test.ev, test.notice, effects)
		}
	}
}

func TestReduce_SetMode(t *testing.T) {
	r, state := openState(t)
	next, _ := r.Reduce(state, SetMode{Mode: model.SetCutout})
	if next.Mode != model.SetCutout {
		t.Errorf("Expected cutout mode, got %s", next.Mode)
	}

	_, effects := r.Reduce(next, Download{})
	if effects[0].Mode != model.SetCutout {
		t.Errorf("Download should carry the current mode, got %s", effects[0].Mode)
	}
}

func TestEffectKind_String(t *testing.T) {
	if EffectNotify.String() != "notify" {
		t.Errorf("Unexpected name %s", EffectNotify.String())
	}
	if EffectKind(99).String() != "unknown" {
		t.Errorf("Unexpected name for unknown kind")
	}
}
