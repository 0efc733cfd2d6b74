// Package notify shows short transient messages. Only the latest message is
// visible; a newer Show supersedes the pending hide of an older one.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// HideAfter is how long a message stays visible
const HideAfter = 1500 * time.Millisecond

// Display is the surface a message is shown on
type Display interface {
	SetText(text string)
	Show()
	Hide()
}

// Emitter drives a Display
type Emitter struct {
	display   Display
	hideAfter time.Duration
	after     func(time.Duration, func())

	mu         sync.Mutex
	generation uuid.UUID
	visible    bool
	text       string
}

// NewEmitter creates an emitter hiding messages after HideAfter
func NewEmitter(display Display) *Emitter {
	return NewEmitterWithDelay(display, HideAfter)
}

// NewEmitterWithDelay creates an emitter with a custom hide delay
func NewEmitterWithDelay(display Display, hideAfter time.Duration) *Emitter {
	return &Emitter{display: display, hideAfter: hideAfter, after: afterFunc}
}

// NewEmitterWithScheduler creates an emitter whose hides are queued through
// after instead of a timer of its own
func NewEmitterWithScheduler(display Display, after func(time.Duration, func())) *Emitter {
	return &Emitter{display: display, hideAfter: HideAfter, after: after}
}

func afterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Show displays text and schedules it to hide
func (e *Emitter) Show(text string) {
	e.mu.Lock()
	gen := uuid.New()
	e.generation = gen
	e.visible = true
	e.text = text
	e.display.SetText(text)
	e.display.Show()
	e.mu.Unlock()

	e.after(e.hideAfter, func() {
		e.hide(gen)
	})
}

// hide is a no-op unless gen is still the latest message
func (e *Emitter) hide(gen uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.generation || !e.visible {
		return
	}
	e.visible = false
	e.display.Hide()
}

// Visible returns true while a message is shown
func (e *Emitter) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

// Text returns the latest message
func (e *Emitter) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}
