package gallery

import (
	"sync"

	"github.com/ytget/gallery-viewer/internal/model"
)

// Switcher tracks the active set and at most one in-flight switch.
// A switch requested while another is running is ignored.
type Switcher struct {
	mu      sync.Mutex
	active  model.SetName
	pending model.SetName
	busy    bool
}

// NewSwitcher creates a switcher with initial as the active set
func NewSwitcher(initial model.SetName) *Switcher {
	return &Switcher{active: initial}
}

// Active returns the active set
func (s *Switcher) Active() model.SetName {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Pending returns the set being switched to, if a switch is in flight
func (s *Switcher) Pending() (model.SetName, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending, s.busy
}

// Begin starts a switch to target. It returns false without changing
// anything when target is already active or another switch is in flight.
func (s *Switcher) Begin(target model.SetName) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy || target == s.active {
		return false
	}
	s.busy = true
	s.pending = target
	return true
}

// Commit makes the pending set active and ends the switch
func (s *Switcher) Commit() model.SetName {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		s.active = s.pending
	}
	s.busy = false
	s.pending = ""
	return s.active
}

// Abort ends an in-flight switch without changing the active set
func (s *Switcher) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.busy = false
	s.pending = ""
}
