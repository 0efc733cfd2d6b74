// Package cache holds preloaded image handles keyed by (set, index).
package cache

import (
	"sync"

	"github.com/ytget/gallery-viewer/internal/model"
)

// entry tracks one (set, index) slot
type entry struct {
	status model.LoadStatus
	image  *model.Image
}

// Cache is a write-once {set -> {index -> image}} store.
// Handles, once stored, are never replaced or evicted.
type Cache struct {
	mu      sync.RWMutex
	entries map[model.SetName]map[int]*entry
}

// New creates an empty cache
func New() *Cache {
	return &Cache{
		entries: make(map[model.SetName]map[int]*entry),
	}
}

// Get returns the loaded image for (set, index)
func (c *Cache) Get(set model.SetName, index int) (*model.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[set][index]
	if !ok || e.image == nil {
		return nil, false
	}
	return e.image, true
}

// Status reports whether (set, index) is pending, loaded or failed
func (c *Cache) Status(set model.SetName, index int) model.LoadStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[set][index]
	if !ok {
		return model.LoadStatusPending
	}
	return e.status
}

// Store records a loaded image. It returns false and keeps the existing
// handle when the slot already holds one.
func (c *Cache) Store(set model.SetName, index int, img *model.Image) bool {
	if img == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.slot(set, index)
	if e.image != nil {
		return false
	}
	e.image = img
	e.status = model.LoadStatusLoaded
	return true
}

// MarkFailed records a settled load that produced no image.
// A loaded slot is left untouched.
func (c *Cache) MarkFailed(set model.SetName, index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.slot(set, index)
	if e.image != nil {
		return
	}
	e.status = model.LoadStatusFailed
}

// Counts returns the number of loaded and failed slots for a set
func (c *Cache) Counts(set model.SetName) (loaded, failed int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, e := range c.entries[set] {
		switch e.status {
		case model.LoadStatusLoaded:
			loaded++
		case model.LoadStatusFailed:
			failed++
		}
	}
	return loaded, failed
}

// slot returns the entry for (set, index), creating it; caller holds mu
func (c *Cache) slot(set model.SetName, index int) *entry {
	items, ok := c.entries[set]
	if !ok {
		items = make(map[int]*entry)
		c.entries[set] = items
	}
	e, ok := items[index]
	if !ok {
		e = &entry{status: model.LoadStatusPending}
		items[index] = e
	}
	return e
}
