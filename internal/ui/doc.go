package ui

// Package ui contains the Fyne-based desktop user interface for the gallery.
// It renders the set tabs, the tile grid and the modal viewer, feeds user
// input to the viewer reducer and performs the effects it returns. All UI
// strings are localized via Localization.
