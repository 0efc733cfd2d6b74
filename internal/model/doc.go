package model

// Package model defines domain data structures used across the app: image
// sets, cache load statuses, loaded image handles, gallery tiles and download
// results. Structures are plain values so the UI and tests can build them
// without a rendering surface.
