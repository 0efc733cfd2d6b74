package model

// LoadStatus represents the state of a single (set, index) preload attempt
type LoadStatus string

const (
	// LoadStatusPending means no load has settled for the item yet
	LoadStatusPending LoadStatus = "pending"

	// LoadStatusLoaded means the image was fetched and decoded
	LoadStatusLoaded LoadStatus = "loaded"

	// LoadStatusFailed means the load settled without an image
	LoadStatusFailed LoadStatus = "failed"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsSettled returns true once a load has either succeeded or failed
func (ls LoadStatus) IsSettled() bool {
	return ls == LoadStatusLoaded || ls == LoadStatusFailed
}

// HasImage returns true if a handle is available for the item
func (ls LoadStatus) HasImage() bool {
	return ls == LoadStatusLoaded
}
