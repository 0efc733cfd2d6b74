package preload

import (
	"context"

	"github.com/ytget/gallery-viewer/internal/model"
)

// Preloader defines the interface for the preload service.
type Preloader interface {
	SetUpdateCallback(func(Progress))
	Preload(ctx context.Context, sets model.ImageSets, total int) (*Summary, error)
}
