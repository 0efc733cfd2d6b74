package download

import (
	"context"

	"github.com/ytget/gallery-viewer/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.Download))

	// Download fetches address and stores it under a name derived from label
	Download(ctx context.Context, address, label string) (*model.Download, error)

	// SetDownloadDirectory sets the download directory
	SetDownloadDirectory(dir string)

	// SetFilenamePrefix sets the prefix used for generated file names
	SetFilenamePrefix(prefix string)
}
