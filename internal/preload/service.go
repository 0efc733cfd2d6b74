package preload

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ytget/gallery-viewer/internal/cache"
	"github.com/ytget/gallery-viewer/internal/logging"
	"github.com/ytget/gallery-viewer/internal/model"
	"github.com/ytget/gallery-viewer/internal/platform"
)

// Progress is reported after every settled item
type Progress struct {
	Set     model.SetName
	Index   int
	Status  model.LoadStatus
	Settled int // settled items in the current set, including this one
	Total   int // items in the current set
}

// Fraction returns set progress as 0.0 to 1.0
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Settled) / float64(p.Total)
}

// SetSummary counts outcomes for one set
type SetSummary struct {
	Set    model.SetName
	Loaded int
	Failed int
}

// Summary describes a finished (or interrupted) preload run
type Summary struct {
	Sets       []SetSummary
	StartedAt  time.Time
	FinishedAt time.Time
}

// Loaded returns the loaded count across all sets
func (s *Summary) Loaded() int {
	n := 0
	for _, set := range s.Sets {
		n += set.Loaded
	}
	return n
}

// Failed returns the failed count across all sets
func (s *Summary) Failed() int {
	n := 0
	for _, set := range s.Sets {
		n += set.Failed
	}
	return n
}

// Service preloads image sets into a cache
type Service struct {
	fetcher   platform.Fetcher
	cache     *cache.Cache
	extension string
	thumbSide int
	logger    *logging.Logger
	onUpdate  func(Progress) // may be called from worker goroutines
}

// NewService creates a new preload service
func NewService(fetcher platform.Fetcher, c *cache.Cache, extension string, logger *logging.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		cache:     c,
		extension: extension,
		thumbSide: platform.DefaultThumbnailSide,
		logger:    logger,
	}
}

// SetUpdateCallback sets the callback function for progress updates
func (s *Service) SetUpdateCallback(callback func(Progress)) {
	s.onUpdate = callback
}

// SetThumbnailSide changes the thumbnail bound; 0 disables thumbnails
func (s *Service) SetThumbnailSide(side int) {
	s.thumbSide = side
}

// Preload loads items 1..total of every set, one set at a time.
// Item failures are absorbed; only context cancellation is returned.
func (s *Service) Preload(ctx context.Context, sets model.ImageSets, total int) (*Summary, error) {
	summary := &Summary{StartedAt: time.Now()}
	defer func() { summary.FinishedAt = time.Now() }()

	for _, set := range sets {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		s.logger.Debug().Str("set", set.Name.String()).Int("total", total).Msg("preloading set")
		summary.Sets = append(summary.Sets, s.preloadSet(ctx, set, total))
	}

	s.logger.Info().
		Int("loaded", summary.Loaded()).
		Int("failed", summary.Failed()).
		Dur("elapsed", time.Since(summary.StartedAt)).
		Msg("preload finished")

	return summary, ctx.Err()
}

// preloadSet issues every load of one set concurrently and waits for all to settle
func (s *Service) preloadSet(ctx context.Context, set model.ImageSet, total int) SetSummary {
	var wg sync.WaitGroup
	var settled atomic.Int32

	for i := 1; i <= total; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()

			status := s.loadItem(ctx, set, index)
			s.notifyUpdate(Progress{
				Set:     set.Name,
				Index:   index,
				Status:  status,
				Settled: int(settled.Add(1)),
				Total:   total,
			})
		}(i)
	}
	wg.Wait()

	loaded, failed := s.cache.Counts(set.Name)
	return SetSummary{Set: set.Name, Loaded: loaded, Failed: failed}
}

// loadItem loads one (set, index) pair into the cache and returns its status
func (s *Service) loadItem(ctx context.Context, set model.ImageSet, index int) model.LoadStatus {
	if status := s.cache.Status(set.Name, index); status.IsSettled() {
		return status
	}

	address := set.Address(index, s.extension)
	img, err := Load(ctx, s.fetcher, address, s.thumbSide)
	if err != nil {
		if ctx.Err() != nil {
			// Interrupted loads were never really tried
			return model.LoadStatusPending
		}
		s.cache.MarkFailed(set.Name, index)
		s.logger.Debug().Err(err).Str("address", address).Msg("image load failed")
		return model.LoadStatusFailed
	}

	s.cache.Store(set.Name, index, img)
	return model.LoadStatusLoaded
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(p Progress) {
	if s.onUpdate != nil {
		s.onUpdate(p)
	}
}

// Load fetches and decodes the image at address
func Load(ctx context.Context, fetcher platform.Fetcher, address string, thumbSide int) (*model.Image, error) {
	data, err := fetcher.Fetch(ctx, address)
	if err != nil {
		return nil, err
	}

	decoded, format, err := platform.DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", address, err)
	}

	return &model.Image{
		Address:   address,
		Image:     decoded,
		Thumbnail: platform.Thumbnail(decoded, thumbSide),
		Format:    format,
		Size:      int64(len(data)),
		LoadedAt:  time.Now(),
	}, nil
}
