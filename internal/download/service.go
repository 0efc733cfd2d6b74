package download

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ytget/gallery-viewer/internal/logging"
	"github.com/ytget/gallery-viewer/internal/model"
	"github.com/ytget/gallery-viewer/internal/platform"
)

const (
	// ReleaseDelay is how long a leftover temp file lives after a download settles
	ReleaseDelay = 100 * time.Millisecond

	// TimestampLayout is used in generated file names
	TimestampLayout = "20060102T150405"

	// DefaultPrefix names files whose address carries no usable name
	DefaultPrefix = "image"

	tempSuffix = ".part"

	// segments of this many characters or fewer are not treated as names
	minNameLength = 4
)

// ErrNoImage is returned when there is no address to download
var ErrNoImage = errors.New("no image to download")

// Service handles download operations
type Service struct {
	fetcher     platform.Fetcher
	mu          sync.RWMutex
	downloadDir string
	prefix      string
	extension   string
	logger      *logging.Logger
	now         func() time.Time
	onUpdate    func(*model.Download) // callback for UI updates
}

// NewService creates a new download service writing into downloadDir.
// extension is used when an address carries none.
func NewService(fetcher platform.Fetcher, downloadDir, extension string, logger *logging.Logger) *Service {
	return &Service{
		fetcher:     fetcher,
		downloadDir: downloadDir,
		prefix:      DefaultPrefix,
		extension:   extension,
		logger:      logger.Component("download"),
		now:         time.Now,
	}
}

// SetUpdateCallback sets the callback invoked after every finished download
func (s *Service) SetUpdateCallback(callback func(*model.Download)) {
	s.onUpdate = callback
}

// SetDownloadDirectory sets the download directory
func (s *Service) SetDownloadDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloadDir = dir
}

// SetFilenamePrefix sets the prefix for generated names; empty restores the default
func (s *Service) SetFilenamePrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prefix == "" {
		prefix = DefaultPrefix
	}
	s.prefix = prefix
}

// DownloadDirectory returns the current download directory
func (s *Service) DownloadDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.downloadDir
}

// Download fetches address and writes it into the download directory
func (s *Service) Download(ctx context.Context, address, label string) (*model.Download, error) {
	if address == "" {
		return nil, ErrNoImage
	}

	s.mu.RLock()
	dir, prefix := s.downloadDir, s.prefix
	s.mu.RUnlock()

	result := &model.Download{
		ID:        uuid.NewString(),
		Address:   address,
		StartedAt: s.now(),
	}
	log := s.logger.With().Str("id", result.ID).Str("address", address).Logger()
	log.Debug().Msg("download started")

	data, err := s.fetcher.Fetch(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", address, err)
	}

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return nil, fmt.Errorf("create download directory: %w", err)
	}

	name := DeriveFilename(address, label, prefix, s.extension, result.StartedAt)
	target, err := reservePath(dir, name)
	if err != nil {
		return nil, err
	}

	if err := s.write(target, data); err != nil {
		os.Remove(target)
		return nil, err
	}

	result.FileName = filepath.Base(target)
	result.OutputPath = target
	result.Size = int64(len(data))
	result.FinishedAt = s.now()

	log.Info().Str("path", target).Int64("bytes", result.Size).Msg("download finished")
	s.notifyUpdate(result)
	return result, nil
}

// write stores data at the reserved target through a temporary file of its
// own in the same directory
func (s *Service) write(target string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*"+tempSuffix)
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", target, err)
	}
	defer s.release(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("move %s into place: %w", target, err)
	}
	return nil
}

// release removes a leftover temp file once ReleaseDelay has passed
func (s *Service) release(tmp string) {
	time.AfterFunc(ReleaseDelay, func() {
		if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Str("path", tmp).Msg("failed to remove temp file")
		}
	})
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(d *model.Download) {
	if s.onUpdate != nil {
		s.onUpdate(d)
	}
}

// DeriveFilename names a downloaded file. A trailing address segment longer
// than four characters becomes <base>_<label><ext>; anything shorter gets
// <prefix>_<label>_<timestamp><ext> using the configured extension.
func DeriveFilename(address, label, prefix, ext string, now time.Time) string {
	segment := lastSegment(address)

	if utf8.RuneCountInString(segment) > minNameLength {
		base, segExt := segment, ext
		if dot := strings.LastIndex(segment, "."); dot >= 0 {
			base, segExt = segment[:dot], segment[dot:]
		}
		return sanitize(base + "_" + label + segExt)
	}

	return sanitize(fmt.Sprintf("%s_%s_%s%s", prefix, label, now.UTC().Format(TimestampLayout), ext))
}

// lastSegment returns the part after the final slash, ignoring any query
func lastSegment(address string) string {
	if platform.IsRemote(address) {
		if u, err := url.Parse(address); err == nil {
			address = u.Path
		}
	}
	address = strings.ReplaceAll(address, "\\", "/")
	if address == "" || strings.HasSuffix(address, "/") {
		return ""
	}
	return path.Base(address)
}

// sanitize drops characters that are invalid in file names on common platforms
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, name)
}

// reservePath creates dir/name, or dir/name (N) when that file already
// exists, and returns the path it claimed. The empty file holds the name
// until the downloaded bytes are renamed over it.
func reservePath(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	candidate := filepath.Join(dir, name)
	for i := 1; ; i++ {
		f, err := os.OpenFile(candidate, os.O_WRONLY|os.O_CREATE|os.O_EXCL, platform.DefaultFilePermissions)
		if err == nil {
			f.Close()
			return candidate, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("reserve %s: %w", candidate, err)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
	}
}
