package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ytget/gallery-viewer/internal/logging"
)

// Address schemes
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeFile  = "file"
)

// HTTP retry bounds used when retries are enabled
const (
	RetryWaitMin = 500 * time.Millisecond
	RetryWaitMax = 5 * time.Second
)

// ErrStatus is wrapped by StatusError for non-success HTTP responses
var ErrStatus = errors.New("unexpected status")

// StatusError reports a non-2xx response for an address
type StatusError struct {
	Address    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: %s: %d", e.Address, ErrStatus, e.StatusCode)
}

// Unwrap lets errors.Is match ErrStatus
func (e *StatusError) Unwrap() error {
	return ErrStatus
}

// Fetcher retrieves the encoded bytes stored at an image address.
type Fetcher interface {
	Fetch(ctx context.Context, address string) ([]byte, error)
}

// Source fetches http(s) addresses over the network and everything else
// relative to its root. A root that is itself an http(s) URL makes relative
// addresses remote too.
type Source struct {
	root   string
	client *retryablehttp.Client
	logger *logging.Logger
}

// retryLogger implements the retryablehttp.LeveledLogger interface
type retryLogger struct {
	logger *logging.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Fields(keysAndValues).Msg(msg)
}

// NewSource creates a source rooted at root. retries is the number of extra
// HTTP attempts after the first; 0 disables retrying.
func NewSource(root string, retries int, logger *logging.Logger) *Source {
	if retries < 0 {
		retries = 0
	}

	client := retryablehttp.NewClient()
	client.RetryMax = retries
	client.RetryWaitMin = RetryWaitMin
	client.RetryWaitMax = RetryWaitMax
	client.Logger = &retryLogger{logger: logger}
	// Hand the final response back so callers see the real status code
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Source{
		root:   root,
		client: client,
		logger: logger,
	}
}

// IsRemote reports whether address is fetched over HTTP
func IsRemote(address string) bool {
	u, err := url.Parse(address)
	if err != nil {
		return false
	}
	return u.Scheme == SchemeHTTP || u.Scheme == SchemeHTTPS
}

// Fetch returns the bytes stored at address
func (s *Source) Fetch(ctx context.Context, address string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if IsRemote(address) {
		return s.fetchHTTP(ctx, address)
	}
	if IsRemote(s.root) {
		target, err := s.ResolveURL(address)
		if err != nil {
			return nil, err
		}
		return s.fetchHTTP(ctx, target)
	}
	return s.readFile(address)
}

// ResolveURL maps a relative address onto a remote root. The root is treated
// as a directory even without a trailing slash.
func (s *Source) ResolveURL(address string) (string, error) {
	root := s.root
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	base, err := url.Parse(root)
	if err != nil {
		return "", fmt.Errorf("parse root %s: %w", s.root, err)
	}
	ref, err := url.Parse(filepath.ToSlash(address))
	if err != nil {
		return "", fmt.Errorf("parse address %s: %w", address, err)
	}
	return base.ResolveReference(ref).String(), nil
}

// Resolve maps a non-remote address to a filesystem path
func (s *Source) Resolve(address string) string {
	if strings.HasPrefix(address, SchemeFile+"://") {
		if u, err := url.Parse(address); err == nil {
			return filepath.FromSlash(u.Path)
		}
	}
	p := filepath.FromSlash(address)
	if filepath.IsAbs(p) || s.root == "" {
		return p
	}
	return filepath.Join(s.root, p)
}

func (s *Source) fetchHTTP(ctx context.Context, address string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", address, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Address: address, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", address, err)
	}
	return data, nil
}

func (s *Source) readFile(address string) ([]byte, error) {
	path := s.Resolve(address)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
