package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ytget/gallery-viewer/internal/model"
)

// Gallery defaults
const (
	DefaultTotalImages     = 19
	DefaultOriginalPath    = "image/"
	DefaultCutoutPath      = "imagek/"
	DefaultExtension       = ".png"
	DefaultDownloadRetries = 0
)

// Configuration errors
var (
	ErrInvalidTotal    = errors.New("total images must be at least 1")
	ErrEmptyExtension  = errors.New("file extension must not be empty")
	ErrDuplicateSet    = errors.New("duplicate image set name")
	ErrNegativeRetries = errors.New("download retries must not be negative")
	ErrEmptySetName    = errors.New("image set name must not be empty")
)

// Gallery describes what the viewer loads and where from. Values are layered:
// defaults, then an optional YAML manifest, then GALLERY_* environment
// variables, then command line flags.
type Gallery struct {
	TotalImages     int             `yaml:"total_images" env:"GALLERY_TOTAL_IMAGES"`
	Extension       string          `yaml:"extension" env:"GALLERY_EXTENSION"`
	Root            string          `yaml:"root" env:"GALLERY_ROOT"`
	OriginalPath    string          `yaml:"original_path" env:"GALLERY_ORIGINAL_PATH"`
	CutoutPath      string          `yaml:"cutout_path" env:"GALLERY_CUTOUT_PATH"`
	DownloadRetries int             `yaml:"download_retries" env:"GALLERY_DOWNLOAD_RETRIES"`
	Debug           bool            `yaml:"debug" env:"GALLERY_DEBUG"`
	Sets            model.ImageSets `yaml:"sets,omitempty"` // replaces the original/cutout pair when present
}

// Defaults returns the built-in configuration
func Defaults() Gallery {
	return Gallery{
		TotalImages:     DefaultTotalImages,
		Extension:       DefaultExtension,
		OriginalPath:    DefaultOriginalPath,
		CutoutPath:      DefaultCutoutPath,
		DownloadRetries: DefaultDownloadRetries,
	}
}

// LoadFile overlays a YAML manifest onto g. Keys absent from the file keep
// their current values.
func (g *Gallery) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, g); err != nil {
		return fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return nil
}

// ParseEnv overlays GALLERY_* environment variables onto g
func (g *Gallery) ParseEnv() error {
	return ParseEnv(g)
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ImageSets returns the configured sets in tab order
func (g *Gallery) ImageSets() model.ImageSets {
	if len(g.Sets) > 0 {
		return g.Sets
	}
	return model.DefaultSets(g.OriginalPath, g.CutoutPath)
}

// Validate checks the configuration for values the viewer cannot work with
func (g *Gallery) Validate() error {
	if g.TotalImages < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTotal, g.TotalImages)
	}
	if g.Extension == "" {
		return ErrEmptyExtension
	}
	if g.DownloadRetries < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRetries, g.DownloadRetries)
	}

	sets := g.ImageSets()
	seen := make(map[model.SetName]bool, len(sets))
	for _, s := range sets {
		if s.Name == "" {
			return ErrEmptySetName
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateSet, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}
