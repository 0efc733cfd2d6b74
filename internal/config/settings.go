package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/gallery-viewer/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyLanguage           = "app_language"
	KeyTileSize           = "tile_size"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultLanguage           = "system"
	DefaultTileSize           = 200
	DefaultAutoRevealComplete = false

	MinTileSize = 120
	MaxTileSize = 480
)

// Settings manages user preferences that persist between sessions
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = filepath.Join(".", "downloads")
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh":     "中文",
	}
}

// GetTileSize returns the gallery tile side in device independent pixels
func (s *Settings) GetTileSize() int {
	value := s.app.Preferences().Int(KeyTileSize)
	if value <= 0 {
		s.SetTileSize(DefaultTileSize)
		return DefaultTileSize
	}
	return value
}

// SetTileSize sets the tile side, clamped to the supported range
func (s *Settings) SetTileSize(size int) {
	if size < MinTileSize {
		size = MinTileSize
	}
	if size > MaxTileSize {
		size = MaxTileSize
	}
	s.app.Preferences().SetInt(KeyTileSize, size)
}

// GetAutoRevealOnComplete returns whether to reveal finished downloads
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal finished downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}
