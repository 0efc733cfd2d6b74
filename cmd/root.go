package cmd

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ytget/gallery-viewer/internal/cache"
	"github.com/ytget/gallery-viewer/internal/config"
	"github.com/ytget/gallery-viewer/internal/download"
	"github.com/ytget/gallery-viewer/internal/logging"
	"github.com/ytget/gallery-viewer/internal/platform"
	"github.com/ytget/gallery-viewer/internal/preload"
	"github.com/ytget/gallery-viewer/internal/ui"
)

const (
	AppID = "com.ytget.gallery-viewer"

	WindowWidth  = 1024
	WindowHeight = 768
)

type rootFlags struct {
	configFile string
	total      int
	extension  string
	root       string
	original   string
	cutout     string
	retries    int
	debug      bool
}

// NewRootCmd builds the launcher command
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "gallery-viewer",
		Short: "Preview and compare numbered image sets",
		Long: `Gallery Viewer preloads parallel image sets of the same numbered sequence
(original and cutout by default), shows them as a grid and opens any image in
a zoomable viewer with copy and download actions.

Configuration is layered: built-in defaults, an optional YAML manifest
(--config), GALLERY_* environment variables (a .env file is read when present),
then the flags below.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadGallery(cmd, flags)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	bindFlags(cmd, flags)
	return cmd
}

func bindFlags(cmd *cobra.Command, flags *rootFlags) {
	f := cmd.Flags()
	f.StringVarP(&flags.configFile, "config", "c", "", "YAML gallery manifest")
	f.IntVarP(&flags.total, "total", "n", config.DefaultTotalImages, "number of images per set")
	f.StringVar(&flags.extension, "ext", config.DefaultExtension, "image file extension")
	f.StringVar(&flags.root, "root", "", "directory or base URL the set paths are relative to")
	f.StringVar(&flags.original, "original", config.DefaultOriginalPath, "path of the original set")
	f.StringVar(&flags.cutout, "cutout", config.DefaultCutoutPath, "path of the cutout set")
	f.IntVar(&flags.retries, "retries", config.DefaultDownloadRetries, "retries for remote image fetches")
	f.BoolVar(&flags.debug, "debug", false, "enable debug logging")
}

// loadGallery layers defaults, manifest, environment and changed flags
func loadGallery(cmd *cobra.Command, flags *rootFlags) (config.Gallery, error) {
	cfg := config.Defaults()

	if flags.configFile != "" {
		if err := cfg.LoadFile(flags.configFile); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ParseEnv(); err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("total") {
		cfg.TotalImages = flags.total
	}
	if f.Changed("ext") {
		cfg.Extension = flags.extension
	}
	if f.Changed("root") {
		cfg.Root = flags.root
	}
	if f.Changed("original") {
		cfg.OriginalPath = flags.original
	}
	if f.Changed("cutout") {
		cfg.CutoutPath = flags.cutout
	}
	if f.Changed("retries") {
		cfg.DownloadRetries = flags.retries
	}
	if f.Changed("debug") {
		cfg.Debug = flags.debug
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg config.Gallery) error {
	logger := logging.NewLogger(os.Stderr, cfg.Debug)
	logger.Info().
		Str("version", cmd.Root().Version).
		Int("total", cfg.TotalImages).
		Str("root", cfg.Root).
		Msg("Gallery Viewer starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewGalleryTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	myWindow := myApp.NewWindow("Gallery Viewer")
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	source := platform.NewSource(cfg.Root, cfg.DownloadRetries, logger)
	imageCache := cache.New()

	preloadSvc := preload.NewService(source, imageCache, cfg.Extension, logger)
	downloadSvc := download.NewService(source, settings.GetDownloadDirectory(), cfg.Extension, logger)

	galleryUI := ui.NewGalleryUI(myWindow, myApp, ui.Options{
		Gallery:    cfg,
		Cache:      imageCache,
		Preloader:  preloadSvc,
		Downloader: downloadSvc,
		Logger:     logger,
	})
	galleryUI.Start(cmd.Context())

	myWindow.ShowAndRun()
	return nil
}
