package ui

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gallery-viewer/internal/cache"
	"github.com/ytget/gallery-viewer/internal/config"
	"github.com/ytget/gallery-viewer/internal/download"
	"github.com/ytget/gallery-viewer/internal/gallery"
	"github.com/ytget/gallery-viewer/internal/logging"
	"github.com/ytget/gallery-viewer/internal/model"
	"github.com/ytget/gallery-viewer/internal/notify"
	"github.com/ytget/gallery-viewer/internal/platform"
	"github.com/ytget/gallery-viewer/internal/preload"
	"github.com/ytget/gallery-viewer/internal/viewer"
)

// Options carries the services the UI drives
type Options struct {
	Gallery    config.Gallery
	Cache      *cache.Cache
	Preloader  preload.Preloader
	Downloader download.Downloader
	Logger     *logging.Logger
}

// GalleryUI represents the main UI structure
type GalleryUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	logger       *logging.Logger

	sets      model.ImageSets
	total     int
	extension string

	cache      *cache.Cache
	preloader  preload.Preloader
	downloader download.Downloader

	switcher *gallery.Switcher
	reducer  *viewer.Reducer
	state    viewer.State

	// UI components
	tabs          map[model.SetName]*widget.Button
	tabBar        *fyne.Container
	settingsBtn   *widget.Button
	grid          *GalleryGrid
	modal         *ModalViewer
	notice        *noticePanel
	notifier      *notify.Emitter
	loadingBar    *widget.ProgressBarInfinite
	loadingLabel  *widget.Label
	loadingBox    *fyne.Container
	rendered      bool
	toastPopup    *widget.PopUp
	lastDownload  *model.Download

	// scheduling hooks; tests replace them to run synchronously
	runOnMain func(func())
	after     func(time.Duration, func())
	spawn     func(func())
	ctx       context.Context
}

// NewGalleryUI creates and initializes the main UI
func NewGalleryUI(window fyne.Window, app fyne.App, opts Options) *GalleryUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	sets := opts.Gallery.ImageSets()
	initial := sets[0].Name

	ui := &GalleryUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(fyne.CurrentDevice()),
		logger:       opts.Logger.Component("ui"),
		sets:         sets,
		total:        opts.Gallery.TotalImages,
		extension:    opts.Gallery.Extension,
		cache:        opts.Cache,
		preloader:    opts.Preloader,
		downloader:   opts.Downloader,
		switcher:     gallery.NewSwitcher(initial),
		reducer:      viewer.NewReducer(),
		state:        viewer.NewState(initial),
		tabs:         make(map[model.SetName]*widget.Button),
		runOnMain:    fyne.Do,
		after:        func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		spawn:        func(f func()) { go f() },
		ctx:          context.Background(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.downloader.SetDownloadDirectory(settings.GetDownloadDirectory())
	ui.downloader.SetFilenamePrefix(localization.GetText(KeyFilenamePrefix))
	ui.preloader.SetUpdateCallback(ui.onPreloadProgress)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *GalleryUI) setupUI() {
	ui.createMenu()

	// Set tabs, in configured order
	tabObjects := make([]fyne.CanvasObject, 0, len(ui.sets))
	for _, set := range ui.sets {
		name := set.Name
		btn := widget.NewButton(ui.localization.SetLabel(set), func() {
			ui.switchMode(name)
		})
		ui.tabs[name] = btn
		tabObjects = append(tabObjects, btn)
	}
	ui.tabBar = container.NewHBox(tabObjects...)
	ui.highlightTab(ui.switcher.Active())

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	// Loading indicator (hidden once the first render settles)
	ui.loadingBar = widget.NewProgressBarInfinite()
	ui.loadingLabel = widget.NewLabel(ui.localization.GetText(KeyLoading))
	ui.loadingBox = container.NewBorder(nil, nil, ui.loadingLabel, nil, ui.loadingBar)

	topPanel := container.NewVBox(
		container.NewBorder(nil, nil, nil, ui.settingsBtn, container.NewCenter(ui.tabBar)),
		ui.loadingBox,
	)

	side := ui.mobile.TileSide(float32(ui.settings.GetTileSize()), ui.window.Canvas().Size().Width)
	ui.grid = NewGalleryGrid(side, ui.onTileTapped)
	ui.modal = NewModalViewer(ui.localization, ui.mobile, ui.dispatch)

	ui.notice = newNoticePanel(func(f func()) { ui.runOnMain(f) })
	ui.notifier = notify.NewEmitterWithScheduler(ui.notice, func(d time.Duration, f func()) {
		ui.after(d, f)
	})

	content := container.NewBorder(topPanel, nil, nil, nil, ui.grid.Container())
	ui.window.SetContent(container.NewStack(content, ui.modal.Layer(), ui.notice.Container()))

	// Keyboard shortcuts for the viewer
	ui.window.Canvas().SetOnTypedKey(ui.onTypedKey)
	ui.window.Canvas().SetOnTypedRune(ui.onTypedRune)

	ui.logger.Debug().Int("sets", len(ui.sets)).Int("total", ui.total).Msg("UI setup completed")
}

// createMenu creates the application menu
func (ui *GalleryUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// Start preloads every set and renders the active one RenderDelay after
// the preload settles
func (ui *GalleryUI) Start(ctx context.Context) {
	ui.ctx = ctx
	ui.showLoading()

	ui.spawn(func() {
		summary, err := ui.preloader.Preload(ctx, ui.sets, ui.total)
		if err != nil {
			ui.logger.Warn().Err(err).Msg("preload interrupted")
		}
		if summary != nil {
			ui.logger.Info().
				Int("loaded", summary.Loaded()).
				Int("failed", summary.Failed()).
				Dur("took", summary.FinishedAt.Sub(summary.StartedAt)).
				Msg("preload finished")
		}

		ui.after(gallery.RenderDelay, func() {
			ui.runOnMain(func() {
				ui.render(ui.switcher.Active(), true)
				ui.after(LoadingHideDelay, func() {
					ui.runOnMain(ui.hideLoading)
				})
			})
		})
	})
}

// onPreloadProgress shows per-set progress while loading
func (ui *GalleryUI) onPreloadProgress(p preload.Progress) {
	ui.runOnMain(func() {
		set, _ := ui.sets.Find(p.Set)
		text := fmt.Sprintf("%s %s "+ProgressLabelFormat,
			ui.localization.GetText(KeyLoading), ui.localization.SetLabel(set), p.Settled, p.Total)
		ui.loadingLabel.SetText(text)
	})
}

// render rebuilds the grid from the cache for set
func (ui *GalleryUI) render(name model.SetName, animate bool) {
	set, ok := ui.sets.Find(name)
	if !ok {
		ui.logger.Error().Str("set", name.String()).Msg("render of unknown set")
		return
	}

	tiles := gallery.Render(ui.cache, set, ui.total, ui.extension)

	var schedule func(time.Duration, func())
	if animate {
		schedule = func(d time.Duration, f func()) {
			ui.after(d, func() { ui.runOnMain(f) })
		}
	}
	ui.grid.SetTiles(tiles, ui.localization.GetText(KeyImageCaption), schedule)
	ui.rendered = true

	ui.logger.Debug().
		Str("set", name.String()).
		Int("tiles", len(tiles)).
		Int("placeholders", gallery.CountPlaceholders(tiles)).
		Msg("gallery rendered")
}

// switchMode fades the grid out, waits, then renders the target set.
// Requests for the active set or during a running switch are ignored.
func (ui *GalleryUI) switchMode(target model.SetName) {
	if !ui.switcher.Begin(target) {
		return
	}

	ui.highlightTab(target)
	ui.grid.FadeOut()

	ui.after(gallery.FadeDuration, func() {
		ui.runOnMain(func() {
			ui.grid.Clear()
			ui.showLoading()
		})
		ui.after(gallery.RenderDelay, func() {
			ui.runOnMain(func() {
				active := ui.switcher.Commit()
				ui.render(active, true)
				ui.dispatch(viewer.SetMode{Mode: active})
				ui.hideLoading()
			})
		})
	})
}

// highlightTab marks the tab of name as active
func (ui *GalleryUI) highlightTab(name model.SetName) {
	for setName, btn := range ui.tabs {
		if setName == name {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

func (ui *GalleryUI) showLoading() {
	ui.loadingBar.Start()
	ui.loadingBox.Show()
}

func (ui *GalleryUI) hideLoading() {
	ui.loadingBar.Stop()
	ui.loadingBox.Hide()
	ui.loadingLabel.SetText(ui.localization.GetText(KeyLoading))
}

// onTileTapped opens a tile in the viewer
func (ui *GalleryUI) onTileTapped(tile model.Tile) {
	ui.dispatch(viewer.OpenTile{Tile: tile})
}

// onTypedKey handles keys without a printable rune
func (ui *GalleryUI) onTypedKey(event *fyne.KeyEvent) {
	if event.Name == fyne.KeyEscape {
		ui.dispatch(viewer.Key{Name: viewer.KeyEscape})
	}
}

// onTypedRune handles the zoom shortcuts
func (ui *GalleryUI) onTypedRune(r rune) {
	switch r {
	case '+', '=', '-', '_':
		ui.dispatch(viewer.Key{Name: string(r)})
	}
}

// dispatch runs ev through the reducer and performs the resulting effects
func (ui *GalleryUI) dispatch(ev viewer.Event) {
	prev := ui.state
	next, effects := ui.reducer.Reduce(prev, ev)
	ui.state = next

	if open, ok := ev.(viewer.OpenTile); ok && next.Open {
		ui.modal.Show(open.Tile.Image)
	}
	if prev.Open && !next.Open {
		ui.modal.Hide()
	}

	for _, effect := range effects {
		ui.perform(effect)
	}
}

// perform executes one reducer effect
func (ui *GalleryUI) perform(effect viewer.Effect) {
	ui.logger.Debug().Str("effect", effect.Kind.String()).Msg("viewer effect")

	switch effect.Kind {
	case viewer.EffectApplyZoom:
		ui.modal.ApplyZoom(effect.Zoom)
	case viewer.EffectLockScroll:
		ui.grid.LockScroll()
	case viewer.EffectUnlockScroll:
		ui.grid.UnlockScroll()
	case viewer.EffectCopyText:
		ui.copyToClipboard(effect.Address, KeyLinkCopied)
	case viewer.EffectCopyImage:
		// The clipboard only carries text, so the image is copied by location
		ui.copyToClipboard(effect.Address, KeyImageCopied)
	case viewer.EffectStartDownload:
		ui.startDownload(effect.Address, effect.Mode)
	case viewer.EffectNotify:
		ui.showNotification(effect.Notice)
	}
}

// showNotification shows a localized transient message
func (ui *GalleryUI) showNotification(key string) {
	ui.notifier.Show(ui.localization.GetText(key))
}

// copyToClipboard writes text to the system clipboard
func (ui *GalleryUI) copyToClipboard(text, successKey string) {
	clipboard := ui.app.Clipboard()
	if clipboard == nil {
		ui.logger.Error().Str("text", text).Msg("clipboard unavailable")
		ui.showNotification(KeyCopyFailed)
		return
	}
	clipboard.SetContent(text)
	ui.showNotification(successKey)
}

// startDownload saves address in the background
func (ui *GalleryUI) startDownload(address string, mode model.SetName) {
	set, _ := ui.sets.Find(mode)
	if set.Name == "" {
		set.Name = mode
	}
	label := ui.localization.SetLabel(set)

	ui.showNotification(KeyPreparing)

	ui.spawn(func() {
		result, err := ui.downloader.Download(ui.ctx, address, label)
		ui.runOnMain(func() {
			if err != nil {
				ui.logger.Error().Err(err).Str("address", address).Msg("download failed")
				ui.showNotification(KeyDownloadFailed)
				return
			}
			ui.lastDownload = result
			ui.showNotification(KeyDownloadStarted)
			ui.sendCompletionNotification(result)
		})
	})
}

// sendCompletionNotification announces a finished download
func (ui *GalleryUI) sendCompletionNotification(result *model.Download) {
	if ui.settings.GetAutoRevealOnComplete() {
		ui.onRevealFile(result.OutputPath)
	}

	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyDownloadCompleted),
		Content: result.FileName,
	})

	ui.showToastNotification(result)
}

// showToastNotification shows an in-app toast with reveal and open actions
func (ui *GalleryUI) showToastNotification(result *model.Download) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyDownloadCompleted))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(result.FileName)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(ui.localization.GetText(KeyReveal), func() {
		ui.onRevealFile(result.OutputPath)
	})
	revealBtn.Importance = widget.HighImportance

	openBtn := widget.NewButton(ui.localization.GetText(KeyOpen), func() {
		ui.onOpenFile(result.OutputPath)
	})

	if ui.toastPopup != nil {
		ui.toastPopup.Hide()
	}

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		toastPopup.Hide()
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	actions := container.NewHBox(revealBtn, openBtn)
	content := container.NewVBox(header, messageLabel, actions)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())
	ui.toastPopup = toastPopup

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.ShowAtPosition(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))

	ui.after(ToastAutoHide, func() {
		ui.runOnMain(toastPopup.Hide)
	})
}

// onRevealFile reveals a downloaded file in the system file manager
func (ui *GalleryUI) onRevealFile(filePath string) {
	if filePath == "" {
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Error().Err(err).Str("path", filePath).Msg("failed to reveal file")
		ui.notifier.Show(ui.localization.GetText(KeyErrorOpeningFile))
	}
}

// onOpenFile opens a downloaded file with the default application
func (ui *GalleryUI) onOpenFile(filePath string) {
	if filePath == "" {
		return
	}
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		ui.logger.Error().Err(err).Str("path", filePath).Msg("failed to open file")
		ui.notifier.Show(ui.localization.GetText(KeyErrorOpeningFile))
	}
}

// onShowSettings shows the settings dialog
func (ui *GalleryUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings into the services and widgets
func (ui *GalleryUI) applySettings() {
	ui.downloader.SetDownloadDirectory(ui.settings.GetDownloadDirectory())

	side := ui.mobile.TileSide(float32(ui.settings.GetTileSize()), ui.window.Canvas().Size().Width)
	if side != ui.grid.TileSide() {
		ui.grid.SetTileSide(side)
		if ui.rendered {
			ui.render(ui.switcher.Active(), false)
		}
	}

	if ui.settings.GetLanguage() != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}
}

// onLanguageChange handles language change
func (ui *GalleryUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.downloader.SetFilenamePrefix(ui.localization.GetText(KeyFilenamePrefix))

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *GalleryUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	for _, set := range ui.sets {
		ui.tabs[set.Name].SetText(ui.localization.SetLabel(set))
	}
	ui.loadingLabel.SetText(ui.localization.GetText(KeyLoading))
	ui.modal.RefreshTexts()

	// Captions are localized too
	if ui.rendered {
		ui.render(ui.switcher.Active(), false)
	}
}

// State returns the viewer state
func (ui *GalleryUI) State() viewer.State {
	return ui.state
}
