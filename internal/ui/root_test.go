package ui

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gallery-viewer/internal/cache"
	"github.com/ytget/gallery-viewer/internal/config"
	"github.com/ytget/gallery-viewer/internal/gallery"
	"github.com/ytget/gallery-viewer/internal/logging"
	"github.com/ytget/gallery-viewer/internal/model"
	"github.com/ytget/gallery-viewer/internal/notify"
	"github.com/ytget/gallery-viewer/internal/preload"
	"github.com/ytget/gallery-viewer/internal/viewer"
)

// fakePreloader stores the configured indices of each set straight into the cache
type fakePreloader struct {
	cache    *cache.Cache
	loaded   map[model.SetName][]int
	callback func(preload.Progress)
}

func (f *fakePreloader) SetUpdateCallback(callback func(preload.Progress)) {
	f.callback = callback
}

func (f *fakePreloader) Preload(ctx context.Context, sets model.ImageSets, total int) (*preload.Summary, error) {
	summary := &preload.Summary{StartedAt: time.Now()}
	for _, set := range sets {
		s := preload.SetSummary{Set: set.Name}
		for _, index := range f.loaded[set.Name] {
			img := &model.Image{
				Address: set.Address(index, ".png"),
				Image:   image.NewRGBA(image.Rect(0, 0, 40, 20)),
			}
			f.cache.Store(set.Name, index, img)
			s.Loaded++
		}
		for i := 1; i <= total; i++ {
			if _, ok := f.cache.Get(set.Name, i); !ok {
				f.cache.MarkFailed(set.Name, i)
				s.Failed++
			}
		}
		if f.callback != nil {
			f.callback(preload.Progress{Set: set.Name, Settled: total, Total: total})
		}
		summary.Sets = append(summary.Sets, s)
	}
	summary.FinishedAt = time.Now()
	return summary, nil
}

type downloadCall struct {
	address string
	label   string
}

type fakeDownloader struct {
	mu     sync.Mutex
	calls  []downloadCall
	dir    string
	prefix string
	err    error
}

func (f *fakeDownloader) SetUpdateCallback(func(*model.Download)) {}

func (f *fakeDownloader) Download(ctx context.Context, address, label string) (*model.Download, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, downloadCall{address: address, label: label})
	if f.err != nil {
		return nil, f.err
	}
	return &model.Download{Address: address, FileName: "file.png"}, nil
}

func (f *fakeDownloader) SetDownloadDirectory(dir string) { f.dir = dir }

func (f *fakeDownloader) SetFilenamePrefix(prefix string) { f.prefix = prefix }

// scheduler collects delayed work so tests decide when it runs
type scheduler struct {
	queue  []func()
	delays []time.Duration
}

func (s *scheduler) after(d time.Duration, f func()) {
	s.delays = append(s.delays, d)
	s.queue = append(s.queue, f)
}

// step runs only the work queued so far
func (s *scheduler) step() {
	queued := s.queue
	s.queue = nil
	for _, f := range queued {
		f()
	}
}

func (s *scheduler) drain() {
	for len(s.queue) > 0 {
		s.step()
	}
}

type testUI struct {
	ui         *GalleryUI
	app        fyne.App
	cache      *cache.Cache
	downloader *fakeDownloader
	sched      *scheduler
}

func newTestUI(t *testing.T, total int, loaded map[model.SetName][]int) *testUI {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)
	app.Settings().SetTheme(NewGalleryTheme())
	window := test.NewWindow(nil)

	g := config.Defaults()
	g.TotalImages = total

	c := cache.New()
	downloader := &fakeDownloader{}
	ui := NewGalleryUI(window, app, Options{
		Gallery:    g,
		Cache:      c,
		Preloader:  &fakePreloader{cache: c, loaded: loaded},
		Downloader: downloader,
		Logger:     logging.NewNopLogger(),
	})

	sched := &scheduler{}
	ui.runOnMain = func(f func()) { f() }
	ui.after = sched.after
	ui.spawn = func(f func()) { f() }

	return &testUI{ui: ui, app: app, cache: c, downloader: downloader, sched: sched}
}

func startedUI(t *testing.T) *testUI {
	t.Helper()
	tu := newTestUI(t, 3, map[model.SetName][]int{
		model.SetOriginal: {1, 2},
		model.SetCutout:   {1, 2, 3},
	})
	tu.ui.Start(context.Background())
	tu.sched.drain()
	return tu
}

func TestNewGalleryUI(t *testing.T) {
	tu := newTestUI(t, 3, nil)
	ui := tu.ui

	if ui.switcher.Active() != model.SetOriginal {
		t.Errorf("Expected original to be active, got %s", ui.switcher.Active())
	}
	if len(ui.tabs) != 2 {
		t.Fatalf("Expected 2 tabs, got %d", len(ui.tabs))
	}
	if ui.tabs[model.SetOriginal].Importance != widget.HighImportance {
		t.Error("Active tab should be highlighted")
	}
	if ui.state.Open {
		t.Error("Viewer should start closed")
	}
	if tu.downloader.dir == "" {
		t.Error("Download directory should be passed to the downloader")
	}
	if tu.downloader.prefix != "image" && tu.downloader.prefix != "图片" {
		t.Errorf("Unexpected filename prefix %q", tu.downloader.prefix)
	}
}

func TestNewGalleryUI_ThemeColors(t *testing.T) {
	newTestUI(t, 1, nil)

	galleryTheme := NewGalleryTheme()
	for _, name := range []fyne.ThemeColorName{ColorNameBackdrop, ColorNamePlaceholder, ColorNameNotice} {
		want := galleryTheme.Color(name, fyne.CurrentApp().Settings().ThemeVariant())
		if got := themeColor(name); got != want {
			t.Errorf("themeColor(%s) = %v, expected %v", name, got, want)
		}
	}
}

func TestStart_RendersAfterPreload(t *testing.T) {
	tu := newTestUI(t, 3, map[model.SetName][]int{model.SetOriginal: {1, 2}})
	tu.ui.Start(context.Background())

	// Preload has settled; the render waits for RenderDelay
	if len(tu.ui.grid.Tiles()) != 0 {
		t.Fatalf("Grid should stay empty until the render delay passes, got %d tiles", len(tu.ui.grid.Tiles()))
	}
	if len(tu.sched.delays) != 1 || tu.sched.delays[0] != gallery.RenderDelay {
		t.Fatalf("Expected a single render delay of %v, got %v", gallery.RenderDelay, tu.sched.delays)
	}
	tu.sched.step()

	tiles := tu.ui.grid.Tiles()
	if len(tiles) != 3 {
		t.Fatalf("Expected 3 tiles, got %d", len(tiles))
	}
	if tiles[0].Tile().IsPlaceholder() || tiles[1].Tile().IsPlaceholder() {
		t.Error("Tiles 1 and 2 should carry images")
	}
	if !tiles[2].Tile().IsPlaceholder() {
		t.Error("Tile 3 should be a placeholder")
	}
	if !tu.ui.loadingBox.Visible() {
		t.Error("Loading indicator should remain until the hide delay passes")
	}

	// Run the hide delay but not the tile fades queued alongside it
	var hideQueued bool
	for _, d := range tu.sched.delays {
		if d == LoadingHideDelay {
			hideQueued = true
		}
	}
	if !hideQueued {
		t.Fatal("Expected the loading indicator hide to be scheduled")
	}
	tu.sched.drain()
	if tu.ui.loadingBox.Visible() {
		t.Error("Loading indicator should be hidden after the first render")
	}
}

func TestTileTap_OpensViewer(t *testing.T) {
	tu := startedUI(t)
	ui := tu.ui

	test.Tap(ui.grid.Tiles()[1])

	if !ui.State().Open {
		t.Fatal("Expected the viewer to open")
	}
	if ui.State().CurrentImage != "image/2.png" {
		t.Errorf("Expected image/2.png, got %s", ui.State().CurrentImage)
	}
	if !ui.modal.Visible() {
		t.Error("Modal layer should be visible")
	}
	if !ui.grid.IsScrollLocked() {
		t.Error("Gallery scrolling should be locked")
	}
	if ui.modal.Zoom() != viewer.DefaultZoom {
		t.Errorf("Expected zoom 1, got %v", ui.modal.Zoom())
	}
}

func TestTileTap_PlaceholderDoesNothing(t *testing.T) {
	tu := startedUI(t)

	test.Tap(tu.ui.grid.Tiles()[2])
	if tu.ui.State().Open || tu.ui.modal.Visible() {
		t.Error("Placeholder tiles must not open the viewer")
	}
}

func TestKeyboardShortcuts(t *testing.T) {
	tu := startedUI(t)
	ui := tu.ui

	// Ignored while closed
	ui.onTypedRune('+')
	if ui.modal.Zoom() != viewer.DefaultZoom {
		t.Errorf("Zoom should not change while closed, got %v", ui.modal.Zoom())
	}

	test.Tap(ui.grid.Tiles()[0])
	ui.onTypedRune('+')
	ui.onTypedRune('=')
	if ui.modal.Zoom() != 1.2 {
		t.Errorf("Expected zoom 1.2, got %v", ui.modal.Zoom())
	}
	ui.onTypedRune('_')
	if ui.modal.Zoom() != 1.1 {
		t.Errorf("Expected zoom 1.1, got %v", ui.modal.Zoom())
	}

	ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if ui.State().Open || ui.modal.Visible() {
		t.Error("Escape should close the viewer")
	}
	if ui.grid.IsScrollLocked() {
		t.Error("Closing should unlock scrolling")
	}
}

func TestBackdropTapCloses(t *testing.T) {
	tu := startedUI(t)
	ui := tu.ui

	test.Tap(ui.grid.Tiles()[0])
	ui.dispatch(viewer.Close{})
	ui.dispatch(viewer.Close{})
	if ui.State().Open {
		t.Error("Expected the viewer to be closed")
	}
}

func TestCopyLink(t *testing.T) {
	tu := startedUI(t)
	ui := tu.ui

	test.Tap(ui.grid.Tiles()[0])
	ui.dispatch(viewer.CopyLink{})

	if content := tu.app.Clipboard().Content(); content != "image/1.png" {
		t.Errorf("Expected clipboard to hold image/1.png, got %q", content)
	}
	if ui.notice.Text() != ui.localization.GetText(KeyLinkCopied) {
		t.Errorf("Unexpected notice %q", ui.notice.Text())
	}
}

func TestActionsWithoutImage(t *testing.T) {
	tu := startedUI(t)
	ui := tu.ui

	ui.dispatch(viewer.Download{})
	if ui.notice.Text() != ui.localization.GetText(KeyNothingToDownload) {
		t.Errorf("Unexpected notice %q", ui.notice.Text())
	}
	if len(tu.downloader.calls) != 0 {
		t.Error("No download should start without an image")
	}

	ui.dispatch(viewer.CopyImage{})
	if ui.notice.Text() != ui.localization.GetText(KeyNothingToCopy) {
		t.Errorf("Unexpected notice %q", ui.notice.Text())
	}
}

func TestNotice_HidesThroughScheduler(t *testing.T) {
	tu := startedUI(t)
	ui := tu.ui

	ui.dispatch(viewer.CopyLink{})
	if !ui.notice.Visible() {
		t.Fatal("Notice should be visible right after an action")
	}
	if n := len(tu.sched.queue); n != 1 {
		t.Fatalf("Expected the notice hide to be queued, got %d queued", n)
	}
	if tu.sched.delays[len(tu.sched.delays)-1] != notify.HideAfter {
		t.Errorf("Expected hide after %v, got %v", notify.HideAfter, tu.sched.delays[len(tu.sched.delays)-1])
	}

	tu.sched.drain()
	if ui.notice.Visible() {
		t.Error("Notice should be hidden once the queued hide runs")
	}
}

func TestDownload_UsesModeLabel(t *testing.T) {
	tu := startedUI(t)
	ui := tu.ui
	ui.onLanguageChange(LanguageChinese)

	test.Tap(ui.grid.Tiles()[0])
	ui.dispatch(viewer.Download{})

	if len(tu.downloader.calls) != 1 {
		t.Fatalf("Expected one download, got %d", len(tu.downloader.calls))
	}
	call := tu.downloader.calls[0]
	if call.address != "image/1.png" || call.label != "原图" {
		t.Errorf("Unexpected download call %+v", call)
	}
	if tu.downloader.prefix != "图片" {
		t.Errorf("Expected localized prefix, got %q", tu.downloader.prefix)
	}
	if ui.notice.Text() != "开始下载" {
		t.Errorf("Expected started notice, got %q", ui.notice.Text())
	}
	if ui.toastPopup == nil {
		t.Error("Expected a completion toast")
	}
}

func TestDownload_Failure(t *testing.T) {
	tu := startedUI(t)
	tu.downloader.err = errors.New("boom")

	test.Tap(tu.ui.grid.Tiles()[0])
	tu.ui.dispatch(viewer.Download{})

	if tu.ui.notice.Text() != tu.ui.localization.GetText(KeyDownloadFailed) {
		t.Errorf("Expected failure notice, got %q", tu.ui.notice.Text())
	}
	if tu.ui.toastPopup != nil {
		t.Error("Failed downloads should not show a toast")
	}
}

func TestSwitchMode(t *testing.T) {
	tu := startedUI(t)
	ui := tu.ui

	ui.switchMode(model.SetCutout)
	if ui.tabs[model.SetCutout].Importance != widget.HighImportance {
		t.Error("Target tab should be highlighted immediately")
	}

	// A second request while the first is running is ignored
	ui.switchMode(model.SetOriginal)

	tu.sched.step() // fade finished: grid cleared
	if len(ui.grid.Tiles()) != 0 {
		t.Errorf("Grid should be empty between fade and render, got %d", len(ui.grid.Tiles()))
	}

	tu.sched.drain()
	if ui.switcher.Active() != model.SetCutout {
		t.Errorf("Expected cutout to be active, got %s", ui.switcher.Active())
	}
	if ui.State().Mode != model.SetCutout {
		t.Errorf("Viewer mode should follow the switch, got %s", ui.State().Mode)
	}
	tiles := ui.grid.Tiles()
	if len(tiles) != 3 || tiles[2].Tile().IsPlaceholder() {
		t.Error("Cutout set should render three loaded tiles")
	}
	if ui.loadingBox.Visible() {
		t.Error("Loading indicator should be hidden after the switch")
	}

	// Switching to the active set is a no-op
	ui.switchMode(model.SetCutout)
	if len(tu.sched.queue) != 0 {
		t.Error("Switching to the active set should schedule nothing")
	}
}

func TestLanguageChange_UpdatesTexts(t *testing.T) {
	tu := startedUI(t)
	ui := tu.ui

	ui.onLanguageChange(LanguageChinese)
	if ui.tabs[model.SetOriginal].Text != "原图" || ui.tabs[model.SetCutout].Text != "抠图" {
		t.Error("Tab labels should be localized")
	}
	if ui.grid.Tiles()[0].captionLabel.Text != "图片 1" {
		t.Errorf("Expected localized caption, got %q", ui.grid.Tiles()[0].captionLabel.Text)
	}
	if ui.settings.GetLanguage() != LanguageChinese {
		t.Error("Language should be persisted")
	}
}
