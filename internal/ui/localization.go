package ui

import (
	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"

	"github.com/ytget/gallery-viewer/internal/model"
)

// Languages with a translation table
const (
	LanguageSystem  = "system"
	LanguageEnglish = "en"
	LanguageChinese = "zh"
)

// supportedTags is ordered by preference; the first entry is the fallback
var supportedTags = []language.Tag{
	language.English,
	language.Chinese,
}

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyTileSize          = "tile_size"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyLoading           = "loading"
	KeyImageCaption      = "image_caption"
	KeyFilenamePrefix    = "filename_prefix"
	KeyZoomIn            = "zoom_in"
	KeyZoomOut           = "zoom_out"
	KeyClose             = "close"
	KeyCopyLink          = "copy_link"
	KeyCopyImage         = "copy_image"
	KeyDownload          = "download"
	KeyLinkCopied        = "link_copied"
	KeyImageCopied       = "image_copied"
	KeyCopyFailed        = "copy_failed"
	KeyNothingToCopy     = "nothing_to_copy"
	KeyNothingToDownload = "nothing_to_download"
	KeyPreparing         = "preparing_download"
	KeyDownloadStarted   = "download_started"
	KeyDownloadCompleted = "download_completed"
	KeyDownloadFailed    = "download_failed"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
	KeyErrorOpeningFile  = "error_opening_file"
)

// setLabelKey returns the text key of a set's tab label
func setLabelKey(name model.SetName) string {
	return "set_" + string(name)
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LanguageEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(code string) {
	if code == LanguageSystem || code == "" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// systemLanguage maps the OS locale onto a supported language
func systemLanguage() string {
	return MatchLanguage(string(lang.SystemLocale()))
}

// MatchLanguage returns the supported language closest to a BCP 47 locale
func MatchLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return LanguageEnglish
	}

	matcher := language.NewMatcher(supportedTags)
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return LanguageEnglish
	}
	base, _ := supportedTags[index].Base()
	return base.String()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// SetLabel returns the display label of an image set. Sets without a
// translation use their configured label, then their name.
func (l *Localization) SetLabel(set model.ImageSet) string {
	key := setLabelKey(set.Name)
	if text := l.GetText(key); text != key {
		return text
	}
	if set.Label != "" {
		return set.Label
	}
	return set.Name.String()
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LanguageEnglish: "English",
		LanguageChinese: "中文",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[LanguageEnglish] = map[string]string{
		KeyAppTitle:                    "Gallery Viewer",
		KeySettings:                    "Settings",
		KeyFile:                        "File",
		KeyLanguage:                    "Language",
		KeyDownloadDirectory:           "Download Directory",
		KeyTileSize:                    "Tile Size",
		KeyAutoReveal:                  "Reveal downloads when finished",
		KeySave:                        "Save",
		KeyCancel:                      "Cancel",
		KeyBrowse:                      "Browse",
		KeySettingsSaved:               "Settings saved successfully!",
		KeyLoading:                     "Loading images...",
		KeyImageCaption:                "Image %d",
		KeyFilenamePrefix:              "image",
		KeyZoomIn:                      "Zoom in",
		KeyZoomOut:                     "Zoom out",
		KeyClose:                       "Close",
		KeyCopyLink:                    "Copy link",
		KeyCopyImage:                   "Copy image",
		KeyDownload:                    "Download",
		KeyLinkCopied:                  "Image link copied!",
		KeyImageCopied:                 "Image location copied!",
		KeyCopyFailed:                  "Copy failed, please try again",
		KeyNothingToCopy:               "No image to copy",
		KeyNothingToDownload:           "No image to download",
		KeyPreparing:                   "Preparing download...",
		KeyDownloadStarted:             "Download started",
		KeyDownloadCompleted:           "Download completed",
		KeyDownloadFailed:              "Download failed, please try again",
		KeyReveal:                      "Reveal",
		KeyOpen:                        "Open",
		KeyErrorOpeningFile:            "Error opening file",
		setLabelKey(model.SetOriginal): "Original",
		setLabelKey(model.SetCutout):   "Cutout",
	}

	// Chinese texts
	l.texts[LanguageChinese] = map[string]string{
		KeyAppTitle:                    "图片画廊",
		KeySettings:                    "设置",
		KeyFile:                        "文件",
		KeyLanguage:                    "语言",
		KeyDownloadDirectory:           "下载目录",
		KeyTileSize:                    "缩略图大小",
		KeyAutoReveal:                  "下载完成后显示文件",
		KeySave:                        "保存",
		KeyCancel:                      "取消",
		KeyBrowse:                      "浏览",
		KeySettingsSaved:               "设置已保存！",
		KeyLoading:                     "正在加载图片...",
		KeyImageCaption:                "图片 %d",
		KeyFilenamePrefix:              "图片",
		KeyZoomIn:                      "放大",
		KeyZoomOut:                     "缩小",
		KeyClose:                       "关闭",
		KeyCopyLink:                    "复制链接",
		KeyCopyImage:                   "复制图片",
		KeyDownload:                    "下载",
		KeyLinkCopied:                  "图片链接已复制！",
		KeyImageCopied:                 "图片地址已复制！",
		KeyCopyFailed:                  "复制失败，请重试",
		KeyNothingToCopy:               "没有可复制的图片",
		KeyNothingToDownload:           "没有可下载的图片",
		KeyPreparing:                   "正在准备下载...",
		KeyDownloadStarted:             "开始下载",
		KeyDownloadCompleted:           "下载完成",
		KeyDownloadFailed:              "下载失败，请重试",
		KeyReveal:                      "显示",
		KeyOpen:                        "打开",
		KeyErrorOpeningFile:            "打开文件出错",
		setLabelKey(model.SetOriginal): "原图",
		setLabelKey(model.SetCutout):   "抠图",
	}
}
