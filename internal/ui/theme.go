package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Custom theme color names
const (
	ColorNameBackdrop    fyne.ThemeColorName = "backdrop"
	ColorNamePlaceholder fyne.ThemeColorName = "placeholder_tile"
	ColorNameNotice      fyne.ThemeColorName = "notice"
)

// GalleryTheme is a compact theme with gallery specific colors
type GalleryTheme struct{}

// NewGalleryTheme creates a new gallery theme
func NewGalleryTheme() fyne.Theme {
	return &GalleryTheme{}
}

// Color returns theme colors
func (t *GalleryTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameBackdrop:
		return color.NRGBA{R: 0, G: 0, B: 0, A: 216} // modal backdrop behind the zoomed image
	case ColorNamePlaceholder:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 48, G: 48, B: 52, A: 255}
		}
		return color.NRGBA{R: 226, G: 228, B: 232, A: 255}
	case ColorNameNotice:
		return color.NRGBA{R: 33, G: 33, B: 33, A: 230}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for the active tab
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GalleryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GalleryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *GalleryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}

// themeColor resolves a color from the current app theme
func themeColor(name fyne.ThemeColorName) color.Color {
	app := fyne.CurrentApp()
	if app == nil {
		return NewGalleryTheme().Color(name, theme.VariantLight)
	}
	return app.Settings().Theme().Color(name, app.Settings().ThemeVariant())
}
