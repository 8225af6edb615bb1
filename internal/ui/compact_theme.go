package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Accent colors
var (
	AccentColor     = color.NRGBA{R: 0xFF, G: 0x1F, B: 0x3D, A: 0xFF}
	CardLightColor  = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	CardDarkColor   = color.NRGBA{R: 0x24, G: 0x24, B: 0x24, A: 0xFF}
	MutedLightColor = color.NRGBA{R: 0x17, G: 0x17, B: 0x17, A: 0xB3}
	MutedDarkColor  = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xB3}
)

// CompactTheme is the browser theme: reduced padding, a red accent for the
// active category and the sort toggle, and card-colored input backgrounds.
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return AccentColor
	case theme.ColorNameError:
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground:
		if variant == theme.VariantDark {
			return CardDarkColor
		}
		return CardLightColor
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.NRGBA{R: 23, G: 23, B: 23, A: 255}
	case theme.ColorNamePlaceHolder:
		if variant == theme.VariantDark {
			return MutedDarkColor
		}
		return MutedLightColor
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// cardColor returns the card background for the current theme variant
func cardColor() color.Color {
	if fyne.CurrentApp() != nil && fyne.CurrentApp().Settings().ThemeVariant() == theme.VariantDark {
		return CardDarkColor
	}
	return CardLightColor
}
