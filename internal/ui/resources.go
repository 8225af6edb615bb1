package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "media-browser.png"
)

// LoadLogoResource loads the logo shown next to the category bar. The file is
// optional; callers fall back to the title text when it is missing.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
