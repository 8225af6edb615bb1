package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/media-browser/internal/config"
	"github.com/ytget/media-browser/internal/i18n"
	"github.com/ytget/media-browser/internal/model"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app, config.Default().UI)
	categories := []model.Category{{ID: "1000", Name: "All"}, {ID: "1003", Name: "Comedy"}}

	saved := 0
	sd := NewSettingsDialog(settings, window, i18n.NewLocalization(), categories, func() { saved++ })
	sd.loadCurrentSettings()

	if sd.categorySelect.Selected != "All" {
		t.Errorf("Expected current category All, got %q", sd.categorySelect.Selected)
	}
	if sd.languageSelect.Selected != "System Default" {
		t.Errorf("Expected language shown by name, got %q", sd.languageSelect.Selected)
	}

	sd.workersEntry.SetText("3")
	sd.categorySelect.SetSelected("Comedy")
	sd.languageSelect.SetSelected("Português")
	sd.save()

	if saved != 1 {
		t.Errorf("Expected onSaved once, got %d", saved)
	}
	if got := settings.GetThumbnailWorkers(); got != 3 {
		t.Errorf("Expected workers 3, got %d", got)
	}
	if got := settings.GetDefaultCategory(); got != "1003" {
		t.Errorf("Expected category 1003, got %s", got)
	}
	if got := settings.GetLanguage(); got != "pt" {
		t.Errorf("Expected language pt, got %s", got)
	}
}

func TestSettingsDialog_IgnoresBadWorkers(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app, config.Default().UI)
	sd := NewSettingsDialog(settings, window, i18n.NewLocalization(), nil, nil)
	sd.loadCurrentSettings()

	sd.workersEntry.SetText("many")
	sd.save()

	if got := settings.GetThumbnailWorkers(); got != config.DefaultThumbnailWorkers {
		t.Errorf("Expected default workers, got %d", got)
	}
}
