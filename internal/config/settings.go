package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage         = "app_language"
	KeyThumbnailWorkers = "thumbnail_workers"
	KeyDefaultCategory  = "default_category"
)

// Settings manages the options a user can change from the settings dialog.
// Values not stored in preferences fall back to the file configuration.
type Settings struct {
	app      fyne.App
	fallback UIConfig
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, fallback UIConfig) *Settings {
	return &Settings{app: app, fallback: fallback}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		if s.fallback.Language == "" {
			return DefaultLanguage
		}
		return s.fallback.Language
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetThumbnailWorkers returns how many images are fetched at once
func (s *Settings) GetThumbnailWorkers() int {
	value := s.app.Preferences().Int(KeyThumbnailWorkers)
	if value <= 0 {
		value = s.fallback.ThumbnailWorkers
	}
	return clampWorkers(value)
}

// SetThumbnailWorkers sets how many images are fetched at once
func (s *Settings) SetThumbnailWorkers(count int) {
	s.app.Preferences().SetInt(KeyThumbnailWorkers, clampWorkers(count))
}

// GetDefaultCategory returns the category selected at startup
func (s *Settings) GetDefaultCategory() string {
	id := s.app.Preferences().String(KeyDefaultCategory)
	if id == "" {
		return s.fallback.DefaultCategory
	}
	return id
}

// SetDefaultCategory sets the category selected at startup. An empty id
// restores the configured one.
func (s *Settings) SetDefaultCategory(id string) {
	s.app.Preferences().SetString(KeyDefaultCategory, id)
}

// Apply returns cfg with the stored preferences layered on top
func (s *Settings) Apply(cfg Config) Config {
	cfg.UI.Language = s.GetLanguage()
	cfg.UI.ThumbnailWorkers = s.GetThumbnailWorkers()
	if id := s.GetDefaultCategory(); id != "" {
		cfg.UI.DefaultCategory = id
	}
	return cfg
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampWorkers(count int) int {
	if count < MinThumbnailWorkers {
		return MinThumbnailWorkers
	}
	if count > MaxThumbnailWorkers {
		return MaxThumbnailWorkers
	}
	return count
}
