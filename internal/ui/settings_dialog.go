package ui

import (
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/media-browser/internal/config"
	"github.com/ytget/media-browser/internal/i18n"
	"github.com/ytget/media-browser/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *i18n.Localization
	categories   []model.Category
	onSaved      func()
	dialog       *dialog.ConfirmDialog

	// UI components
	workersEntry   *widget.Entry
	categorySelect *widget.Select
	languageSelect *widget.Select
	languageCodes  map[string]string // display name -> code
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values are stored.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *i18n.Localization, categories []model.Category, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		categories:   categories,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.workersEntry = widget.NewEntry()
	sd.workersEntry.SetPlaceHolder(strconv.Itoa(config.MinThumbnailWorkers) + "-" + strconv.Itoa(config.MaxThumbnailWorkers))

	categoryNames := make([]string, 0, len(sd.categories))
	for _, c := range sd.categories {
		categoryNames = append(categoryNames, c.Name)
	}
	sd.categorySelect = widget.NewSelect(categoryNames, nil)

	names := sd.settings.GetLanguageOptions()
	sd.languageCodes = make(map[string]string, len(names))
	languageOptions := make([]string, 0, len(config.SupportedLanguages))
	for _, code := range config.SupportedLanguages {
		languageOptions = append(languageOptions, names[code])
		sd.languageCodes[names[code]] = code
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(i18n.KeyThumbnailWorkers)+":"),
		sd.workersEntry,

		widget.NewLabel(sd.localization.GetText(i18n.KeyDefaultCategory)+":"),
		sd.categorySelect,

		widget.NewSeparator(),

		widget.NewLabel(IconLanguage+" "+sd.localization.GetText(i18n.KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(i18n.KeySettings),
		sd.localization.GetText(i18n.KeySave),
		sd.localization.GetText(i18n.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 320))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.workersEntry.SetText(strconv.Itoa(sd.settings.GetThumbnailWorkers()))
	if c, ok := model.FindCategory(sd.categories, sd.settings.GetDefaultCategory()); ok {
		sd.categorySelect.SetSelected(c.Name)
	}
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
	dialog.ShowInformation(sd.localization.GetText(i18n.KeySettings), sd.localization.GetText(i18n.KeySettingsSaved), sd.window)
}

// save stores the edited values
func (sd *SettingsDialog) save() {
	if workers, err := strconv.Atoi(sd.workersEntry.Text); err == nil {
		sd.settings.SetThumbnailWorkers(workers)
	}

	if idx := slices.IndexFunc(sd.categories, func(c model.Category) bool {
		return c.Name == sd.categorySelect.Selected
	}); idx >= 0 {
		sd.settings.SetDefaultCategory(sd.categories[idx].ID)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
