package ui

import (
	"context"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/media-browser/internal/browser"
	"github.com/ytget/media-browser/internal/config"
	"github.com/ytget/media-browser/internal/i18n"
	"github.com/ytget/media-browser/internal/model"
)

// Options wires RootUI to its collaborators
type Options struct {
	Source   browser.Source
	Images   ImageFetcher
	Settings *config.Settings
	UI       config.UIConfig
	Logger   *zap.Logger

	// Go and Dispatch default to goroutines and fyne.Do
	Go       func(func())
	Dispatch func(func())
}

// RootUI represents the main UI structure. It implements browser.View.
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	settings     *config.Settings
	localization *i18n.Localization
	logger       *zap.Logger

	browser    *browser.Browser
	thumbnails *ThumbnailLoader

	// Category bar
	categoryBar     *fyne.Container
	categories      []model.Category
	categoryButtons map[string]*widget.Button
	activeCategory  string

	sortBtn     *widget.Button
	statusLabel *widget.Label
	status      model.LoadStatus

	// Card grid
	cardGrid *fyne.Container
	cards    []*MediaCard
}

var _ browser.View = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI. Call Start to load data.
func NewRootUI(ctx context.Context, window fyne.Window, opts Options) *RootUI {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Go == nil {
		opts.Go = func(f func()) { go f() }
	}
	if opts.Dispatch == nil {
		opts.Dispatch = fyne.Do
	}

	localization := i18n.NewLocalization()
	localization.SetLanguage(opts.UI.Language)

	ui := &RootUI{
		ctx:             ctx,
		window:          window,
		settings:        opts.Settings,
		localization:    localization,
		logger:          opts.Logger,
		categoryButtons: make(map[string]*widget.Button),
		status:          model.LoadStatusIdle,
	}

	ui.thumbnails = NewThumbnailLoader(opts.Images, opts.UI.ThumbnailWorkers, opts.Dispatch, opts.Logger)
	ui.browser = browser.New(opts.Source, ui, browser.Options{
		DefaultCategory: opts.UI.DefaultCategory,
		Logger:          opts.Logger.Named("browser"),
		Go:              opts.Go,
		Dispatch:        opts.Dispatch,
	})

	window.SetTitle(localization.GetText(i18n.KeyAppTitle))
	ui.setupUI()
	return ui
}

// Start loads the categories and the default category
func (ui *RootUI) Start() {
	ui.browser.Start(ui.ctx)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.categoryBar = container.NewHBox()

	ui.sortBtn = widget.NewButton(IconSort+" "+ui.localization.GetText(i18n.KeySortByViews), ui.onSortClick)
	ui.sortBtn.Importance = widget.MediumImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var leading fyne.CanvasObject = settingsBtn
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		leading = container.NewHBox(logoImage, settingsBtn)
	}

	topPanel := container.NewBorder(nil, nil, leading, ui.sortBtn,
		container.NewCenter(container.NewHScroll(ui.categoryBar)))

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	ui.cardGrid = container.NewGridWrap(fyne.NewSize(CardWidth, CardMinHeight))

	content := container.NewBorder(
		container.NewVBox(topPanel, widget.NewSeparator(), ui.statusLabel),
		nil,
		nil,
		nil,
		container.NewVScroll(ui.cardGrid),
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeySettings), ui.onShowSettings)

	sortItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeySortByViews), ui.onSortClick)
	sortItem.Checked = ui.browser != nil && ui.browser.State().SortByViews
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeyReload), ui.onReload)
	reloadItem.Disabled = ui.status.IsActive()

	languageMenu := fyne.NewMenu(ui.localization.GetText(i18n.KeyLanguage))
	codes := make([]string, 0, 3)
	for code := range ui.localization.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	for _, code := range codes {
		code := code
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(code)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(i18n.KeyFile), settingsItem),
		fyne.NewMenu(ui.localization.GetText(i18n.KeyView), sortItem, reloadItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// ShowCategories rebuilds the category bar, one button per category
func (ui *RootUI) ShowCategories(categories []model.Category) {
	ui.categories = slices.Clone(categories)
	ui.categoryButtons = make(map[string]*widget.Button, len(categories))
	ui.activeCategory = ""

	ui.categoryBar.RemoveAll()
	for _, c := range categories {
		c := c
		btn := widget.NewButton(c.Name, func() {
			ui.browser.Select(ui.ctx, c.ID)
		})
		btn.Importance = widget.MediumImportance
		ui.categoryButtons[c.ID] = btn
		ui.categoryBar.Add(btn)
	}
	ui.categoryBar.Refresh()
}

// SetActiveCategory highlights the button of id and resets every other one
func (ui *RootUI) SetActiveCategory(id string) {
	ui.activeCategory = id
	for cid, btn := range ui.categoryButtons {
		if cid == id {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

// ShowMedia replaces every card and starts loading their images
func (ui *RootUI) ShowMedia(items []model.MediaItem) {
	ui.thumbnails.Cancel()

	ui.cards = make([]*MediaCard, 0, len(items))
	objects := make([]fyne.CanvasObject, 0, len(items))
	var targets []ImageTarget
	for _, item := range items {
		card := NewMediaCard(item, ui.localization)
		ui.cards = append(ui.cards, card)
		objects = append(objects, card)
		targets = append(targets, card.ImageTargets()...)
	}
	ui.cardGrid.Objects = objects
	ui.cardGrid.Refresh()

	if len(targets) > 0 {
		ui.thumbnails.Load(ui.ctx, targets)
	}
}

// ReorderMedia moves the existing cards, keeping their loaded images
func (ui *RootUI) ReorderMedia(order []int) {
	if len(order) != len(ui.cards) {
		ui.logger.Warn("reorder does not match displayed cards",
			zap.Int("order", len(order)), zap.Int("cards", len(ui.cards)))
		return
	}
	cards := make([]*MediaCard, len(order))
	objects := make([]fyne.CanvasObject, len(order))
	for i, from := range order {
		cards[i] = ui.cards[from]
		objects[i] = cards[i]
	}
	ui.cards = cards
	ui.cardGrid.Objects = objects
	ui.cardGrid.Refresh()
}

// SetSortHighlight shows whether the view-count sort is on
func (ui *RootUI) SetSortHighlight(on bool) {
	if on {
		ui.sortBtn.Importance = widget.HighImportance
	} else {
		ui.sortBtn.Importance = widget.MediumImportance
	}
	ui.sortBtn.Refresh()
	ui.createMenu()
}

// ShowStatus updates the status line under the category bar
func (ui *RootUI) ShowStatus(status model.LoadStatus) {
	wasActive := ui.status.IsActive()
	ui.status = status
	ui.refreshStatus()
	if wasActive != status.IsActive() {
		ui.createMenu()
	}
}

func (ui *RootUI) refreshStatus() {
	ui.statusLabel.Importance = widget.MediumImportance
	switch ui.status {
	case model.LoadStatusLoading:
		ui.statusLabel.SetText(IconLoading + " " + ui.localization.GetText(i18n.KeyLoading))
	case model.LoadStatusReady:
		ui.statusLabel.Importance = widget.LowImportance
		ui.statusLabel.SetText(ui.localization.FormatReady(len(ui.cards)))
	case model.LoadStatusEmpty:
		ui.statusLabel.SetText(IconEmpty + " " + ui.localization.GetText(i18n.KeyNoContent))
	case model.LoadStatusFailed:
		ui.statusLabel.Importance = widget.DangerImportance
		key := i18n.KeyLoadFailed
		if len(ui.categories) == 0 {
			key = i18n.KeyNoCategories
		}
		ui.statusLabel.SetText(IconError + " " + ui.localization.GetText(key))
	default:
		ui.statusLabel.SetText("")
	}
	ui.statusLabel.Refresh()
}

// onSortClick handles the sort button
func (ui *RootUI) onSortClick() {
	ui.browser.ToggleSort()
}

// onReload loads the active category again, or the categories if they failed.
// It does nothing while a request is in flight.
func (ui *RootUI) onReload() {
	if ui.status.IsActive() {
		return
	}
	if len(ui.categories) == 0 {
		ui.browser.Start(ui.ctx)
		return
	}
	ui.browser.Select(ui.ctx, ui.browser.State().SelectedCategory)
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	if ui.settings == nil {
		return
	}
	NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.categories, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies the settings that take effect immediately
func (ui *RootUI) onSettingsSaved() {
	ui.thumbnails.SetWorkers(ui.settings.GetThumbnailWorkers())
	if lang := ui.settings.GetLanguage(); lang != "" {
		ui.applyLanguage(lang)
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	if ui.settings != nil {
		ui.settings.SetLanguage(langCode)
	}
	ui.applyLanguage(langCode)
}

func (ui *RootUI) applyLanguage(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.logger.Debug("language changed", zap.String("language", ui.localization.GetCurrentLanguage()))
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(i18n.KeyAppTitle))
	ui.sortBtn.SetText(IconSort + " " + ui.localization.GetText(i18n.KeySortByViews))
	for _, card := range ui.cards {
		card.Retranslate()
	}
	ui.refreshStatus()
}

// Close stops image loading
func (ui *RootUI) Close() {
	ui.thumbnails.Cancel()
}
