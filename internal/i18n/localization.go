// Package i18n holds the translated texts and number formatting shared by
// the desktop and terminal front ends.
package i18n

import (
	"fmt"

	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ytget/media-browser/internal/model"
)

// DashPlaceholder stands in for a missing view count
const DashPlaceholder = "—"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
	printer         *message.Printer
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyView             = "view"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeySortByViews      = "sort_by_views"
	KeyReload           = "reload"
	KeyLoading          = "loading"
	KeyReady            = "ready"
	KeyNoContent        = "no_content"
	KeyLoadFailed       = "load_failed"
	KeyNoCategories     = "no_categories"
	KeyViews            = "views"
	KeyUnknownAuthor    = "unknown_author"
	KeyThumbnailWorkers = "thumbnail_workers"
	KeyDefaultCategory  = "default_category"
)

var supportedTags = []language.Tag{
	language.English, // first entry is the fallback
	language.Russian,
	language.Portuguese,
}

var languageMatcher = language.NewMatcher(supportedTags)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
		printer:         message.NewPrinter(language.English),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the closest
// supported language to the OS locale.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = matchLanguage(string(lang.SystemLocale()))
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
		l.printer = message.NewPrinter(language.Make(code))
	}
}

// matchLanguage maps a BCP 47 locale such as "pt-BR" to a supported code
func matchLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	_, idx, _ := languageMatcher.Match(tag)
	base, _ := supportedTags[idx].Base()
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
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// FormatViews renders a view counter with its label. Numeric counts get the
// digit grouping of the current language; text counts are shown as sent.
func (l *Localization) FormatViews(v model.ViewCount) string {
	text := v.Text
	if v.Numeric {
		text = l.printer.Sprintf("%d", v.Value)
	}
	if text == "" {
		text = DashPlaceholder
	}
	return fmt.Sprintf("%s %s", text, l.GetText(KeyViews))
}

// FormatReady renders the status line for n displayed items
func (l *Localization) FormatReady(n int) string {
	return l.printer.Sprintf(l.GetText(KeyReady), n)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Media Browser",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyView:             "View",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeySortByViews:      "Sort by view",
		KeyReload:           "Reload",
		KeyLoading:          "Loading...",
		KeyReady:            "%d items",
		KeyNoContent:        "Oops!! Sorry, there is no content here",
		KeyLoadFailed:       "Could not load content",
		KeyNoCategories:     "Could not load categories",
		KeyViews:            "views",
		KeyUnknownAuthor:    "Unknown author",
		KeyThumbnailWorkers: "Parallel image downloads",
		KeyDefaultCategory:  "Start with category",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Медиа браузер",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyView:             "Вид",
		KeyLanguage:         "Язык",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeySortByViews:      "По просмотрам",
		KeyReload:           "Обновить",
		KeyLoading:          "Загрузка...",
		KeyReady:            "Элементов: %d",
		KeyNoContent:        "Упс!! Здесь пока ничего нет",
		KeyLoadFailed:       "Не удалось загрузить содержимое",
		KeyNoCategories:     "Не удалось загрузить категории",
		KeyViews:            "просмотров",
		KeyUnknownAuthor:    "Неизвестный автор",
		KeyThumbnailWorkers: "Параллельных загрузок изображений",
		KeyDefaultCategory:  "Категория при запуске",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Navegador de Mídia",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyView:             "Exibir",
		KeyLanguage:         "Idioma",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeySortByViews:      "Ordenar por visualizações",
		KeyReload:           "Recarregar",
		KeyLoading:          "Carregando...",
		KeyReady:            "%d itens",
		KeyNoContent:        "Ops!! Desculpe, não há conteúdo aqui",
		KeyLoadFailed:       "Não foi possível carregar o conteúdo",
		KeyNoCategories:     "Não foi possível carregar as categorias",
		KeyViews:            "visualizações",
		KeyUnknownAuthor:    "Autor desconhecido",
		KeyThumbnailWorkers: "Downloads de imagens paralelos",
		KeyDefaultCategory:  "Categoria inicial",
	}
}
