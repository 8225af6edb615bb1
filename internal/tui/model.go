package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ytget/media-browser/internal/browser"
	"github.com/ytget/media-browser/internal/i18n"
	"github.com/ytget/media-browser/internal/model"
)

// startMsg triggers the category load from inside the program loop
type startMsg struct{}

// dispatchMsg carries a fetch result back onto the program loop
type dispatchMsg func()

// Options configures the terminal UI
type Options struct {
	DefaultCategory string
	// Language is a code understood by i18n.Localization, "system" included
	Language string
	Logger   *zap.Logger

	// Go defaults to a new goroutine per fetch
	Go func(func())
}

// Model is the bubbletea model of the browser. Its view methods are only
// called from Update, so they run on the program loop.
type Model struct {
	ctx     context.Context
	browser *browser.Browser
	logger  *zap.Logger
	loc     *i18n.Localization
	send    func(tea.Msg)

	keys     keyMap
	styles   Styles
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model

	categories []model.Category
	cursor     int
	active     string
	items      []model.MediaItem
	sortOn     bool
	status     model.LoadStatus

	width  int
	height int
}

var _ browser.View = (*Model)(nil)

// New creates the terminal model. Fetch results are delivered inline until
// the model is attached to a program with Run.
func New(ctx context.Context, src browser.Source, opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Go == nil {
		opts.Go = func(f func()) { go f() }
	}

	loc := i18n.NewLocalization()
	if opts.Language != "" {
		loc.SetLanguage(opts.Language)
	}

	m := &Model{
		ctx:      ctx,
		logger:   opts.Logger,
		loc:      loc,
		keys:     defaultKeyMap(),
		styles:   DefaultStyles(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(Accent))),
		viewport: viewport.New(80, 20),
		help:     help.New(),
		status:   model.LoadStatusIdle,
	}
	m.browser = browser.New(src, m, browser.Options{
		DefaultCategory: opts.DefaultCategory,
		Logger:          opts.Logger.Named("browser"),
		Go:              opts.Go,
		Dispatch:        m.dispatch,
	})
	return m
}

// Run starts a full-screen program and blocks until the user quits
func Run(ctx context.Context, src browser.Source, opts Options) error {
	m := New(ctx, src, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	m.send = p.Send
	m.logger.Info("terminal ui started")
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	m.logger.Info("terminal ui stopped", zap.Stringer("last_status", m.status))
	return nil
}

func (m *Model) dispatch(f func()) {
	if m.send == nil {
		f()
		return
	}
	m.send(dispatchMsg(f))
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg { return startMsg{} })
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		m.browser.Start(m.ctx)
		return m, nil

	case dispatchMsg:
		msg()
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(-1)
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(1)
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if m.cursor < len(m.categories) {
				m.browser.Select(m.ctx, m.categories[m.cursor].ID)
			}
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			m.browser.ToggleSort()
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	if len(m.categories) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.categories)) % len(m.categories)
}

func (m *Model) reload() {
	if m.status.IsActive() {
		return
	}
	if len(m.categories) == 0 {
		m.browser.Start(m.ctx)
		return
	}
	m.browser.Select(m.ctx, m.browser.State().SelectedCategory)
}

// ShowCategories implements browser.View
func (m *Model) ShowCategories(categories []model.Category) {
	m.categories = categories
	m.cursor = 0
	m.active = ""
	m.layout()
}

// SetActiveCategory implements browser.View
func (m *Model) SetActiveCategory(id string) {
	m.active = id
	for i, c := range m.categories {
		if c.ID == id {
			m.cursor = i
		}
	}
}

// ShowMedia implements browser.View
func (m *Model) ShowMedia(items []model.MediaItem) {
	m.items = items
	m.viewport.SetContent(RenderCards(items, m.styles, m.loc, m.viewport.Width))
	m.viewport.GotoTop()
}

// ReorderMedia implements browser.View
func (m *Model) ReorderMedia(order []int) {
	items := make([]model.MediaItem, 0, len(order))
	for _, from := range order {
		if from < len(m.items) {
			items = append(items, m.items[from])
		}
	}
	m.items = items
	m.viewport.SetContent(RenderCards(items, m.styles, m.loc, m.viewport.Width))
}

// SetSortHighlight implements browser.View
func (m *Model) SetSortHighlight(on bool) {
	m.sortOn = on
}

// ShowStatus implements browser.View
func (m *Model) ShowStatus(status model.LoadStatus) {
	m.status = status
}

// layout sizes the viewport to what is left under the header and above help
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	header := lipgloss.Height(m.headerView()) + 1
	footer := lipgloss.Height(m.help.View(m.keys))
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-header-footer)
	m.viewport.SetContent(RenderCards(m.items, m.styles, m.loc, m.width))
}

// View implements tea.Model
func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.statusView(),
		m.viewport.View(),
		m.styles.Help.Render(m.help.View(m.keys)),
	)
}

func (m *Model) headerView() string {
	tabs := make([]string, 0, len(m.categories)+1)
	for i, c := range m.categories {
		style := m.styles.Tab
		switch {
		case c.ID == m.active:
			style = m.styles.ActiveTab
		case i == m.cursor:
			style = m.styles.CursorTab
		}
		if c.ID == m.active && i == m.cursor {
			style = style.Underline(true)
		}
		tabs = append(tabs, style.Render(c.Name))
	}

	sortStyle := m.styles.SortOff
	if m.sortOn {
		sortStyle = m.styles.SortOn
	}
	tabs = append(tabs, "  ", sortStyle.Render("⇅ "+m.loc.GetText(i18n.KeySortByViews)))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) statusView() string {
	switch m.status {
	case model.LoadStatusLoading:
		return m.styles.Status.Render(m.spinner.View() + " " + m.loc.GetText(i18n.KeyLoading))
	case model.LoadStatusReady:
		return m.styles.Status.Render(m.loc.FormatReady(len(m.items)))
	case model.LoadStatusEmpty:
		return m.styles.Status.Render(m.loc.GetText(i18n.KeyNoContent))
	case model.LoadStatusFailed:
		key := i18n.KeyLoadFailed
		if len(m.categories) == 0 {
			key = i18n.KeyNoCategories
		}
		return m.styles.Error.Render(m.loc.GetText(key))
	}
	return " "
}
