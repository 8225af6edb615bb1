package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ytget/media-browser/internal/model"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubSource struct {
	categories    []model.Category
	categoriesErr error
	media         map[string][]model.MediaItem
}

func (s *stubSource) Categories(context.Context) ([]model.Category, error) {
	return s.categories, s.categoriesErr
}

func (s *stubSource) Media(_ context.Context, id string) ([]model.MediaItem, error) {
	return s.media[id], nil
}

func item(title string, views int64) model.MediaItem {
	return model.MediaItem{
		Title:   title,
		Authors: []model.Author{{Name: title + " author"}},
		Others:  model.MediaStats{Views: model.Views(views)},
	}
}

func newStub() *stubSource {
	return &stubSource{
		categories: []model.Category{
			{ID: "1000", Name: "All"},
			{ID: "1001", Name: "Music"},
			{ID: "2", Name: "Comedy"},
		},
		media: map[string][]model.MediaItem{
			"1000": {item("a", 5), item("b", 20), item("c", 3)},
			"1001": {item("song", 100)},
			"2":    {item("joke", 7)},
		},
	}
}

func started(t *testing.T, src *stubSource) *Model {
	t.Helper()
	m := New(context.Background(), src, Options{Go: func(f func()) { f() }})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(startMsg{})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func titles(items []model.MediaItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestModel_StartShowsDefaultCategory(t *testing.T) {
	m := started(t, newStub())

	assert.Len(t, m.categories, 3)
	assert.Equal(t, "1000", m.active)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, []string{"a", "b", "c"}, titles(m.items))
	assert.Equal(t, model.LoadStatusReady, m.status)

	view := m.View()
	assert.Contains(t, view, "All")
	assert.Contains(t, view, "Comedy")
	assert.Contains(t, view, "3 items")
}

func TestModel_NavigateAndSelect(t *testing.T) {
	m := started(t, newStub())

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.cursor)
	assert.Equal(t, "1000", m.active, "moving the cursor does not select")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "2", m.active)
	assert.Equal(t, []string{"joke"}, titles(m.items))

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.cursor, "cursor wraps around")
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.cursor)
}

func TestModel_SortToggle(t *testing.T) {
	m := started(t, newStub())

	m.Update(keyRunes("s"))
	assert.True(t, m.sortOn)
	assert.Equal(t, []string{"b", "a", "c"}, titles(m.items))

	m.Update(keyRunes("s"))
	assert.False(t, m.sortOn)
	assert.Equal(t, []string{"c", "a", "b"}, titles(m.items))
}

func TestModel_CategoriesFailure(t *testing.T) {
	src := newStub()
	src.categoriesErr = errors.New("connection refused")

	var m *Model
	require.NotPanics(t, func() { m = started(t, src) })
	assert.Empty(t, m.categories)
	assert.Empty(t, m.items)
	assert.Contains(t, m.View(), "Could not load categories")

	// enter and arrows are harmless without categories
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})

	src.categoriesErr = nil
	m.Update(keyRunes("r"))
	assert.Len(t, m.categories, 3)
	assert.Len(t, m.items, 3)
}

func TestModel_DispatchMsgRunsOnLoop(t *testing.T) {
	m := New(context.Background(), newStub(), Options{Go: func(f func()) { f() }})
	var sent []tea.Msg
	m.send = func(msg tea.Msg) { sent = append(sent, msg) }

	m.Update(startMsg{})
	require.Len(t, sent, 1, "categories result is queued, not applied")
	assert.Empty(t, m.categories)

	m.Update(sent[0])
	assert.Len(t, m.categories, 3)
	require.Len(t, sent, 2, "media result follows")

	m.Update(keyRunes("r"))
	assert.Len(t, sent, 2, "reload waits for the request in flight")

	m.Update(sent[1])
	assert.Len(t, m.items, 3)

	m.Update(keyRunes("r"))
	assert.Len(t, sent, 3)
}

func TestModel_Quit(t *testing.T) {
	m := started(t, newStub())

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_HelpToggle(t *testing.T) {
	m := started(t, newStub())
	short := m.View()

	m.Update(keyRunes("?"))
	assert.True(t, m.help.ShowAll)
	assert.NotEqual(t, short, m.View())
	assert.True(t, strings.Contains(m.View(), "reload"))
}

func TestModel_Localized(t *testing.T) {
	m := New(context.Background(), newStub(), Options{Language: "pt", Go: func(f func()) { f() }})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(startMsg{})

	view := m.View()
	assert.Contains(t, view, "Ordenar por visualizações")
	assert.NotContains(t, view, "Sort by view")
}
