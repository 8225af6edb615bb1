package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/media-browser/internal/i18n"
	"github.com/ytget/media-browser/internal/model"
)

// CardWidth is the content width of one card
const CardWidth = 32

// cardGap is the horizontal space between cards of a row
const cardGap = 1

// authorBullet starts each author line
const authorBullet = "◉ "

// RenderCard renders one media item as a bordered card: title, one line per
// author, then the views.
func RenderCard(item model.MediaItem, s Styles, loc *i18n.Localization) string {
	var b strings.Builder
	b.WriteString(s.Title.Render(item.GetDisplayTitle()))

	for _, a := range item.Authors {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			name = loc.GetText(i18n.KeyUnknownAuthor)
		}
		b.WriteString("\n")
		b.WriteString(s.Author.Render(authorBullet + name))
	}

	b.WriteString("\n")
	b.WriteString(s.Views.Render(loc.FormatViews(item.Others.Views)))
	return s.Card.Render(b.String())
}

// Columns returns how many cards fit next to each other in width
func Columns(width int, s Styles) int {
	cell := s.Card.GetHorizontalFrameSize() + CardWidth + cardGap
	if width <= 0 || cell <= 0 {
		return 1
	}
	return max(1, width/cell)
}

// RenderCards lays the items out in rows that fit width, in order
func RenderCards(items []model.MediaItem, s Styles, loc *i18n.Localization, width int) string {
	if len(items) == 0 {
		return ""
	}
	cols := Columns(width, s)
	gap := strings.Repeat(" ", cardGap)

	rows := make([]string, 0, (len(items)+cols-1)/cols)
	for start := 0; start < len(items); start += cols {
		end := min(start+cols, len(items))
		cells := make([]string, 0, 2*(end-start))
		for i, it := range items[start:end] {
			if i > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, RenderCard(it, s, loc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
