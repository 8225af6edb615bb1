// Package tui is the terminal front end of the media browser. Model
// implements browser.View on top of bubbletea; RenderCard is shared with the
// headless list command.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Accent      = lipgloss.Color("#FF1F3D")
	Foreground  = lipgloss.AdaptiveColor{Light: "#171717", Dark: "#F2F2F2"}
	Muted       = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#9E9E9E"}
	Border      = lipgloss.AdaptiveColor{Light: "#DCE0E5", Dark: "#3A3A3A"}
	Destructive = lipgloss.Color("#E53935")
)

// Styles holds every style used to render the terminal UI
type Styles struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	CursorTab lipgloss.Style
	SortOn    lipgloss.Style
	SortOff   lipgloss.Style
	Card      lipgloss.Style
	Title     lipgloss.Style
	Author    lipgloss.Style
	Views     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the styles of the browser
func DefaultStyles() Styles {
	tab := lipgloss.NewStyle().Padding(0, 1).Foreground(Foreground)
	return Styles{
		Tab:       tab,
		ActiveTab: tab.Background(Accent).Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		CursorTab: tab.Underline(true),
		SortOn:    tab.Background(Accent).Foreground(lipgloss.Color("#FFFFFF")),
		SortOff:   tab.Foreground(Muted),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1).
			Width(CardWidth),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(Foreground),
		Author: lipgloss.NewStyle().Foreground(Muted),
		Views:  lipgloss.NewStyle().Foreground(Muted).Italic(true),
		Status: lipgloss.NewStyle().Foreground(Muted).Padding(0, 1),
		Error:  lipgloss.NewStyle().Foreground(Destructive).Padding(0, 1),
		Help:   lipgloss.NewStyle().Padding(0, 1),
	}
}
