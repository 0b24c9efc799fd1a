package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#00B7C3")
	joined = lipgloss.Color("#E53935")
	muted  = lipgloss.Color("#9E9E9E")
)

// Styles holds the lipgloss styles for each panel element.
type Styles struct {
	Panel  lipgloss.Style
	Title  lipgloss.Style
	Joined lipgloss.Style
	Sender lipgloss.Style
	Text   lipgloss.Style
}

// DefaultStyles mirrors the cyan-on-plain-border look of the original client.
func DefaultStyles() Styles {
	return Styles{
		Panel:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(accent).Foreground(accent),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Joined: lipgloss.NewStyle().Foreground(joined),
		Sender: lipgloss.NewStyle().Foreground(accent),
		Text:   lipgloss.NewStyle().Foreground(muted),
	}
}
