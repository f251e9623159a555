package tui

import (
	"Nivesh/internal/presenter"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles of the dashboard.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Up       lipgloss.Style
	Down     lipgloss.Style
	Flat     lipgloss.Style
	Error    lipgloss.Style
	Notice   lipgloss.Style
	Panel    lipgloss.Style
	Footer   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color("#0f766e")).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e2e8f0")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10b981")).
			Bold(true),
		Up: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10b981")),
		Down: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444")),
		Flat: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444")).
			Bold(true),
		Notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#f59e0b")).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748b")).
			MarginTop(1),
	}
}

// trend picks the style of a presenter trend.
func (s Styles) trend(t string) lipgloss.Style {
	switch t {
	case presenter.TrendUp:
		return s.Up
	case presenter.TrendDown:
		return s.Down
	default:
		return s.Flat
	}
}
