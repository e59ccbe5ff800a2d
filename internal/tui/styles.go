package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tweakpanel/internal/config"
	"github.com/alexisbeaulieu97/tweakpanel/pkg/colorfmt"
)

// Styles holds the lipgloss styles the view renders with.
type Styles struct {
	Accent lipgloss.Color

	Title    lipgloss.Style
	Folder   lipgloss.Style
	Name     lipgloss.Style
	Value    lipgloss.Style
	Cursor   lipgloss.Style
	Disabled lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds styles from theme colours. Unparseable colours fall back
// to the defaults.
func NewStyles(theme config.Theme) Styles {
	defaults := config.Default().Theme
	accent := themeColor(theme.Accent, defaults.Accent)
	muted := themeColor(theme.Muted, defaults.Muted)
	failure := themeColor(theme.Error, defaults.Error)

	return Styles{
		Accent:   accent,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Folder:   lipgloss.NewStyle().Bold(true),
		Name:     lipgloss.NewStyle().Width(16),
		Value:    lipgloss.NewStyle(),
		Cursor:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(muted),
		Status:   lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		Error:    lipgloss.NewStyle().Foreground(failure).Bold(true),
	}
}

func themeColor(value, fallback string) lipgloss.Color {
	if hex, ok := colorfmt.Normalize(value); ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(fallback)
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
}
