package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cosmicui/internal/ui/components"
)

func spinnerStyle(theme components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Palette.Primary)
}

func helpStyle(theme components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Palette.Muted)
}

func noticeStyle(theme components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Palette.Danger).Bold(true)
}

func labelStyle(theme components.Theme, focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(theme.Palette.Tertiary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.Palette.Muted)
}
