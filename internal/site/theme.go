package site

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/ui/components"
	"github.com/alexisbeaulieu97/cosmicui/pkg/gradient"
)

// ThemeFor builds the component theme from the site's colours and headline gradient.
func ThemeFor(cfg *config.Config) components.Theme {
	def := components.DefaultTheme().Palette
	palette := def
	palette.Primary = colorOr(cfg.Theme.Primary, def.Primary)
	palette.Secondary = colorOr(cfg.Theme.Secondary, def.Secondary)
	palette.Tertiary = colorOr(cfg.Theme.Tertiary, def.Tertiary)
	palette.Background = colorOr(cfg.Theme.Background, def.Background)
	return components.NewTheme(palette, cfg.HeadlineStops())
}

// colorOr converts any colour notation the config accepts into the hex form
// lipgloss understands.
func colorOr(value string, fallback lipgloss.Color) lipgloss.Color {
	if value == "" {
		return fallback
	}
	c, err := gradient.ParseColor(value)
	if err != nil {
		return fallback
	}
	return lipgloss.Color(c.Hex())
}
