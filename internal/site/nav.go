package site

import (
	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/ui"
	"github.com/alexisbeaulieu97/cosmicui/internal/ui/components"
)

// NavBar renders the site name and navigation, highlighting active.
func NavBar(cfg *config.Config, active string) ui.Renderable {
	bar := components.HStack(components.NewGradientText(cfg.Name).Bold()).WithGap(2)
	for i, item := range cfg.Nav {
		label := item.Label
		if i < 9 {
			label = string(rune('1'+i)) + " " + label
		}
		if item.ID == active {
			bar.Add(components.ActiveBadge(label))
		} else {
			bar.Add(components.NewBadge(label))
		}
	}
	return bar
}
