package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cosmicui/pkg/gradient"
)

// Shade picks which variant of each resolved colour is drawn.
type Shade int

const (
	ShadeBase Shade = iota
	ShadeHighlight
	ShadeGlow
)

// Apply returns the shaded variant of c.
func (s Shade) Apply(c gradient.RGB) gradient.RGB {
	switch s {
	case ShadeHighlight:
		return gradient.Highlight(c)
	case ShadeGlow:
		return gradient.Glow(c)
	default:
		return c
	}
}

// GradientText colours each rune of its content along a multi-stop gradient.
type GradientText struct {
	BaseComponent
	content string
	stops   gradient.Stops
	shade   Shade
}

// NewGradientText creates gradient text that uses the theme's headline stops.
func NewGradientText(content string) *GradientText {
	return &GradientText{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default theme.
func (g *GradientText) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders one styled cell per rune.
func (g *GradientText) ViewWithContext(ctx RenderContext) string {
	stops := g.stops
	if stops == nil {
		stops = ctx.Theme.Headline
	}

	base := g.ComputeStyle(ctx.Theme)
	runes := []rune(g.content)
	colors := gradient.Colorize(stops, g.content)

	var b strings.Builder
	for i, r := range runes {
		color := g.shade.Apply(colors[i])
		b.WriteString(base.Foreground(lipgloss.Color(color.Hex())).Render(string(r)))
	}
	return b.String()
}

// Colors returns the colour each rune is drawn with under theme.
func (g *GradientText) Colors(theme Theme) []gradient.RGB {
	stops := g.stops
	if stops == nil {
		stops = theme.Headline
	}
	colors := gradient.Colorize(stops, g.content)
	for i := range colors {
		colors[i] = g.shade.Apply(colors[i])
	}
	return colors
}

// WithStops overrides the theme gradient.
func (g *GradientText) WithStops(stops gradient.Stops) *GradientText {
	g.stops = stops
	return g
}

// WithShade selects the base, highlight or glow variant.
func (g *GradientText) WithShade(shade Shade) *GradientText {
	g.shade = shade
	return g
}

// Bold renders the text in bold.
func (g *GradientText) Bold() *GradientText {
	g.AddAppliers(Bold())
	return g
}

// Content returns the uncoloured text.
func (g *GradientText) Content() string {
	return g.content
}
