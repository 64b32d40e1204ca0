package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cosmicui/internal/ui"
)

// Card is a bordered container for grouped content such as a project or feature.
type Card struct {
	BaseComponent
	title    string
	accent   PaletteSlot
	children []ui.Renderable
	footer   ui.Renderable
	width    int
}

// NewCard creates a new card with default card styling.
func NewCard(children ...ui.Renderable) *Card {
	c := &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
	c.SetAppliers(CardBaseStyle()...)
	return c
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card; its border and padding take four columns.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	width := c.width
	if width <= 0 || (ctx.Width > 0 && width > ctx.Width) {
		width = ctx.Width
	}

	inner := ctx
	if width > 0 {
		inner = ctx.WithWidth(max(width-4, 1))
	}

	rows := make([]string, 0, len(c.children)+3)
	if c.title != "" {
		titleStyle := TypographyStyle(ctx.Theme, TypographyVariantTitle)
		if c.accent != nil {
			titleStyle = titleStyle.Foreground(c.accent(ctx.Theme.Palette))
		}
		rows = append(rows, titleStyle.Render(c.title))
	}
	for _, child := range c.children {
		if view := Render(child, inner); view != "" {
			rows = append(rows, view)
		}
	}
	if c.footer != nil {
		rows = append(rows, HorizontalDivider().ViewWithContext(inner), Render(c.footer, inner))
	}

	style := c.ComputeStyle(ctx.Theme)
	if c.accent != nil {
		style = style.BorderForeground(c.accent(ctx.Theme.Palette))
	}
	if width > 0 {
		style = style.Width(max(width-2, 1))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// WithTitle adds a title row to the card.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter adds a footer below a divider.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithAccent colours the border and title with slot.
func (c *Card) WithAccent(slot PaletteSlot) *Card {
	c.accent = slot
	return c
}

// WithAccentColor colours the border and title with a fixed colour.
func (c *Card) WithAccentColor(color lipgloss.Color) *Card {
	c.accent = func(Palette) lipgloss.Color { return color }
	return c
}

// WithWidth fixes the outer width of the card.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// Add appends children to the card body.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}
