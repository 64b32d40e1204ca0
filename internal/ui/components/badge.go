package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small label such as a skill category or technology.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSecondary
	BadgeVariantTertiary
	BadgeVariantActive
)

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme).Padding(0, 1)
	p := theme.Palette

	switch b.variant {
	case BadgeVariantPrimary:
		return style.Foreground(p.Primary)
	case BadgeVariantSecondary:
		return style.Foreground(p.Secondary)
	case BadgeVariantTertiary:
		return style.Foreground(p.Tertiary)
	case BadgeVariantActive:
		return style.Bold(true).Foreground(p.Background).Background(p.Primary)
	default:
		return style.Foreground(p.Muted)
	}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// ActiveBadge creates a badge rendered as selected.
func ActiveBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantActive)
}
