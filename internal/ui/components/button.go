package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects a solid or outlined button.
type ButtonVariant int

const (
	ButtonVariantSolid ButtonVariant = iota
	ButtonVariantOutline
)

// Button is a visual-only call-to-action.
type Button struct {
	BaseComponent
	label   string
	variant ButtonVariant
	accent  PaletteSlot
	focused bool
}

// NewButton creates a solid primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		accent:        PaletteSecondary,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	color := b.accent(ctx.Theme.Palette)
	style := b.ComputeStyle(ctx.Theme).Padding(0, 2)

	if b.variant == ButtonVariantOutline {
		style = style.Foreground(color).Border(lipgloss.RoundedBorder()).BorderForeground(color).Padding(0, 1)
	} else {
		style = style.Foreground(ctx.Theme.Palette.Text).Background(color).Bold(true)
	}
	if b.focused {
		style = style.Underline(true)
	}
	return style.Render(b.label)
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithAccent selects the palette colour of the button.
func (b *Button) WithAccent(slot PaletteSlot) *Button {
	b.accent = slot
	return b
}

// Focused marks the button as focused.
func (b *Button) Focused(focused bool) *Button {
	b.focused = focused
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}
