package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header represents a section heading with an optional subtitle.
type Header struct {
	BaseComponent
	title    string
	subtitle string
	gradient bool
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	h := &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
	h.SetAppliers(Typography(TypographyVariantTitle))
	return h
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	var title string
	if h.gradient {
		title = NewGradientText(h.title).Bold().ViewWithContext(ctx)
	} else {
		title = h.ComputeStyle(ctx.Theme).Render(h.title)
	}

	if h.subtitle == "" {
		return title
	}

	subtitle := TypographyStyle(ctx.Theme, TypographyVariantSubtitle)
	if ctx.Width > 0 {
		subtitle = subtitle.Width(ctx.Width)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle.Render(h.subtitle))
}

// WithAppliers applies theme-based style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.AddAppliers(appliers...)
	return h
}

// WithSubtitle adds a subtitle to the header.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithGradient colours the title with the theme's headline gradient.
func (h *Header) WithGradient() *Header {
	h.gradient = true
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}
