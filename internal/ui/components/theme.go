package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cosmicui/pkg/gradient"
)

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Tertiary   lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Danger     lipgloss.Color
}

// PaletteSlot selects one colour from a palette.
type PaletteSlot func(Palette) lipgloss.Color

var (
	PalettePrimary    PaletteSlot = func(p Palette) lipgloss.Color { return p.Primary }
	PaletteSecondary  PaletteSlot = func(p Palette) lipgloss.Color { return p.Secondary }
	PaletteTertiary   PaletteSlot = func(p Palette) lipgloss.Color { return p.Tertiary }
	PaletteBackground PaletteSlot = func(p Palette) lipgloss.Color { return p.Background }
	PaletteText       PaletteSlot = func(p Palette) lipgloss.Color { return p.Text }
	PaletteMuted      PaletteSlot = func(p Palette) lipgloss.Color { return p.Muted }
	PaletteSuccess    PaletteSlot = func(p Palette) lipgloss.Color { return p.Success }
	PaletteDanger     PaletteSlot = func(p Palette) lipgloss.Color { return p.Danger }
)

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantEmphasis
	TypographyVariantMuted
	TypographyVariantCode
)

// TypographyScale contains the typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Emphasis lipgloss.Style
	Muted    lipgloss.Style
	Code     lipgloss.Style
}

// BorderVariant names a border from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// Theme is an immutable bundle of palette, typography and the headline gradient.
type Theme struct {
	Palette    Palette
	Typography TypographyScale
	// Headline is the gradient applied to GradientText.
	Headline gradient.Stops
}

// DefaultTheme returns the CosmicUI theme.
func DefaultTheme() Theme {
	return NewTheme(Palette{
		Primary:    lipgloss.Color("#ff69b4"),
		Secondary:  lipgloss.Color("#8a2be2"),
		Tertiary:   lipgloss.Color("#1e90ff"),
		Background: lipgloss.Color("#0a0118"),
		Text:       lipgloss.Color("#e0e0ff"),
		Muted:      lipgloss.Color("#8b86b3"),
		Success:    lipgloss.Color("#00ff41"),
		Danger:     lipgloss.Color("#ff4000"),
	}, gradient.DefaultHeadline)
}

// NewTheme derives typography from palette. Empty Text/Muted/Success/Danger slots get defaults.
func NewTheme(palette Palette, headline gradient.Stops) Theme {
	if palette.Text == "" {
		palette.Text = lipgloss.Color("#e0e0ff")
	}
	if palette.Muted == "" {
		palette.Muted = lipgloss.Color("#8b86b3")
	}
	if palette.Success == "" {
		palette.Success = lipgloss.Color("#00ff41")
	}
	if palette.Danger == "" {
		palette.Danger = lipgloss.Color("#ff4000")
	}

	return Theme{
		Palette: palette,
		Typography: TypographyScale{
			Body:     lipgloss.NewStyle().Foreground(palette.Text),
			Title:    lipgloss.NewStyle().Bold(true).Foreground(palette.Primary),
			Subtitle: lipgloss.NewStyle().Foreground(palette.Text).Faint(true),
			Emphasis: lipgloss.NewStyle().Bold(true).Foreground(palette.Tertiary),
			Muted:    lipgloss.NewStyle().Foreground(palette.Muted),
			Code:     lipgloss.NewStyle().Foreground(palette.Secondary),
		},
		Headline: headline,
	}
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantMuted:
		return typo.Muted
	case TypographyVariantCode:
		return typo.Code
	default:
		return typo.Body
	}
}

// BorderForVariant returns the lipgloss border for variant.
func BorderForVariant(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return lipgloss.NormalBorder()
	case BorderVariantRounded:
		return lipgloss.RoundedBorder()
	case BorderVariantThick:
		return lipgloss.ThickBorder()
	case BorderVariantDouble:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.HiddenBorder()
	}
}

// Foreground applies a palette colour as the text colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette))
	}
}

// Background applies a palette colour as the background.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Background(slot(theme.Palette))
	}
}

// Border applies a border and colours it with slot.
func Border(variant BorderVariant, slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(variant)).BorderForeground(slot(theme.Palette))
	}
}

// Padding applies vertical and horizontal padding.
func Padding(vertical, horizontal int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Padding(vertical, horizontal)
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Bold toggles bold text.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// CardBaseStyle is the style bundle shared by cards.
func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		Border(BorderVariantRounded, PaletteSecondary),
		Padding(0, 1),
	}
}
