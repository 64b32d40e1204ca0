package components

import (
	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the colour and icon of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantError
)

// Alert displays a one-line status message, such as the contact form result.
type Alert struct {
	BaseComponent
	message string
	variant AlertVariant
}

// NewAlert creates a new info alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

// SuccessAlert creates a success alert.
func SuccessAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantSuccess)
}

// ErrorAlert creates an error alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantError)
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	p := ctx.Theme.Palette
	color, icon := p.Tertiary, "ℹ"
	switch a.variant {
	case AlertVariantSuccess:
		color, icon = p.Success, "✓"
	case AlertVariantError:
		color, icon = p.Danger, "✗"
	}

	style := a.ComputeStyle(ctx.Theme).
		Foreground(color).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(color).
		PaddingLeft(1)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width - 1)
	}
	return style.Render(icon + " " + a.message)
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}
