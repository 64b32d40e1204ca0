package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Meter shows a labelled 0-100 level as a gradient progress bar.
type Meter struct {
	BaseComponent
	label string
	level int
	color lipgloss.Color
}

// NewMeter creates a meter for level, clamped to 0-100.
func NewMeter(label string, level int) *Meter {
	return &Meter{
		BaseComponent: NewBaseComponent(),
		label:         label,
		level:         min(max(level, 0), 100),
	}
}

// View renders the meter.
func (m *Meter) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, the bar and the percentage on one line.
func (m *Meter) ViewWithContext(ctx RenderContext) string {
	p := ctx.Theme.Palette
	end := p.Tertiary
	if m.color != "" {
		end = m.color
	}

	width := ctx.Width
	if width <= 0 {
		width = 40
	}
	labelWidth := min(16, width/2)
	percent := fmt.Sprintf("%3d%%", m.level)
	barWidth := max(width-labelWidth-len(percent)-2, 4)

	bar := progress.New(progress.WithGradient(string(p.Secondary), string(end)), progress.WithoutPercentage())
	bar.Width = barWidth

	label := m.ComputeStyle(ctx.Theme).Foreground(p.Text).Width(labelWidth).MaxWidth(labelWidth).Render(m.label)
	return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", bar.ViewAs(float64(m.level)/100), " ", percent)
}

// WithColor sets the colour at the end of the bar.
func (m *Meter) WithColor(color lipgloss.Color) *Meter {
	m.color = color
	return m
}

// Level returns the clamped level.
func (m *Meter) Level() int {
	return m.level
}
