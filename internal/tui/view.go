package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/cosmicui/internal/site"
	"github.com/alexisbeaulieu97/cosmicui/internal/ui/components"
)

const (
	browseHelp = "↑/↓ scroll • tab/1-5 sections • c skills filter • f contact form • q quit"
	formHelp   = "tab next field • enter send (on button) • ctrl+s send • esc close"
)

// View renders the nav bar, the visible part of the page and a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	theme := m.page.Theme()
	ctx := components.DefaultContext().WithTheme(theme).WithWidth(m.width)

	nav := components.Render(site.NavBar(m.page.Config(), m.ActiveSection()), ctx)
	nav = lipgloss.NewStyle().MaxWidth(m.width).Render(nav)

	help := browseHelp
	if m.formOpen {
		help = formHelp
	}
	footer := helpStyle(theme).MaxWidth(m.width).Render(help)
	if m.notice != "" {
		footer = noticeStyle(theme).MaxWidth(m.width).Render(m.notice)
	}

	return lipgloss.JoinVertical(lipgloss.Left, nav, m.viewport.View(), footer)
}

// formView draws the contact form for the contact section.
func (m Model) formView() string {
	theme := m.page.Theme()
	ctx := components.DefaultContext().WithTheme(theme).WithWidth(m.width)

	var rows []string
	for i, in := range m.form.inputs {
		rows = append(rows, labelStyle(theme, m.form.focus == i).Render(fieldLabels[i]), in.View())
	}
	rows = append(rows,
		labelStyle(theme, m.form.focus == fieldMessage).Render(fieldLabels[fieldMessage]),
		m.form.message.View(),
	)

	label := "Send Message"
	if m.form.status == FormLoading {
		label = m.spinner.View() + " Sending..."
	}
	button := components.NewButton(label).
		WithAccent(components.PaletteSecondary).
		Focused(m.form.focus == fieldSubmit)
	rows = append(rows, "", button.ViewWithContext(ctx))

	if status := m.statusAlert(); status != nil {
		rows = append(rows, "", status.ViewWithContext(ctx))
	}

	return strings.Join(rows, "\n")
}

func (m Model) statusAlert() *components.Alert {
	switch m.form.status {
	case FormLoading:
		return components.NewAlert(m.form.statusText)
	case FormSuccess:
		return components.SuccessAlert(m.form.statusText)
	case FormError:
		return components.ErrorAlert(m.form.statusText)
	default:
		return nil
	}
}
