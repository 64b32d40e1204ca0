package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/contact"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width, 20)
		m.height = msg.Height
		m.viewport.Width = m.width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.form.setWidth(m.width)
		m.render()
		return m, nil

	case tea.KeyMsg:
		if m.formOpen {
			return m.handleFormKey(msg)
		}
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.form.status != FormLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.render()
		return m, cmd

	case sendResultMsg:
		if msg.err != nil {
			m.log.Error(msg.err, "contact form submission failed")
			m.form.status = FormError
			m.form.statusText = contact.UserMessage(msg.err)
		} else {
			m.form.status = FormSuccess
			m.form.statusText = formMsgSent
			m.form.reset()
		}
		m.render()
		return m, nil

	case ConfigReloadedMsg:
		m.reload(msg)
		return m, nil

	case ConfigErrorMsg:
		m.log.Error(msg.Err, "config reload failed")
		m.notice = "reload failed: " + msg.Err.Error()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "pgup", "b":
		m.scrollBy(-m.viewport.Height)
	case "pgdown", " ":
		m.scrollBy(m.viewport.Height)
	case "home", "g":
		m.scrollBy(-m.viewport.YOffset)
	case "end", "G":
		m.scrollBy(m.layout.Height)
	case "tab":
		m.jump(1)
	case "shift+tab":
		m.jump(-1)
	case "c":
		m.page.Category = m.page.Skills().NextCategory(m.page.Category)
		m.render()
	case "f":
		m.formOpen = true
		cmd := m.form.setFocus(m.form.focus)
		m.render()
		m.scrollTo(config.SectionContact)
		return m, cmd
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if idx := int(key[0] - '1'); idx < len(m.page.Config().Nav) {
				m.scrollTo(m.page.Config().Nav[idx].ID)
			}
		}
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.formOpen = false
		m.render()
		return m, nil
	case "tab":
		cmd = m.form.next()
	case "shift+tab":
		cmd = m.form.prev()
	case "ctrl+s":
		return m.submit()
	case "enter":
		switch {
		case m.form.focus == fieldSubmit:
			return m.submit()
		case m.form.focus < fieldMessage:
			cmd = m.form.next()
		default:
			m.form, cmd = m.form.update(msg)
		}
	default:
		m.form, cmd = m.form.update(msg)
	}
	m.render()
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.form.status == FormLoading {
		return m, nil
	}

	if text, ok := m.form.validate(); !ok {
		m.form.status = FormError
		m.form.statusText = text
		m.render()
		return m, nil
	}

	m.form.status = FormLoading
	m.form.statusText = formMsgSending
	m.render()
	return m, tea.Batch(sendCmd(m.sender, m.form.Message(), m.now()), m.spinner.Tick)
}

func (m *Model) reload(msg ConfigReloadedMsg) {
	if msg.Config == nil {
		return
	}

	page, err := newPage(msg.Config, msg.Timeline)
	if err != nil {
		m.log.Error(err, "config reload failed")
		m.notice = "reload failed: " + err.Error()
		return
	}

	category := m.page.Category
	if slices.Contains(page.Skills().Categories(), category) {
		page.Category = category
	}

	m.page = page
	m.notice = ""
	m.applyTheme()
	m.render()
}
