package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/contact"
	"github.com/alexisbeaulieu97/cosmicui/internal/logger"
	"github.com/alexisbeaulieu97/cosmicui/internal/site"
	"github.com/alexisbeaulieu97/cosmicui/internal/timeline"
	"github.com/alexisbeaulieu97/cosmicui/internal/ui/components"
)

// chromeHeight is the number of lines taken by the nav bar and the help line.
const chromeHeight = 2

// SendTimeout bounds a contact form submission.
const SendTimeout = 30 * time.Second

// Model contains the Bubbletea state for the page browser.
type Model struct {
	page     *site.Page
	layout   site.Layout
	viewport viewport.Model
	spinner  spinner.Model

	// selected is the section last jumped to; it wins over the scroll
	// position until the user scrolls.
	selected string

	form     contactForm
	formOpen bool
	sender   contact.Sender

	log    *logger.Logger
	notice string

	width    int
	height   int
	quitting bool
	now      func() time.Time
}

// NewModel constructs a browser for cfg. Submissions go through sender; a nil
// sender leaves the form usable but reports every submission as failed.
func NewModel(cfg *config.Config, entries []timeline.Entry, sender contact.Sender, log *logger.Logger) Model {
	if log == nil {
		log = logger.Nop()
	}

	log = log.Component("tui")
	page, err := newPage(cfg, entries)
	var notice string
	if err != nil {
		log.Error(err, "site configuration has an unreadable timeline")
		notice = err.Error()
		page = site.NewWithTimeline(cfg, nil)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := Model{
		page:     page,
		viewport: viewport.New(site.DefaultWidth, 24-chromeHeight),
		spinner:  s,
		form:     newContactForm(),
		sender:   sender,
		log:      log,
		notice:   notice,
		width:    site.DefaultWidth,
		height:   24,
		now:      time.Now,
	}
	m.applyTheme()
	m.form.setWidth(m.width)
	m.render()
	return m
}

// newPage uses entries when given, otherwise the configured timeline.
func newPage(cfg *config.Config, entries []timeline.Entry) (*site.Page, error) {
	if entries != nil {
		return site.NewWithTimeline(cfg, entries), nil
	}
	return site.New(cfg)
}

// Init starts the spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// ActiveSection returns the id highlighted in the nav bar.
func (m Model) ActiveSection() string {
	if m.selected != "" {
		return m.selected
	}
	return site.ActiveSection(m.layout, m.viewport.YOffset)
}

// Category returns the selected skills category.
func (m Model) Category() string {
	return m.page.Category
}

// FormOpen reports whether the contact form has focus.
func (m Model) FormOpen() bool {
	return m.formOpen
}

// FormStatus returns the state of the last submission.
func (m Model) FormStatus() (FormStatus, string) {
	return m.form.status, m.form.statusText
}

// Offset returns the viewport scroll position.
func (m Model) Offset() int {
	return m.viewport.YOffset
}

// Layout returns the layout of the rendered page.
func (m Model) Layout() site.Layout {
	return m.layout
}

// render redraws the page into the viewport, keeping the scroll position.
func (m *Model) render() {
	if m.formOpen {
		m.page.Contact = components.NewText(m.formView())
	} else {
		m.page.Contact = nil
	}

	offset := m.viewport.YOffset
	content, layout := m.page.Render(m.width)
	m.layout = layout
	m.viewport.SetContent(content)
	m.viewport.SetYOffset(offset)
}

// scrollTo moves the viewport so section id starts at the top.
func (m *Model) scrollTo(id string) {
	if offset, ok := m.layout.Offset(id); ok {
		m.viewport.SetYOffset(offset)
		m.selected = id
	}
}

func (m *Model) scrollBy(lines int) {
	m.viewport.SetYOffset(m.viewport.YOffset + lines)
	m.selected = ""
}

// jump moves to the section delta positions away from the active one.
func (m *Model) jump(delta int) {
	sections := m.layout.Sections
	if len(sections) == 0 {
		return
	}
	active := m.ActiveSection()
	for i, s := range sections {
		if s.ID == active {
			next := (i + delta + len(sections)) % len(sections)
			m.scrollTo(sections[next].ID)
			return
		}
	}
}

func (m *Model) applyTheme() {
	theme := m.page.Theme()
	m.spinner.Style = spinnerStyle(theme)
}
