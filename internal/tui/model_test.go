package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/contact"
	"github.com/alexisbeaulieu97/cosmicui/internal/timeline"
)

type captureSender struct {
	mu   sync.Mutex
	envs []contact.Envelope
}

func (c *captureSender) Send(_ context.Context, env contact.Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.envs = append(c.envs, env)
	return nil
}

func newTestModel(t *testing.T, sender contact.Sender) Model {
	t.Helper()
	m := NewModel(config.Default(), nil, sender, nil)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsAtHome(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, config.SectionHome, m.ActiveSection())
	assert.Equal(t, "All", m.Category())
	assert.False(t, m.FormOpen())
	assert.Zero(t, m.Offset())
	assert.Len(t, m.Layout().Sections, 5)
	require.NotNil(t, m.Init())
}

func TestNewModelUsesProvidedTimeline(t *testing.T) {
	entries := []timeline.Entry{{Title: "Launched v2"}}
	m := NewModel(config.Default(), entries, nil, nil)

	assert.Equal(t, entries, m.page.Timeline)
	view, _ := m.page.Render(100)
	assert.Contains(t, ansi.Strip(view), "Launched v2")
}

func TestNumberKeysJumpToSections(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, keys("3"))
	offset, ok := m.Layout().Offset(config.SectionProjects)
	require.True(t, ok)
	assert.Equal(t, offset, m.Offset())
	assert.Equal(t, config.SectionProjects, m.ActiveSection())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, offset+1, m.Offset())
	assert.Equal(t, config.SectionProjects, m.ActiveSection())

	m = update(t, m, keys("1"))
	assert.Zero(t, m.Offset())
	assert.Equal(t, config.SectionHome, m.ActiveSection())
}

func TestTabCyclesSections(t *testing.T) {
	m := newTestModel(t, nil)

	var visited []string
	for range m.Layout().Sections {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
		visited = append(visited, m.ActiveSection())
	}
	assert.Equal(t, []string{"about", "projects", "experience", "contact", "home"}, visited)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "contact", m.ActiveSection())
}

func TestCategoryKeyCyclesSkills(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, keys("c"))
	assert.Equal(t, "Frontend", m.Category())
	m = update(t, m, keys("c"))
	assert.Equal(t, "Backend", m.Category())
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, nil)

	updated, cmd := m.Update(keys("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.View())
}

func TestFormValidationRunsBeforeSending(t *testing.T) {
	sender := &captureSender{}
	m := newTestModel(t, sender)

	m = update(t, m, keys("f"))
	require.True(t, m.FormOpen())
	assert.Equal(t, config.SectionContact, m.ActiveSection())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(Model)
	assert.Nil(t, cmd)
	status, text := m.FormStatus()
	assert.Equal(t, FormError, status)
	assert.Equal(t, "Please fill in all required fields.", text)

	m = update(t, m, keys("Ada"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, keys("not-an-email"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, keys("Hello"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	status, text = m.FormStatus()
	assert.Equal(t, FormError, status)
	assert.Equal(t, "Please enter a valid email address.", text)
	assert.Empty(t, sender.envs)
}

func TestFormSubmitsThroughSender(t *testing.T) {
	sender := &captureSender{}
	m := newTestModel(t, sender)

	m = update(t, m, keys("f"))
	m = update(t, m, keys("Ada"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, keys("ada@example.com"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, keys("Hi"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, keys("Hello there"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})

	require.Equal(t, contact.Message{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello there"}, m.form.Message())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)
	status, text := m.FormStatus()
	assert.Equal(t, FormLoading, status)
	assert.Equal(t, "Sending message...", text)
	assert.Contains(t, ansi.Strip(m.formView()), "Sending...")

	result := findSendResult(t, cmd)
	require.NoError(t, result.err)

	m = update(t, m, result)
	status, text = m.FormStatus()
	assert.Equal(t, FormSuccess, status)
	assert.Equal(t, "Message sent successfully! I'll get back to you soon.", text)
	assert.Empty(t, m.form.Message().Name, "form resets after success")

	require.Len(t, sender.envs, 1)
	assert.Equal(t, "Portfolio Contact: Hi", sender.envs[0].Subject)
}

func TestFormReportsDeliveryFailure(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, keys("f"))

	m = update(t, m, sendResultMsg{err: errors.New("relay down")})
	status, text := m.FormStatus()
	assert.Equal(t, FormError, status)
	assert.Equal(t, contact.MsgDeliveryFailed, text)
	assert.Contains(t, ansi.Strip(m.formView()), "✗ "+contact.MsgDeliveryFailed)
}

func TestSendWithoutSenderFails(t *testing.T) {
	msg := sendCmd(nil, contact.Message{}, time.Now())()
	result, ok := msg.(sendResultMsg)
	require.True(t, ok)
	require.ErrorIs(t, result.err, errNoSender)
}

func TestEscClosesForm(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, keys("f"))
	require.True(t, m.FormOpen())
	m = update(t, m, keys("q"))
	require.True(t, m.FormOpen(), "q is typed into the form while it is open")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.FormOpen())
}

func TestSpinnerTickIgnoredWhenIdle(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(m.spinner.Tick())
	assert.Nil(t, cmd)
}

func TestConfigReloadReplacesSite(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, keys("c"))

	cfg := config.Default()
	cfg.Name = "Nova"
	m = update(t, m, ConfigReloadedMsg{Config: cfg})

	assert.Contains(t, ansi.Strip(m.View()), "Nova")
	assert.Equal(t, "Frontend", m.Category(), "category survives reload when still present")

	cfg = config.Default()
	cfg.Skills = cfg.Skills[5:6]
	m = update(t, m, ConfigReloadedMsg{Config: cfg})
	assert.Equal(t, "All", m.Category())
}

func TestConfigErrorShowsNotice(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, ConfigErrorMsg{Err: errors.New("line 3: bad indent")})
	assert.Contains(t, ansi.Strip(m.View()), "reload failed: line 3: bad indent")

	m = update(t, m, ConfigReloadedMsg{Config: config.Default()})
	assert.NotContains(t, ansi.Strip(m.View()), "reload failed")
}

func TestNewModelShowsTimelineErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Timeline.Entries = []config.TimelineEntry{{Date: "someday", Title: "Launch"}}

	m := NewModel(cfg, nil, nil, nil)
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "timeline: timeline entry 0")
	assert.Empty(t, m.page.Timeline)
}

func TestConfigReloadKeepsSiteOnTimelineError(t *testing.T) {
	m := newTestModel(t, nil)

	cfg := config.Default()
	cfg.Name = "Nova"
	cfg.Timeline.Entries = []config.TimelineEntry{{Date: "someday", Title: "Launch"}}
	m = update(t, m, ConfigReloadedMsg{Config: cfg})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "reload failed: timeline")
	assert.NotContains(t, view, "Nova")
	assert.Equal(t, "CosmicUI", m.page.Config().Name)
}

func TestViewShowsNavAndHelp(t *testing.T) {
	m := newTestModel(t, nil)
	view := ansi.Strip(m.View())

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 30)
	assert.Contains(t, lines[0], "CosmicUI")
	assert.Contains(t, lines[0], "1 Home")
	assert.Contains(t, lines[len(lines)-1], "q quit")
	assert.Contains(t, view, "Explore The Universe")
}

func findSendResult(t *testing.T, cmd tea.Cmd) sendResultMsg {
	t.Helper()

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if res, ok := c().(sendResultMsg); ok {
				return res
			}
		}
	}
	if res, ok := msg.(sendResultMsg); ok {
		return res
	}
	t.Fatal("no send result produced")
	return sendResultMsg{}
}
