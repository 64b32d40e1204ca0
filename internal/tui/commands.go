package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cosmicui/internal/contact"
)

var errNoSender = errors.New("contact form is not connected to a mail transport")

// sendCmd delivers msg asynchronously and reports through sendResultMsg.
func sendCmd(sender contact.Sender, msg contact.Message, now time.Time) tea.Cmd {
	return func() tea.Msg {
		if sender == nil {
			return sendResultMsg{err: errNoSender}
		}
		ctx, cancel := context.WithTimeout(context.Background(), SendTimeout)
		defer cancel()
		return sendResultMsg{err: contact.Deliver(ctx, sender, msg, now)}
	}
}
