package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/cosmicui/internal/contact"
)

// Status texts shown under the form.
const (
	formMsgMissing = "Please fill in all required fields."
	formMsgSending = "Sending message..."
	formMsgSent    = "Message sent successfully! I'll get back to you soon."
)

const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldSubmit
	fieldCount
)

var fieldLabels = [...]string{"Name *", "Email *", "Subject", "Message *"}

// contactForm is the interactive version of the site's contact form.
type contactForm struct {
	inputs  [3]textinput.Model
	message textarea.Model
	focus   int

	status     FormStatus
	statusText string
}

func newContactForm() contactForm {
	placeholders := [3]string{"Your full name", "your.email@example.com", "What would you like to discuss?"}

	var f contactForm
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 200
		in.Prompt = "› "
		f.inputs[i] = in
	}

	f.message = textarea.New()
	f.message.Placeholder = "Tell me about your project, ideas, or just say hello!"
	f.message.ShowLineNumbers = false
	f.message.SetHeight(5)
	f.message.CharLimit = 4000

	f.inputs[fieldName].Focus()
	return f
}

// setWidth sizes every field for a contact section width columns wide.
func (f *contactForm) setWidth(width int) {
	w := max(width-4, 10)
	for i := range f.inputs {
		f.inputs[i].Width = w
	}
	f.message.SetWidth(w)
}

// Message returns the submission as typed.
func (f contactForm) Message() contact.Message {
	return contact.Message{
		Name:    f.inputs[fieldName].Value(),
		Email:   f.inputs[fieldEmail].Value(),
		Subject: f.inputs[fieldSubject].Value(),
		Message: f.message.Value(),
	}
}

// validate mirrors the checks the browser form runs before posting.
func (f contactForm) validate() (string, bool) {
	msg := f.Message().Normalize()
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return formMsgMissing, false
	}
	if err := msg.Validate(); err != nil {
		return contact.UserMessage(err), false
	}
	return "", true
}

func (f *contactForm) setFocus(index int) tea.Cmd {
	f.focus = (index + fieldCount) % fieldCount
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.message.Blur()

	switch {
	case f.focus < len(f.inputs):
		return f.inputs[f.focus].Focus()
	case f.focus == fieldMessage:
		return f.message.Focus()
	default:
		return nil
	}
}

func (f *contactForm) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *contactForm) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

func (f *contactForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.message.Reset()
	f.setFocus(fieldName)
}

// update forwards msg to the focused field.
func (f contactForm) update(msg tea.Msg) (contactForm, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case f.focus < len(f.inputs):
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	case f.focus == fieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return f, cmd
}
