package tui

import (
	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/timeline"
)

// ConfigReloadedMsg replaces the site being browsed.
type ConfigReloadedMsg struct {
	Config   *config.Config
	Timeline []timeline.Entry
}

// ConfigErrorMsg reports a reload that failed; the current site stays up.
type ConfigErrorMsg struct {
	Err error
}

// sendResultMsg carries the outcome of a contact form submission.
type sendResultMsg struct {
	err error
}

// FormStatus tracks the contact form lifecycle.
type FormStatus int

const (
	FormIdle FormStatus = iota
	FormLoading
	FormSuccess
	FormError
)

func (s FormStatus) String() string {
	switch s {
	case FormLoading:
		return "loading"
	case FormSuccess:
		return "success"
	case FormError:
		return "error"
	default:
		return "idle"
	}
}
