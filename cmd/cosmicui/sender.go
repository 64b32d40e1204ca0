package main

import (
	"errors"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/contact"
	"github.com/alexisbeaulieu97/cosmicui/internal/logger"
)

// buildSender returns the SMTP relay for cfg, or a LogSender when dryRun is
// set or no relay is configured.
func buildSender(cfg config.Contact, dryRun bool, log *logger.Logger) (contact.Sender, error) {
	if dryRun {
		return contact.LogSender{Log: log}, nil
	}

	sender, err := contact.NewSMTPSender(cfg)
	if errors.Is(err, contact.ErrNotConfigured) {
		log.Warn("no smtp relay configured, contact messages will only be logged")
		return contact.LogSender{Log: log}, nil
	}
	if err != nil {
		return nil, err
	}
	return sender, nil
}
