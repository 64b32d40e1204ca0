package contact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/logger"
	cosmicerrors "github.com/alexisbeaulieu97/cosmicui/pkg/errors"
)

// Sender delivers a composed envelope.
type Sender interface {
	Send(ctx context.Context, env Envelope) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, env Envelope) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, env Envelope) error {
	return f(ctx, env)
}

// ErrNotConfigured is returned by NewSMTPSender when no mail transport is set up.
var ErrNotConfigured = errors.New("contact: smtp host and recipient are required")

// SMTPSender delivers mail to a single recipient through an SMTP relay.
// STARTTLS is used when the server offers it; PLAIN auth is required when a
// password is set.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// NewSMTPSender builds a sender from the contact configuration. The password
// is read from the environment variable the configuration names.
func NewSMTPSender(cfg config.Contact) (*SMTPSender, error) {
	if cfg.SMTP.Host == "" || cfg.Recipient == "" {
		return nil, ErrNotConfigured
	}

	from := cfg.Sender
	if from == "" {
		from = cfg.Recipient
	}
	username := cfg.SMTP.Username
	if username == "" {
		username = from
	}

	return &SMTPSender{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: username,
		Password: os.Getenv(cfg.SMTP.PasswordEnv),
		From:     from,
		To:       cfg.Recipient,
	}, nil
}

// Send dials the relay and transmits env. The context bounds the whole exchange.
func (s *SMTPSender) Send(ctx context.Context, env Envelope) error {
	msg, err := s.message(env)
	if err != nil {
		return cosmicerrors.NewDeliveryError("smtp", err)
	}

	client, err := s.client()
	if err != nil {
		return cosmicerrors.NewDeliveryError("smtp", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return cosmicerrors.NewDeliveryError("smtp", err)
	}
	return nil
}

func (s *SMTPSender) client() (*mail.Client, error) {
	opts := []mail.Option{mail.WithTLSPolicy(mail.TLSOpportunistic)}
	if s.Port > 0 {
		opts = append(opts, mail.WithPort(s.Port))
	}
	if s.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.Username),
			mail.WithPassword(s.Password),
		)
	}
	return mail.NewClient(s.Host, opts...)
}

// message builds a multipart/alternative mail with a plain-text body and an
// HTML alternative.
func (s *SMTPSender) message(env Envelope) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.From); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if err := msg.To(s.To); err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	if env.ReplyTo != "" {
		if err := msg.ReplyTo(env.ReplyTo); err != nil {
			return nil, fmt.Errorf("reply-to: %w", err)
		}
	}

	sent := env.SentAt
	if sent.IsZero() {
		sent = time.Now()
	}
	msg.Subject(env.Subject)
	msg.SetDateWithValue(sent)
	msg.SetBodyString(mail.TypeTextPlain, env.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, env.HTML)
	return msg, nil
}

// Render encodes env exactly as Send would transmit it.
func (s *SMTPSender) Render(env Envelope) ([]byte, error) {
	msg, err := s.message(env)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := msg.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LogSender logs envelopes instead of delivering them. It backs --dry-run and
// sites without a mail relay.
type LogSender struct {
	Log *logger.Logger
}

// Send logs the envelope metadata.
func (s LogSender) Send(ctx context.Context, env Envelope) error {
	if err := ctx.Err(); err != nil {
		return cosmicerrors.NewDeliveryError("log", err)
	}
	s.Log.WithFields(map[string]any{
		"subject":  env.Subject,
		"reply_to": env.ReplyTo,
		"bytes":    len(env.Text) + len(env.HTML),
	}).Info("contact message received (not delivered)")
	return nil
}

// Deliver validates msg, composes it and hands it to sender.
func Deliver(ctx context.Context, sender Sender, msg Message, now time.Time) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	env, err := Compose(msg, now)
	if err != nil {
		return err
	}
	return sender.Send(ctx, env)
}
