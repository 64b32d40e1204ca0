package contact

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
	"github.com/alexisbeaulieu97/cosmicui/internal/logger"
	cosmicerrors "github.com/alexisbeaulieu97/cosmicui/pkg/errors"
)

// fakeRelay is a minimal SMTP server that records one transaction per connection.
type fakeRelay struct {
	ln       net.Listener
	rejectTo bool

	mu   sync.Mutex
	from string
	to   string
	data string
}

func startRelay(t *testing.T, rejectTo bool) *fakeRelay {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	r := &fakeRelay{ln: ln, rejectTo: rejectTo}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go r.handle(conn)
		}
	}()
	return r
}

func (r *fakeRelay) port() int {
	return r.ln.Addr().(*net.TCPAddr).Port
}

func (r *fakeRelay) handle(conn net.Conn) {
	defer conn.Close()
	rw := bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn))
	reply := func(line string) {
		_, _ = rw.WriteString(line + "\r\n")
		_ = rw.Flush()
	}

	reply("220 localhost ESMTP fake")
	for {
		line, err := rw.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			reply("250 localhost")
		case strings.HasPrefix(cmd, "MAIL FROM:"):
			r.mu.Lock()
			r.from = strings.TrimSpace(line[len("MAIL FROM:"):])
			r.mu.Unlock()
			reply("250 OK")
		case strings.HasPrefix(cmd, "RCPT TO:"):
			if r.rejectTo {
				reply("550 no such user")
				continue
			}
			r.mu.Lock()
			r.to = strings.TrimSpace(line[len("RCPT TO:"):])
			r.mu.Unlock()
			reply("250 OK")
		case cmd == "DATA":
			reply("354 go ahead")
			var data strings.Builder
			for {
				l, err := rw.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
				data.WriteString(l)
			}
			r.mu.Lock()
			r.data = data.String()
			r.mu.Unlock()
			reply("250 queued")
		case cmd == "QUIT":
			reply("221 bye")
			return
		default:
			reply("250 OK")
		}
	}
}

func (r *fakeRelay) snapshot() (from, to, data string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.from, r.to, r.data
}

func TestNewSMTPSenderRequiresHostAndRecipient(t *testing.T) {
	t.Parallel()

	_, err := NewSMTPSender(config.Contact{})
	require.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewSMTPSender(config.Contact{SMTP: config.SMTP{Host: "smtp.example.com"}})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewSMTPSenderReadsPasswordFromEnv(t *testing.T) {
	t.Setenv("COSMICUI_TEST_SMTP_PASS", "s3cret")

	sender, err := NewSMTPSender(config.Contact{
		Recipient: "me@example.com",
		SMTP:      config.SMTP{Host: "smtp.example.com", Port: 587, PasswordEnv: "COSMICUI_TEST_SMTP_PASS"},
	})
	require.NoError(t, err)
	require.Equal(t, "s3cret", sender.Password)
	require.Equal(t, "me@example.com", sender.From)
	require.Equal(t, "me@example.com", sender.Username)
	require.Equal(t, "me@example.com", sender.To)
}

func TestSMTPSenderDelivers(t *testing.T) {
	t.Parallel()

	relay := startRelay(t, false)
	sender := &SMTPSender{Host: "127.0.0.1", Port: relay.port(), From: "site@example.com", To: "me@example.com"}

	env, err := Compose(validMessage(), time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sender.Send(ctx, env))

	from, to, data := relay.snapshot()
	require.Equal(t, "<site@example.com>", from)
	require.Equal(t, "<me@example.com>", to)
	require.Contains(t, data, "Subject: Portfolio Contact: Project idea")
	require.Contains(t, data, "Reply-To: <ada@example.com>")
	require.Contains(t, data, "multipart/alternative")
	require.Contains(t, strings.ToLower(data), "text/html; charset=utf-8")
	require.Contains(t, data, "Let's build an engine.")
}

func TestSMTPSenderWrapsFailures(t *testing.T) {
	t.Parallel()

	relay := startRelay(t, true)
	sender := &SMTPSender{Host: "127.0.0.1", Port: relay.port(), From: "site@example.com", To: "nobody@example.com"}

	err := sender.Send(context.Background(), Envelope{Subject: "x"})
	require.Error(t, err)

	var derr *cosmicerrors.DeliveryError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, "smtp", derr.Transport)
	require.Contains(t, err.Error(), "no such user")
}

func TestSMTPSenderUnreachable(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	sender := &SMTPSender{Host: "127.0.0.1", Port: port, From: "a@example.com", To: "b@example.com"}
	err = sender.Send(context.Background(), Envelope{})
	require.Error(t, err)
}

func TestRenderRejectsInvalidAddresses(t *testing.T) {
	t.Parallel()

	sender := &SMTPSender{From: "not an address", To: "me@example.com"}
	_, err := sender.Render(Envelope{Subject: "x"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "from")
}

func TestSMTPSenderRequiresAuthWhenPasswordSet(t *testing.T) {
	t.Parallel()

	relay := startRelay(t, false)
	sender := &SMTPSender{
		Host: "127.0.0.1", Port: relay.port(),
		Username: "site@example.com", Password: "s3cret",
		From: "site@example.com", To: "me@example.com",
	}

	err := sender.Send(context.Background(), Envelope{Subject: "x", Text: "t", HTML: "h"})
	require.Error(t, err)

	_, _, data := relay.snapshot()
	require.Empty(t, data, "nothing is sent when the relay cannot authenticate")
}

func TestRenderEncodesHeaders(t *testing.T) {
	t.Parallel()

	sender := &SMTPSender{From: "site@example.com", To: "me@example.com"}
	raw, err := sender.Render(Envelope{
		Subject: "Portfolio Contact: héllo",
		Text:    "plain",
		HTML:    "<p>html</p>",
		SentAt:  time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC),
	})
	require.NoError(t, err)

	msg := string(raw)
	require.Contains(t, msg, "From: <site@example.com>\r\n")
	require.Contains(t, msg, "To: <me@example.com>\r\n")
	require.Contains(t, strings.ToLower(msg), "subject: =?utf-8?q?")
	require.Contains(t, msg, "Date: Thu, 02 Jan 2025 03:04:05 +0000\r\n")
	require.Contains(t, msg, "MIME-Version: 1.0")
	require.NotContains(t, msg, "Reply-To")

	lower := strings.ToLower(msg)
	plain := strings.Index(lower, "text/plain")
	html := strings.Index(lower, "text/html")
	require.Positive(t, plain)
	require.Greater(t, html, plain, "html alternative follows the plain body")
}

func TestLogSender(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, LogSender{Log: log}.Send(context.Background(), Envelope{Subject: "Portfolio Contact: Hi"}))
	require.Contains(t, buf.String(), "Portfolio Contact: Hi")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, LogSender{Log: log}.Send(ctx, Envelope{}))
}

func TestDeliverValidatesFirst(t *testing.T) {
	t.Parallel()

	called := false
	sender := SenderFunc(func(context.Context, Envelope) error {
		called = true
		return nil
	})

	err := Deliver(context.Background(), sender, Message{Name: "x"}, time.Now())
	require.ErrorIs(t, err, ErrMissingFields)
	require.False(t, called)

	require.NoError(t, Deliver(context.Background(), sender, validMessage(), time.Now()))
	require.True(t, called)
}
