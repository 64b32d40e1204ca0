package contact

import (
	"bytes"
	htmltemplate "html/template"
	"strconv"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/alexisbeaulieu97/cosmicui/pkg/gradient"
)

// HeaderGradient colours the banner of the HTML mail.
var HeaderGradient = gradient.Stops{
	{Position: 0, Color: gradient.RGB{R: 255, G: 105, B: 180}},
	{Position: 0.5, Color: gradient.RGB{R: 138, G: 43, B: 226}},
	{Position: 1, Color: gradient.RGB{R: 30, G: 144, B: 255}},
}

// Envelope is a composed mail ready for a Sender.
type Envelope struct {
	Subject string
	ReplyTo string
	Text    string
	HTML    string
	SentAt  time.Time
}

const timestampLayout = "Jan 2, 2006 3:04 PM MST"

var textBody = texttemplate.Must(texttemplate.New("text").Parse(`New Portfolio Contact

From: {{.Name}}
Email: {{.Email}}
Subject: {{if .Subject}}{{.Subject}}{{else}}No subject{{end}}

Message:
{{.Message}}

Sent from your portfolio website at {{.Sent}}
`))

var htmlBody = htmltemplate.Must(htmltemplate.New("html").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 10px;">
  <div style="background: {{.Banner}}; padding: 20px; border-radius: 10px 10px 0 0; text-align: center;">
    <h2 style="color: white; margin: 0;">New Portfolio Contact</h2>
  </div>
  <div style="padding: 20px; background: #f9f9f9; border-radius: 0 0 10px 10px;">
    <div style="margin-bottom: 15px;"><strong style="color: #333;">From:</strong> {{.Name}}</div>
    <div style="margin-bottom: 15px;"><strong style="color: #333;">Email:</strong> <a href="mailto:{{.Email}}" style="color: #1e90ff; text-decoration: none;">{{.Email}}</a></div>
{{- if .Subject}}
    <div style="margin-bottom: 15px;"><strong style="color: #333;">Subject:</strong> {{.Subject}}</div>
{{- end}}
    <div style="margin-bottom: 15px;"><strong style="color: #333;">Message:</strong></div>
    <div style="background: white; padding: 15px; border-radius: 5px; border-left: 4px solid #ff69b4; white-space: pre-wrap; color: #333;">{{.Message}}</div>
    <div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #e0e0e0; text-align: center; color: #666; font-size: 12px;">Sent from your portfolio website at {{.Sent}}</div>
  </div>
</div>
`))

type bodyData struct {
	Message
	Sent   string
	Banner htmltemplate.CSS
}

// Subject returns the mail subject for msg.
func Subject(msg Message) string {
	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		subject = "New Message"
	}
	return "Portfolio Contact: " + subject
}

// LinearGradient renders stops as a CSS linear-gradient at angle degrees.
func LinearGradient(angle int, stops gradient.Stops) string {
	var b strings.Builder
	b.WriteString("linear-gradient(")
	b.WriteString(strconv.Itoa(angle))
	b.WriteString("deg")
	for _, s := range stops {
		b.WriteString(", ")
		b.WriteString(s.Color.CSS())
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(int(s.Position*100 + 0.5)))
		b.WriteByte('%')
	}
	b.WriteByte(')')
	return b.String()
}

// Compose builds the text and HTML bodies for msg. User input is escaped in
// the HTML body.
func Compose(msg Message, now time.Time) (Envelope, error) {
	msg = msg.Normalize()
	data := bodyData{
		Message: msg,
		Sent:    now.Format(timestampLayout),
		Banner:  htmltemplate.CSS(LinearGradient(135, HeaderGradient)),
	}

	var text, html bytes.Buffer
	if err := textBody.Execute(&text, data); err != nil {
		return Envelope{}, err
	}
	if err := htmlBody.Execute(&html, data); err != nil {
		return Envelope{}, err
	}

	return Envelope{
		Subject: Subject(msg),
		ReplyTo: msg.Email,
		Text:    text.String(),
		HTML:    html.String(),
		SentAt:  now,
	}, nil
}
