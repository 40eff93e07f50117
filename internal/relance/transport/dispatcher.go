// Package transport delivers a personalized relance message over the
// referrer's configured channel.
package transport

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"relance-server/internal/observability"
	"relance-server/internal/store"
)

const maxSubjectLength = 80

var (
	ErrUnsupportedChannel = errors.New("unsupported relance channel")
	ErrNoRecipient        = errors.New("recipient has no address for channel")
)

// WhatsAppSender is implemented by the Twilio WhatsApp client
type WhatsAppSender interface {
	SendMessage(ctx context.Context, phone, body string, mediaURLs []string) (string, error)
}

// EmailSender is implemented by the Resend mail client
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string, tags map[string]string) (string, error)
}

// Message is one outbound relance message
type Message struct {
	Channel   string
	Phone     string
	Email     string
	Body      string
	MediaURLs []string
	Day       int
	TargetID  string
}

// Sender sends a message and returns the provider message ID
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Dispatcher routes messages to the channel client. A nil client disables its channel.
type Dispatcher struct {
	whatsapp WhatsAppSender
	email    EmailSender
	logger   *observability.Logger
}

func NewDispatcher(whatsapp WhatsAppSender, email EmailSender, logger *observability.Logger) *Dispatcher {
	return &Dispatcher{
		whatsapp: whatsapp,
		email:    email,
		logger:   logger,
	}
}

func (d *Dispatcher) Send(ctx context.Context, msg Message) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "channel", Value: msg.Channel},
		observability.Field{Key: "day", Value: msg.Day},
	)

	switch msg.Channel {
	case store.ChannelWhatsApp:
		if d.whatsapp == nil {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedChannel, msg.Channel)
		}
		if strings.TrimSpace(msg.Phone) == "" {
			return "", fmt.Errorf("%w: %s", ErrNoRecipient, msg.Channel)
		}
		return d.whatsapp.SendMessage(ctx, msg.Phone, msg.Body, msg.MediaURLs)

	case store.ChannelEmail:
		if d.email == nil {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedChannel, msg.Channel)
		}
		if strings.TrimSpace(msg.Email) == "" {
			return "", fmt.Errorf("%w: %s", ErrNoRecipient, msg.Channel)
		}
		tags := map[string]string{
			"category": "relance",
			"day":      fmt.Sprintf("%d", msg.Day),
		}
		if msg.TargetID != "" {
			tags["target_id"] = msg.TargetID
		}
		return d.email.SendEmail(ctx, msg.Email, Subject(msg.Body), RenderHTML(msg.Body, msg.MediaURLs), tags)
	}

	d.logger.Warn(ctx, "relance message for unknown channel")
	return "", fmt.Errorf("%w: %q", ErrUnsupportedChannel, msg.Channel)
}

// Subject derives an email subject from the first non-empty line of body
func Subject(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		if len(runes) > maxSubjectLength {
			return string(runes[:maxSubjectLength-3]) + "..."
		}
		return line
	}
	return "Relance"
}

// RenderHTML escapes a plain text body into paragraphs and appends media as images
func RenderHTML(body string, mediaURLs []string) string {
	var b strings.Builder
	for _, paragraph := range strings.Split(strings.TrimSpace(body), "\n\n") {
		lines := strings.Split(paragraph, "\n")
		for i := range lines {
			lines[i] = html.EscapeString(lines[i])
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(lines, "<br>"))
		b.WriteString("</p>")
	}
	for _, u := range mediaURLs {
		b.WriteString(`<p><img src="`)
		b.WriteString(html.EscapeString(u))
		b.WriteString(`" alt="" style="max-width:100%"></p>`)
	}
	return b.String()
}
