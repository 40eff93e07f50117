package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"relance-server/internal/observability"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

const addressPrefix = "whatsapp:"

var ErrEmptyRecipient = errors.New("empty whatsapp recipient")

// Client sends WhatsApp messages through the Twilio Messages API
type Client struct {
	client         *twilio.RestClient
	from           string
	statusCallback string
	logger         *observability.Logger
}

// NewClient creates a Twilio backed WhatsApp client. statusCallback, when set,
// is passed to Twilio so delivery status updates reach the webhook handler.
func NewClient(accountSID, authToken, from, statusCallback string, logger *observability.Logger) *Client {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Client{
		client:         client,
		from:           Address(from),
		statusCallback: statusCallback,
		logger:         logger,
	}
}

// Address formats a phone number as a Twilio WhatsApp address
func Address(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, addressPrefix) {
		return phone
	}
	return addressPrefix + phone
}

// SendMessage sends body (and optional media) to phone and returns the Twilio message SID
func (c *Client) SendMessage(ctx context.Context, phone, body string, mediaURLs []string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", ErrEmptyRecipient
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "whatsapp_to", Value: phone})

	params := &openapi.CreateMessageParams{}
	params.SetTo(Address(phone))
	params.SetFrom(c.from)
	params.SetBody(body)
	if len(mediaURLs) > 0 {
		params.SetMediaUrl(mediaURLs)
	}
	if c.statusCallback != "" {
		params.SetStatusCallback(c.statusCallback)
	}

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send whatsapp message", err)
		return "", fmt.Errorf("failed to send whatsapp message: %w", err)
	}
	if resp.Sid == nil {
		return "", fmt.Errorf("twilio returned no message sid")
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "message_sid", Value: *resp.Sid})
	c.logger.Info(ctx, "whatsapp message sent successfully")
	return *resp.Sid, nil
}
