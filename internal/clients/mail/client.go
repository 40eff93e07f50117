package mail

import (
	"context"
	"fmt"

	"relance-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

// ResendClient sends relance emails through Resend
type ResendClient struct {
	client *resend.Client
	from   string
	logger *observability.Logger
}

func NewResendClient(apiKey, from string, logger *observability.Logger) (*ResendClient, error) {
	client := resend.NewClient(apiKey)
	if client == nil {
		return nil, fmt.Errorf("failed to create Resend client")
	}

	return &ResendClient{
		client: client,
		from:   from,
		logger: logger,
	}, nil
}

// SendEmail sends one HTML email from the default sender and returns the Resend email ID,
// which later comes back on the delivery webhooks as data.email_id.
func (c *ResendClient) SendEmail(ctx context.Context, to, subject, htmlContent string, tags map[string]string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
	)

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	}
	for name, value := range tags {
		params.Tags = append(params.Tags, resend.Tag{Name: name, Value: value})
	}

	res, err := c.client.Emails.Send(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return res.Id, nil
}
