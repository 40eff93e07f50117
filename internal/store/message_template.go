package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const messageTemplateColumns = `id, day, name, messages, media_urls, active, created_at, updated_at`

// UpsertMessageTemplateParams represents the fields of a global day template
type UpsertMessageTemplateParams struct {
	Day       int
	Name      string
	Messages  Translations
	MediaURLs []string
	Active    bool
}

const sqlListMessageTemplates = `
SELECT ` + messageTemplateColumns + `
FROM relance_message_templates
ORDER BY day ASC
`

// ListMessageTemplates returns every global template ordered by day
func (s *Store) ListMessageTemplates(ctx context.Context) ([]MessageTemplate, error) {
	var templates []MessageTemplate
	err := s.db.SelectContext(ctx, &templates, sqlListMessageTemplates)
	if err != nil {
		s.logger.Error(ctx, "failed to list message templates", err)
		return nil, fmt.Errorf("failed to list message templates: %w", err)
	}
	return templates, nil
}

const sqlGetMessageTemplateByDay = `
SELECT ` + messageTemplateColumns + `
FROM relance_message_templates
WHERE day = $1
`

// GetMessageTemplateByDay retrieves the global template of a day, active or not
func (s *Store) GetMessageTemplateByDay(ctx context.Context, day int) (MessageTemplate, error) {
	var template MessageTemplate
	err := s.db.GetContext(ctx, &template, sqlGetMessageTemplateByDay, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MessageTemplate{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get message template", err)
		return MessageTemplate{}, fmt.Errorf("failed to get message template: %w", err)
	}
	return template, nil
}

const sqlUpsertMessageTemplate = `
INSERT INTO relance_message_templates (day, name, messages, media_urls, active)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (day) DO UPDATE
SET name = EXCLUDED.name,
    messages = EXCLUDED.messages,
    media_urls = EXCLUDED.media_urls,
    active = EXCLUDED.active,
    updated_at = CURRENT_TIMESTAMP
RETURNING ` + messageTemplateColumns

// UpsertMessageTemplate creates or replaces the global template of a day
func (s *Store) UpsertMessageTemplate(ctx context.Context, params UpsertMessageTemplateParams) (MessageTemplate, error) {
	var template MessageTemplate
	err := s.db.GetContext(ctx, &template, sqlUpsertMessageTemplate,
		params.Day,
		params.Name,
		params.Messages,
		pq.StringArray(params.MediaURLs),
		params.Active)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert message template", err)
		return MessageTemplate{}, fmt.Errorf("failed to upsert message template: %w", err)
	}
	return template, nil
}

const sqlDeleteMessageTemplate = `
DELETE FROM relance_message_templates
WHERE day = $1
`

// DeleteMessageTemplate removes the global template of a day
func (s *Store) DeleteMessageTemplate(ctx context.Context, day int) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteMessageTemplate, day)
	if err != nil {
		s.logger.Error(ctx, "failed to delete message template", err)
		return fmt.Errorf("failed to delete message template: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
