package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const relanceConfigColumns = `id, user_id, channel, channel_ready, enabled, enrollment_paused, sending_paused,
    default_campaign_paused, allow_simultaneous_campaigns, max_messages_per_day, max_targets_per_campaign,
    messages_sent_today, last_reset_date, created_at, updated_at`

// UpdateRelanceConfigParams holds the admin-settable fields. Nil leaves a field unchanged.
type UpdateRelanceConfigParams struct {
	Channel                    *string
	ChannelReady               *bool
	Enabled                    *bool
	EnrollmentPaused           *bool
	SendingPaused              *bool
	AllowSimultaneousCampaigns *bool
	MaxMessagesPerDay          *int
	MaxTargetsPerCampaign      *int
}

const sqlGetRelanceConfig = `
SELECT ` + relanceConfigColumns + `
FROM relance_configs
WHERE user_id = $1
`

// GetRelanceConfig retrieves the config of a referrer
func (s *Store) GetRelanceConfig(ctx context.Context, userID uuid.UUID) (RelanceConfig, error) {
	var cfg RelanceConfig
	err := s.db.GetContext(ctx, &cfg, sqlGetRelanceConfig, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RelanceConfig{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get relance config", err)
		return RelanceConfig{}, fmt.Errorf("failed to get relance config: %w", err)
	}
	return cfg, nil
}

const sqlEnsureRelanceConfig = `
INSERT INTO relance_configs (user_id, max_messages_per_day, max_targets_per_campaign)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
RETURNING ` + relanceConfigColumns

// GetOrCreateRelanceConfig returns the referrer's config, creating it with defaults
// on first access. The unique user_id index guarantees a single row per referrer.
func (s *Store) GetOrCreateRelanceConfig(ctx context.Context, userID uuid.UUID) (RelanceConfig, error) {
	var cfg RelanceConfig
	err := s.db.GetContext(ctx, &cfg, sqlEnsureRelanceConfig, userID, DefaultMaxMessagesPerDay, DefaultMaxTargetsPerCampaign)
	if err != nil {
		s.logger.Error(ctx, "failed to ensure relance config", err)
		return RelanceConfig{}, fmt.Errorf("failed to ensure relance config: %w", err)
	}
	return cfg, nil
}

const sqlListRelanceConfigsWithChannel = `
SELECT ` + relanceConfigColumns + `
FROM relance_configs
WHERE channel_ready = TRUE
ORDER BY created_at ASC
`

// ListRelanceConfigsWithChannel returns every config whose delivery channel is ready,
// regardless of the enabled flag.
func (s *Store) ListRelanceConfigsWithChannel(ctx context.Context) ([]RelanceConfig, error) {
	var configs []RelanceConfig
	err := s.db.SelectContext(ctx, &configs, sqlListRelanceConfigsWithChannel)
	if err != nil {
		s.logger.Error(ctx, "failed to list relance configs", err)
		return nil, fmt.Errorf("failed to list relance configs: %w", err)
	}
	return configs, nil
}

const sqlUpdateRelanceConfig = `
UPDATE relance_configs
SET channel = COALESCE($2, channel),
    channel_ready = COALESCE($3, channel_ready),
    enabled = COALESCE($4, enabled),
    enrollment_paused = COALESCE($5, enrollment_paused),
    sending_paused = COALESCE($6, sending_paused),
    allow_simultaneous_campaigns = COALESCE($7, allow_simultaneous_campaigns),
    max_messages_per_day = COALESCE($8, max_messages_per_day),
    max_targets_per_campaign = COALESCE($9, max_targets_per_campaign),
    updated_at = CURRENT_TIMESTAMP
WHERE user_id = $1
RETURNING ` + relanceConfigColumns

// UpdateRelanceConfig applies the non-nil fields of params
func (s *Store) UpdateRelanceConfig(ctx context.Context, userID uuid.UUID, params UpdateRelanceConfigParams) (RelanceConfig, error) {
	var cfg RelanceConfig
	err := s.db.GetContext(ctx, &cfg, sqlUpdateRelanceConfig,
		userID,
		params.Channel,
		params.ChannelReady,
		params.Enabled,
		params.EnrollmentPaused,
		params.SendingPaused,
		params.AllowSimultaneousCampaigns,
		params.MaxMessagesPerDay,
		params.MaxTargetsPerCampaign)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RelanceConfig{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update relance config", err)
		return RelanceConfig{}, fmt.Errorf("failed to update relance config: %w", err)
	}
	return cfg, nil
}

const sqlSetDefaultCampaignPaused = `
UPDATE relance_configs
SET default_campaign_paused = $2, updated_at = CURRENT_TIMESTAMP
WHERE user_id = $1
`

// SetDefaultCampaignPaused flips the default loop pause flag of a referrer
func (s *Store) SetDefaultCampaignPaused(ctx context.Context, userID uuid.UUID, paused bool) error {
	res, err := s.db.ExecContext(ctx, sqlSetDefaultCampaignPaused, userID, paused)
	if err != nil {
		s.logger.Error(ctx, "failed to set default campaign paused", err)
		return fmt.Errorf("failed to set default campaign paused: %w", err)
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

// The CASE resets a counter left over from a previous day before incrementing it.
const sqlIncrementConfigMessagesSent = `
UPDATE relance_configs
SET messages_sent_today = CASE WHEN last_reset_date < $2::date THEN 1 ELSE messages_sent_today + 1 END,
    last_reset_date = $2::date,
    updated_at = CURRENT_TIMESTAMP
WHERE user_id = $1
`

// IncrementConfigMessagesSent atomically bumps the referrer's daily counter
func (s *Store) IncrementConfigMessagesSent(ctx context.Context, userID uuid.UUID, now time.Time) error {
	_, err := s.db.ExecContext(ctx, sqlIncrementConfigMessagesSent, userID, StartOfDay(now))
	if err != nil {
		s.logger.Error(ctx, "failed to increment config messages sent", err)
		return fmt.Errorf("failed to increment config messages sent: %w", err)
	}
	return nil
}

const sqlResetConfigDailyCounters = `
UPDATE relance_configs
SET messages_sent_today = 0, last_reset_date = $1::date, updated_at = CURRENT_TIMESTAMP
WHERE last_reset_date < $1::date
`

// ResetConfigDailyCounters zeroes every referrer's daily counter
func (s *Store) ResetConfigDailyCounters(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlResetConfigDailyCounters, StartOfDay(now))
	if err != nil {
		s.logger.Error(ctx, "failed to reset config daily counters", err)
		return 0, fmt.Errorf("failed to reset config daily counters: %w", err)
	}
	return res.RowsAffected()
}
