package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const relanceCampaignColumns = `id, user_id, name, description, type, status, target_filter, custom_messages,
    scheduled_start_date, run_after_campaign_id, estimated_targets,
    targets_enrolled, targets_completed, targets_exited,
    messages_sent, messages_delivered, messages_failed, messages_sent_today, last_reset_date,
    started_at, completed_at, cancelled_at, created_at, updated_at`

// CreateRelanceCampaignParams represents parameters for creating a filtered campaign
type CreateRelanceCampaignParams struct {
	UserID             uuid.UUID
	Name               string
	Description        *string
	Status             string
	TargetFilter       TargetFilter
	CustomMessages     CustomMessages
	ScheduledStartDate *time.Time
	RunAfterCampaignID *uuid.UUID
	EstimatedTargets   int
}

// UpdateRelanceCampaignParams represents the editable fields of a campaign
type UpdateRelanceCampaignParams struct {
	Name               *string
	Description        *string
	TargetFilter       *TargetFilter
	CustomMessages     *CustomMessages
	ScheduledStartDate *time.Time
	EstimatedTargets   *int
}

// CampaignCounterDelta is added to a campaign's counters in one statement.
type CampaignCounterDelta struct {
	TargetsEnrolled   int
	TargetsCompleted  int
	TargetsExited     int
	MessagesSent      int
	MessagesDelivered int
	MessagesFailed    int
}

// IsZero reports whether the delta changes nothing.
func (d CampaignCounterDelta) IsZero() bool {
	return d == CampaignCounterDelta{}
}

const sqlCreateRelanceCampaign = `
INSERT INTO relance_campaigns (user_id, name, description, type, status, target_filter, custom_messages,
    scheduled_start_date, run_after_campaign_id, estimated_targets)
VALUES ($1, $2, $3, 'filtered', $4, $5, $6, $7, $8, $9)
RETURNING ` + relanceCampaignColumns

// CreateRelanceCampaign inserts a new filtered campaign
func (s *Store) CreateRelanceCampaign(ctx context.Context, params CreateRelanceCampaignParams) (RelanceCampaign, error) {
	var campaign RelanceCampaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateRelanceCampaign,
		params.UserID,
		params.Name,
		params.Description,
		params.Status,
		params.TargetFilter,
		params.CustomMessages,
		params.ScheduledStartDate,
		params.RunAfterCampaignID,
		params.EstimatedTargets)
	if err != nil {
		s.logger.Error(ctx, "failed to create relance campaign", err)
		return RelanceCampaign{}, fmt.Errorf("failed to create relance campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetRelanceCampaignByID = `
SELECT ` + relanceCampaignColumns + `
FROM relance_campaigns
WHERE id = $1 AND deleted_at IS NULL
`

// GetRelanceCampaignByID retrieves a campaign by ID
func (s *Store) GetRelanceCampaignByID(ctx context.Context, campaignID uuid.UUID) (RelanceCampaign, error) {
	var campaign RelanceCampaign
	err := s.db.GetContext(ctx, &campaign, sqlGetRelanceCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RelanceCampaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get relance campaign", err)
		return RelanceCampaign{}, fmt.Errorf("failed to get relance campaign: %w", err)
	}
	return campaign, nil
}

const sqlListRelanceCampaignsByUser = `
SELECT ` + relanceCampaignColumns + `
FROM relance_campaigns
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
`

// ListRelanceCampaignsByUser lists the campaigns owned by a referrer, newest first
func (s *Store) ListRelanceCampaignsByUser(ctx context.Context, userID uuid.UUID) ([]RelanceCampaign, error) {
	var campaigns []RelanceCampaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListRelanceCampaignsByUser, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to list relance campaigns", err)
		return nil, fmt.Errorf("failed to list relance campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlListRelanceCampaignsByStatus = `
SELECT ` + relanceCampaignColumns + `
FROM relance_campaigns
WHERE status = $1 AND deleted_at IS NULL
ORDER BY started_at ASC NULLS LAST, created_at ASC
`

// ListRelanceCampaignsByStatus lists campaigns of every referrer in the given status
func (s *Store) ListRelanceCampaignsByStatus(ctx context.Context, status string) ([]RelanceCampaign, error) {
	var campaigns []RelanceCampaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListRelanceCampaignsByStatus, status)
	if err != nil {
		s.logger.Error(ctx, "failed to list relance campaigns by status", err)
		return nil, fmt.Errorf("failed to list relance campaigns by status: %w", err)
	}
	return campaigns, nil
}

// A scheduled campaign is due once its start date passed and its dependency,
// if any, has completed.
var sqlFindDueScheduledCampaign = `
SELECT ` + prefixColumns("c", relanceCampaignColumns) + `
FROM relance_campaigns c
LEFT JOIN relance_campaigns dep ON dep.id = c.run_after_campaign_id
WHERE c.status = 'scheduled'
  AND c.deleted_at IS NULL
  AND (c.scheduled_start_date IS NULL OR c.scheduled_start_date <= $1)
  AND (c.run_after_campaign_id IS NULL OR dep.status = 'completed')
  AND (c.scheduled_start_date IS NOT NULL OR c.run_after_campaign_id IS NOT NULL)
ORDER BY c.scheduled_start_date ASC NULLS LAST, c.created_at ASC
LIMIT 1
`

// FindDueScheduledCampaign returns at most one scheduled campaign ready to start
func (s *Store) FindDueScheduledCampaign(ctx context.Context, now time.Time) (RelanceCampaign, error) {
	var campaign RelanceCampaign
	err := s.db.GetContext(ctx, &campaign, sqlFindDueScheduledCampaign, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RelanceCampaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to find due scheduled campaign", err)
		return RelanceCampaign{}, fmt.Errorf("failed to find due scheduled campaign: %w", err)
	}
	return campaign, nil
}

const sqlUpdateRelanceCampaign = `
UPDATE relance_campaigns
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    target_filter = COALESCE($4, target_filter),
    custom_messages = COALESCE($5, custom_messages),
    scheduled_start_date = COALESCE($6, scheduled_start_date),
    estimated_targets = COALESCE($7, estimated_targets),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + relanceCampaignColumns

// UpdateRelanceCampaign applies the non-nil fields of params
func (s *Store) UpdateRelanceCampaign(ctx context.Context, campaignID uuid.UUID, params UpdateRelanceCampaignParams) (RelanceCampaign, error) {
	var filter, messages interface{}
	if params.TargetFilter != nil {
		filter = *params.TargetFilter
	}
	if params.CustomMessages != nil {
		messages = *params.CustomMessages
	}

	var campaign RelanceCampaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateRelanceCampaign,
		campaignID,
		params.Name,
		params.Description,
		filter,
		messages,
		params.ScheduledStartDate,
		params.EstimatedTargets)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RelanceCampaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update relance campaign", err)
		return RelanceCampaign{}, fmt.Errorf("failed to update relance campaign: %w", err)
	}
	return campaign, nil
}

// The status guard makes the transition a compare-and-swap: a concurrent
// writer that already moved the campaign wins and this call returns ErrStaleCampaign.
const sqlTransitionRelanceCampaign = `
UPDATE relance_campaigns
SET status = $3,
    started_at = CASE WHEN $3 = 'active' AND started_at IS NULL THEN $4 ELSE started_at END,
    completed_at = CASE WHEN $3 = 'completed' THEN $4 ELSE completed_at END,
    cancelled_at = CASE WHEN $3 = 'cancelled' THEN $4 ELSE cancelled_at END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = ANY($2) AND deleted_at IS NULL
RETURNING ` + relanceCampaignColumns

// TransitionRelanceCampaign moves a campaign to status `to` if it currently is in one of `from`
func (s *Store) TransitionRelanceCampaign(ctx context.Context, campaignID uuid.UUID, from []string, to string, now time.Time) (RelanceCampaign, error) {
	var campaign RelanceCampaign
	err := s.db.GetContext(ctx, &campaign, sqlTransitionRelanceCampaign, campaignID, pq.Array(from), to, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RelanceCampaign{}, ErrStaleCampaign
		}
		s.logger.Error(ctx, "failed to transition relance campaign", err)
		return RelanceCampaign{}, fmt.Errorf("failed to transition relance campaign: %w", err)
	}
	return campaign, nil
}

const sqlCountActiveFilteredCampaigns = `
SELECT COUNT(*)
FROM relance_campaigns
WHERE user_id = $1 AND status = 'active' AND id <> $2 AND deleted_at IS NULL
`

// CountActiveFilteredCampaigns counts a referrer's active campaigns, excluding one ID
// (pass uuid.Nil to exclude nothing)
func (s *Store) CountActiveFilteredCampaigns(ctx context.Context, userID uuid.UUID, excluding uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountActiveFilteredCampaigns, userID, excluding)
	if err != nil {
		s.logger.Error(ctx, "failed to count active filtered campaigns", err)
		return 0, fmt.Errorf("failed to count active filtered campaigns: %w", err)
	}
	return count, nil
}

const sqlIncrementRelanceCampaignCounters = `
UPDATE relance_campaigns
SET targets_enrolled = targets_enrolled + $2,
    targets_completed = targets_completed + $3,
    targets_exited = targets_exited + $4,
    messages_sent = messages_sent + $5,
    messages_delivered = messages_delivered + $6,
    messages_failed = messages_failed + $7,
    messages_sent_today = CASE WHEN last_reset_date < $8::date THEN $5 ELSE messages_sent_today + $5 END,
    last_reset_date = $8::date,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + relanceCampaignColumns

// IncrementRelanceCampaignCounters atomically adds delta to the campaign counters.
// MessagesSent also feeds the daily counter.
func (s *Store) IncrementRelanceCampaignCounters(ctx context.Context, campaignID uuid.UUID, delta CampaignCounterDelta, now time.Time) (RelanceCampaign, error) {
	var campaign RelanceCampaign
	err := s.db.GetContext(ctx, &campaign, sqlIncrementRelanceCampaignCounters,
		campaignID,
		delta.TargetsEnrolled,
		delta.TargetsCompleted,
		delta.TargetsExited,
		delta.MessagesSent,
		delta.MessagesDelivered,
		delta.MessagesFailed,
		StartOfDay(now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RelanceCampaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to increment relance campaign counters", err)
		return RelanceCampaign{}, fmt.Errorf("failed to increment relance campaign counters: %w", err)
	}
	return campaign, nil
}

const sqlResetCampaignDailyCounters = `
UPDATE relance_campaigns
SET messages_sent_today = 0, last_reset_date = $1::date, updated_at = CURRENT_TIMESTAMP
WHERE status = 'active' AND last_reset_date < $1::date
`

// ResetCampaignDailyCounters zeroes the daily counter of every active campaign
func (s *Store) ResetCampaignDailyCounters(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlResetCampaignDailyCounters, StartOfDay(now))
	if err != nil {
		s.logger.Error(ctx, "failed to reset campaign daily counters", err)
		return 0, fmt.Errorf("failed to reset campaign daily counters: %w", err)
	}
	return res.RowsAffected()
}

var sqlListActiveCampaignsWithoutActiveTargets = `
SELECT ` + prefixColumns("c", relanceCampaignColumns) + `
FROM relance_campaigns c
WHERE c.status = 'active'
  AND c.deleted_at IS NULL
  AND (c.targets_enrolled > 0 OR c.started_at < $1)
  AND NOT EXISTS (
    SELECT 1 FROM relance_targets t
    WHERE t.campaign_id = c.id AND t.status = 'active'
  )
`

// ListActiveCampaignsWithoutActiveTargets returns active campaigns that have run dry.
// Campaigns that enrolled nothing yet are only returned once they started before
// startedBefore, so a freshly started campaign gets an enrollment tick first.
func (s *Store) ListActiveCampaignsWithoutActiveTargets(ctx context.Context, startedBefore time.Time) ([]RelanceCampaign, error) {
	var campaigns []RelanceCampaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListActiveCampaignsWithoutActiveTargets, startedBefore)
	if err != nil {
		s.logger.Error(ctx, "failed to list exhausted campaigns", err)
		return nil, fmt.Errorf("failed to list exhausted campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlDeleteRelanceCampaign = `
UPDATE relance_campaigns
SET deleted_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND deleted_at IS NULL
`

// DeleteRelanceCampaign soft-deletes a campaign
func (s *Store) DeleteRelanceCampaign(ctx context.Context, campaignID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteRelanceCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete relance campaign", err)
		return fmt.Errorf("failed to delete relance campaign: %w", err)
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
