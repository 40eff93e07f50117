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

const relanceTargetColumns = `id, referral_user_id, referrer_user_id, campaign_id, wave_id, current_day,
    next_message_due, last_message_sent_at, status, exit_reason, exited_loop_at, created_at, updated_at`

const relanceDeliveryColumns = `id, target_id, day, channel, status, sent_at, provider_message_id, error_message,
    opened, opened_at, open_count, clicked, clicked_at, click_count, bounced, bounced_at`

// CreateTargetParams represents parameters for enrolling a referral
type CreateTargetParams struct {
	ReferralUserID uuid.UUID
	ReferrerUserID uuid.UUID
	Campaign       CampaignRef
	WaveID         uuid.UUID
	NextMessageDue time.Time
}

// RecordDeliveryParams represents one send attempt
type RecordDeliveryParams struct {
	TargetID          uuid.UUID
	Day               int
	Channel           string
	Status            string
	SentAt            time.Time
	ProviderMessageID *string
	ErrorMessage      *string
}

// The unique partial index on (referral_user_id, campaign) for engaged targets
// makes a duplicate enrollment a no-op insert.
const sqlCreateTarget = `
INSERT INTO relance_targets (referral_user_id, referrer_user_id, campaign_id, wave_id, current_day, next_message_due, status)
VALUES ($1, $2, $3, $4, 1, $5, 'active')
ON CONFLICT DO NOTHING
RETURNING ` + relanceTargetColumns

// CreateTarget enrolls a referral at day 1. Returns ErrTargetExists when the
// referral already has an active or paused target in the same campaign.
func (s *Store) CreateTarget(ctx context.Context, params CreateTargetParams) (Target, error) {
	var row targetRow
	err := s.db.GetContext(ctx, &row, sqlCreateTarget,
		params.ReferralUserID,
		params.ReferrerUserID,
		params.Campaign.nullableCampaignID(),
		params.WaveID,
		params.NextMessageDue)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Target{}, ErrTargetExists
		}
		s.logger.Error(ctx, "failed to create relance target", err)
		return Target{}, fmt.Errorf("failed to create relance target: %w", err)
	}
	return row.toTarget(), nil
}

const sqlGetTargetByID = `
SELECT ` + relanceTargetColumns + `
FROM relance_targets
WHERE id = $1
`

// GetTargetByID retrieves a target without its deliveries
func (s *Store) GetTargetByID(ctx context.Context, targetID uuid.UUID) (Target, error) {
	var row targetRow
	err := s.db.GetContext(ctx, &row, sqlGetTargetByID, targetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Target{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get relance target", err)
		return Target{}, fmt.Errorf("failed to get relance target: %w", err)
	}
	return row.toTarget(), nil
}

const sqlListEngagedReferralIDs = `
SELECT DISTINCT referral_user_id
FROM relance_targets
WHERE referrer_user_id = $1 AND status IN ('active', 'paused')
`

// ListEngagedReferralIDs returns the referrals of a referrer that hold an
// active or paused target in any campaign
func (s *Store) ListEngagedReferralIDs(ctx context.Context, referrerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.SelectContext(ctx, &ids, sqlListEngagedReferralIDs, referrerID)
	if err != nil {
		s.logger.Error(ctx, "failed to list engaged referrals", err)
		return nil, fmt.Errorf("failed to list engaged referrals: %w", err)
	}
	return ids, nil
}

// Referrals that finished the default loop, paid, or were removed by hand do
// not re-enter it. A referrer_inactive exit does not count.
const sqlListDefaultExcludedReferralIDs = `
SELECT DISTINCT referral_user_id
FROM relance_targets
WHERE referrer_user_id = $1
  AND campaign_id IS NULL
  AND (status IN ('active', 'paused') OR exit_reason IN ('completed_7_days', 'paid', 'manual'))
`

// ListDefaultExcludedReferralIDs returns the referrals the default loop must skip
func (s *Store) ListDefaultExcludedReferralIDs(ctx context.Context, referrerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.SelectContext(ctx, &ids, sqlListDefaultExcludedReferralIDs, referrerID)
	if err != nil {
		s.logger.Error(ctx, "failed to list default excluded referrals", err)
		return nil, fmt.Errorf("failed to list default excluded referrals: %w", err)
	}
	return ids, nil
}

const sqlListCampaignReferralIDs = `
SELECT DISTINCT referral_user_id
FROM relance_targets
WHERE campaign_id = $1
`

// ListCampaignReferralIDs returns every referral ever enrolled in a filtered campaign
func (s *Store) ListCampaignReferralIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.SelectContext(ctx, &ids, sqlListCampaignReferralIDs, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaign referrals", err)
		return nil, fmt.Errorf("failed to list campaign referrals: %w", err)
	}
	return ids, nil
}

const sqlListDueTargets = `
SELECT ` + relanceTargetColumns + `
FROM relance_targets
WHERE status = 'active' AND next_message_due <= $1
ORDER BY next_message_due ASC, created_at ASC
`

// ListDueTargets returns active targets whose next message is due
func (s *Store) ListDueTargets(ctx context.Context, now time.Time) ([]Target, error) {
	var rows []targetRow
	err := s.db.SelectContext(ctx, &rows, sqlListDueTargets, now)
	if err != nil {
		s.logger.Error(ctx, "failed to list due targets", err)
		return nil, fmt.Errorf("failed to list due targets: %w", err)
	}
	return targetsFromRows(rows), nil
}

const sqlCountPendingFirstSendsByReferrer = `
SELECT COUNT(*)
FROM relance_targets
WHERE referrer_user_id = $1 AND status = 'active' AND last_message_sent_at IS NULL
`

// CountPendingFirstSendsByReferrer counts a referrer's active targets that were never messaged
func (s *Store) CountPendingFirstSendsByReferrer(ctx context.Context, referrerID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountPendingFirstSendsByReferrer, referrerID)
	if err != nil {
		s.logger.Error(ctx, "failed to count pending first sends", err)
		return 0, fmt.Errorf("failed to count pending first sends: %w", err)
	}
	return count, nil
}

const sqlCountPendingFirstSendsByCampaign = `
SELECT COUNT(*)
FROM relance_targets
WHERE campaign_id = $1 AND status = 'active' AND last_message_sent_at IS NULL
`

// CountPendingFirstSendsByCampaign counts a campaign's active targets that were never messaged
func (s *Store) CountPendingFirstSendsByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountPendingFirstSendsByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to count campaign pending first sends", err)
		return 0, fmt.Errorf("failed to count campaign pending first sends: %w", err)
	}
	return count, nil
}

// Guarded on status and day so a concurrent cancel or a second sender loses.
const sqlAdvanceTarget = `
UPDATE relance_targets
SET current_day = current_day + 1,
    next_message_due = $3,
    last_message_sent_at = $4,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'active' AND current_day = $2 AND current_day < 7
RETURNING ` + relanceTargetColumns

// AdvanceTarget moves an active target from fromDay to the next day
func (s *Store) AdvanceTarget(ctx context.Context, targetID uuid.UUID, fromDay int, nextDue, sentAt time.Time) (Target, error) {
	var row targetRow
	err := s.db.GetContext(ctx, &row, sqlAdvanceTarget, targetID, fromDay, nextDue, sentAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Target{}, ErrStaleTarget
		}
		s.logger.Error(ctx, "failed to advance relance target", err)
		return Target{}, fmt.Errorf("failed to advance relance target: %w", err)
	}
	return row.toTarget(), nil
}

const sqlFinishTargetLoop = `
UPDATE relance_targets
SET status = 'completed',
    exit_reason = 'completed_7_days',
    exited_loop_at = $2,
    last_message_sent_at = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'active' AND current_day = 7
RETURNING ` + relanceTargetColumns

// FinishTargetLoop completes a target after its last day was sent
func (s *Store) FinishTargetLoop(ctx context.Context, targetID uuid.UUID, sentAt time.Time) (Target, error) {
	var row targetRow
	err := s.db.GetContext(ctx, &row, sqlFinishTargetLoop, targetID, sentAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Target{}, ErrStaleTarget
		}
		s.logger.Error(ctx, "failed to finish relance target loop", err)
		return Target{}, fmt.Errorf("failed to finish relance target loop: %w", err)
	}
	return row.toTarget(), nil
}

const sqlCompleteTarget = `
UPDATE relance_targets
SET status = 'completed', exit_reason = $2, exited_loop_at = $3, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('active', 'paused')
RETURNING ` + relanceTargetColumns

// CompleteTarget exits an engaged target with reason. Returns ErrStaleTarget if
// the target was already completed.
func (s *Store) CompleteTarget(ctx context.Context, targetID uuid.UUID, reason string, now time.Time) (Target, error) {
	var row targetRow
	err := s.db.GetContext(ctx, &row, sqlCompleteTarget, targetID, reason, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Target{}, ErrStaleTarget
		}
		s.logger.Error(ctx, "failed to complete relance target", err)
		return Target{}, fmt.Errorf("failed to complete relance target: %w", err)
	}
	return row.toTarget(), nil
}

const sqlCompleteTargetsByCampaign = `
UPDATE relance_targets
SET status = 'completed', exit_reason = $2, exited_loop_at = $3, updated_at = CURRENT_TIMESTAMP
WHERE campaign_id = $1 AND status IN ('active', 'paused')
`

// CompleteTargetsByCampaign exits every engaged target of a filtered campaign
func (s *Store) CompleteTargetsByCampaign(ctx context.Context, campaignID uuid.UUID, reason string, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlCompleteTargetsByCampaign, campaignID, reason, now)
	if err != nil {
		s.logger.Error(ctx, "failed to complete campaign targets", err)
		return 0, fmt.Errorf("failed to complete campaign targets: %w", err)
	}
	return res.RowsAffected()
}

const sqlExitEngagedTargetsForReferral = `
UPDATE relance_targets
SET status = 'completed', exit_reason = $2, exited_loop_at = $3, updated_at = CURRENT_TIMESTAMP
WHERE referral_user_id = $1 AND status IN ('active', 'paused')
RETURNING ` + relanceTargetColumns

// ExitEngagedTargetsForReferral exits every engaged target of a referral and
// returns the targets it changed
func (s *Store) ExitEngagedTargetsForReferral(ctx context.Context, referralUserID uuid.UUID, reason string, now time.Time) ([]Target, error) {
	var rows []targetRow
	err := s.db.SelectContext(ctx, &rows, sqlExitEngagedTargetsForReferral, referralUserID, reason, now)
	if err != nil {
		s.logger.Error(ctx, "failed to exit referral targets", err)
		return nil, fmt.Errorf("failed to exit referral targets: %w", err)
	}
	return targetsFromRows(rows), nil
}

const sqlSetTargetStatus = `
UPDATE relance_targets
SET status = $3, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = $2
RETURNING ` + relanceTargetColumns

// SetTargetStatus flips a target between active and paused
func (s *Store) SetTargetStatus(ctx context.Context, targetID uuid.UUID, from, to string) (Target, error) {
	var row targetRow
	err := s.db.GetContext(ctx, &row, sqlSetTargetStatus, targetID, from, to)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Target{}, ErrStaleTarget
		}
		s.logger.Error(ctx, "failed to set relance target status", err)
		return Target{}, fmt.Errorf("failed to set relance target status: %w", err)
	}
	return row.toTarget(), nil
}

const sqlListTargetsByReferrerDefault = `
SELECT ` + relanceTargetColumns + `
FROM relance_targets
WHERE referrer_user_id = $1 AND campaign_id IS NULL
ORDER BY created_at ASC
`

const sqlListTargetsByCampaign = `
SELECT ` + relanceTargetColumns + `
FROM relance_targets
WHERE campaign_id = $1
ORDER BY created_at ASC
`

const sqlListDeliveriesByTargets = `
SELECT ` + relanceDeliveryColumns + `
FROM relance_deliveries
WHERE target_id = ANY($1::uuid[])
ORDER BY sent_at ASC
`

// ListTargetsWithDeliveries loads every target of a campaign with its delivery history
func (s *Store) ListTargetsWithDeliveries(ctx context.Context, ref CampaignRef) ([]Target, error) {
	var (
		query string
		arg   uuid.UUID
	)
	ref.Switch(
		func(referrerID uuid.UUID) { query, arg = sqlListTargetsByReferrerDefault, referrerID },
		func(campaignID uuid.UUID) { query, arg = sqlListTargetsByCampaign, campaignID },
	)

	var rows []targetRow
	if err := s.db.SelectContext(ctx, &rows, query, arg); err != nil {
		s.logger.Error(ctx, "failed to list relance targets", err)
		return nil, fmt.Errorf("failed to list relance targets: %w", err)
	}
	targets := targetsFromRows(rows)
	if len(targets) == 0 {
		return targets, nil
	}

	ids := make([]string, len(targets))
	index := make(map[uuid.UUID]int, len(targets))
	for i, t := range targets {
		ids[i] = t.ID.String()
		index[t.ID] = i
	}

	var deliveries []Delivery
	if err := s.db.SelectContext(ctx, &deliveries, sqlListDeliveriesByTargets, pq.Array(ids)); err != nil {
		s.logger.Error(ctx, "failed to list relance deliveries", err)
		return nil, fmt.Errorf("failed to list relance deliveries: %w", err)
	}
	for _, d := range deliveries {
		if i, ok := index[d.TargetID]; ok {
			targets[i].Deliveries = append(targets[i].Deliveries, d)
		}
	}
	return targets, nil
}

const sqlListDeliveriesByTarget = `
SELECT ` + relanceDeliveryColumns + `
FROM relance_deliveries
WHERE target_id = $1
ORDER BY sent_at ASC
`

// ListDeliveriesByTarget returns the delivery history of one target, oldest first
func (s *Store) ListDeliveriesByTarget(ctx context.Context, targetID uuid.UUID) ([]Delivery, error) {
	var deliveries []Delivery
	err := s.db.SelectContext(ctx, &deliveries, sqlListDeliveriesByTarget, targetID)
	if err != nil {
		s.logger.Error(ctx, "failed to list target deliveries", err)
		return nil, fmt.Errorf("failed to list target deliveries: %w", err)
	}
	return deliveries, nil
}

const sqlRecordDelivery = `
INSERT INTO relance_deliveries (target_id, day, channel, status, sent_at, provider_message_id, error_message)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + relanceDeliveryColumns

// RecordDelivery appends a send attempt to a target's history
func (s *Store) RecordDelivery(ctx context.Context, params RecordDeliveryParams) (Delivery, error) {
	var delivery Delivery
	err := s.db.GetContext(ctx, &delivery, sqlRecordDelivery,
		params.TargetID,
		params.Day,
		params.Channel,
		params.Status,
		params.SentAt,
		params.ProviderMessageID,
		params.ErrorMessage)
	if err != nil {
		s.logger.Error(ctx, "failed to record relance delivery", err)
		return Delivery{}, fmt.Errorf("failed to record relance delivery: %w", err)
	}
	return delivery, nil
}

const sqlMarkDeliveryOpened = `
UPDATE relance_deliveries
SET opened = TRUE, opened_at = COALESCE(opened_at, $2), open_count = open_count + 1
WHERE provider_message_id = $1
`

const sqlMarkDeliveryClicked = `
UPDATE relance_deliveries
SET clicked = TRUE, clicked_at = COALESCE(clicked_at, $2), click_count = click_count + 1
WHERE provider_message_id = $1
`

const sqlMarkDeliveryBounced = `
UPDATE relance_deliveries
SET bounced = TRUE, bounced_at = COALESCE(bounced_at, $2), status = 'failed'
WHERE provider_message_id = $1
`

const sqlMarkDeliveryFailed = `
UPDATE relance_deliveries
SET status = 'failed'
WHERE provider_message_id = $1 AND $2::timestamptz IS NOT NULL
`

const sqlMarkDeliveryDelivered = `
UPDATE relance_deliveries
SET status = 'delivered'
WHERE provider_message_id = $1 AND bounced = FALSE AND $2::timestamptz IS NOT NULL
`

// UpdateDeliveryEngagement applies a provider event to the delivery with the
// given provider message ID. Returns the number of rows matched.
func (s *Store) UpdateDeliveryEngagement(ctx context.Context, providerMessageID, event string, at time.Time) (int64, error) {
	var query string
	switch event {
	case DeliveryEventOpened:
		query = sqlMarkDeliveryOpened
	case DeliveryEventClicked:
		query = sqlMarkDeliveryClicked
	case DeliveryEventBounced:
		query = sqlMarkDeliveryBounced
	case DeliveryEventFailed:
		query = sqlMarkDeliveryFailed
	case DeliveryEventDelivered:
		query = sqlMarkDeliveryDelivered
	default:
		return 0, fmt.Errorf("unknown delivery event %q", event)
	}

	res, err := s.db.ExecContext(ctx, query, providerMessageID, at)
	if err != nil {
		s.logger.Error(ctx, "failed to update delivery engagement", err)
		return 0, fmt.Errorf("failed to update delivery engagement: %w", err)
	}
	return res.RowsAffected()
}

const sqlPurgeExpiredTargets = `
DELETE FROM relance_targets
WHERE status = 'completed' AND exited_loop_at < $1
`

// PurgeExpiredTargets physically deletes completed targets that exited before cutoff.
// Deliveries go with them through the foreign key cascade.
func (s *Store) PurgeExpiredTargets(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlPurgeExpiredTargets, cutoff)
	if err != nil {
		s.logger.Error(ctx, "failed to purge expired targets", err)
		return 0, fmt.Errorf("failed to purge expired targets: %w", err)
	}
	return res.RowsAffected()
}
