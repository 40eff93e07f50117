package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	GetDB() *sqlx.DB

	// Config operations
	GetRelanceConfig(ctx context.Context, userID uuid.UUID) (RelanceConfig, error)
	GetOrCreateRelanceConfig(ctx context.Context, userID uuid.UUID) (RelanceConfig, error)
	ListRelanceConfigsWithChannel(ctx context.Context) ([]RelanceConfig, error)
	UpdateRelanceConfig(ctx context.Context, userID uuid.UUID, params UpdateRelanceConfigParams) (RelanceConfig, error)
	SetDefaultCampaignPaused(ctx context.Context, userID uuid.UUID, paused bool) error
	IncrementConfigMessagesSent(ctx context.Context, userID uuid.UUID, now time.Time) error
	ResetConfigDailyCounters(ctx context.Context, now time.Time) (int64, error)

	// Campaign operations
	CreateRelanceCampaign(ctx context.Context, params CreateRelanceCampaignParams) (RelanceCampaign, error)
	GetRelanceCampaignByID(ctx context.Context, campaignID uuid.UUID) (RelanceCampaign, error)
	ListRelanceCampaignsByUser(ctx context.Context, userID uuid.UUID) ([]RelanceCampaign, error)
	ListRelanceCampaignsByStatus(ctx context.Context, status string) ([]RelanceCampaign, error)
	FindDueScheduledCampaign(ctx context.Context, now time.Time) (RelanceCampaign, error)
	UpdateRelanceCampaign(ctx context.Context, campaignID uuid.UUID, params UpdateRelanceCampaignParams) (RelanceCampaign, error)
	TransitionRelanceCampaign(ctx context.Context, campaignID uuid.UUID, from []string, to string, now time.Time) (RelanceCampaign, error)
	CountActiveFilteredCampaigns(ctx context.Context, userID uuid.UUID, excluding uuid.UUID) (int, error)
	IncrementRelanceCampaignCounters(ctx context.Context, campaignID uuid.UUID, delta CampaignCounterDelta, now time.Time) (RelanceCampaign, error)
	ResetCampaignDailyCounters(ctx context.Context, now time.Time) (int64, error)
	ListActiveCampaignsWithoutActiveTargets(ctx context.Context, startedBefore time.Time) ([]RelanceCampaign, error)
	DeleteRelanceCampaign(ctx context.Context, campaignID uuid.UUID) error

	// Target operations
	CreateTarget(ctx context.Context, params CreateTargetParams) (Target, error)
	GetTargetByID(ctx context.Context, targetID uuid.UUID) (Target, error)
	ListEngagedReferralIDs(ctx context.Context, referrerID uuid.UUID) ([]uuid.UUID, error)
	ListDefaultExcludedReferralIDs(ctx context.Context, referrerID uuid.UUID) ([]uuid.UUID, error)
	ListCampaignReferralIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error)
	ListDueTargets(ctx context.Context, now time.Time) ([]Target, error)
	CountPendingFirstSendsByReferrer(ctx context.Context, referrerID uuid.UUID) (int, error)
	CountPendingFirstSendsByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error)
	AdvanceTarget(ctx context.Context, targetID uuid.UUID, fromDay int, nextDue, sentAt time.Time) (Target, error)
	FinishTargetLoop(ctx context.Context, targetID uuid.UUID, sentAt time.Time) (Target, error)
	CompleteTarget(ctx context.Context, targetID uuid.UUID, reason string, now time.Time) (Target, error)
	CompleteTargetsByCampaign(ctx context.Context, campaignID uuid.UUID, reason string, now time.Time) (int64, error)
	ExitEngagedTargetsForReferral(ctx context.Context, referralUserID uuid.UUID, reason string, now time.Time) ([]Target, error)
	SetTargetStatus(ctx context.Context, targetID uuid.UUID, from, to string) (Target, error)
	ListTargetsWithDeliveries(ctx context.Context, ref CampaignRef) ([]Target, error)
	PurgeExpiredTargets(ctx context.Context, cutoff time.Time) (int64, error)

	// Delivery operations
	RecordDelivery(ctx context.Context, params RecordDeliveryParams) (Delivery, error)
	ListDeliveriesByTarget(ctx context.Context, targetID uuid.UUID) ([]Delivery, error)
	UpdateDeliveryEngagement(ctx context.Context, providerMessageID, event string, at time.Time) (int64, error)

	// Message template operations
	ListMessageTemplates(ctx context.Context) ([]MessageTemplate, error)
	GetMessageTemplateByDay(ctx context.Context, day int) (MessageTemplate, error)
	UpsertMessageTemplate(ctx context.Context, params UpsertMessageTemplateParams) (MessageTemplate, error)
	DeleteMessageTemplate(ctx context.Context, day int) error
}

var _ Storer = (*Store)(nil)
