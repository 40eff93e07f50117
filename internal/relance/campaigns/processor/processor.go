package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"relance-server/internal/observability"
	"relance-server/internal/relance/selection"
	"relance-server/internal/relance/stats"
	"relance-server/internal/relance/templates"
	"relance-server/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateRelanceCampaign(ctx context.Context, params store.CreateRelanceCampaignParams) (store.RelanceCampaign, error)
	GetRelanceCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error)
	ListRelanceCampaignsByUser(ctx context.Context, userID uuid.UUID) ([]store.RelanceCampaign, error)
	UpdateRelanceCampaign(ctx context.Context, campaignID uuid.UUID, params store.UpdateRelanceCampaignParams) (store.RelanceCampaign, error)
	DeleteRelanceCampaign(ctx context.Context, campaignID uuid.UUID) error
	CompleteTargetsByCampaign(ctx context.Context, campaignID uuid.UUID, reason string, now time.Time) (int64, error)
	GetOrCreateRelanceConfig(ctx context.Context, userID uuid.UUID) (store.RelanceConfig, error)
	ListTargetsWithDeliveries(ctx context.Context, ref store.CampaignRef) ([]store.Target, error)
}

// SubscriptionChecker verifies the referrer may use relance
type SubscriptionChecker interface {
	HasActiveSubscription(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Selector estimates and previews a filter's candidates
type Selector interface {
	Select(ctx context.Context, referrerID uuid.UUID, filter store.TargetFilter) (selection.Result, error)
	Preview(ctx context.Context, referrerID uuid.UUID, filter store.TargetFilter) (selection.Preview, error)
}

// Lifecycle performs campaign status transitions
type Lifecycle interface {
	Schedule(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error)
	Start(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error)
	Pause(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error)
	Resume(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error)
	Cancel(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error)
}

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrUnauthorized         = errors.New("unauthorized access to campaign")
	ErrSubscriptionRequired = errors.New("an active subscription is required")
	ErrTooManyTargets       = errors.New("estimated targets exceed the campaign limit")
	ErrInvalidRunAfter      = errors.New("invalid run-after campaign")
	ErrInvalidSchedule      = errors.New("scheduled start date is in the past")
	ErrInvalidCustomMessage = errors.New("invalid custom message")
	ErrCampaignNotEditable  = errors.New("campaign can no longer be edited")
	ErrCampaignNotDeletable = errors.New("campaign cannot be deleted in its current status")
	ErrFilterLocked         = errors.New("target filter cannot change once the campaign has started")
)

type CampaignProcessor struct {
	store        CampaignStore
	users        SubscriptionChecker
	selector     Selector
	lifecycle    Lifecycle
	personalizer *templates.Personalizer
	logger       *observability.Logger
	now          func() time.Time
}

func New(store CampaignStore, users SubscriptionChecker, selector Selector, lifecycle Lifecycle, personalizer *templates.Personalizer, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:        store,
		users:        users,
		selector:     selector,
		lifecycle:    lifecycle,
		personalizer: personalizer,
		logger:       logger,
		now:          time.Now,
	}
}

// WithClock replaces the processor's time source
func (p CampaignProcessor) WithClock(now func() time.Time) CampaignProcessor {
	p.now = now
	return p
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name               string
	Description        *string
	TargetFilter       store.TargetFilter
	CustomMessages     store.CustomMessages
	ScheduledStartDate *time.Time
	RunAfterCampaignID *uuid.UUID
}

// UpdateCampaignParams represents the editable fields of a campaign
type UpdateCampaignParams struct {
	Name               *string
	Description        *string
	TargetFilter       *store.TargetFilter
	CustomMessages     *store.CustomMessages
	ScheduledStartDate *time.Time
}

// CreateCampaign validates and persists a filtered campaign. It is created
// scheduled when a start date or a run-after dependency is given, draft otherwise.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, referrerID uuid.UUID, params CreateCampaignParams) (store.RelanceCampaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referrer_id", Value: referrerID.String()},
		observability.Field{Key: "campaign_name", Value: params.Name},
	)

	if err := p.requireSubscription(ctx, referrerID); err != nil {
		return store.RelanceCampaign{}, err
	}
	if err := selection.Validate(params.TargetFilter); err != nil {
		return store.RelanceCampaign{}, err
	}
	if err := p.validateCustomMessages(params.CustomMessages); err != nil {
		return store.RelanceCampaign{}, err
	}
	if params.ScheduledStartDate != nil && params.ScheduledStartDate.Before(p.now()) {
		return store.RelanceCampaign{}, ErrInvalidSchedule
	}
	if params.RunAfterCampaignID != nil {
		if err := p.validateRunAfter(ctx, referrerID, *params.RunAfterCampaignID); err != nil {
			return store.RelanceCampaign{}, err
		}
	}

	estimated, err := p.estimate(ctx, referrerID, params.TargetFilter)
	if err != nil {
		return store.RelanceCampaign{}, err
	}

	status := store.CampaignStatusDraft
	if params.ScheduledStartDate != nil || params.RunAfterCampaignID != nil {
		status = store.CampaignStatusScheduled
	}

	campaign, err := p.store.CreateRelanceCampaign(ctx, store.CreateRelanceCampaignParams{
		UserID:             referrerID,
		Name:               params.Name,
		Description:        params.Description,
		Status:             status,
		TargetFilter:       params.TargetFilter,
		CustomMessages:     params.CustomMessages,
		ScheduledStartDate: params.ScheduledStartDate,
		RunAfterCampaignID: params.RunAfterCampaignID,
		EstimatedTargets:   estimated,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create relance campaign", err)
		return store.RelanceCampaign{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaign.ID.String()})
	p.logger.Info(ctx, fmt.Sprintf("relance campaign created as %s with %d estimated targets", status, estimated))
	return campaign, nil
}

// GetCampaign retrieves a campaign owned by referrerID
func (p *CampaignProcessor) GetCampaign(ctx context.Context, referrerID, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referrer_id", Value: referrerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)
	return p.owned(ctx, referrerID, campaignID)
}

// ListCampaigns lists every campaign of a referrer, newest first
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, referrerID uuid.UUID) ([]store.RelanceCampaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "referrer_id", Value: referrerID.String()})
	campaigns, err := p.store.ListRelanceCampaignsByUser(ctx, referrerID)
	if err != nil {
		p.logger.Error(ctx, "failed to list relance campaigns", err)
		return nil, err
	}
	if campaigns == nil {
		campaigns = []store.RelanceCampaign{}
	}
	return campaigns, nil
}

// UpdateCampaign edits a non-terminal campaign. The filter and start date only
// change while the campaign has not started; setting a start date on a draft
// schedules it.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, referrerID, campaignID uuid.UUID, params UpdateCampaignParams) (store.RelanceCampaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referrer_id", Value: referrerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.owned(ctx, referrerID, campaignID)
	if err != nil {
		return store.RelanceCampaign{}, err
	}
	if store.IsTerminalCampaignStatus(campaign.Status) {
		return store.RelanceCampaign{}, ErrCampaignNotEditable
	}
	notStarted := campaign.Status == store.CampaignStatusDraft || campaign.Status == store.CampaignStatusScheduled
	if (params.TargetFilter != nil || params.ScheduledStartDate != nil) && !notStarted {
		return store.RelanceCampaign{}, ErrFilterLocked
	}
	if params.CustomMessages != nil {
		if err := p.validateCustomMessages(*params.CustomMessages); err != nil {
			return store.RelanceCampaign{}, err
		}
	}
	if params.ScheduledStartDate != nil && params.ScheduledStartDate.Before(p.now()) {
		return store.RelanceCampaign{}, ErrInvalidSchedule
	}

	update := store.UpdateRelanceCampaignParams{
		Name:               params.Name,
		Description:        params.Description,
		TargetFilter:       params.TargetFilter,
		CustomMessages:     params.CustomMessages,
		ScheduledStartDate: params.ScheduledStartDate,
	}
	if params.TargetFilter != nil {
		if err := selection.Validate(*params.TargetFilter); err != nil {
			return store.RelanceCampaign{}, err
		}
		estimated, err := p.estimate(ctx, referrerID, *params.TargetFilter)
		if err != nil {
			return store.RelanceCampaign{}, err
		}
		update.EstimatedTargets = &estimated
	}

	updated, err := p.store.UpdateRelanceCampaign(ctx, campaignID, update)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.RelanceCampaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update relance campaign", err)
		return store.RelanceCampaign{}, err
	}

	if updated.Status == store.CampaignStatusDraft && updated.ScheduledStartDate != nil {
		return p.lifecycle.Schedule(ctx, campaignID)
	}
	return updated, nil
}

// DeleteCampaign soft-deletes a campaign that is not running. Any target still
// engaged, which can only remain after a cap completion, exits as manual.
func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, referrerID, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referrer_id", Value: referrerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := p.owned(ctx, referrerID, campaignID)
	if err != nil {
		return err
	}
	switch campaign.Status {
	case store.CampaignStatusDraft, store.CampaignStatusScheduled, store.CampaignStatusCompleted, store.CampaignStatusCancelled:
	default:
		return ErrCampaignNotDeletable
	}

	exited, err := p.store.CompleteTargetsByCampaign(ctx, campaignID, store.ExitReasonManual, p.now())
	if err != nil {
		p.logger.Error(ctx, "failed to exit targets of deleted campaign", err)
		return err
	}
	if err := p.store.DeleteRelanceCampaign(ctx, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to delete relance campaign", err)
		return err
	}

	p.logger.Info(ctx, fmt.Sprintf("relance campaign deleted, %d targets exited", exited))
	return nil
}

// PreviewTargets returns the count and a sample of the referrals a filter selects
func (p *CampaignProcessor) PreviewTargets(ctx context.Context, referrerID uuid.UUID, filter store.TargetFilter) (selection.Preview, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "referrer_id", Value: referrerID.String()})
	preview, err := p.selector.Preview(ctx, referrerID, filter)
	if err != nil {
		if !errors.Is(err, selection.ErrInvalidFilter) {
			p.logger.Error(ctx, "failed to preview relance targets", err)
		}
		return selection.Preview{}, err
	}
	return preview, nil
}

// GetCampaignStats aggregates the delivery history of a campaign's targets
func (p *CampaignProcessor) GetCampaignStats(ctx context.Context, referrerID, campaignID uuid.UUID) (stats.Stats, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referrer_id", Value: referrerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)
	campaign, err := p.owned(ctx, referrerID, campaignID)
	if err != nil {
		return stats.Stats{}, err
	}
	return p.statsFor(ctx, campaign.Ref())
}

// GetDefaultStats aggregates the referrer's default loop
func (p *CampaignProcessor) GetDefaultStats(ctx context.Context, referrerID uuid.UUID) (stats.Stats, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "referrer_id", Value: referrerID.String()})
	return p.statsFor(ctx, store.DefaultCampaign(referrerID))
}

// StartCampaign activates a draft or scheduled campaign now
func (p *CampaignProcessor) StartCampaign(ctx context.Context, referrerID, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	return p.act(ctx, referrerID, campaignID, "start", p.lifecycle.Start)
}

func (p *CampaignProcessor) PauseCampaign(ctx context.Context, referrerID, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	return p.act(ctx, referrerID, campaignID, "pause", p.lifecycle.Pause)
}

func (p *CampaignProcessor) ResumeCampaign(ctx context.Context, referrerID, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	return p.act(ctx, referrerID, campaignID, "resume", p.lifecycle.Resume)
}

func (p *CampaignProcessor) CancelCampaign(ctx context.Context, referrerID, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	return p.act(ctx, referrerID, campaignID, "cancel", p.lifecycle.Cancel)
}

func (p *CampaignProcessor) act(ctx context.Context, referrerID, campaignID uuid.UUID, action string, fn func(context.Context, uuid.UUID) (store.RelanceCampaign, error)) (store.RelanceCampaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referrer_id", Value: referrerID.String()},
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
		observability.Field{Key: "action", Value: action},
	)
	if _, err := p.owned(ctx, referrerID, campaignID); err != nil {
		return store.RelanceCampaign{}, err
	}
	campaign, err := fn(ctx, campaignID)
	if err != nil {
		return store.RelanceCampaign{}, err
	}
	p.logger.Info(ctx, "relance campaign "+campaign.Status)
	return campaign, nil
}

func (p *CampaignProcessor) owned(ctx context.Context, referrerID, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	campaign, err := p.store.GetRelanceCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.RelanceCampaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get relance campaign", err)
		return store.RelanceCampaign{}, err
	}
	if campaign.UserID != referrerID {
		return store.RelanceCampaign{}, ErrUnauthorized
	}
	return campaign, nil
}

func (p *CampaignProcessor) statsFor(ctx context.Context, ref store.CampaignRef) (stats.Stats, error) {
	targets, err := p.store.ListTargetsWithDeliveries(ctx, ref)
	if err != nil {
		p.logger.Error(ctx, "failed to list targets for stats", err)
		return stats.Stats{}, err
	}
	return stats.Compute(targets), nil
}

func (p *CampaignProcessor) requireSubscription(ctx context.Context, referrerID uuid.UUID) error {
	active, err := p.users.HasActiveSubscription(ctx, referrerID)
	if err != nil {
		p.logger.Error(ctx, "failed to check subscription", err)
		return err
	}
	if !active {
		return ErrSubscriptionRequired
	}
	return nil
}

// estimate counts the filter's candidates and rejects a set larger than the
// owner's per-campaign cap
func (p *CampaignProcessor) estimate(ctx context.Context, referrerID uuid.UUID, filter store.TargetFilter) (int, error) {
	cfg, err := p.store.GetOrCreateRelanceConfig(ctx, referrerID)
	if err != nil {
		p.logger.Error(ctx, "failed to load relance config", err)
		return 0, err
	}
	result, err := p.selector.Select(ctx, referrerID, filter)
	if err != nil {
		if !errors.Is(err, selection.ErrInvalidFilter) {
			p.logger.Error(ctx, "failed to estimate campaign targets", err)
		}
		return 0, err
	}
	estimated := len(result.Candidates)
	if estimated > cfg.MaxTargetsPerCampaign {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "estimated_targets", Value: estimated},
			observability.Field{Key: "limit", Value: cfg.MaxTargetsPerCampaign},
		)
		p.logger.Warn(ctx, "campaign target estimate over limit")
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyTargets, estimated, cfg.MaxTargetsPerCampaign)
	}
	return estimated, nil
}

func (p *CampaignProcessor) validateRunAfter(ctx context.Context, referrerID, runAfterID uuid.UUID) error {
	dep, err := p.store.GetRelanceCampaignByID(ctx, runAfterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: campaign does not exist", ErrInvalidRunAfter)
		}
		p.logger.Error(ctx, "failed to get run-after campaign", err)
		return err
	}
	if dep.UserID != referrerID {
		return fmt.Errorf("%w: campaign belongs to another referrer", ErrInvalidRunAfter)
	}
	if store.IsTerminalCampaignStatus(dep.Status) {
		return fmt.Errorf("%w: campaign is already %s", ErrInvalidRunAfter, dep.Status)
	}
	return nil
}

func (p *CampaignProcessor) validateCustomMessages(messages store.CustomMessages) error {
	seen := make(map[int]bool, len(messages))
	for _, msg := range messages {
		if msg.Day < 1 || msg.Day > store.LoopLength {
			return fmt.Errorf("%w: day %d is outside 1..%d", ErrInvalidCustomMessage, msg.Day, store.LoopLength)
		}
		if seen[msg.Day] {
			return fmt.Errorf("%w: day %d is defined twice", ErrInvalidCustomMessage, msg.Day)
		}
		seen[msg.Day] = true
		for lang, body := range msg.Messages {
			if err := p.personalizer.Validate(body); err != nil {
				return fmt.Errorf("%w: day %d (%s): %s", ErrInvalidCustomMessage, msg.Day, lang, err.Error())
			}
		}
	}
	return nil
}
