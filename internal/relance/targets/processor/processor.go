package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"relance-server/internal/observability"
	"relance-server/internal/store"

	"github.com/google/uuid"
)

// TargetStore defines the database operations required by TargetProcessor
type TargetStore interface {
	GetTargetByID(ctx context.Context, targetID uuid.UUID) (store.Target, error)
	SetTargetStatus(ctx context.Context, targetID uuid.UUID, from, to string) (store.Target, error)
	CompleteTarget(ctx context.Context, targetID uuid.UUID, reason string, now time.Time) (store.Target, error)
	ExitEngagedTargetsForReferral(ctx context.Context, referralUserID uuid.UUID, reason string, now time.Time) ([]store.Target, error)
	IncrementRelanceCampaignCounters(ctx context.Context, campaignID uuid.UUID, delta store.CampaignCounterDelta, now time.Time) (store.RelanceCampaign, error)
}

var (
	ErrTargetNotFound     = errors.New("target not found")
	ErrUnauthorized       = errors.New("unauthorized access to target")
	ErrInvalidTargetState = errors.New("target is not in a state that allows this action")
)

type TargetProcessor struct {
	store  TargetStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store TargetStore, logger *observability.Logger) TargetProcessor {
	return TargetProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the processor's time source
func (p TargetProcessor) WithClock(now func() time.Time) TargetProcessor {
	p.now = now
	return p
}

// PauseTarget stops sends to an active target until it is resumed
func (p *TargetProcessor) PauseTarget(ctx context.Context, referrerID, targetID uuid.UUID) (store.Target, error) {
	return p.flip(ctx, referrerID, targetID, store.TargetStatusActive, store.TargetStatusPaused)
}

// ResumeTarget makes a paused target eligible for its next due send again
func (p *TargetProcessor) ResumeTarget(ctx context.Context, referrerID, targetID uuid.UUID) (store.Target, error) {
	return p.flip(ctx, referrerID, targetID, store.TargetStatusPaused, store.TargetStatusActive)
}

// RemoveTarget exits an engaged target with reason manual
func (p *TargetProcessor) RemoveTarget(ctx context.Context, referrerID, targetID uuid.UUID) (store.Target, error) {
	ctx = targetFields(ctx, referrerID, targetID)
	if _, err := p.owned(ctx, referrerID, targetID); err != nil {
		return store.Target{}, err
	}

	target, err := p.store.CompleteTarget(ctx, targetID, store.ExitReasonManual, p.now())
	if err != nil {
		if errors.Is(err, store.ErrStaleTarget) {
			return store.Target{}, ErrInvalidTargetState
		}
		p.logger.Error(ctx, "failed to remove relance target", err)
		return store.Target{}, err
	}
	p.countExit(ctx, target)
	p.logger.Info(ctx, "relance target removed")
	return target, nil
}

// ExitOnPayment completes every engaged target of a referral that just paid,
// in every campaign it belongs to. Returns the number of targets exited.
func (p *TargetProcessor) ExitOnPayment(ctx context.Context, referralUserID uuid.UUID) (int, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "referral_id", Value: referralUserID.String()})

	exited, err := p.store.ExitEngagedTargetsForReferral(ctx, referralUserID, store.ExitReasonPaid, p.now())
	if err != nil {
		p.logger.Error(ctx, "failed to exit paid referral", err)
		return 0, err
	}
	for _, target := range exited {
		p.countExit(ctx, target)
	}
	if len(exited) > 0 {
		p.logger.Info(ctx, fmt.Sprintf("paid referral exited %d relance targets", len(exited)))
	}
	return len(exited), nil
}

func (p *TargetProcessor) flip(ctx context.Context, referrerID, targetID uuid.UUID, from, to string) (store.Target, error) {
	ctx = targetFields(ctx, referrerID, targetID)
	if _, err := p.owned(ctx, referrerID, targetID); err != nil {
		return store.Target{}, err
	}

	target, err := p.store.SetTargetStatus(ctx, targetID, from, to)
	if err != nil {
		if errors.Is(err, store.ErrStaleTarget) {
			return store.Target{}, ErrInvalidTargetState
		}
		p.logger.Error(ctx, "failed to update relance target status", err)
		return store.Target{}, err
	}
	p.logger.Info(ctx, "relance target "+to)
	return target, nil
}

func (p *TargetProcessor) owned(ctx context.Context, referrerID, targetID uuid.UUID) (store.Target, error) {
	target, err := p.store.GetTargetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Target{}, ErrTargetNotFound
		}
		p.logger.Error(ctx, "failed to get relance target", err)
		return store.Target{}, err
	}
	if target.ReferrerUserID != referrerID {
		return store.Target{}, ErrUnauthorized
	}
	return target, nil
}

// countExit bumps the owning campaign's exited counter. The target is already
// completed, so a failure here is only logged.
func (p *TargetProcessor) countExit(ctx context.Context, target store.Target) {
	campaignID, ok := target.Campaign.CampaignID()
	if !ok {
		return
	}
	_, err := p.store.IncrementRelanceCampaignCounters(ctx, campaignID, store.CampaignCounterDelta{TargetsExited: 1}, p.now())
	if err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})
		p.logger.Error(ctx, "failed to count campaign exit", err)
	}
}

func targetFields(ctx context.Context, referrerID, targetID uuid.UUID) context.Context {
	return observability.WithFields(ctx,
		observability.Field{Key: "referrer_id", Value: referrerID.String()},
		observability.Field{Key: "target_id", Value: targetID.String()},
	)
}
