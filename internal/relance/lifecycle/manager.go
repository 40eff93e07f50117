// Package lifecycle owns the filtered campaign state machine.
//
//	draft -> scheduled -> active <-> paused -> completed
//	draft | scheduled | active | paused -> cancelled
//
// completed and cancelled are terminal. Every transition is a conditional
// update on the current status, so two writers racing on the same campaign
// cannot both win.
package lifecycle

//go:generate go run go.uber.org/mock/mockgen@latest -source=manager.go -destination=mocks_test.go -package=lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"relance-server/internal/observability"
	"relance-server/internal/store"

	"github.com/google/uuid"
)

// StartGracePeriod is how long a started campaign may sit without targets
// before the completion sweep considers it exhausted.
const StartGracePeriod = 24 * time.Hour

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrInvalidTransition = errors.New("invalid campaign status transition")
)

var transitions = map[string][]string{
	store.CampaignStatusDraft:     {store.CampaignStatusScheduled, store.CampaignStatusActive, store.CampaignStatusCancelled},
	store.CampaignStatusScheduled: {store.CampaignStatusActive, store.CampaignStatusCancelled},
	store.CampaignStatusActive:    {store.CampaignStatusPaused, store.CampaignStatusCompleted, store.CampaignStatusCancelled},
	store.CampaignStatusPaused:    {store.CampaignStatusActive, store.CampaignStatusCompleted, store.CampaignStatusCancelled},
}

// CanTransition reports whether the state machine allows from -> to
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// sourcesOf returns every status that may move to `to`
func sourcesOf(to string) []string {
	var from []string
	for _, status := range []string{
		store.CampaignStatusDraft,
		store.CampaignStatusScheduled,
		store.CampaignStatusActive,
		store.CampaignStatusPaused,
	} {
		if CanTransition(status, to) {
			from = append(from, status)
		}
	}
	return from
}

// Store defines the database operations required by the Manager
type Store interface {
	GetRelanceCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error)
	TransitionRelanceCampaign(ctx context.Context, campaignID uuid.UUID, from []string, to string, now time.Time) (store.RelanceCampaign, error)
	CountActiveFilteredCampaigns(ctx context.Context, userID uuid.UUID, excluding uuid.UUID) (int, error)
	CompleteTargetsByCampaign(ctx context.Context, campaignID uuid.UUID, reason string, now time.Time) (int64, error)
	IncrementRelanceCampaignCounters(ctx context.Context, campaignID uuid.UUID, delta store.CampaignCounterDelta, now time.Time) (store.RelanceCampaign, error)
	GetOrCreateRelanceConfig(ctx context.Context, userID uuid.UUID) (store.RelanceConfig, error)
	SetDefaultCampaignPaused(ctx context.Context, userID uuid.UUID, paused bool) error
	ListActiveCampaignsWithoutActiveTargets(ctx context.Context, startedBefore time.Time) ([]store.RelanceCampaign, error)
}

type Manager struct {
	store  Store
	logger *observability.Logger
	now    func() time.Time
}

func New(store Store, logger *observability.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the manager's time source
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Schedule queues a draft campaign for automatic start
func (m *Manager) Schedule(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	return m.transition(ctx, campaignID, store.CampaignStatusScheduled)
}

// Start activates a draft or scheduled campaign. When the owner does not allow
// simultaneous campaigns the default loop is paused.
func (m *Manager) Start(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	campaign, err := m.transitionFrom(ctx, campaignID,
		[]string{store.CampaignStatusDraft, store.CampaignStatusScheduled}, store.CampaignStatusActive)
	if err != nil {
		return store.RelanceCampaign{}, err
	}
	if err := m.pauseDefaultIfExclusive(ctx, campaign.UserID); err != nil {
		return campaign, err
	}
	m.logger.Info(ctx, "relance campaign started")
	return campaign, nil
}

// Pause flips an active campaign to paused
func (m *Manager) Pause(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	return m.transitionFrom(ctx, campaignID, []string{store.CampaignStatusActive}, store.CampaignStatusPaused)
}

// Resume flips a paused campaign back to active
func (m *Manager) Resume(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	campaign, err := m.transitionFrom(ctx, campaignID, []string{store.CampaignStatusPaused}, store.CampaignStatusActive)
	if err != nil {
		return store.RelanceCampaign{}, err
	}
	if err := m.pauseDefaultIfExclusive(ctx, campaign.UserID); err != nil {
		return campaign, err
	}
	return campaign, nil
}

// Cancel terminates a campaign, exits its engaged targets with reason manual
// and resumes the default loop if no other campaign of the owner is active.
func (m *Manager) Cancel(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	campaign, err := m.transition(ctx, campaignID, store.CampaignStatusCancelled)
	if err != nil {
		return store.RelanceCampaign{}, err
	}
	now := m.now()

	exited, err := m.store.CompleteTargetsByCampaign(ctx, campaignID, store.ExitReasonManual, now)
	if err != nil {
		m.logger.Error(ctx, "failed to exit targets of cancelled campaign", err)
		return campaign, fmt.Errorf("failed to exit campaign targets: %w", err)
	}
	if exited > 0 {
		campaign, err = m.store.IncrementRelanceCampaignCounters(ctx, campaignID,
			store.CampaignCounterDelta{TargetsExited: int(exited)}, now)
		if err != nil {
			m.logger.Error(ctx, "failed to count exited targets", err)
			return campaign, fmt.Errorf("failed to count exited targets: %w", err)
		}
	}

	if err := m.releaseDefaultIfIdle(ctx, campaign.UserID); err != nil {
		return campaign, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "targets_exited", Value: exited})
	m.logger.Info(ctx, "relance campaign cancelled")
	return campaign, nil
}

// Complete marks an active or paused campaign completed and resumes the
// default loop if it was the owner's last active campaign.
func (m *Manager) Complete(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	campaign, err := m.transition(ctx, campaignID, store.CampaignStatusCompleted)
	if err != nil {
		return store.RelanceCampaign{}, err
	}
	if err := m.releaseDefaultIfIdle(ctx, campaign.UserID); err != nil {
		return campaign, err
	}
	m.logger.Info(ctx, "relance campaign completed")
	return campaign, nil
}

// SweepCompleted completes every active campaign left without active targets.
// A campaign that never enrolled anyone is given StartGracePeriod first.
func (m *Manager) SweepCompleted(ctx context.Context) (completed int, failed int, err error) {
	campaigns, err := m.store.ListActiveCampaignsWithoutActiveTargets(ctx, m.now().Add(-StartGracePeriod))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list exhausted campaigns: %w", err)
	}
	for _, c := range campaigns {
		if _, err := m.Complete(ctx, c.ID); err != nil {
			if errors.Is(err, ErrInvalidTransition) {
				continue
			}
			failed++
			continue
		}
		completed++
	}
	return completed, failed, nil
}

func (m *Manager) transition(ctx context.Context, campaignID uuid.UUID, to string) (store.RelanceCampaign, error) {
	return m.transitionFrom(ctx, campaignID, sourcesOf(to), to)
}

func (m *Manager) transitionFrom(ctx context.Context, campaignID uuid.UUID, from []string, to string) (store.RelanceCampaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID},
		observability.Field{Key: "target_status", Value: to},
	)

	current, err := m.store.GetRelanceCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.RelanceCampaign{}, ErrCampaignNotFound
		}
		return store.RelanceCampaign{}, err
	}
	if !contains(from, current.Status) {
		return store.RelanceCampaign{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, to)
	}

	campaign, err := m.store.TransitionRelanceCampaign(ctx, campaignID, from, to, m.now())
	if err != nil {
		if errors.Is(err, store.ErrStaleCampaign) {
			m.logger.Warn(ctx, "campaign status changed concurrently")
			return store.RelanceCampaign{}, fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)
		}
		return store.RelanceCampaign{}, err
	}
	return campaign, nil
}

func (m *Manager) pauseDefaultIfExclusive(ctx context.Context, ownerID uuid.UUID) error {
	cfg, err := m.store.GetOrCreateRelanceConfig(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to load relance config: %w", err)
	}
	if cfg.AllowSimultaneousCampaigns || cfg.DefaultCampaignPaused {
		return nil
	}
	if err := m.store.SetDefaultCampaignPaused(ctx, ownerID, true); err != nil {
		return fmt.Errorf("failed to pause default campaign: %w", err)
	}
	m.logger.Info(ctx, "default campaign paused for exclusive filtered campaign")
	return nil
}

func (m *Manager) releaseDefaultIfIdle(ctx context.Context, ownerID uuid.UUID) error {
	active, err := m.store.CountActiveFilteredCampaigns(ctx, ownerID, uuid.Nil)
	if err != nil {
		return fmt.Errorf("failed to count active campaigns: %w", err)
	}
	if active > 0 {
		return nil
	}
	if err := m.store.SetDefaultCampaignPaused(ctx, ownerID, false); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to resume default campaign: %w", err)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
