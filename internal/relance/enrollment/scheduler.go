// Package enrollment turns eligible referrals into relance targets.
//
// A tick runs three fault-isolated steps: start at most one due scheduled
// campaign, enroll unpaid referrals into each referrer's default loop, then
// enroll the candidates of every active filtered campaign. Every enrollment
// consumes one unit of the scope's daily budget, which counts the messages
// already sent today plus the targets still waiting for their first send.
package enrollment

//go:generate go run go.uber.org/mock/mockgen@latest -source=scheduler.go -destination=mocks_test.go -package=enrollment

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"relance-server/internal/clients/userservice"
	"relance-server/internal/observability"
	"relance-server/internal/relance/selection"
	"relance-server/internal/store"

	"github.com/google/uuid"
)

// DefaultMinReferralAge keeps brand-new signups out of the default loop.
const DefaultMinReferralAge = 15 * time.Minute

// Store defines the database operations required by the Scheduler
type Store interface {
	ListRelanceConfigsWithChannel(ctx context.Context) ([]store.RelanceConfig, error)
	GetRelanceConfig(ctx context.Context, userID uuid.UUID) (store.RelanceConfig, error)
	ListRelanceCampaignsByStatus(ctx context.Context, status string) ([]store.RelanceCampaign, error)
	FindDueScheduledCampaign(ctx context.Context, now time.Time) (store.RelanceCampaign, error)
	ListDefaultExcludedReferralIDs(ctx context.Context, referrerID uuid.UUID) ([]uuid.UUID, error)
	ListCampaignReferralIDs(ctx context.Context, campaignID uuid.UUID) ([]uuid.UUID, error)
	CountPendingFirstSendsByReferrer(ctx context.Context, referrerID uuid.UUID) (int, error)
	CountPendingFirstSendsByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error)
	CreateTarget(ctx context.Context, params store.CreateTargetParams) (store.Target, error)
	IncrementRelanceCampaignCounters(ctx context.Context, campaignID uuid.UUID, delta store.CampaignCounterDelta, now time.Time) (store.RelanceCampaign, error)
}

// Users is the user service slice enrollment needs
type Users interface {
	GetUnpaidReferrals(ctx context.Context, referrerID uuid.UUID, since *time.Time) ([]userservice.UserSummary, error)
	HasActiveSubscription(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Selector computes the candidates of a filtered campaign
type Selector interface {
	Select(ctx context.Context, referrerID uuid.UUID, filter store.TargetFilter) (selection.Result, error)
}

// Lifecycle performs campaign status transitions
type Lifecycle interface {
	Start(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error)
	Complete(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error)
}

// Report summarises one tick
type Report struct {
	WaveID          uuid.UUID
	CampaignStarted *uuid.UUID
	Enrolled        int
	Skipped         int
	Errors          int
	CampaignsCapped int
}

type Scheduler struct {
	store          Store
	users          Users
	selector       Selector
	lifecycle      Lifecycle
	logger         *observability.Logger
	minReferralAge time.Duration
	now            func() time.Time
}

func New(store Store, users Users, selector Selector, lifecycle Lifecycle, minReferralAge time.Duration, logger *observability.Logger) *Scheduler {
	if minReferralAge <= 0 {
		minReferralAge = DefaultMinReferralAge
	}
	return &Scheduler{
		store:          store,
		users:          users,
		selector:       selector,
		lifecycle:      lifecycle,
		logger:         logger,
		minReferralAge: minReferralAge,
		now:            time.Now,
	}
}

// WithClock replaces the scheduler's time source
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// tick carries the state shared by the steps of one run
type tick struct {
	now           time.Time
	wave          uuid.UUID
	report        *Report
	subscriptions map[uuid.UUID]bool
}

// Run executes one enrollment tick. Per-referrer and per-campaign failures are
// counted in the report; only a failure to list the work aborts the tick.
func (s *Scheduler) Run(ctx context.Context) (Report, error) {
	t := &tick{
		now:           s.now(),
		wave:          uuid.New(),
		subscriptions: make(map[uuid.UUID]bool),
	}
	report := Report{WaveID: t.wave}
	t.report = &report
	ctx = observability.WithFields(ctx, observability.Field{Key: "wave_id", Value: t.wave})

	s.autoStart(ctx, t)

	configs, err := s.store.ListRelanceConfigsWithChannel(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to list relance configs: %w", err)
	}
	for _, cfg := range configs {
		s.enrollDefault(ctx, t, cfg)
	}

	campaigns, err := s.store.ListRelanceCampaignsByStatus(ctx, store.CampaignStatusActive)
	if err != nil {
		return report, fmt.Errorf("failed to list active campaigns: %w", err)
	}
	for _, campaign := range campaigns {
		s.enrollCampaign(ctx, t, campaign)
	}

	s.logger.Info(ctx, fmt.Sprintf("enrollment tick completed: %d enrolled, %d skipped, %d errors",
		report.Enrolled, report.Skipped, report.Errors))
	s.logger.Metrics(ctx,
		observability.MetricField{Key: "relance_enrolled", Value: report.Enrolled},
		observability.MetricField{Key: "relance_enrollment_skipped", Value: report.Skipped},
		observability.MetricField{Key: "relance_enrollment_errors", Value: report.Errors},
		observability.MetricField{Key: "relance_campaigns_capped", Value: report.CampaignsCapped},
	)
	return report, nil
}

func (s *Scheduler) autoStart(ctx context.Context, t *tick) {
	due, err := s.store.FindDueScheduledCampaign(ctx, t.now)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error(ctx, "failed to find due scheduled campaign", err)
			t.report.Errors++
		}
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: due.ID})
	if _, err := s.lifecycle.Start(ctx, due.ID); err != nil {
		s.logger.Error(ctx, "failed to auto-start scheduled campaign", err)
		t.report.Errors++
		return
	}
	t.report.CampaignStarted = &due.ID
}

// subscribed checks a referrer's subscription once per tick
func (s *Scheduler) subscribed(ctx context.Context, t *tick, referrerID uuid.UUID) (bool, error) {
	if ok, cached := t.subscriptions[referrerID]; cached {
		return ok, nil
	}
	ok, err := s.users.HasActiveSubscription(ctx, referrerID)
	if err != nil {
		return false, err
	}
	t.subscriptions[referrerID] = ok
	return ok, nil
}

func (s *Scheduler) enrollDefault(ctx context.Context, t *tick, cfg store.RelanceConfig) {
	if !cfg.Enabled || cfg.EnrollmentPaused || cfg.DefaultCampaignPaused {
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "referrer_id", Value: cfg.UserID})

	ok, err := s.subscribed(ctx, t, cfg.UserID)
	if err != nil {
		s.logger.Error(ctx, "failed to verify referrer subscription", err)
		t.report.Errors++
		return
	}
	if !ok {
		s.logger.Debug(ctx, "referrer has no active subscription, skipping default enrollment")
		return
	}

	referrals, err := s.users.GetUnpaidReferrals(ctx, cfg.UserID, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to fetch unpaid referrals", err)
		t.report.Errors++
		return
	}
	if len(referrals) == 0 {
		return
	}

	excluded, err := s.idSet(s.store.ListDefaultExcludedReferralIDs(ctx, cfg.UserID))
	if err != nil {
		s.logger.Error(ctx, "failed to list excluded referrals", err)
		t.report.Errors++
		return
	}
	pending, err := s.store.CountPendingFirstSendsByReferrer(ctx, cfg.UserID)
	if err != nil {
		s.logger.Error(ctx, "failed to count pending first sends", err)
		t.report.Errors++
		return
	}
	budget := cfg.MaxMessagesPerDay - cfg.SentToday(t.now) - pending

	sortByRegistration(referrals)
	youngest := t.now.Add(-s.minReferralAge)
	eligible := make([]userservice.UserSummary, 0, len(referrals))
	for _, referral := range referrals {
		if _, ok := excluded[referral.ID]; ok {
			continue
		}
		if referral.RegisteredAt.After(youngest) {
			continue
		}
		eligible = append(eligible, referral)
	}

	for i, referral := range eligible {
		if budget <= 0 {
			t.report.Skipped += len(eligible) - i
			s.logger.Debug(ctx, "daily budget reached, stopping default enrollment")
			return
		}

		_, err := s.store.CreateTarget(ctx, store.CreateTargetParams{
			ReferralUserID: referral.ID,
			ReferrerUserID: cfg.UserID,
			Campaign:       store.DefaultCampaign(cfg.UserID),
			WaveID:         t.wave,
			NextMessageDue: t.now,
		})
		if err != nil {
			if errors.Is(err, store.ErrTargetExists) {
				continue
			}
			s.logger.Error(ctx, "failed to enroll referral into default campaign", err)
			t.report.Errors++
			continue
		}
		budget--
		t.report.Enrolled++
	}
}

func (s *Scheduler) enrollCampaign(ctx context.Context, t *tick, campaign store.RelanceCampaign) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID},
		observability.Field{Key: "referrer_id", Value: campaign.UserID},
	)

	cfg, err := s.store.GetRelanceConfig(ctx, campaign.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error(ctx, "failed to load campaign owner config", err)
			t.report.Errors++
		}
		return
	}
	if !cfg.ChannelReady || cfg.EnrollmentPaused {
		return
	}

	remainingCap := cfg.MaxTargetsPerCampaign - campaign.TargetsEnrolled
	if remainingCap <= 0 {
		s.capCampaign(ctx, t, campaign.ID)
		return
	}

	ok, err := s.subscribed(ctx, t, campaign.UserID)
	if err != nil {
		s.logger.Error(ctx, "failed to verify referrer subscription", err)
		t.report.Errors++
		return
	}
	if !ok {
		s.logger.Debug(ctx, "referrer has no active subscription, skipping campaign enrollment")
		return
	}

	result, err := s.selector.Select(ctx, campaign.UserID, campaign.TargetFilter)
	if err != nil {
		s.logger.Error(ctx, "failed to select campaign candidates", err)
		t.report.Errors++
		return
	}
	existing, err := s.idSet(s.store.ListCampaignReferralIDs(ctx, campaign.ID))
	if err != nil {
		s.logger.Error(ctx, "failed to list campaign referrals", err)
		t.report.Errors++
		return
	}
	pending, err := s.store.CountPendingFirstSendsByCampaign(ctx, campaign.ID)
	if err != nil {
		s.logger.Error(ctx, "failed to count campaign pending first sends", err)
		t.report.Errors++
		return
	}
	budget := cfg.MaxMessagesPerDay - campaign.SentToday(t.now) - pending

	fresh := make([]userservice.UserSummary, 0, len(result.Candidates))
	for _, candidate := range result.Candidates {
		if _, ok := existing[candidate.ID]; !ok {
			fresh = append(fresh, candidate)
		}
	}

	enrolled := 0
	for i, candidate := range fresh {
		if remainingCap <= 0 {
			break
		}
		if budget <= 0 {
			t.report.Skipped += len(fresh) - i
			break
		}

		_, err := s.store.CreateTarget(ctx, store.CreateTargetParams{
			ReferralUserID: candidate.ID,
			ReferrerUserID: campaign.UserID,
			Campaign:       store.FilteredCampaign(campaign.ID),
			WaveID:         t.wave,
			NextMessageDue: t.now,
		})
		if err != nil {
			if errors.Is(err, store.ErrTargetExists) {
				continue
			}
			s.logger.Error(ctx, "failed to enroll referral into campaign", err)
			t.report.Errors++
			continue
		}
		enrolled++
		budget--
		remainingCap--
	}

	if enrolled > 0 {
		t.report.Enrolled += enrolled
		if _, err := s.store.IncrementRelanceCampaignCounters(ctx, campaign.ID,
			store.CampaignCounterDelta{TargetsEnrolled: enrolled}, t.now); err != nil {
			s.logger.Error(ctx, "failed to count enrolled targets", err)
			t.report.Errors++
			return
		}
	}
	if remainingCap <= 0 {
		s.capCampaign(ctx, t, campaign.ID)
	}
}

// capCampaign completes a campaign that reached its target cap
func (s *Scheduler) capCampaign(ctx context.Context, t *tick, campaignID uuid.UUID) {
	if _, err := s.lifecycle.Complete(ctx, campaignID); err != nil {
		s.logger.Error(ctx, "failed to complete capped campaign", err)
		t.report.Errors++
		return
	}
	t.report.CampaignsCapped++
	s.logger.Info(ctx, "campaign reached its target cap")
}

func (s *Scheduler) idSet(ids []uuid.UUID, err error) (map[uuid.UUID]struct{}, error) {
	if err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func sortByRegistration(users []userservice.UserSummary) {
	sort.SliceStable(users, func(i, j int) bool {
		if !users[i].RegisteredAt.Equal(users[j].RegisteredAt) {
			return users[i].RegisteredAt.Before(users[j].RegisteredAt)
		}
		return users[i].ID.String() < users[j].ID.String()
	})
}
