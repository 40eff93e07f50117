// Package sender delivers the due day of every active relance target.
//
// A successful send records a delivered row, bumps the referrer and campaign
// counters and moves the target to the next day, or completes it on day 7. A
// failed send records a failed row and leaves the target untouched, so it is
// retried on the next run.
package sender

//go:generate go run go.uber.org/mock/mockgen@latest -source=sender.go -destination=mocks_test.go -package=sender

import (
	"context"
	"errors"
	"fmt"
	"time"

	"relance-server/internal/clients/userservice"
	"relance-server/internal/observability"
	"relance-server/internal/relance/templates"
	"relance-server/internal/relance/transport"
	"relance-server/internal/store"

	"github.com/google/uuid"
)

// DayInterval separates two messages of the same target.
const DayInterval = 24 * time.Hour

// Skip reasons reported in the run summary
const (
	SkipNoConfig        = "no_config"
	SkipSendingPaused   = "sending_paused"
	SkipChannelNotReady = "channel_not_ready"
	SkipDefaultPaused   = "default_paused"
	SkipCampaignPaused  = "campaign_not_active"
	SkipDailyLimit      = "daily_limit"
	SkipNoTemplate      = "no_template"
)

// Store defines the database operations required by the Sender
type Store interface {
	ListDueTargets(ctx context.Context, now time.Time) ([]store.Target, error)
	GetRelanceConfig(ctx context.Context, userID uuid.UUID) (store.RelanceConfig, error)
	GetRelanceCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error)
	CompleteTarget(ctx context.Context, targetID uuid.UUID, reason string, now time.Time) (store.Target, error)
	AdvanceTarget(ctx context.Context, targetID uuid.UUID, fromDay int, nextDue, sentAt time.Time) (store.Target, error)
	FinishTargetLoop(ctx context.Context, targetID uuid.UUID, sentAt time.Time) (store.Target, error)
	RecordDelivery(ctx context.Context, params store.RecordDeliveryParams) (store.Delivery, error)
	IncrementConfigMessagesSent(ctx context.Context, userID uuid.UUID, now time.Time) error
	IncrementRelanceCampaignCounters(ctx context.Context, campaignID uuid.UUID, delta store.CampaignCounterDelta, now time.Time) (store.RelanceCampaign, error)
}

// Users is the user service slice the sender needs
type Users interface {
	GetUserSummary(ctx context.Context, userID uuid.UUID) (userservice.UserSummary, error)
	HasActiveSubscription(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Resolver picks the content of a day
type Resolver interface {
	Resolve(ctx context.Context, campaign *store.RelanceCampaign, day int) (templates.Content, error)
}

// Sweeper completes campaigns that ran out of active targets
type Sweeper interface {
	SweepCompleted(ctx context.Context) (completed int, failed int, err error)
}

// Report summarises one run
type Report struct {
	Due                int
	Sent               int
	Failed             int
	Completed          int
	ExitedInactive     int
	Errors             int
	Skipped            map[string]int
	CampaignsCompleted int
}

func (r *Report) skip(reason string) {
	r.Skipped[reason]++
}

// SkippedTotal sums the skip reasons
func (r Report) SkippedTotal() int {
	total := 0
	for _, n := range r.Skipped {
		total += n
	}
	return total
}

type Sender struct {
	store        Store
	users        Users
	resolver     Resolver
	personalizer *templates.Personalizer
	transport    transport.Sender
	sweeper      Sweeper
	logger       *observability.Logger
	sendDelay    time.Duration
	now          func() time.Time
}

func New(
	store Store,
	users Users,
	resolver Resolver,
	personalizer *templates.Personalizer,
	sender transport.Sender,
	sweeper Sweeper,
	sendDelay time.Duration,
	logger *observability.Logger,
) *Sender {
	return &Sender{
		store:        store,
		users:        users,
		resolver:     resolver,
		personalizer: personalizer,
		transport:    sender,
		sweeper:      sweeper,
		logger:       logger,
		sendDelay:    sendDelay,
		now:          time.Now,
	}
}

// WithClock replaces the sender's time source
func (s *Sender) WithClock(now func() time.Time) *Sender {
	s.now = now
	return s
}

// run caches what several targets of the same referrer or campaign share
type run struct {
	now           time.Time
	report        *Report
	configs       map[uuid.UUID]*store.RelanceConfig
	campaigns     map[uuid.UUID]*store.RelanceCampaign
	subscriptions map[uuid.UUID]bool
	referrers     map[uuid.UUID]userservice.UserSummary
	attempts      int
}

// Run sends every due message, then completes exhausted campaigns
func (s *Sender) Run(ctx context.Context) (Report, error) {
	r := &run{
		now:           s.now(),
		configs:       make(map[uuid.UUID]*store.RelanceConfig),
		campaigns:     make(map[uuid.UUID]*store.RelanceCampaign),
		subscriptions: make(map[uuid.UUID]bool),
		referrers:     make(map[uuid.UUID]userservice.UserSummary),
	}
	report := Report{Skipped: make(map[string]int)}
	r.report = &report

	due, err := s.store.ListDueTargets(ctx, r.now)
	if err != nil {
		return report, fmt.Errorf("failed to list due targets: %w", err)
	}
	report.Due = len(due)

	for _, target := range due {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		s.process(ctx, r, target)
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	if s.sweeper != nil {
		completed, failed, err := s.sweeper.SweepCompleted(ctx)
		if err != nil {
			s.logger.Error(ctx, "failed to sweep exhausted campaigns", err)
			report.Errors++
		}
		report.CampaignsCompleted = completed
		report.Errors += failed
	}

	s.logger.Info(ctx, fmt.Sprintf("relance send run completed: %d due, %d sent, %d failed, %d skipped, %d errors",
		report.Due, report.Sent, report.Failed, report.SkippedTotal(), report.Errors))
	s.logger.Metrics(ctx,
		observability.MetricField{Key: "relance_due", Value: report.Due},
		observability.MetricField{Key: "relance_sent", Value: report.Sent},
		observability.MetricField{Key: "relance_failed", Value: report.Failed},
		observability.MetricField{Key: "relance_completed", Value: report.Completed},
		observability.MetricField{Key: "relance_exited_inactive", Value: report.ExitedInactive},
		observability.MetricField{Key: "relance_skipped", Value: report.SkippedTotal()},
		observability.MetricField{Key: "relance_errors", Value: report.Errors},
		observability.MetricField{Key: "relance_campaigns_completed", Value: report.CampaignsCompleted},
	)
	return report, nil
}

func (s *Sender) process(ctx context.Context, r *run, target store.Target) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "target_id", Value: target.ID},
		observability.Field{Key: "referrer_id", Value: target.ReferrerUserID},
		observability.Field{Key: "day", Value: target.CurrentDay},
	)

	cfg, ok := s.config(ctx, r, target.ReferrerUserID)
	if !ok {
		return
	}
	if cfg.SendingPaused {
		r.report.skip(SkipSendingPaused)
		return
	}
	if !cfg.ChannelReady {
		r.report.skip(SkipChannelNotReady)
		return
	}

	var campaign *store.RelanceCampaign
	skip := ""
	target.Campaign.Switch(
		func(uuid.UUID) {
			if !cfg.Enabled || cfg.DefaultCampaignPaused {
				skip = SkipDefaultPaused
			}
		},
		func(campaignID uuid.UUID) {
			c, ok := s.campaign(ctx, r, campaignID)
			if !ok {
				skip = SkipCampaignPaused
				return
			}
			if c.Status != store.CampaignStatusActive && c.Status != store.CampaignStatusCompleted {
				skip = SkipCampaignPaused
				return
			}
			campaign = c
		},
	)
	if skip != "" {
		r.report.skip(skip)
		return
	}

	subscribed, err := s.subscribed(ctx, r, target.ReferrerUserID)
	if err != nil {
		s.logger.Error(ctx, "failed to verify referrer subscription", err)
		r.report.Errors++
		return
	}
	if !subscribed {
		s.exitInactive(ctx, r, target, campaign)
		return
	}

	if cfg.SentToday(r.now) >= cfg.MaxMessagesPerDay {
		r.report.skip(SkipDailyLimit)
		return
	}
	if campaign != nil && campaign.SentToday(r.now) >= cfg.MaxMessagesPerDay {
		r.report.skip(SkipDailyLimit)
		return
	}

	content, err := s.resolver.Resolve(ctx, campaign, target.CurrentDay)
	if err != nil {
		if errors.Is(err, templates.ErrNoTemplate) {
			s.logger.Warn(ctx, "no message template for target day")
			r.report.skip(SkipNoTemplate)
			return
		}
		s.logger.Error(ctx, "failed to resolve message template", err)
		r.report.Errors++
		return
	}

	referral, err := s.users.GetUserSummary(ctx, target.ReferralUserID)
	if err != nil {
		s.logger.Error(ctx, "failed to fetch referral profile", err)
		r.report.Errors++
		return
	}
	referrer, err := s.referrer(ctx, r, target.ReferrerUserID)
	if err != nil {
		s.logger.Error(ctx, "failed to fetch referrer profile", err)
		r.report.Errors++
		return
	}

	body, err := s.personalizer.Personalize(content, referral.Language, templates.Vars{
		Name:         referral.Name,
		ReferrerName: referrer.Name,
		Day:          target.CurrentDay,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to personalize message", err)
		r.report.Errors++
		return
	}

	if err := s.throttle(ctx, r); err != nil {
		return
	}
	providerID, sendErr := s.transport.Send(ctx, transport.Message{
		Channel:   cfg.Channel,
		Phone:     referral.Phone,
		Email:     referral.Email,
		Body:      body,
		MediaURLs: content.MediaURLs,
		Day:       target.CurrentDay,
		TargetID:  target.ID.String(),
	})
	if sendErr != nil {
		s.recordFailure(ctx, r, target, cfg, campaign, sendErr)
		return
	}
	s.recordSuccess(ctx, r, target, cfg, campaign, providerID)
}

// throttle waits sendDelay between two send attempts
func (s *Sender) throttle(ctx context.Context, r *run) error {
	r.attempts++
	if r.attempts == 1 || s.sendDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.sendDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Sender) recordSuccess(ctx context.Context, r *run, target store.Target, cfg *store.RelanceConfig, campaign *store.RelanceCampaign, providerID string) {
	sentAt := s.now()
	r.report.Sent++

	var provider *string
	if providerID != "" {
		provider = &providerID
	}
	if _, err := s.store.RecordDelivery(ctx, store.RecordDeliveryParams{
		TargetID:          target.ID,
		Day:               target.CurrentDay,
		Channel:           cfg.Channel,
		Status:            store.DeliveryStatusDelivered,
		SentAt:            sentAt,
		ProviderMessageID: provider,
	}); err != nil {
		s.logger.Error(ctx, "failed to record delivery", err)
		r.report.Errors++
	}

	if err := s.store.IncrementConfigMessagesSent(ctx, cfg.UserID, sentAt); err != nil {
		s.logger.Error(ctx, "failed to count sent message", err)
		r.report.Errors++
	}
	if store.StartOfDay(cfg.LastResetDate).Before(store.StartOfDay(sentAt)) {
		cfg.MessagesSentToday = 0
		cfg.LastResetDate = store.StartOfDay(sentAt)
	}
	cfg.MessagesSentToday++

	delta := store.CampaignCounterDelta{MessagesSent: 1, MessagesDelivered: 1}
	if target.CurrentDay >= store.LoopLength {
		if _, err := s.store.FinishTargetLoop(ctx, target.ID, sentAt); err != nil {
			s.logStale(ctx, r, "failed to complete target", err)
		} else {
			delta.TargetsCompleted = 1
			r.report.Completed++
		}
	} else {
		if _, err := s.store.AdvanceTarget(ctx, target.ID, target.CurrentDay, sentAt.Add(DayInterval), sentAt); err != nil {
			s.logStale(ctx, r, "failed to advance target", err)
		}
	}

	if campaign != nil {
		s.bumpCampaign(ctx, r, campaign, delta)
	}
}

func (s *Sender) recordFailure(ctx context.Context, r *run, target store.Target, cfg *store.RelanceConfig, campaign *store.RelanceCampaign, sendErr error) {
	s.logger.Error(ctx, "failed to send relance message", sendErr)
	r.report.Failed++

	msg := sendErr.Error()
	if _, err := s.store.RecordDelivery(ctx, store.RecordDeliveryParams{
		TargetID:     target.ID,
		Day:          target.CurrentDay,
		Channel:      cfg.Channel,
		Status:       store.DeliveryStatusFailed,
		SentAt:       s.now(),
		ErrorMessage: &msg,
	}); err != nil {
		s.logger.Error(ctx, "failed to record failed delivery", err)
		r.report.Errors++
	}
	if campaign != nil {
		s.bumpCampaign(ctx, r, campaign, store.CampaignCounterDelta{MessagesFailed: 1})
	}
}

// exitInactive completes a target whose referrer lost the subscription
func (s *Sender) exitInactive(ctx context.Context, r *run, target store.Target, campaign *store.RelanceCampaign) {
	if _, err := s.store.CompleteTarget(ctx, target.ID, store.ExitReasonReferrerInactive, r.now); err != nil {
		s.logStale(ctx, r, "failed to exit target of inactive referrer", err)
		return
	}
	r.report.ExitedInactive++
	s.logger.Info(ctx, "target exited, referrer subscription inactive")
	if campaign != nil {
		s.bumpCampaign(ctx, r, campaign, store.CampaignCounterDelta{TargetsExited: 1})
	}
}

func (s *Sender) bumpCampaign(ctx context.Context, r *run, campaign *store.RelanceCampaign, delta store.CampaignCounterDelta) {
	updated, err := s.store.IncrementRelanceCampaignCounters(ctx, campaign.ID, delta, s.now())
	if err != nil {
		s.logger.Error(ctx, "failed to update campaign counters", err)
		r.report.Errors++
		return
	}
	*campaign = updated
}

// logStale treats a lost conditional update as a concurrent change, not an error
func (s *Sender) logStale(ctx context.Context, r *run, msg string, err error) {
	if errors.Is(err, store.ErrStaleTarget) {
		s.logger.Warn(ctx, "target changed concurrently: "+msg)
		return
	}
	s.logger.Error(ctx, msg, err)
	r.report.Errors++
}

func (s *Sender) config(ctx context.Context, r *run, referrerID uuid.UUID) (*store.RelanceConfig, bool) {
	if cfg, ok := r.configs[referrerID]; ok {
		if cfg == nil {
			r.report.skip(SkipNoConfig)
		}
		return cfg, cfg != nil
	}
	cfg, err := s.store.GetRelanceConfig(ctx, referrerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			r.configs[referrerID] = nil
			r.report.skip(SkipNoConfig)
			return nil, false
		}
		s.logger.Error(ctx, "failed to load relance config", err)
		r.report.Errors++
		return nil, false
	}
	r.configs[referrerID] = &cfg
	return &cfg, true
}

func (s *Sender) campaign(ctx context.Context, r *run, campaignID uuid.UUID) (*store.RelanceCampaign, bool) {
	if c, ok := r.campaigns[campaignID]; ok {
		return c, c != nil
	}
	c, err := s.store.GetRelanceCampaignByID(ctx, campaignID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger.Error(ctx, "failed to load relance campaign", err)
			r.report.Errors++
			return nil, false
		}
		r.campaigns[campaignID] = nil
		return nil, false
	}
	r.campaigns[campaignID] = &c
	return &c, true
}

func (s *Sender) subscribed(ctx context.Context, r *run, referrerID uuid.UUID) (bool, error) {
	if ok, cached := r.subscriptions[referrerID]; cached {
		return ok, nil
	}
	ok, err := s.users.HasActiveSubscription(ctx, referrerID)
	if err != nil {
		return false, err
	}
	r.subscriptions[referrerID] = ok
	return ok, nil
}

func (s *Sender) referrer(ctx context.Context, r *run, referrerID uuid.UUID) (userservice.UserSummary, error) {
	if u, ok := r.referrers[referrerID]; ok {
		return u, nil
	}
	u, err := s.users.GetUserSummary(ctx, referrerID)
	if err != nil {
		return userservice.UserSummary{}, err
	}
	r.referrers[referrerID] = u
	return u, nil
}
