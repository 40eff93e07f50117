// Package relancetest provides in-memory fakes of the relance collaborators:
// the store, the user service and the transport, plus a controllable clock.
// The store mirrors the conditional-update semantics of the SQL store so
// scheduler tests exercise the same races.
package relancetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"relance-server/internal/store"

	"github.com/google/uuid"
)

// Store is an in-memory store.Storer subset
type Store struct {
	mu         sync.Mutex
	configs    map[uuid.UUID]*store.RelanceConfig
	campaigns  map[uuid.UUID]*store.RelanceCampaign
	targets    []*store.Target
	deliveries []store.Delivery
	templates  map[int]store.MessageTemplate
}

func NewStore() *Store {
	return &Store{
		configs:   make(map[uuid.UUID]*store.RelanceConfig),
		campaigns: make(map[uuid.UUID]*store.RelanceCampaign),
		templates: make(map[int]store.MessageTemplate),
	}
}

// PutConfig inserts or replaces a referrer config
func (s *Store) PutConfig(cfg store.RelanceConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.ID == uuid.Nil {
		cfg.ID = uuid.New()
	}
	s.configs[cfg.UserID] = &cfg
}

// PutCampaign inserts or replaces a campaign and returns its ID
func (s *Store) PutCampaign(c store.RelanceCampaign) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Type == "" {
		c.Type = store.CampaignTypeFiltered
	}
	s.campaigns[c.ID] = &c
	return c.ID
}

// PutTemplate sets the global template of a day
func (s *Store) PutTemplate(tpl store.MessageTemplate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[tpl.Day] = tpl
}

// PutTarget inserts a target as is
func (s *Store) PutTarget(t store.Target) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	s.targets = append(s.targets, &t)
	return t.ID
}

// Config returns a copy of a referrer's config
func (s *Store) Config(userID uuid.UUID) store.RelanceConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg, ok := s.configs[userID]; ok {
		return *cfg
	}
	return store.RelanceConfig{}
}

// Campaign returns a copy of a campaign
func (s *Store) Campaign(id uuid.UUID) store.RelanceCampaign {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.campaigns[id]; ok {
		return *c
	}
	return store.RelanceCampaign{}
}

// Targets returns copies of every target, deliveries attached
func (s *Store) Targets() []store.Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.Target, 0, len(s.targets))
	for _, t := range s.targets {
		out = append(out, s.withDeliveries(*t))
	}
	return out
}

func (s *Store) withDeliveries(t store.Target) store.Target {
	t.Deliveries = nil
	for _, d := range s.deliveries {
		if d.TargetID == t.ID {
			t.Deliveries = append(t.Deliveries, d)
		}
	}
	return t
}

func (s *Store) GetRelanceConfig(_ context.Context, userID uuid.UUID) (store.RelanceConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[userID]
	if !ok {
		return store.RelanceConfig{}, store.ErrNotFound
	}
	return *cfg, nil
}

func (s *Store) GetOrCreateRelanceConfig(_ context.Context, userID uuid.UUID) (store.RelanceConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[userID]
	if !ok {
		cfg = &store.RelanceConfig{
			ID:                    uuid.New(),
			UserID:                userID,
			Channel:               store.ChannelWhatsApp,
			MaxMessagesPerDay:     store.DefaultMaxMessagesPerDay,
			MaxTargetsPerCampaign: store.DefaultMaxTargetsPerCampaign,
		}
		s.configs[userID] = cfg
	}
	return *cfg, nil
}

func (s *Store) ListRelanceConfigsWithChannel(context.Context) ([]store.RelanceConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []store.RelanceConfig
	for _, cfg := range s.configs {
		if cfg.ChannelReady {
			out = append(out, *cfg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID.String() < out[j].UserID.String() })
	return out, nil
}

func (s *Store) SetDefaultCampaignPaused(_ context.Context, userID uuid.UUID, paused bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[userID]
	if !ok {
		return store.ErrNotFound
	}
	cfg.DefaultCampaignPaused = paused
	return nil
}

func (s *Store) IncrementConfigMessagesSent(_ context.Context, userID uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[userID]
	if !ok {
		return store.ErrNotFound
	}
	today := store.StartOfDay(now)
	if cfg.LastResetDate.Before(today) {
		cfg.MessagesSentToday = 0
	}
	cfg.MessagesSentToday++
	cfg.LastResetDate = today
	return nil
}

func (s *Store) ResetConfigDailyCounters(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	today := store.StartOfDay(now)
	var n int64
	for _, cfg := range s.configs {
		if cfg.LastResetDate.Before(today) {
			cfg.MessagesSentToday = 0
			cfg.LastResetDate = today
			n++
		}
	}
	return n, nil
}

func (s *Store) UpdateRelanceConfig(_ context.Context, userID uuid.UUID, params store.UpdateRelanceConfigParams) (store.RelanceConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[userID]
	if !ok {
		return store.RelanceConfig{}, store.ErrNotFound
	}
	if params.Channel != nil {
		cfg.Channel = *params.Channel
	}
	setBool(&cfg.ChannelReady, params.ChannelReady)
	setBool(&cfg.Enabled, params.Enabled)
	setBool(&cfg.EnrollmentPaused, params.EnrollmentPaused)
	setBool(&cfg.SendingPaused, params.SendingPaused)
	setBool(&cfg.AllowSimultaneousCampaigns, params.AllowSimultaneousCampaigns)
	if params.MaxMessagesPerDay != nil {
		cfg.MaxMessagesPerDay = *params.MaxMessagesPerDay
	}
	if params.MaxTargetsPerCampaign != nil {
		cfg.MaxTargetsPerCampaign = *params.MaxTargetsPerCampaign
	}
	return *cfg, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func (s *Store) GetRelanceCampaignByID(_ context.Context, campaignID uuid.UUID) (store.RelanceCampaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[campaignID]
	if !ok {
		return store.RelanceCampaign{}, store.ErrNotFound
	}
	return *c, nil
}

func (s *Store) CreateRelanceCampaign(_ context.Context, params store.CreateRelanceCampaignParams) (store.RelanceCampaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := time.Now().UTC()
	// keep creation order strict for newest-first listing
	for _, c := range s.campaigns {
		if !c.CreatedAt.Before(created) {
			created = c.CreatedAt.Add(time.Millisecond)
		}
	}
	c := store.RelanceCampaign{
		ID:                 uuid.New(),
		UserID:             params.UserID,
		Name:               params.Name,
		Description:        params.Description,
		Type:               store.CampaignTypeFiltered,
		Status:             params.Status,
		TargetFilter:       params.TargetFilter,
		CustomMessages:     params.CustomMessages,
		ScheduledStartDate: params.ScheduledStartDate,
		RunAfterCampaignID: params.RunAfterCampaignID,
		EstimatedTargets:   params.EstimatedTargets,
		CreatedAt:          created,
		UpdatedAt:          created,
	}
	s.campaigns[c.ID] = &c
	return c, nil
}

func (s *Store) ListRelanceCampaignsByUser(_ context.Context, userID uuid.UUID) ([]store.RelanceCampaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []store.RelanceCampaign
	for _, c := range s.campaigns {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateRelanceCampaign(_ context.Context, campaignID uuid.UUID, params store.UpdateRelanceCampaignParams) (store.RelanceCampaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[campaignID]
	if !ok {
		return store.RelanceCampaign{}, store.ErrNotFound
	}
	if params.Name != nil {
		c.Name = *params.Name
	}
	if params.Description != nil {
		c.Description = params.Description
	}
	if params.TargetFilter != nil {
		c.TargetFilter = *params.TargetFilter
	}
	if params.CustomMessages != nil {
		c.CustomMessages = *params.CustomMessages
	}
	if params.ScheduledStartDate != nil {
		c.ScheduledStartDate = params.ScheduledStartDate
	}
	if params.EstimatedTargets != nil {
		c.EstimatedTargets = *params.EstimatedTargets
	}
	return *c, nil
}

// DeleteRelanceCampaign drops the campaign; the SQL store soft-deletes, which
// hides the row from every read the same way.
func (s *Store) DeleteRelanceCampaign(_ context.Context, campaignID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[campaignID]; !ok {
		return store.ErrNotFound
	}
	delete(s.campaigns, campaignID)
	return nil
}

func (s *Store) ListRelanceCampaignsByStatus(_ context.Context, status string) ([]store.RelanceCampaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []store.RelanceCampaign
	for _, c := range s.campaigns {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) FindDueScheduledCampaign(_ context.Context, now time.Time) (store.RelanceCampaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []store.RelanceCampaign
	for _, c := range s.campaigns {
		if c.Status != store.CampaignStatusScheduled {
			continue
		}
		if c.ScheduledStartDate == nil && c.RunAfterCampaignID == nil {
			continue
		}
		if c.ScheduledStartDate != nil && c.ScheduledStartDate.After(now) {
			continue
		}
		if c.RunAfterCampaignID != nil {
			dep, ok := s.campaigns[*c.RunAfterCampaignID]
			if !ok || dep.Status != store.CampaignStatusCompleted {
				continue
			}
		}
		due = append(due, *c)
	}
	if len(due) == 0 {
		return store.RelanceCampaign{}, store.ErrNotFound
	}
	sort.Slice(due, func(i, j int) bool { return due[i].CreatedAt.Before(due[j].CreatedAt) })
	return due[0], nil
}

func (s *Store) TransitionRelanceCampaign(_ context.Context, campaignID uuid.UUID, from []string, to string, now time.Time) (store.RelanceCampaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[campaignID]
	if !ok || !contains(from, c.Status) {
		return store.RelanceCampaign{}, store.ErrStaleCampaign
	}
	c.Status = to
	switch to {
	case store.CampaignStatusActive:
		if c.StartedAt == nil {
			c.StartedAt = &now
		}
	case store.CampaignStatusCompleted:
		c.CompletedAt = &now
	case store.CampaignStatusCancelled:
		c.CancelledAt = &now
	}
	return *c, nil
}

func (s *Store) CountActiveFilteredCampaigns(_ context.Context, userID uuid.UUID, excluding uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.campaigns {
		if c.UserID == userID && c.ID != excluding && c.Status == store.CampaignStatusActive {
			n++
		}
	}
	return n, nil
}

func (s *Store) IncrementRelanceCampaignCounters(_ context.Context, campaignID uuid.UUID, delta store.CampaignCounterDelta, now time.Time) (store.RelanceCampaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[campaignID]
	if !ok {
		return store.RelanceCampaign{}, store.ErrNotFound
	}
	c.TargetsEnrolled += delta.TargetsEnrolled
	c.TargetsCompleted += delta.TargetsCompleted
	c.TargetsExited += delta.TargetsExited
	c.MessagesSent += delta.MessagesSent
	c.MessagesDelivered += delta.MessagesDelivered
	c.MessagesFailed += delta.MessagesFailed
	today := store.StartOfDay(now)
	if c.LastResetDate.Before(today) {
		c.MessagesSentToday = 0
	}
	c.MessagesSentToday += delta.MessagesSent
	c.LastResetDate = today
	return *c, nil
}

func (s *Store) ResetCampaignDailyCounters(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	today := store.StartOfDay(now)
	var n int64
	for _, c := range s.campaigns {
		if c.Status == store.CampaignStatusActive && c.LastResetDate.Before(today) {
			c.MessagesSentToday = 0
			c.LastResetDate = today
			n++
		}
	}
	return n, nil
}

func (s *Store) ListActiveCampaignsWithoutActiveTargets(_ context.Context, startedBefore time.Time) ([]store.RelanceCampaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []store.RelanceCampaign
	for _, c := range s.campaigns {
		if c.Status != store.CampaignStatusActive {
			continue
		}
		if c.TargetsEnrolled == 0 && (c.StartedAt == nil || !c.StartedAt.Before(startedBefore)) {
			continue
		}
		hasActive := false
		for _, t := range s.targets {
			if id, ok := t.Campaign.CampaignID(); ok && id == c.ID && t.Status == store.TargetStatusActive {
				hasActive = true
				break
			}
		}
		if !hasActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

// sameCampaign compares two campaign refs the way the unique index does
func sameCampaign(a, b store.CampaignRef) bool {
	aid, aFiltered := a.CampaignID()
	bid, bFiltered := b.CampaignID()
	if aFiltered != bFiltered {
		return false
	}
	return !aFiltered || aid == bid
}

func (s *Store) CreateTarget(_ context.Context, params store.CreateTargetParams) (store.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.targets {
		if t.ReferralUserID == params.ReferralUserID && t.IsEngaged() && sameCampaign(t.Campaign, params.Campaign) {
			return store.Target{}, store.ErrTargetExists
		}
	}
	wave := params.WaveID
	t := &store.Target{
		ID:             uuid.New(),
		ReferralUserID: params.ReferralUserID,
		ReferrerUserID: params.ReferrerUserID,
		Campaign:       params.Campaign,
		WaveID:         &wave,
		CurrentDay:     1,
		NextMessageDue: params.NextMessageDue,
		Status:         store.TargetStatusActive,
		CreatedAt:      params.NextMessageDue,
		UpdatedAt:      params.NextMessageDue,
	}
	s.targets = append(s.targets, t)
	return *t, nil
}

func (s *Store) GetTargetByID(_ context.Context, targetID uuid.UUID) (store.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.find(targetID)
	if t == nil {
		return store.Target{}, store.ErrNotFound
	}
	return *t, nil
}

func (s *Store) find(targetID uuid.UUID) *store.Target {
	for _, t := range s.targets {
		if t.ID == targetID {
			return t
		}
	}
	return nil
}

func (s *Store) ListEngagedReferralIDs(_ context.Context, referrerID uuid.UUID) ([]uuid.UUID, error) {
	return s.referralIDs(func(t *store.Target) bool {
		return t.ReferrerUserID == referrerID && t.IsEngaged()
	}), nil
}

func (s *Store) ListDefaultExcludedReferralIDs(_ context.Context, referrerID uuid.UUID) ([]uuid.UUID, error) {
	return s.referralIDs(func(t *store.Target) bool {
		if t.ReferrerUserID != referrerID || !t.Campaign.IsDefault() {
			return false
		}
		if t.IsEngaged() {
			return true
		}
		if t.ExitReason == nil {
			return false
		}
		switch *t.ExitReason {
		case store.ExitReasonCompleted7Days, store.ExitReasonPaid, store.ExitReasonManual:
			return true
		}
		return false
	}), nil
}

func (s *Store) ListCampaignReferralIDs(_ context.Context, campaignID uuid.UUID) ([]uuid.UUID, error) {
	return s.referralIDs(func(t *store.Target) bool {
		id, ok := t.Campaign.CampaignID()
		return ok && id == campaignID
	}), nil
}

func (s *Store) referralIDs(match func(*store.Target) bool) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[uuid.UUID]struct{})
	var out []uuid.UUID
	for _, t := range s.targets {
		if !match(t) {
			continue
		}
		if _, ok := seen[t.ReferralUserID]; ok {
			continue
		}
		seen[t.ReferralUserID] = struct{}{}
		out = append(out, t.ReferralUserID)
	}
	return out
}

func (s *Store) ListDueTargets(_ context.Context, now time.Time) ([]store.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []store.Target
	for _, t := range s.targets {
		if t.Status == store.TargetStatusActive && !t.NextMessageDue.After(now) {
			out = append(out, *t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].NextMessageDue.Before(out[j].NextMessageDue) })
	return out, nil
}

func (s *Store) CountPendingFirstSendsByReferrer(_ context.Context, referrerID uuid.UUID) (int, error) {
	return s.count(func(t *store.Target) bool {
		return t.ReferrerUserID == referrerID && t.Status == store.TargetStatusActive && t.LastMessageSentAt == nil
	}), nil
}

func (s *Store) CountPendingFirstSendsByCampaign(_ context.Context, campaignID uuid.UUID) (int, error) {
	return s.count(func(t *store.Target) bool {
		id, ok := t.Campaign.CampaignID()
		return ok && id == campaignID && t.Status == store.TargetStatusActive && t.LastMessageSentAt == nil
	}), nil
}

func (s *Store) count(match func(*store.Target) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.targets {
		if match(t) {
			n++
		}
	}
	return n
}

func (s *Store) AdvanceTarget(_ context.Context, targetID uuid.UUID, fromDay int, nextDue, sentAt time.Time) (store.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.find(targetID)
	if t == nil || t.Status != store.TargetStatusActive || t.CurrentDay != fromDay || t.CurrentDay >= store.LoopLength {
		return store.Target{}, store.ErrStaleTarget
	}
	t.CurrentDay++
	t.NextMessageDue = nextDue
	t.LastMessageSentAt = &sentAt
	t.UpdatedAt = sentAt
	return *t, nil
}

func (s *Store) FinishTargetLoop(_ context.Context, targetID uuid.UUID, sentAt time.Time) (store.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.find(targetID)
	if t == nil || t.Status != store.TargetStatusActive || t.CurrentDay != store.LoopLength {
		return store.Target{}, store.ErrStaleTarget
	}
	reason := store.ExitReasonCompleted7Days
	t.Status = store.TargetStatusCompleted
	t.ExitReason = &reason
	t.ExitedLoopAt = &sentAt
	t.LastMessageSentAt = &sentAt
	t.UpdatedAt = sentAt
	return *t, nil
}

func (s *Store) CompleteTarget(_ context.Context, targetID uuid.UUID, reason string, now time.Time) (store.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.find(targetID)
	if t == nil || !t.IsEngaged() {
		return store.Target{}, store.ErrStaleTarget
	}
	complete(t, reason, now)
	return *t, nil
}

func complete(t *store.Target, reason string, now time.Time) {
	t.Status = store.TargetStatusCompleted
	t.ExitReason = &reason
	t.ExitedLoopAt = &now
	t.UpdatedAt = now
}

func (s *Store) CompleteTargetsByCampaign(_ context.Context, campaignID uuid.UUID, reason string, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, t := range s.targets {
		if id, ok := t.Campaign.CampaignID(); ok && id == campaignID && t.IsEngaged() {
			complete(t, reason, now)
			n++
		}
	}
	return n, nil
}

func (s *Store) ExitEngagedTargetsForReferral(_ context.Context, referralUserID uuid.UUID, reason string, now time.Time) ([]store.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []store.Target
	for _, t := range s.targets {
		if t.ReferralUserID == referralUserID && t.IsEngaged() {
			complete(t, reason, now)
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *Store) SetTargetStatus(_ context.Context, targetID uuid.UUID, from, to string) (store.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.find(targetID)
	if t == nil {
		return store.Target{}, store.ErrNotFound
	}
	if t.Status != from {
		return store.Target{}, store.ErrStaleTarget
	}
	t.Status = to
	return *t, nil
}

func (s *Store) ListTargetsWithDeliveries(_ context.Context, ref store.CampaignRef) ([]store.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []store.Target
	for _, t := range s.targets {
		if !sameCampaign(t.Campaign, ref) {
			continue
		}
		if referrerID, ok := ref.ReferrerID(); ok && t.ReferrerUserID != referrerID {
			continue
		}
		out = append(out, s.withDeliveries(*t))
	}
	return out, nil
}

func (s *Store) RecordDelivery(_ context.Context, params store.RecordDeliveryParams) (store.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := store.Delivery{
		ID:                uuid.New(),
		TargetID:          params.TargetID,
		Day:               params.Day,
		Channel:           params.Channel,
		Status:            params.Status,
		SentAt:            params.SentAt,
		ProviderMessageID: params.ProviderMessageID,
		ErrorMessage:      params.ErrorMessage,
	}
	s.deliveries = append(s.deliveries, d)
	return d, nil
}

func (s *Store) ListDeliveriesByTarget(_ context.Context, targetID uuid.UUID) ([]store.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withDeliveries(store.Target{ID: targetID}).Deliveries, nil
}

func (s *Store) GetMessageTemplateByDay(_ context.Context, day int) (store.MessageTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tpl, ok := s.templates[day]
	if !ok {
		return store.MessageTemplate{}, store.ErrNotFound
	}
	return tpl, nil
}

func (s *Store) ListMessageTemplates(context.Context) ([]store.MessageTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.MessageTemplate, 0, len(s.templates))
	for _, tpl := range s.templates {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (s *Store) UpsertMessageTemplate(_ context.Context, params store.UpsertMessageTemplateParams) (store.MessageTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tpl, ok := s.templates[params.Day]
	if !ok {
		tpl.ID = uuid.New()
	}
	tpl.Day = params.Day
	tpl.Name = params.Name
	tpl.Messages = params.Messages
	tpl.MediaURLs = params.MediaURLs
	tpl.Active = params.Active
	s.templates[params.Day] = tpl
	return tpl, nil
}

func (s *Store) DeleteMessageTemplate(_ context.Context, day int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[day]; !ok {
		return store.ErrNotFound
	}
	delete(s.templates, day)
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

func (s *Store) PurgeExpiredTargets(_ context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.targets[:0]
	var n int64
	for _, t := range s.targets {
		if t.Status == store.TargetStatusCompleted && t.ExitedLoopAt != nil && t.ExitedLoopAt.Before(cutoff) {
			n++
			continue
		}
		kept = append(kept, t)
	}
	s.targets = kept
	return n, nil
}
