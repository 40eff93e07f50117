package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CampaignRef identifies the campaign a target belongs to: either the implicit
// default loop of a referrer or a filtered campaign row. The zero value is invalid.
type CampaignRef struct {
	referrerID uuid.UUID
	campaignID uuid.UUID
	filtered   bool
}

// DefaultCampaign returns the reference to a referrer's always-on loop.
func DefaultCampaign(referrerID uuid.UUID) CampaignRef {
	return CampaignRef{referrerID: referrerID}
}

// FilteredCampaign returns the reference to a filtered campaign.
func FilteredCampaign(campaignID uuid.UUID) CampaignRef {
	return CampaignRef{campaignID: campaignID, filtered: true}
}

// IsDefault reports whether the reference points at the default loop.
func (r CampaignRef) IsDefault() bool {
	return !r.filtered
}

// CampaignID returns the filtered campaign ID, if any.
func (r CampaignRef) CampaignID() (uuid.UUID, bool) {
	return r.campaignID, r.filtered
}

// ReferrerID returns the owner of a default loop reference.
func (r CampaignRef) ReferrerID() (uuid.UUID, bool) {
	return r.referrerID, !r.filtered
}

// Switch dispatches on the variant. Both branches are required.
func (r CampaignRef) Switch(onDefault func(referrerID uuid.UUID), onFiltered func(campaignID uuid.UUID)) {
	if r.filtered {
		onFiltered(r.campaignID)
		return
	}
	onDefault(r.referrerID)
}

func (r CampaignRef) String() string {
	if r.filtered {
		return "filtered:" + r.campaignID.String()
	}
	return "default:" + r.referrerID.String()
}

// MarshalJSON renders the ref as a nullable campaign_id, the shape API clients expect.
func (r CampaignRef) MarshalJSON() ([]byte, error) {
	if r.filtered {
		return json.Marshal(r.campaignID)
	}
	return []byte("null"), nil
}

// nullableCampaignID is the persisted form of the ref.
func (r CampaignRef) nullableCampaignID() *uuid.UUID {
	if !r.filtered {
		return nil
	}
	id := r.campaignID
	return &id
}

func campaignRefFromColumns(referrerID uuid.UUID, campaignID *uuid.UUID) CampaignRef {
	if campaignID == nil {
		return DefaultCampaign(referrerID)
	}
	return FilteredCampaign(*campaignID)
}

// Target is one referred user's run through the seven day loop.
type Target struct {
	ID                uuid.UUID   `json:"id"`
	ReferralUserID    uuid.UUID   `json:"referral_user_id"`
	ReferrerUserID    uuid.UUID   `json:"referrer_user_id"`
	Campaign          CampaignRef `json:"campaign_id"`
	WaveID            *uuid.UUID  `json:"wave_id,omitempty"`
	CurrentDay        int         `json:"current_day"`
	NextMessageDue    time.Time   `json:"next_message_due"`
	LastMessageSentAt *time.Time  `json:"last_message_sent_at,omitempty"`
	Status            string      `json:"status"`
	ExitReason        *string     `json:"exit_reason,omitempty"`
	ExitedLoopAt      *time.Time  `json:"exited_loop_at,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`

	// Loaded separately, not from the targets row
	Deliveries []Delivery `json:"deliveries,omitempty"`
}

// IsEngaged reports whether the target still occupies its (referral, campaign) slot.
func (t Target) IsEngaged() bool {
	return t.Status == TargetStatusActive || t.Status == TargetStatusPaused
}

// targetRow is the persisted shape of a Target.
type targetRow struct {
	ID                uuid.UUID  `db:"id"`
	ReferralUserID    uuid.UUID  `db:"referral_user_id"`
	ReferrerUserID    uuid.UUID  `db:"referrer_user_id"`
	CampaignID        *uuid.UUID `db:"campaign_id"`
	WaveID            *uuid.UUID `db:"wave_id"`
	CurrentDay        int        `db:"current_day"`
	NextMessageDue    time.Time  `db:"next_message_due"`
	LastMessageSentAt *time.Time `db:"last_message_sent_at"`
	Status            string     `db:"status"`
	ExitReason        *string    `db:"exit_reason"`
	ExitedLoopAt      *time.Time `db:"exited_loop_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (r targetRow) toTarget() Target {
	return Target{
		ID:                r.ID,
		ReferralUserID:    r.ReferralUserID,
		ReferrerUserID:    r.ReferrerUserID,
		Campaign:          campaignRefFromColumns(r.ReferrerUserID, r.CampaignID),
		WaveID:            r.WaveID,
		CurrentDay:        r.CurrentDay,
		NextMessageDue:    r.NextMessageDue,
		LastMessageSentAt: r.LastMessageSentAt,
		Status:            r.Status,
		ExitReason:        r.ExitReason,
		ExitedLoopAt:      r.ExitedLoopAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func targetsFromRows(rows []targetRow) []Target {
	targets := make([]Target, len(rows))
	for i, r := range rows {
		targets[i] = r.toTarget()
	}
	return targets
}

// Delivery is one send attempt for a target on a given day.
type Delivery struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	TargetID          uuid.UUID  `db:"target_id" json:"target_id"`
	Day               int        `db:"day" json:"day"`
	Channel           string     `db:"channel" json:"channel"`
	Status            string     `db:"status" json:"status"`
	SentAt            time.Time  `db:"sent_at" json:"sent_at"`
	ProviderMessageID *string    `db:"provider_message_id" json:"provider_message_id,omitempty"`
	ErrorMessage      *string    `db:"error_message" json:"error_message,omitempty"`
	Opened            bool       `db:"opened" json:"opened"`
	OpenedAt          *time.Time `db:"opened_at" json:"opened_at,omitempty"`
	OpenCount         int        `db:"open_count" json:"open_count"`
	Clicked           bool       `db:"clicked" json:"clicked"`
	ClickedAt         *time.Time `db:"clicked_at" json:"clicked_at,omitempty"`
	ClickCount        int        `db:"click_count" json:"click_count"`
	Bounced           bool       `db:"bounced" json:"bounced"`
	BouncedAt         *time.Time `db:"bounced_at" json:"bounced_at,omitempty"`
}

// TargetFilter selects referrals for a filtered campaign. Every set field is ANDed.
type TargetFilter struct {
	RegistrationFrom      *time.Time `json:"registration_from,omitempty"`
	RegistrationTo        *time.Time `json:"registration_to,omitempty"`
	Countries             []string   `json:"countries,omitempty"`
	Gender                *string    `json:"gender,omitempty"`
	Professions           []string   `json:"professions,omitempty"`
	MinAge                *int       `json:"min_age,omitempty"`
	MaxAge                *int       `json:"max_age,omitempty"`
	SubscriptionStatus    string     `json:"subscription_status,omitempty"`
	ExcludeCurrentTargets bool       `json:"exclude_current_targets"`
}

// Value implements driver.Valuer for the JSONB column.
func (f TargetFilter) Value() (driver.Value, error) {
	return json.Marshal(f)
}

// Scan implements sql.Scanner for the JSONB column.
func (f *TargetFilter) Scan(src interface{}) error {
	return scanJSON(src, f)
}

// CustomMessage overrides the global template for one day of a campaign.
type CustomMessage struct {
	Day       int               `json:"day"`
	Messages  map[string]string `json:"messages"`
	MediaURLs []string          `json:"media_urls,omitempty"`
}

// CustomMessages is the per-campaign override set.
type CustomMessages []CustomMessage

// ForDay returns the override for day, if any.
func (m CustomMessages) ForDay(day int) (CustomMessage, bool) {
	for _, msg := range m {
		if msg.Day == day && len(msg.Messages) > 0 {
			return msg, true
		}
	}
	return CustomMessage{}, false
}

// Value implements driver.Valuer for the JSONB column.
func (m CustomMessages) Value() (driver.Value, error) {
	if m == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for the JSONB column.
func (m *CustomMessages) Scan(src interface{}) error {
	return scanJSON(src, m)
}

// RelanceCampaign is a filtered, time-bounded outreach batch owned by a referrer.
type RelanceCampaign struct {
	ID                 uuid.UUID      `db:"id" json:"id"`
	UserID             uuid.UUID      `db:"user_id" json:"user_id"`
	Name               string         `db:"name" json:"name"`
	Description        *string        `db:"description" json:"description,omitempty"`
	Type               string         `db:"type" json:"type"`
	Status             string         `db:"status" json:"status"`
	TargetFilter       TargetFilter   `db:"target_filter" json:"target_filter"`
	CustomMessages     CustomMessages `db:"custom_messages" json:"custom_messages,omitempty"`
	ScheduledStartDate *time.Time     `db:"scheduled_start_date" json:"scheduled_start_date,omitempty"`
	RunAfterCampaignID *uuid.UUID     `db:"run_after_campaign_id" json:"run_after_campaign_id,omitempty"`
	EstimatedTargets   int            `db:"estimated_targets" json:"estimated_targets"`

	TargetsEnrolled   int       `db:"targets_enrolled" json:"targets_enrolled"`
	TargetsCompleted  int       `db:"targets_completed" json:"targets_completed"`
	TargetsExited     int       `db:"targets_exited" json:"targets_exited"`
	MessagesSent      int       `db:"messages_sent" json:"messages_sent"`
	MessagesDelivered int       `db:"messages_delivered" json:"messages_delivered"`
	MessagesFailed    int       `db:"messages_failed" json:"messages_failed"`
	MessagesSentToday int       `db:"messages_sent_today" json:"messages_sent_today"`
	LastResetDate     time.Time `db:"last_reset_date" json:"last_reset_date"`

	StartedAt   *time.Time `db:"started_at" json:"started_at,omitempty"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CancelledAt *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Ref returns the campaign identity used on targets.
func (c RelanceCampaign) Ref() CampaignRef {
	return FilteredCampaign(c.ID)
}

// SentToday returns the daily counter, treating a counter from a previous day as zero.
func (c RelanceCampaign) SentToday(now time.Time) int {
	if !sameDay(c.LastResetDate, now) {
		return 0
	}
	return c.MessagesSentToday
}

// RelanceConfig holds one referrer's relance settings and daily counter.
type RelanceConfig struct {
	ID                         uuid.UUID `db:"id" json:"id"`
	UserID                     uuid.UUID `db:"user_id" json:"user_id"`
	Channel                    string    `db:"channel" json:"channel"`
	ChannelReady               bool      `db:"channel_ready" json:"channel_ready"`
	Enabled                    bool      `db:"enabled" json:"enabled"`
	EnrollmentPaused           bool      `db:"enrollment_paused" json:"enrollment_paused"`
	SendingPaused              bool      `db:"sending_paused" json:"sending_paused"`
	DefaultCampaignPaused      bool      `db:"default_campaign_paused" json:"default_campaign_paused"`
	AllowSimultaneousCampaigns bool      `db:"allow_simultaneous_campaigns" json:"allow_simultaneous_campaigns"`
	MaxMessagesPerDay          int       `db:"max_messages_per_day" json:"max_messages_per_day"`
	MaxTargetsPerCampaign      int       `db:"max_targets_per_campaign" json:"max_targets_per_campaign"`
	MessagesSentToday          int       `db:"messages_sent_today" json:"messages_sent_today"`
	LastResetDate              time.Time `db:"last_reset_date" json:"last_reset_date"`
	CreatedAt                  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt                  time.Time `db:"updated_at" json:"updated_at"`
}

// SentToday returns the daily counter, treating a counter from a previous day as zero.
func (c RelanceConfig) SentToday(now time.Time) int {
	if !sameDay(c.LastResetDate, now) {
		return 0
	}
	return c.MessagesSentToday
}

// DailyBudgetLeft returns how many more messages may go out today.
func (c RelanceConfig) DailyBudgetLeft(now time.Time) int {
	left := c.MaxMessagesPerDay - c.SentToday(now)
	if left < 0 {
		return 0
	}
	return left
}

// Translations maps a language code to message text.
type Translations map[string]string

// Value implements driver.Valuer for the JSONB column.
func (t Translations) Value() (driver.Value, error) {
	if t == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for the JSONB column.
func (t *Translations) Scan(src interface{}) error {
	return scanJSON(src, t)
}

// MessageTemplate is the global message for one day of the loop.
type MessageTemplate struct {
	ID        uuid.UUID      `db:"id" json:"id"`
	Day       int            `db:"day" json:"day"`
	Name      string         `db:"name" json:"name"`
	Messages  Translations   `db:"messages" json:"messages"`
	MediaURLs pq.StringArray `db:"media_urls" json:"media_urls"`
	Active    bool           `db:"active" json:"active"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported JSON column type %T: %w", src, errUnsupportedScan)
	}
}

var errUnsupportedScan = errors.New("unsupported scan source")

// sameDay compares calendar days in UTC.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
