package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"relance-server/internal/observability"
	"relance-server/internal/store"

	"github.com/google/uuid"
)

// Admin-settable ranges
const (
	MinMessagesPerDay     = 1
	MaxMessagesPerDay     = 100
	MinTargetsPerCampaign = 1
	MaxTargetsPerCampaign = 5000
)

// SettingsStore defines the database operations required by SettingsProcessor
type SettingsStore interface {
	GetOrCreateRelanceConfig(ctx context.Context, userID uuid.UUID) (store.RelanceConfig, error)
	UpdateRelanceConfig(ctx context.Context, userID uuid.UUID, params store.UpdateRelanceConfigParams) (store.RelanceConfig, error)
	SetDefaultCampaignPaused(ctx context.Context, userID uuid.UUID, paused bool) error
	CountActiveFilteredCampaigns(ctx context.Context, userID uuid.UUID, excluding uuid.UUID) (int, error)
}

var ErrInvalidSettings = errors.New("invalid relance settings")

type SettingsProcessor struct {
	store  SettingsStore
	logger *observability.Logger
}

func New(store SettingsStore, logger *observability.Logger) SettingsProcessor {
	return SettingsProcessor{
		store:  store,
		logger: logger,
	}
}

// UpdateSettingsParams holds the fields a referrer may change. Nil leaves a field as is.
type UpdateSettingsParams struct {
	Channel                    *string
	ChannelReady               *bool
	Enabled                    *bool
	EnrollmentPaused           *bool
	SendingPaused              *bool
	AllowSimultaneousCampaigns *bool
	MaxMessagesPerDay          *int
	MaxTargetsPerCampaign      *int
}

// GetSettings returns the referrer's config, creating it with defaults on first read
func (p *SettingsProcessor) GetSettings(ctx context.Context, referrerID uuid.UUID) (store.RelanceConfig, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "referrer_id", Value: referrerID.String()})
	cfg, err := p.store.GetOrCreateRelanceConfig(ctx, referrerID)
	if err != nil {
		p.logger.Error(ctx, "failed to get relance settings", err)
		return store.RelanceConfig{}, err
	}
	return cfg, nil
}

// UpdateSettings validates and applies params. Toggling simultaneous campaigns
// re-evaluates the default campaign pause against the active filtered campaigns.
func (p *SettingsProcessor) UpdateSettings(ctx context.Context, referrerID uuid.UUID, params UpdateSettingsParams) (store.RelanceConfig, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "referrer_id", Value: referrerID.String()})

	if err := validate(params); err != nil {
		return store.RelanceConfig{}, err
	}

	before, err := p.store.GetOrCreateRelanceConfig(ctx, referrerID)
	if err != nil {
		p.logger.Error(ctx, "failed to get relance settings", err)
		return store.RelanceConfig{}, err
	}

	cfg, err := p.store.UpdateRelanceConfig(ctx, referrerID, store.UpdateRelanceConfigParams{
		Channel:                    params.Channel,
		ChannelReady:               params.ChannelReady,
		Enabled:                    params.Enabled,
		EnrollmentPaused:           params.EnrollmentPaused,
		SendingPaused:              params.SendingPaused,
		AllowSimultaneousCampaigns: params.AllowSimultaneousCampaigns,
		MaxMessagesPerDay:          params.MaxMessagesPerDay,
		MaxTargetsPerCampaign:      params.MaxTargetsPerCampaign,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to update relance settings", err)
		return store.RelanceConfig{}, err
	}

	if cfg.AllowSimultaneousCampaigns != before.AllowSimultaneousCampaigns {
		paused, err := p.defaultPauseFor(ctx, cfg)
		if err != nil {
			return store.RelanceConfig{}, err
		}
		if paused != cfg.DefaultCampaignPaused {
			if err := p.store.SetDefaultCampaignPaused(ctx, referrerID, paused); err != nil {
				p.logger.Error(ctx, "failed to update default campaign pause", err)
				return store.RelanceConfig{}, err
			}
			cfg.DefaultCampaignPaused = paused
		}
	}

	p.logger.Info(ctx, "relance settings updated")
	return cfg, nil
}

func (p *SettingsProcessor) defaultPauseFor(ctx context.Context, cfg store.RelanceConfig) (bool, error) {
	if cfg.AllowSimultaneousCampaigns {
		return false, nil
	}
	active, err := p.store.CountActiveFilteredCampaigns(ctx, cfg.UserID, uuid.Nil)
	if err != nil {
		p.logger.Error(ctx, "failed to count active campaigns", err)
		return false, err
	}
	return active > 0, nil
}

func validate(params UpdateSettingsParams) error {
	if v := params.MaxMessagesPerDay; v != nil && (*v < MinMessagesPerDay || *v > MaxMessagesPerDay) {
		return fmt.Errorf("%w: max_messages_per_day must be between %d and %d", ErrInvalidSettings, MinMessagesPerDay, MaxMessagesPerDay)
	}
	if v := params.MaxTargetsPerCampaign; v != nil && (*v < MinTargetsPerCampaign || *v > MaxTargetsPerCampaign) {
		return fmt.Errorf("%w: max_targets_per_campaign must be between %d and %d", ErrInvalidSettings, MinTargetsPerCampaign, MaxTargetsPerCampaign)
	}
	if v := params.Channel; v != nil && *v != store.ChannelWhatsApp && *v != store.ChannelEmail {
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidSettings, *v)
	}
	return nil
}
