package bootstrap

import (
	"context"
	"fmt"

	"relance-server/internal/api"
	"relance-server/internal/auth"
	"relance-server/internal/clients/mail"
	redisClient "relance-server/internal/clients/redis"
	"relance-server/internal/clients/userservice"
	"relance-server/internal/clients/whatsapp"
	"relance-server/internal/config"
	"relance-server/internal/observability"
	"relance-server/internal/ratelimit"
	campaignsHandler "relance-server/internal/relance/campaigns/handler"
	campaignsProcessor "relance-server/internal/relance/campaigns/processor"
	"relance-server/internal/relance/lifecycle"
	messageTemplatesHandler "relance-server/internal/relance/messagetemplates/handler"
	messageTemplatesProcessor "relance-server/internal/relance/messagetemplates/processor"
	"relance-server/internal/relance/selection"
	settingsHandler "relance-server/internal/relance/settings/handler"
	settingsProcessor "relance-server/internal/relance/settings/processor"
	targetsHandler "relance-server/internal/relance/targets/handler"
	targetsProcessor "relance-server/internal/relance/targets/processor"
	"relance-server/internal/relance/templates"
	"relance-server/internal/relance/transport"
	webhooksHandler "relance-server/internal/relance/webhooks/handler"
	webhooksProcessor "relance-server/internal/relance/webhooks/processor"
	"relance-server/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Clients
	Users     *userservice.Client
	Transport *transport.Dispatcher
	Redis     *redisClient.Client
	Validator *auth.Validator

	// Rate limiters for the authenticated surface
	APILimiter      *ratelimit.Limiter
	TestSendLimiter *ratelimit.Limiter

	// Domain services shared by the API and the workers
	Selector     *selection.Engine
	Lifecycle    *lifecycle.Manager
	Resolver     *templates.Resolver
	Personalizer *templates.Personalizer
	Targets      targetsProcessor.TargetProcessor

	// Handlers
	SettingsHandler         settingsHandler.Handler
	MessageTemplatesHandler messageTemplatesHandler.Handler
	CampaignsHandler        campaignsHandler.Handler
	TargetsHandler          targetsHandler.Handler
	WebhooksHandler         webhooksHandler.Handler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	deps.Users = userservice.NewClient(cfg.Services.UserServiceURL, cfg.Services.UserServiceToken, logger)

	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.DefaultEmailSender, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}

	statusCallback := ""
	if cfg.Services.PublicBaseURL != "" {
		statusCallback = cfg.Services.PublicBaseURL + api.TwilioStatusPath
	}
	whatsappClient := whatsapp.NewClient(
		cfg.Services.TwilioAccountSID,
		cfg.Services.TwilioAuthToken,
		cfg.Services.TwilioWhatsAppFrom,
		statusCallback,
		logger,
	)
	deps.Transport = transport.NewDispatcher(whatsappClient, mailClient, logger)

	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	deps.Validator = auth.NewValidator(cfg.Auth.JWTSecret, logger)
	deps.APILimiter = ratelimit.NewLimiter(deps.Redis, "api", cfg.Server.RateLimitRPM, logger)
	deps.TestSendLimiter = ratelimit.NewLimiter(deps.Redis, "test_send", cfg.Server.TestSendRPM, logger)

	// Initialize shared relance services
	deps.Selector = selection.New(deps.Users, &deps.Store, logger)
	deps.Lifecycle = lifecycle.New(&deps.Store, logger)
	deps.Resolver = templates.NewResolver(&deps.Store)
	deps.Personalizer = templates.NewPersonalizer()
	deps.Targets = targetsProcessor.New(&deps.Store, logger)

	// Initialize settings processor and handler
	settingsProc := settingsProcessor.New(&deps.Store, logger)
	deps.SettingsHandler = settingsHandler.New(settingsProc, logger)

	// Initialize message template processor and handler
	messageTemplatesProc := messageTemplatesProcessor.New(&deps.Store, deps.Personalizer, deps.Transport, logger)
	deps.MessageTemplatesHandler = messageTemplatesHandler.New(messageTemplatesProc, logger)

	// Initialize campaign processor and handler
	campaignsProc := campaignsProcessor.New(&deps.Store, deps.Users, deps.Selector, deps.Lifecycle, deps.Personalizer, logger)
	deps.CampaignsHandler = campaignsHandler.New(campaignsProc, logger)

	// Initialize target processor and handler
	deps.TargetsHandler = targetsHandler.New(deps.Targets, logger)

	// Initialize provider webhook processor and handler. Twilio signs its
	// callbacks against the public URL, so the check needs one.
	webhooksProc := webhooksProcessor.New(&deps.Store, logger)
	var twilioValidator webhooksHandler.SignatureValidator
	if cfg.Services.PublicBaseURL != "" {
		twilioValidator = whatsapp.NewSignatureValidator(cfg.Services.TwilioAuthToken)
	} else {
		logger.Warn(ctx, "PUBLIC_BASE_URL not set, twilio status callbacks are neither requested nor signature checked")
	}
	deps.WebhooksHandler = webhooksHandler.New(webhooksProc, twilioValidator, cfg.Services.PublicBaseURL, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close redis client", err)
	}
	if err := d.Store.GetDB().Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close database", err)
	}
}
