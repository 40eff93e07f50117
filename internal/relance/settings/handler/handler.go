package handler

import (
	"net/http"

	"relance-server/internal/apierrors"
	"relance-server/internal/auth"
	"relance-server/internal/observability"
	"relance-server/internal/relance/settings/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.SettingsProcessor
	logger    *observability.Logger
}

func New(processor processor.SettingsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// UpdateSettingsRequest represents the HTTP request for updating relance settings.
// Ranges are enforced again by the processor.
type UpdateSettingsRequest struct {
	Channel                    *string `json:"channel,omitempty" binding:"omitempty,oneof=whatsapp email"`
	ChannelReady               *bool   `json:"channel_ready,omitempty"`
	Enabled                    *bool   `json:"enabled,omitempty"`
	EnrollmentPaused           *bool   `json:"enrollment_paused,omitempty"`
	SendingPaused              *bool   `json:"sending_paused,omitempty"`
	AllowSimultaneousCampaigns *bool   `json:"allow_simultaneous_campaigns,omitempty"`
	MaxMessagesPerDay          *int    `json:"max_messages_per_day,omitempty" binding:"omitempty,min=1,max=100"`
	MaxTargetsPerCampaign      *int    `json:"max_targets_per_campaign,omitempty" binding:"omitempty,min=1,max=5000"`
}

// HandleGetSettings returns the caller's relance config
func (h *Handler) HandleGetSettings(c *gin.Context) {
	ctx := c.Request.Context()

	referrerID, ok := auth.ReferrerID(c)
	if !ok {
		return
	}

	cfg, err := h.processor.GetSettings(ctx, referrerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// HandleUpdateSettings applies a partial update to the caller's relance config
func (h *Handler) HandleUpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	referrerID, ok := auth.ReferrerID(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	cfg, err := h.processor.UpdateSettings(ctx, referrerID, processor.UpdateSettingsParams{
		Channel:                    req.Channel,
		ChannelReady:               req.ChannelReady,
		Enabled:                    req.Enabled,
		EnrollmentPaused:           req.EnrollmentPaused,
		SendingPaused:              req.SendingPaused,
		AllowSimultaneousCampaigns: req.AllowSimultaneousCampaigns,
		MaxMessagesPerDay:          req.MaxMessagesPerDay,
		MaxTargetsPerCampaign:      req.MaxTargetsPerCampaign,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}
