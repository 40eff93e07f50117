package handler

import (
	"context"
	"net/http"
	"time"

	"relance-server/internal/apierrors"
	"relance-server/internal/auth"
	"relance-server/internal/observability"
	"relance-server/internal/relance/campaigns/processor"
	"relance-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CustomMessageRequest overrides the global template for one day
type CustomMessageRequest struct {
	Day       int               `json:"day" binding:"required,min=1,max=7"`
	Messages  map[string]string `json:"messages" binding:"required,min=1"`
	MediaURLs []string          `json:"media_urls,omitempty" binding:"omitempty,dive,url"`
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name               string                 `json:"name" binding:"required,min=1,max=255"`
	Description        *string                `json:"description,omitempty"`
	TargetFilter       store.TargetFilter     `json:"target_filter"`
	CustomMessages     []CustomMessageRequest `json:"custom_messages,omitempty" binding:"omitempty,dive"`
	ScheduledStartDate *time.Time             `json:"scheduled_start_date,omitempty"`
	RunAfterCampaignID *uuid.UUID             `json:"run_after_campaign_id,omitempty"`
}

// UpdateCampaignRequest represents the HTTP request for updating a campaign
type UpdateCampaignRequest struct {
	Name               *string                `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description        *string                `json:"description,omitempty"`
	TargetFilter       *store.TargetFilter    `json:"target_filter,omitempty"`
	CustomMessages     []CustomMessageRequest `json:"custom_messages,omitempty" binding:"omitempty,dive"`
	ScheduledStartDate *time.Time             `json:"scheduled_start_date,omitempty"`
}

// PreviewRequest represents the HTTP request for previewing a filter
type PreviewRequest struct {
	TargetFilter store.TargetFilter `json:"target_filter"`
}

// HandleCreateCampaign creates a new filtered campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	referrerID, ok := auth.ReferrerID(c)
	if !ok {
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, referrerID, processor.CreateCampaignParams{
		Name:               req.Name,
		Description:        req.Description,
		TargetFilter:       req.TargetFilter,
		CustomMessages:     toCustomMessages(req.CustomMessages),
		ScheduledStartDate: req.ScheduledStartDate,
		RunAfterCampaignID: req.RunAfterCampaignID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleListCampaigns lists the referrer's filtered campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	referrerID, ok := auth.ReferrerID(c)
	if !ok {
		return
	}

	campaigns, err := h.processor.ListCampaigns(ctx, referrerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns})
}

// HandleGetCampaign retrieves a campaign by ID
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	referrerID, campaignID, ok := ids(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, referrerID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleUpdateCampaign applies a partial update
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	referrerID, campaignID, ok := ids(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.UpdateCampaignParams{
		Name:               req.Name,
		Description:        req.Description,
		TargetFilter:       req.TargetFilter,
		ScheduledStartDate: req.ScheduledStartDate,
	}
	if req.CustomMessages != nil {
		messages := toCustomMessages(req.CustomMessages)
		params.CustomMessages = &messages
	}

	campaign, err := h.processor.UpdateCampaign(ctx, referrerID, campaignID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleDeleteCampaign soft-deletes a campaign
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	referrerID, campaignID, ok := ids(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteCampaign(ctx, referrerID, campaignID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandlePreviewTargets counts the referrals a filter would enroll
func (h *Handler) HandlePreviewTargets(c *gin.Context) {
	ctx := c.Request.Context()

	referrerID, ok := auth.ReferrerID(c)
	if !ok {
		return
	}

	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	preview, err := h.processor.PreviewTargets(ctx, referrerID, req.TargetFilter)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

func (h *Handler) HandleStartCampaign(c *gin.Context) {
	h.transition(c, h.processor.StartCampaign)
}

func (h *Handler) HandlePauseCampaign(c *gin.Context) {
	h.transition(c, h.processor.PauseCampaign)
}

func (h *Handler) HandleResumeCampaign(c *gin.Context) {
	h.transition(c, h.processor.ResumeCampaign)
}

func (h *Handler) HandleCancelCampaign(c *gin.Context) {
	h.transition(c, h.processor.CancelCampaign)
}

// HandleGetCampaignStats returns the statistics of one filtered campaign
func (h *Handler) HandleGetCampaignStats(c *gin.Context) {
	ctx := c.Request.Context()

	referrerID, campaignID, ok := ids(c)
	if !ok {
		return
	}

	s, err := h.processor.GetCampaignStats(ctx, referrerID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

// HandleGetDefaultStats returns the statistics of the referrer's default loop
func (h *Handler) HandleGetDefaultStats(c *gin.Context) {
	ctx := c.Request.Context()

	referrerID, ok := auth.ReferrerID(c)
	if !ok {
		return
	}

	s, err := h.processor.GetDefaultStats(ctx, referrerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

type transitionFunc func(ctx context.Context, referrerID, campaignID uuid.UUID) (store.RelanceCampaign, error)

func (h *Handler) transition(c *gin.Context, fn transitionFunc) {
	ctx := c.Request.Context()

	referrerID, campaignID, ok := ids(c)
	if !ok {
		return
	}

	campaign, err := fn(ctx, referrerID, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func ids(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	referrerID, ok := auth.ReferrerID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID format"))
		return uuid.Nil, uuid.Nil, false
	}
	return referrerID, campaignID, true
}

func toCustomMessages(reqs []CustomMessageRequest) store.CustomMessages {
	messages := make(store.CustomMessages, 0, len(reqs))
	for _, r := range reqs {
		messages = append(messages, store.CustomMessage{
			Day:       r.Day,
			Messages:  r.Messages,
			MediaURLs: r.MediaURLs,
		})
	}
	return messages
}
