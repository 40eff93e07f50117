package handler

import (
	"net/http"
	"strconv"

	"relance-server/internal/apierrors"
	"relance-server/internal/observability"
	"relance-server/internal/relance/messagetemplates/processor"
	"relance-server/internal/relance/templates"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.MessageTemplateProcessor
	logger    *observability.Logger
}

func New(processor processor.MessageTemplateProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// UpsertTemplateRequest represents the HTTP request for saving a day's template
type UpsertTemplateRequest struct {
	Name      string            `json:"name" binding:"required,max=255"`
	Messages  map[string]string `json:"messages" binding:"required,min=1"`
	MediaURLs []string          `json:"media_urls,omitempty" binding:"omitempty,dive,url"`
	Active    *bool             `json:"active,omitempty"`
}

// SendTestRequest represents the HTTP request for sending a test message
type SendTestRequest struct {
	Channel      string `json:"channel" binding:"required,oneof=whatsapp email"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty" binding:"omitempty,email"`
	Language     string `json:"language,omitempty"`
	Name         string `json:"name,omitempty"`
	ReferrerName string `json:"referrer_name,omitempty"`
}

// HandleListTemplates lists the global day templates
func (h *Handler) HandleListTemplates(c *gin.Context) {
	ctx := c.Request.Context()

	tpls, err := h.processor.ListTemplates(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": tpls})
}

// HandleGetTemplate returns the template of one day
func (h *Handler) HandleGetTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	day, ok := getDay(c)
	if !ok {
		return
	}

	tpl, err := h.processor.GetTemplate(ctx, day)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tpl)
}

// HandleUpsertTemplate creates or replaces the template of one day
func (h *Handler) HandleUpsertTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	day, ok := getDay(c)
	if !ok {
		return
	}

	var req UpsertTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	tpl, err := h.processor.UpsertTemplate(ctx, day, processor.UpsertTemplateParams{
		Name:      req.Name,
		Messages:  req.Messages,
		MediaURLs: req.MediaURLs,
		Active:    active,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tpl)
}

// HandleDeleteTemplate removes the template of one day
func (h *Handler) HandleDeleteTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	day, ok := getDay(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteTemplate(ctx, day); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleSendTestMessage renders a day's template and sends it to the given recipient
func (h *Handler) HandleSendTestMessage(c *gin.Context) {
	ctx := c.Request.Context()

	day, ok := getDay(c)
	if !ok {
		return
	}

	var req SendTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	err := h.processor.SendTestMessage(ctx, day, processor.SendTestParams{
		Channel:  req.Channel,
		Phone:    req.Phone,
		Email:    req.Email,
		Language: req.Language,
		Vars:     templates.Vars{Name: req.Name, ReferrerName: req.ReferrerName},
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Test message sent"})
}

func getDay(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidDay, "Day must be a number between 1 and 7"))
		return 0, false
	}
	return day, true
}
