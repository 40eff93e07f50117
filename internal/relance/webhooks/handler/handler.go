package handler

import (
	"net/http"
	"time"

	"relance-server/internal/apierrors"
	"relance-server/internal/observability"
	"relance-server/internal/relance/webhooks/processor"

	"github.com/gin-gonic/gin"
)

// SignatureValidator checks a provider's request signature
type SignatureValidator interface {
	Valid(url string, params map[string]string, signature string) bool
}

type Handler struct {
	processor processor.WebhookProcessor
	twilio    SignatureValidator
	publicURL string
	logger    *observability.Logger
}

// New creates the delivery callback handler. When twilio is nil status
// callbacks are accepted unsigned. publicURL is the externally visible base
// URL Twilio signs against.
func New(processor processor.WebhookProcessor, twilio SignatureValidator, publicURL string, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		twilio:    twilio,
		publicURL: publicURL,
		logger:    logger,
	}
}

// TwilioStatusRequest is the form body of a Twilio message status callback
type TwilioStatusRequest struct {
	MessageSid    string `form:"MessageSid" binding:"required"`
	MessageStatus string `form:"MessageStatus" binding:"required"`
}

// ResendEventRequest is the JSON body of a Resend webhook
type ResendEventRequest struct {
	Type      string `json:"type" binding:"required"`
	CreatedAt string `json:"created_at"`
	Data      struct {
		EmailID string `json:"email_id"`
	} `json:"data"`
}

// HandleTwilioStatus records a WhatsApp delivery status
func (h *Handler) HandleTwilioStatus(c *gin.Context) {
	ctx := c.Request.Context()

	if err := c.Request.ParseForm(); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	if h.twilio != nil {
		params := make(map[string]string, len(c.Request.PostForm))
		for k := range c.Request.PostForm {
			params[k] = c.Request.PostForm.Get(k)
		}
		if !h.twilio.Valid(h.publicURL+c.Request.URL.RequestURI(), params, c.GetHeader("X-Twilio-Signature")) {
			h.logger.Warn(ctx, "rejected twilio callback with invalid signature")
			apierrors.RespondWithError(c, apierrors.Forbidden(apierrors.CodeInvalidSignature, "Invalid signature"))
			return
		}
	}

	var req TwilioStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	if err := h.processor.HandleTwilioStatus(ctx, req.MessageSid, req.MessageStatus); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleResendEvent records an email delivery or engagement event
func (h *Handler) HandleResendEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req ResendEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	var at time.Time
	if req.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, req.CreatedAt); err == nil {
			at = parsed
		}
	}

	if err := h.processor.HandleResendEvent(ctx, req.Type, req.Data.EmailID, at); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
