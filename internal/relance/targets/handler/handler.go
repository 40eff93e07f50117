package handler

import (
	"context"
	"net/http"

	"relance-server/internal/apierrors"
	"relance-server/internal/auth"
	"relance-server/internal/observability"
	"relance-server/internal/relance/targets/processor"
	"relance-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.TargetProcessor
	logger    *observability.Logger
}

func New(processor processor.TargetProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

func (h *Handler) HandlePauseTarget(c *gin.Context) {
	h.act(c, h.processor.PauseTarget)
}

func (h *Handler) HandleResumeTarget(c *gin.Context) {
	h.act(c, h.processor.ResumeTarget)
}

// HandleRemoveTarget exits a target from its loop
func (h *Handler) HandleRemoveTarget(c *gin.Context) {
	h.act(c, h.processor.RemoveTarget)
}

func (h *Handler) act(c *gin.Context, fn func(ctx context.Context, referrerID, targetID uuid.UUID) (store.Target, error)) {
	ctx := c.Request.Context()

	referrerID, ok := auth.ReferrerID(c)
	if !ok {
		return
	}
	targetID, err := uuid.Parse(c.Param("target_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid target ID format"))
		return
	}

	target, err := fn(ctx, referrerID, targetID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, target)
}
