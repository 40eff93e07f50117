package api

import (
	"net/http"

	"relance-server/internal/auth"
	"relance-server/internal/ratelimit"
	campaignsHandler "relance-server/internal/relance/campaigns/handler"
	messageTemplatesHandler "relance-server/internal/relance/messagetemplates/handler"
	settingsHandler "relance-server/internal/relance/settings/handler"
	targetsHandler "relance-server/internal/relance/targets/handler"
	webhooksHandler "relance-server/internal/relance/webhooks/handler"

	"github.com/gin-gonic/gin"
)

// TwilioStatusPath is the public path Twilio posts delivery status callbacks to
const TwilioStatusPath = "/api/webhooks/relance/twilio"

type API struct {
	router                  *gin.RouterGroup
	validator               *auth.Validator
	apiLimiter              *ratelimit.Limiter
	testSendLimiter         *ratelimit.Limiter
	settingsHandler         settingsHandler.Handler
	messageTemplatesHandler messageTemplatesHandler.Handler
	campaignsHandler        campaignsHandler.Handler
	targetsHandler          targetsHandler.Handler
	webhooksHandler         webhooksHandler.Handler
}

func New(
	router *gin.RouterGroup,
	validator *auth.Validator,
	apiLimiter *ratelimit.Limiter,
	testSendLimiter *ratelimit.Limiter,
	settingsHandler settingsHandler.Handler,
	messageTemplatesHandler messageTemplatesHandler.Handler,
	campaignsHandler campaignsHandler.Handler,
	targetsHandler targetsHandler.Handler,
	webhooksHandler webhooksHandler.Handler,
) API {
	return API{
		router:                  router,
		validator:               validator,
		apiLimiter:              apiLimiter,
		testSendLimiter:         testSendLimiter,
		settingsHandler:         settingsHandler,
		messageTemplatesHandler: messageTemplatesHandler,
		campaignsHandler:        campaignsHandler,
		targetsHandler:          targetsHandler,
		webhooksHandler:         webhooksHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	relanceGroup := apiGroup.Group("/relance", a.validator.HandleJWTMiddleware, a.apiLimiter.Middleware())
	{
		relanceGroup.GET("/settings", a.settingsHandler.HandleGetSettings)
		relanceGroup.PUT("/settings", a.settingsHandler.HandleUpdateSettings)

		templatesGroup := relanceGroup.Group("/templates", auth.RequireAdmin)
		{
			templatesGroup.GET("", a.messageTemplatesHandler.HandleListTemplates)
			templatesGroup.GET("/:day", a.messageTemplatesHandler.HandleGetTemplate)
			templatesGroup.POST("/:day", a.messageTemplatesHandler.HandleUpsertTemplate)
			templatesGroup.PUT("/:day", a.messageTemplatesHandler.HandleUpsertTemplate)
			templatesGroup.DELETE("/:day", a.messageTemplatesHandler.HandleDeleteTemplate)
			templatesGroup.POST("/:day/test", a.testSendLimiter.Middleware(), a.messageTemplatesHandler.HandleSendTestMessage)
		}

		campaignsGroup := relanceGroup.Group("/campaigns")
		{
			campaignsGroup.POST("/preview", a.campaignsHandler.HandlePreviewTargets)
			campaignsGroup.POST("", a.campaignsHandler.HandleCreateCampaign)
			campaignsGroup.GET("", a.campaignsHandler.HandleListCampaigns)
			campaignsGroup.GET("/:campaign_id", a.campaignsHandler.HandleGetCampaign)
			campaignsGroup.PUT("/:campaign_id", a.campaignsHandler.HandleUpdateCampaign)
			campaignsGroup.DELETE("/:campaign_id", a.campaignsHandler.HandleDeleteCampaign)
			campaignsGroup.POST("/:campaign_id/start", a.campaignsHandler.HandleStartCampaign)
			campaignsGroup.POST("/:campaign_id/pause", a.campaignsHandler.HandlePauseCampaign)
			campaignsGroup.POST("/:campaign_id/resume", a.campaignsHandler.HandleResumeCampaign)
			campaignsGroup.POST("/:campaign_id/cancel", a.campaignsHandler.HandleCancelCampaign)
			campaignsGroup.GET("/:campaign_id/stats", a.campaignsHandler.HandleGetCampaignStats)
		}
		relanceGroup.GET("/stats", a.campaignsHandler.HandleGetDefaultStats)

		targetsGroup := relanceGroup.Group("/targets")
		{
			targetsGroup.POST("/:target_id/pause", a.targetsHandler.HandlePauseTarget)
			targetsGroup.POST("/:target_id/resume", a.targetsHandler.HandleResumeTarget)
			targetsGroup.DELETE("/:target_id", a.targetsHandler.HandleRemoveTarget)
		}
	}

	// Provider callbacks are public
	webhooksGroup := apiGroup.Group("/webhooks/relance")
	{
		webhooksGroup.POST("/twilio", a.webhooksHandler.HandleTwilioStatus)
		webhooksGroup.POST("/resend", a.webhooksHandler.HandleResendEvent)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
