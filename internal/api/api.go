package api

import (
	"net/http"

	authHandler "autojoin-server/internal/auth/handler"
	automationHandler "autojoin-server/internal/automation/handler"
	settingsHandler "autojoin-server/internal/settings/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router            *gin.RouterGroup
	authHandler       authHandler.Handler
	automationHandler automationHandler.Handler
	settingsHandler   settingsHandler.Handler
	metricsHandler    http.Handler
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	automationHandler automationHandler.Handler,
	settingsHandler settingsHandler.Handler,
	metricsHandler http.Handler,
) API {
	return API{
		router:            router,
		authHandler:       authHandler,
		automationHandler: automationHandler,
		settingsHandler:   settingsHandler,
		metricsHandler:    metricsHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(a.metricsHandler))
	a.router.GET("/ws", a.authHandler.HandleStreamAuth, a.automationHandler.HandleWebSocket)

	apiGroup := a.router.Group("/api", a.authHandler.HandleJWTMiddleware)
	{
		schedulerGroup := apiGroup.Group("/scheduler")
		schedulerGroup.GET("/status", a.automationHandler.HandleGetStatus)
		schedulerGroup.POST("/start", a.automationHandler.HandleStart)
		schedulerGroup.POST("/stop", a.automationHandler.HandleStop)
		schedulerGroup.POST("/pause", a.automationHandler.HandlePause)
		schedulerGroup.POST("/resume", a.automationHandler.HandleResume)
		schedulerGroup.POST("/run", a.automationHandler.HandleRunAutomation)
		schedulerGroup.POST("/safety/run", a.automationHandler.HandleRunSafety)
		schedulerGroup.POST("/stats/reset", a.automationHandler.HandleResetStats)
	}
	{
		apiGroup.GET("/stats", a.automationHandler.HandleGetStats)
		apiGroup.GET("/activity", a.automationHandler.HandleListActivity)
		apiGroup.DELETE("/activity", a.automationHandler.HandleClearActivity)
		apiGroup.POST("/giveaways/:code/enter", a.automationHandler.HandleEnterGiveaway)
	}
	{
		apiGroup.GET("/settings", a.settingsHandler.HandleGetSettings)
		apiGroup.PUT("/settings", a.settingsHandler.HandleUpdateSettings)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
