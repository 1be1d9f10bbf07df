package handler

import (
	"context"
	"net/http"

	"autojoin-server/internal/apierrors"
	"autojoin-server/internal/observability"
	"autojoin-server/internal/store"

	"github.com/gin-gonic/gin"
)

// SettingsService reads and updates the settings row
type SettingsService interface {
	GetSettings(ctx context.Context) (store.Settings, error)
	UpdateSettings(ctx context.Context, params store.UpdateSettingsParams) (store.Settings, error)
}

type Handler struct {
	settings SettingsService
	logger   *observability.Logger
}

func New(settings SettingsService, logger *observability.Logger) Handler {
	return Handler{settings: settings, logger: logger}
}

// SettingsResponse hides session material and only reports whether it is set
type SettingsResponse struct {
	store.Settings
	HasSession   bool `json:"has_session"`
	HasXSRFToken bool `json:"has_xsrf_token"`
}

func toResponse(s store.Settings) SettingsResponse {
	return SettingsResponse{
		Settings:     s,
		HasSession:   s.HasSession(),
		HasXSRFToken: s.XSRFToken != nil && *s.XSRFToken != "",
	}
}

// HandleGetSettings handles GET /api/settings
func (h *Handler) HandleGetSettings(c *gin.Context) {
	settings, err := h.settings.GetSettings(c.Request.Context())
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(settings))
}

// HandleUpdateSettings handles PUT /api/settings
func (h *Handler) HandleUpdateSettings(c *gin.Context) {
	var req store.UpdateSettingsParams
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	settings, err := h.settings.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(settings))
}
