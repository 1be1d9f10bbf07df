package handler

import (
	"context"
	"strings"

	"autojoin-server/internal/apierrors"
	"autojoin-server/internal/auth/processor"
	"autojoin-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// OperatorKey is the gin context key holding the token subject
const OperatorKey = "Operator"

// TokenValidator validates bearer tokens
type TokenValidator interface {
	Enabled() bool
	ValidateJWTToken(ctx context.Context, token string) (processor.BaseClaims, error)
}

type Handler struct {
	auth   TokenValidator
	logger *observability.Logger
}

func New(auth TokenValidator, logger *observability.Logger) Handler {
	return Handler{auth: auth, logger: logger}
}

// HandleJWTMiddleware rejects requests without a valid bearer token. It passes everything
// through when no secret is configured.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	if !h.auth.Enabled() {
		c.Next()
		return
	}
	h.authorize(c, bearerToken(c))
}

// HandleStreamAuth guards the event stream. Browsers cannot set headers on a websocket
// upgrade, so the token may also come from the token query parameter.
func (h *Handler) HandleStreamAuth(c *gin.Context) {
	if !h.auth.Enabled() {
		c.Next()
		return
	}
	token := bearerToken(c)
	if token == "" {
		token = c.Query("token")
	}
	h.authorize(c, token)
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func (h *Handler) authorize(c *gin.Context, token string) {
	if token == "" {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	claims, err := h.auth.ValidateJWTToken(c.Request.Context(), token)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	sub, _ := claims.GetSubject()
	c.Set(OperatorKey, sub)
	c.Request = c.Request.WithContext(observability.WithFields(c.Request.Context(),
		observability.Field{Key: "operator", Value: sub},
	))
	c.Next()
}
