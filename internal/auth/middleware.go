package auth

import (
	"strings"

	"relance-server/internal/apierrors"
	"relance-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the middleware
const (
	ContextUserID = "User-ID"
	ContextRole   = "User-Role"
)

// HandleJWTMiddleware rejects requests without a valid bearer token and stores
// the subject and role in the gin context
func (v *Validator) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	header := c.GetHeader("Authorization")

	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		return
	}

	claims, err := v.ValidateJWTToken(ctx, strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized(err.Error()))
		return
	}

	c.Set(ContextUserID, claims.Subject)
	c.Set(ContextRole, claims.Role)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: claims.Subject},
	))
	c.Next()
}

// RequireAdmin must run after HandleJWTMiddleware
func RequireAdmin(c *gin.Context) {
	if c.GetString(ContextRole) != RoleAdmin {
		apierrors.RespondWithError(c, apierrors.Forbidden(apierrors.CodeForbidden, "Admin role required"))
		return
	}
	c.Next()
}

// ReferrerID reads the authenticated user from the context. On failure the
// response is already written.
func ReferrerID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(ContextUserID)
	if !exists {
		apierrors.RespondWithError(c, apierrors.Unauthorized("User ID not found in context"))
		return uuid.Nil, false
	}
	s, _ := raw.(string)
	referrerID, err := uuid.Parse(s)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid user ID format"))
		return uuid.Nil, false
	}
	return referrerID, true
}
