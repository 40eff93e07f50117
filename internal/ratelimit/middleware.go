package ratelimit

import (
	"fmt"
	"net/http"

	"relance-server/internal/auth"
	"relance-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Middleware limits requests per authenticated user. It must run after the
// JWT middleware; requests without a user pass through. Redis failures fail open.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		subject := c.GetString(auth.ContextUserID)
		if subject == "" {
			c.Next()
			return
		}

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "user_id", Value: subject},
			observability.Field{Key: "rate_limit_rpm", Value: l.limit},
		)

		result, err := l.Allow(ctx, subject)
		if err != nil {
			l.logger.Error(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", (result.RetryAfterMs+999)/1000))
			l.logger.Warn(ctx, "rate limit exceeded")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"code":        "RATE_LIMIT_EXCEEDED",
				"limit":       result.Limit,
				"retry_after": (result.RetryAfterMs + 999) / 1000,
				"reset_at":    result.ResetAt.Unix(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
