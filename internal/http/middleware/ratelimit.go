package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"solosuccess.app/api/common/metrics"
	"solosuccess.app/api/internal/ratelimit"
)

// RateLimit admits requests per client IP under rule. Limiter errors let the
// request through.
func RateLimit(limiter ratelimit.Limiter, rule ratelimit.Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		res, err := limiter.Allow(ctx, rule, c.ClientIP())
		if err != nil {
			slog.WarnContext(ctx, "rate limiter unavailable", "error", err, "scope", rule.Scope)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			metrics.RateLimited.WithLabelValues(rule.Scope).Inc()
			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(retryAfter, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
