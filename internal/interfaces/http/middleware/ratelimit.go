package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"labtrace/internal/infrastructure/ratelimit"
	"labtrace/internal/shared/logger"
	"labtrace/internal/shared/utils"
)

// RateLimit enforces per-client-IP limits through the shared limiter. When the
// limiter backend is unreachable the request passes; registration must not
// stall because Redis is down.
func RateLimit(limiter ratelimit.RateLimiter, limits ratelimit.RateLimitConfig, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP(), limits)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"client_ip", c.ClientIP(),
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
