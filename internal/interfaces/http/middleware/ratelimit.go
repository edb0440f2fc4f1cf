package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/infrastructure/ratelimit"
	"pulseboard/internal/shared/errors"
	"pulseboard/internal/shared/logger"
	"pulseboard/internal/shared/utils"
)

// RateLimiter guards the AI routes. Requests are keyed by user id, falling
// back to client IP for anonymous callers.
type RateLimiter struct {
	limiter ratelimit.Limiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.Limiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit returns a Gin middleware that enforces the limit. A nil limiter
// disables limiting.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if caller := utils.CallerFromContext(c); caller.Authenticated() {
			key = "user:" + caller.ID
		}

		ctx := c.Request.Context()
		allowed, err := rl.limiter.Allow(ctx, key)
		if err != nil {
			// Redis unavailable: let the request through
			rl.logger.Warnw("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		if remaining, err := rl.limiter.Remaining(ctx, key); err == nil {
			c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		}

		if !allowed {
			rl.logger.Infow("rate limit exceeded", "key", key, "route", c.FullPath())
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
