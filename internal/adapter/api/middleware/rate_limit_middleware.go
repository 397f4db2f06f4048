package middleware

import (
	"fmt"
	"math"

	"github.com/labstack/echo/v4"

	"luxestore/internal/infrastructure/ratelimit"
	"luxestore/pkg/errors"
	"luxestore/pkg/logger"
	"luxestore/pkg/response"
)

// RateLimit throttles action per caller: the uid when authenticated,
// otherwise the client IP.
func RateLimit(limiter *ratelimit.RateLimiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := UID(c)
			if key == "" {
				key = c.RealIP()
			}

			allowed, wait := limiter.Allow(key, action)
			if !allowed {
				retryAfter := int(math.Ceil(wait.Seconds()))
				logger.Warn("RATE LIMIT: %s blocked for %s (retry in %ds)", key, action, retryAfter)
				c.Response().Header().Set("Retry-After", fmt.Sprint(retryAfter))
				return response.Error(c, errors.TooManyRequests("Too many requests, please try again later"))
			}

			return next(c)
		}
	}
}
