package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"heatwave-api/pkg/log"
	"heatwave-api/pkg/redis"
)

// RateLimit enforces the per-client request budget on the routes it wraps,
// keyed by client IP. Redis being down fails open: a throttling outage must
// not take predictions with it.
func RateLimit(limiter *redis.RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warnf("Rate limiter unavailable, allowing request: %v", err)
				return next(c)
			}

			if !allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			}

			return next(c)
		}
	}
}
