package middleware

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/infrastructure/ratelimit"
	"gamecatalog/pkg/errors"
	"gamecatalog/pkg/logger"
	"gamecatalog/pkg/response"
)

// RateLimit rejects requests once the client IP has used up its bucket.
func RateLimit(store *ratelimit.LimiterStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if !store.Allow(ip) {
				logger.Warn("Rate limit exceeded for %s on %s %s", ip, c.Request().Method, c.Path())
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded, try again later"))
			}
			return next(c)
		}
	}
}
