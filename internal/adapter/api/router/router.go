package router

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/adapter/api/handler"
	"gamecatalog/internal/adapter/api/middleware"
	"gamecatalog/internal/infrastructure/ratelimit"
)

// Setup registers every route. Write endpoints open to anonymous clients
// share the limiter when one is given.
func Setup(e *echo.Echo, h *handler.Handlers, limiter *ratelimit.LimiterStore) {
	var limited []echo.MiddlewareFunc
	if limiter != nil {
		limited = append(limited, middleware.RateLimit(limiter))
	}

	SetupGameRouter(e, h.Game)
	SetupAdRouter(e, h.Ad)
	SetupUserRouter(e, h.User, limited...)
	SetupSubscriberRouter(e, h.Subscriber, limited...)
	SetupUploadRouter(e, h.Upload, limited...)
	SetupSitemapRouter(e, h.Sitemap)
	SetupHealthRouter(e, h.Health)
}
