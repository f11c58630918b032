package router

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/adapter/api/handler"
)

func SetupSubscriberRouter(e *echo.Echo, subscriberHandler *handler.SubscriberHandler, m ...echo.MiddlewareFunc) {
	e.POST("/subscribe", subscriberHandler.Subscribe, m...)
}
