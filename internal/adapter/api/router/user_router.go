package router

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler, m ...echo.MiddlewareFunc) {
	e.POST("/users", userHandler.SaveUser, m...)
}
