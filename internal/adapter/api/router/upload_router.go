package router

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/adapter/api/handler"
)

func SetupUploadRouter(e *echo.Echo, uploadHandler *handler.UploadHandler, m ...echo.MiddlewareFunc) {
	e.POST("/upload", uploadHandler.UploadImages, m...)
}
