package router

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/adapter/api/handler"
)

func SetupSitemapRouter(e *echo.Echo, sitemapHandler *handler.SitemapHandler) {
	e.GET("/sitemap.xml", sitemapHandler.Sitemap)
}
