package router

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/adapter/api/handler"
)

func SetupAdRouter(e *echo.Echo, adHandler *handler.AdHandler) {
	ads := e.Group("/ads")
	ads.GET("", adHandler.ListAds)
	ads.GET("/:id", adHandler.GetAd)
	ads.POST("", adHandler.CreateAd)
	ads.PUT("/:id", adHandler.UpdateAd)
	ads.DELETE("/:id", adHandler.DeleteAd)
}
