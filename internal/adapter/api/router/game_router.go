package router

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/adapter/api/handler"
)

func SetupGameRouter(e *echo.Echo, gameHandler *handler.GameHandler) {
	e.GET("/games", gameHandler.ListGames)
	e.GET("/search/games", gameHandler.SearchGames)
	e.GET("/search", gameHandler.Search)
	e.GET("/games/category/", gameHandler.ListByCategory)
	e.GET("/games/category/:category", gameHandler.ListByCategory)
	e.GET("/games/:id", gameHandler.GetGame)
	e.GET("/categories", gameHandler.ListCategories)
	e.GET("/total-games", gameHandler.TotalGames)
	e.GET("/total-users", gameHandler.TotalUsers)

	e.POST("/games", gameHandler.CreateGame)
	e.PUT("/games/:id", gameHandler.UpdateGame)
	e.DELETE("/games/:id", gameHandler.DeleteGame)
}
