package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"gamecatalog/internal/usecase"
	"gamecatalog/pkg/errors"
	"gamecatalog/pkg/response"
	"gamecatalog/pkg/utils"
)

type GameHandler struct {
	gameUseCase *usecase.GameUseCase
	userUseCase *usecase.UserUseCase
}

func NewGameHandler(gameUseCase *usecase.GameUseCase, userUseCase *usecase.UserUseCase) *GameHandler {
	return &GameHandler{
		gameUseCase: gameUseCase,
		userUseCase: userUseCase,
	}
}

func (h *GameHandler) ListGames(c echo.Context) error {
	games, err := h.gameUseCase.ListLatest(c.Request().Context(), utils.GetLimitParam(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, games)
}

func (h *GameHandler) SearchGames(c echo.Context) error {
	games, err := h.gameUseCase.Search(c.Request().Context(), c.QueryParam("title"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, games)
}

// Search requires a title; q is accepted as an alias.
func (h *GameHandler) Search(c echo.Context) error {
	title := c.QueryParam("title")
	if strings.TrimSpace(title) == "" {
		title = c.QueryParam("q")
	}

	games, err := h.gameUseCase.SearchRequired(c.Request().Context(), title)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, games)
}

func (h *GameHandler) GetGame(c echo.Context) error {
	game, err := h.gameUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, game)
}

func (h *GameHandler) ListByCategory(c echo.Context) error {
	games, err := h.gameUseCase.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, games)
}

func (h *GameHandler) ListCategories(c echo.Context) error {
	categories, err := h.gameUseCase.Categories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, categories)
}

func (h *GameHandler) TotalGames(c echo.Context) error {
	total, err := h.gameUseCase.Count(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int64{"total": total})
}

func (h *GameHandler) TotalUsers(c echo.Context) error {
	total, err := h.userUseCase.Count(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int64{"total": total})
}

func (h *GameHandler) CreateGame(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return response.Error(c, err)
	}

	game, err := h.gameUseCase.Create(c.Request().Context(), fields)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]string{"insertedId": game.ID})
}

func (h *GameHandler) UpdateGame(c echo.Context) error {
	id := c.Param("id")
	fields, err := bindFields(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.gameUseCase.Update(c.Request().Context(), id, fields); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{"id": id, "updated": true})
}

func (h *GameHandler) DeleteGame(c echo.Context) error {
	id := c.Param("id")
	if err := h.gameUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{"id": id, "deleted": true})
}

// bindFields decodes a free-form JSON object body. Path and query
// parameters are not merged in.
func bindFields(c echo.Context) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return nil, errors.BadRequest("Request body must be a JSON object", err)
	}
	return fields, nil
}
