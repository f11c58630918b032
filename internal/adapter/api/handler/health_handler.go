package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gamecatalog/internal/domain/repository"
	"gamecatalog/pkg/errors"
	"gamecatalog/pkg/response"
)

type HealthHandler struct {
	store repository.Pinger
}

func NewHealthHandler(store repository.Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) CheckStoreHealth(c echo.Context) error {
	if err := h.store.Ping(c.Request().Context()); err != nil {
		return response.Error(c, errors.Internal("Database connection failed", err))
	}
	return response.Success(c, map[string]string{
		"status": "Database connected successfully",
	})
}
