package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gamecatalog/internal/usecase"
	"gamecatalog/pkg/response"
)

type SitemapHandler struct {
	sitemapUseCase *usecase.SitemapUseCase
}

func NewSitemapHandler(sitemapUseCase *usecase.SitemapUseCase) *SitemapHandler {
	return &SitemapHandler{sitemapUseCase: sitemapUseCase}
}

func (h *SitemapHandler) Sitemap(c echo.Context) error {
	body, err := h.sitemapUseCase.Generate(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return c.Blob(http.StatusOK, "application/xml; charset=UTF-8", body)
}
