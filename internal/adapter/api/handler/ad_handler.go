package handler

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/usecase"
	"gamecatalog/pkg/response"
)

type AdHandler struct {
	adUseCase *usecase.AdUseCase
}

func NewAdHandler(adUseCase *usecase.AdUseCase) *AdHandler {
	return &AdHandler{adUseCase: adUseCase}
}

func (h *AdHandler) ListAds(c echo.Context) error {
	ads, err := h.adUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ads)
}

func (h *AdHandler) GetAd(c echo.Context) error {
	ad, err := h.adUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, ad)
}

func (h *AdHandler) CreateAd(c echo.Context) error {
	var req usecase.CreateAdInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ad, err := h.adUseCase.Create(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]string{"insertedId": ad.ID})
}

func (h *AdHandler) UpdateAd(c echo.Context) error {
	id := c.Param("id")
	fields, err := bindFields(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.adUseCase.Update(c.Request().Context(), id, fields); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{"id": id, "updated": true})
}

func (h *AdHandler) DeleteAd(c echo.Context) error {
	id := c.Param("id")
	if err := h.adUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{"id": id, "deleted": true})
}
