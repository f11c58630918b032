package handler

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/usecase"
	"gamecatalog/pkg/response"
)

type SubscriberHandler struct {
	subscriberUseCase *usecase.SubscriberUseCase
}

func NewSubscriberHandler(subscriberUseCase *usecase.SubscriberUseCase) *SubscriberHandler {
	return &SubscriberHandler{subscriberUseCase: subscriberUseCase}
}

func (h *SubscriberHandler) Subscribe(c echo.Context) error {
	var req usecase.SubscribeInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	subscriber, err := h.subscriberUseCase.Subscribe(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]string{
		"insertedId": subscriber.ID,
		"email":      subscriber.Email,
	})
}
