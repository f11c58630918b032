package handler

import (
	"github.com/labstack/echo/v4"

	"gamecatalog/internal/usecase"
	"gamecatalog/pkg/errors"
	"gamecatalog/pkg/logger"
	"gamecatalog/pkg/response"
)

const uploadField = "images"

type UploadHandler struct {
	uploadUseCase *usecase.UploadUseCase
}

func NewUploadHandler(uploadUseCase *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uploadUseCase: uploadUseCase}
}

func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		logger.Debug("Upload without multipart form: %v", err)
		return response.Error(c, errors.BadRequest("No files uploaded", err))
	}
	defer form.RemoveAll()

	urls, err := h.uploadUseCase.UploadFiles(c.Request().Context(), form.File[uploadField])
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string][]string{"urls": urls})
}
