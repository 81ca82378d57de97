package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/staff-directory/internal/service"
)

// maxImportBytes caps roster uploads at 32 MiB.
const maxImportBytes = 32 << 20

// AdminImportHandler handles roster ingestion for administrators.
type AdminImportHandler struct {
	importService *service.ImportService
}

// NewAdminImportHandler wires a handler backed by the import service.
func NewAdminImportHandler(importService *service.ImportService) *AdminImportHandler {
	return &AdminImportHandler{importService: importService}
}

// Import handles POST /admin/import requests. The roster may arrive either
// as a multipart "file" part or as the raw request body; CSV and JSON are
// both accepted and sniffed from the content.
func (h *AdminImportHandler) Import(c echo.Context) error {
	data, err := readImportPayload(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	summary, err := h.importService.ImportRoster(c.Request().Context(), data)
	if err != nil {
		var validationErr service.ImportValidationError
		if errors.As(err, &validationErr) {
			return Error(c, http.StatusBadRequest, validationErr.Error())
		}
		return Error(c, http.StatusInternalServerError, "failed to process roster")
	}

	return Success(c, http.StatusOK, "roster processed", summary)
}

func readImportPayload(c echo.Context) ([]byte, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, errors.New("unable to open file")
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxImportBytes))
		if err != nil {
			return nil, errors.New("unable to read file")
		}
		return data, nil
	}

	data, err := io.ReadAll(io.LimitReader(c.Request().Body, maxImportBytes))
	if err != nil || len(data) == 0 {
		return nil, errors.New("missing roster payload")
	}
	return data, nil
}
