package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/staff-directory/internal/repository"
	"github.com/octobees/staff-directory/internal/service"
)

// DedupeHandler exposes the duplicate-collapse operations.
type DedupeHandler struct {
	service *service.DirectoryService
}

// NewDedupeHandler creates a new handler instance.
func NewDedupeHandler(service *service.DirectoryService) *DedupeHandler {
	return &DedupeHandler{service: service}
}

// DedupeCompany handles POST /admin/companies/:id/dedupe requests.
func (h *DedupeHandler) DedupeCompany(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}

	outcome, err := h.service.DedupeCompany(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Error(c, http.StatusNotFound, "company not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to dedupe company")
	}
	return Success(c, http.StatusOK, "company deduped", outcome)
}

// DedupeAll handles POST /admin/dedupe requests. Per-company failures are
// reported inside the outcome list, not as a request failure.
func (h *DedupeHandler) DedupeAll(c echo.Context) error {
	outcomes, err := h.service.DedupeAll(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to dedupe catalogue")
	}
	return Success(c, http.StatusOK, "catalogue deduped", outcomes)
}
