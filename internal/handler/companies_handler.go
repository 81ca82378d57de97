package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/octobees/staff-directory/internal/dto"
	"github.com/octobees/staff-directory/internal/repository"
	"github.com/octobees/staff-directory/internal/service"
	"github.com/octobees/staff-directory/internal/service/scoring"
)

// CompaniesHandler exposes company catalogue endpoints.
type CompaniesHandler struct {
	service *service.DirectoryService
}

// NewCompaniesHandler creates a new handler instance.
func NewCompaniesHandler(service *service.DirectoryService) *CompaniesHandler {
	return &CompaniesHandler{service: service}
}

// List handles GET /companies requests.
func (h *CompaniesHandler) List(c echo.Context) error {
	view, err := h.service.ListCompanies(c.Request().Context(), listFilterFromQuery(c))
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list companies")
	}
	return Success(c, http.StatusOK, "companies retrieved", view)
}

// ListAdmin handles GET /admin/companies requests. Each entry carries a
// completeness score so thin entries are easy to spot.
func (h *CompaniesHandler) ListAdmin(c echo.Context) error {
	view, err := h.service.ListCompanies(c.Request().Context(), listFilterFromQuery(c))
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list companies")
	}

	type scoredCompany struct {
		Company any                 `json:"company"`
		Score   scoring.ScoreResult `json:"score"`
	}
	scored := make([]scoredCompany, len(view.Companies))
	for i, company := range view.Companies {
		scored[i] = scoredCompany{Company: company, Score: scoring.ComputeScore(company)}
	}

	return Success(c, http.StatusOK, "companies retrieved", map[string]any{
		"companies": scored,
		"cached":    view.Cached,
		"cached_at": view.CachedAt,
	})
}

// Get handles GET /companies/:id requests.
func (h *CompaniesHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}

	company, err := h.service.GetCompany(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Error(c, http.StatusNotFound, "company not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to fetch company")
	}
	return Success(c, http.StatusOK, "company retrieved", company)
}

// Update handles PATCH /admin/companies/:id requests.
func (h *CompaniesHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}

	var req dto.UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return Error(c, http.StatusBadRequest, "name must not be blank")
	}

	company, err := h.service.UpdateCompany(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Error(c, http.StatusNotFound, "company not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to update company")
	}
	return Success(c, http.StatusOK, "company updated", company)
}

// Delete handles DELETE /admin/companies/:id requests.
func (h *CompaniesHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}

	if err := h.service.DeleteCompany(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Error(c, http.StatusNotFound, "company not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to delete company")
	}
	return Success(c, http.StatusOK, "company deleted", nil)
}

// SetPhoneLock handles PATCH /admin/companies/:id/employees/:employeeID/phone-lock.
func (h *CompaniesHandler) SetPhoneLock(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}
	employeeID, err := uuid.Parse(c.Param("employeeID"))
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid employee id")
	}

	var req dto.PhoneLockRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.SetPhoneLock(c.Request().Context(), companyID, employeeID, req.Locked); err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Error(c, http.StatusNotFound, "company not found")
		}
		if errors.Is(err, service.ErrEmployeeNotFound) {
			return Error(c, http.StatusNotFound, "employee not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to update phone lock")
	}
	return Success(c, http.StatusOK, "phone lock updated", map[string]bool{"locked": req.Locked})
}

func listFilterFromQuery(c echo.Context) dto.ListFilter {
	return dto.ListFilter{
		Q:        strings.TrimSpace(c.QueryParam("q")),
		Industry: strings.TrimSpace(c.QueryParam("industry")),
		Location: strings.TrimSpace(c.QueryParam("location")),
		Page:     parseIntDefault(c.QueryParam("page"), 1),
		PerPage:  parseIntDefault(c.QueryParam("per_page"), 20),
	}
}

func parseIntDefault(input string, fallback int) int {
	if input == "" {
		return fallback
	}
	if value, err := strconv.Atoi(input); err == nil {
		return value
	}
	return fallback
}
