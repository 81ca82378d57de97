package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/staff-directory/internal/auth"
	"github.com/octobees/staff-directory/internal/config"
	"github.com/octobees/staff-directory/internal/handler"
	middlewarepkg "github.com/octobees/staff-directory/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth      *handler.AuthHandler
	Users     *handler.UserAdminHandler
	Companies *handler.CompaniesHandler
	Import    *handler.AdminImportHandler
	Dedupe    *handler.DedupeHandler
	Assist    *handler.AssistHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)
	e.GET("/companies", handlers.Companies.List)
	e.GET("/companies/:id", handlers.Companies.Get)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	admin := secured.Group("/admin", middlewarepkg.RequireRole("admin"))
	admin.GET("/companies", handlers.Companies.ListAdmin)
	admin.PATCH("/companies/:id", handlers.Companies.Update)
	admin.DELETE("/companies/:id", handlers.Companies.Delete)
	admin.PATCH("/companies/:id/employees/:employeeID/phone-lock", handlers.Companies.SetPhoneLock)
	admin.POST("/companies/:id/dedupe", handlers.Dedupe.DedupeCompany)
	admin.POST("/dedupe", handlers.Dedupe.DedupeAll)
	admin.POST("/import", handlers.Import.Import)
	admin.GET("/users", handlers.Users.List)
	admin.POST("/users", handlers.Users.Create)
	admin.PATCH("/users/:id", handlers.Users.Update)
	admin.DELETE("/users/:id", handlers.Users.Delete)

	if handlers.Assist != nil {
		secured.POST("/assist/links", handlers.Assist.GenerateLinks, middlewarepkg.AssistRateLimiter(cfg.RateLimitAssist))
	}
}
