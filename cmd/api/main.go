package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/staff-directory/internal/auth"
	"github.com/octobees/staff-directory/internal/cache"
	"github.com/octobees/staff-directory/internal/config"
	"github.com/octobees/staff-directory/internal/database"
	"github.com/octobees/staff-directory/internal/handler"
	middlewarepkg "github.com/octobees/staff-directory/internal/middleware"
	"github.com/octobees/staff-directory/internal/repository"
	"github.com/octobees/staff-directory/internal/router"
	"github.com/octobees/staff-directory/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer pool.Close()

	var snapshot service.SnapshotStore
	if cfg.SnapshotPath != "" {
		store, err := cache.Open(cfg.SnapshotPath)
		if err != nil {
			log.Printf("snapshot store disabled: %v", err)
		} else {
			defer store.Close()
			snapshot = store
		}
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	usersRepo := repository.NewPGXUsersRepository(pool)
	companiesRepo := repository.NewPGXCompaniesRepository(pool)

	phones := service.NewPhoneFormatter(cfg.DefaultPhoneRegion)
	authService := service.NewAuthService(usersRepo, jwtManager)
	userService := service.NewUserService(usersRepo)
	directoryService := service.NewDirectoryService(companiesRepo, snapshot, phones)
	importService := service.NewImportService(companiesRepo, snapshot)
	assistService := service.NewAssistService("")

	httpClient := &http.Client{Timeout: 15 * time.Second}
	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Users:     handler.NewUserAdminHandler(userService),
		Companies: handler.NewCompaniesHandler(directoryService),
		Import:    handler.NewAdminImportHandler(importService),
		Dedupe:    handler.NewDedupeHandler(directoryService),
		Assist:    handler.NewAssistHandler(assistService, httpClient, cfg.WorkerBaseURL),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
