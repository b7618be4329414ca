package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"facility-services/internal/config"
	"facility-services/internal/contact"
	"facility-services/internal/forecast"
	"facility-services/internal/i18n"
	"facility-services/internal/location"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	catalog         *i18n.Catalog
	locationService location.Service
	outlookService  forecast.Service
	contactService  contact.Service
	cfg             *config.Config
}

// NewApp creates a new application with real provider clients
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	locationSvc := location.NewLocationService(cfg.Providers, logger)

	outlookSvc, err := forecast.NewOutlookService(cfg, locationSvc, logger)
	if err != nil {
		return nil, err
	}

	contactSvc := contact.NewContactService(cfg.Mail, cfg.Providers, logger)

	return NewAppWithServices(cfg, logger, locationSvc, outlookSvc, contactSvc)
}

// NewAppWithServices creates an application with injected services.
// This is useful for testing handlers with mock services.
func NewAppWithServices(
	cfg *config.Config,
	logger *slog.Logger,
	locationSvc location.Service,
	outlookSvc forecast.Service,
	contactSvc contact.Service,
) (*App, error) {
	catalog, err := i18n.Load(cfg.App.DefaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	app := &App{
		router:          router,
		logger:          logger,
		catalog:         catalog,
		locationService: locationSvc,
		outlookService:  outlookSvc,
		contactService:  contactSvc,
		cfg:             cfg,
	}

	app.registerRoutes()

	logger.Info("application initialized", "languages", catalog.Languages())

	return app, nil
}

// Run serves HTTP until ctx is cancelled, then drains open requests
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      app.router,
		ReadTimeout:  app.cfg.Server.ReadTimeout,
		WriteTimeout: app.cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
