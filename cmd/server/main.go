// Package main is the entry point for the flight offer search service.
//
//	@title						Flight Offer Search API
//	@version					1.0.0
//	@description				A flight offer normalization service that queries a flight distribution API and returns canonical, fare-grouped offers.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/babuas25/tf-sub001/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/babuas25/tf-sub001/docs"

	offerhttp "github.com/babuas25/tf-sub001/internal/adapter/http"
	"github.com/babuas25/tf-sub001/internal/adapter/http/middleware"
	"github.com/babuas25/tf-sub001/internal/adapter/provider/bdfare"
	"github.com/babuas25/tf-sub001/internal/config"
	"github.com/babuas25/tf-sub001/internal/infrastructure/logger"
	"github.com/babuas25/tf-sub001/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupLogger builds the application logger from config and installs it as
// the global logger.
func setupLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "offer-search",
	})
	logger.SetGlobal(log)
	return log
}

// setupRoutes wires the application layers and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	// Upstream client and response transformer
	client := bdfare.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.APIKey, cfg.Upstream.Timeout, log.Logger)
	transformer := bdfare.NewTransformer(log.Logger)

	// Use case and handler
	searchUseCase := usecase.NewOfferSearchUseCase(client, transformer, nil, log.Logger)
	handler := offerhttp.NewOfferHandler(searchUseCase)

	offerhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
