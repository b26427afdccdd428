package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/dynasim/dynasim/infrastructure/config"
	"github.com/dynasim/dynasim/infrastructure/http/handler"
	"github.com/dynasim/dynasim/infrastructure/http/middleware"
	"github.com/dynasim/dynasim/infrastructure/service/logger"
	"github.com/dynasim/dynasim/internal/catalog"
	"github.com/dynasim/dynasim/internal/series"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logger
	structuredLogger := logger.NewStructuredLogger(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "dynasim",
	})
	structuredLogger.Info(ctx, "Application starting", map[string]interface{}{
		"version": "1.0.0",
		"env":     cfg.Environment,
	})

	// Build the static catalog and the series generator
	metricCatalog := catalog.Default()
	generator := series.New(
		rand.New(rand.NewSource(time.Now().UnixNano())),
		series.DefaultServiceMethodFixtures,
		cfg.MaxDataPoints,
	)

	// Initialize middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(cfg.APITokens)
	metricsHandler := handler.NewMetricsHandler(metricCatalog, generator, structuredLogger, cfg.DefaultPageSize)

	// Setup routes
	router := mux.NewRouter()
	metricsHandler.RegisterRoutes(router, authMiddleware)

	// Compose middleware: correlation ID, then request logging, then recovery
	var root http.Handler = router
	root = middleware.Recovery(structuredLogger)(root)
	root = middleware.RequestLogger(structuredLogger)(root)
	root = middleware.CorrelationIDMiddleware(root)
	if cfg.CORSEnabled {
		root = middleware.CORSMiddleware(root, cfg.CORSAllowedOrigins)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		structuredLogger.Info(ctx, "Starting server", map[string]interface{}{
			"host":   cfg.ServerHost,
			"port":   cfg.ServerPort,
			"tokens": len(cfg.APITokens),
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			structuredLogger.Error(ctx, "Server failed to start", err, map[string]interface{}{
				"host": cfg.ServerHost,
				"port": cfg.ServerPort,
			})
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	structuredLogger.Info(ctx, "Shutting down server...", map[string]interface{}{})

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		structuredLogger.Error(ctx, "Server forced to shutdown", err, map[string]interface{}{})
	}
	structuredLogger.Info(ctx, "Server exited", map[string]interface{}{})
}
