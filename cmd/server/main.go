package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brandlens/brandlens/internal/audit"
	"github.com/brandlens/brandlens/internal/cache"
	"github.com/brandlens/brandlens/internal/config"
	"github.com/brandlens/brandlens/internal/notifications"
	"github.com/brandlens/brandlens/internal/providers"
	"github.com/brandlens/brandlens/internal/ratelimit"
	"github.com/brandlens/brandlens/internal/scheduler"
	"github.com/brandlens/brandlens/internal/server"
	"github.com/brandlens/brandlens/internal/storage"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up logging
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	logrus.Info("Starting BrandLens audit server")

	ctx := context.Background()

	// Response cache shared by all provider clients
	responseCache := cache.NewMemoryCache(cfg.CacheTTL, 10*time.Minute)

	// Initialize AI platform clients
	googleAI, err := providers.NewGoogleAIProvider(ctx, cfg.GoogleAIAPIKey, cfg.GoogleAIModel, responseCache)
	if err != nil {
		logrus.Fatalf("Failed to initialize Google AI provider: %v", err)
	}
	defer googleAI.Close()

	platformProviders := []providers.Provider{
		providers.NewChatGPTProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, responseCache),
		providers.NewPerplexityProvider(cfg.PerplexityAPIKey, cfg.PerplexityModel, responseCache),
		googleAI,
	}

	// Initialize persistence (optional)
	var store storage.Store
	if cfg.DatabaseURL != "" {
		postgres, err := storage.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			logrus.Fatalf("Failed to initialize database: %v", err)
		}
		defer postgres.Close()
		store = postgres
	} else {
		logrus.Warn("DATABASE_URL not set - audits will not be persisted")
	}

	// Initialize report archive (optional)
	var archive storage.Archiver
	if cfg.StorageAccount != "" {
		azure, err := storage.NewAzureArchive(cfg.StorageAccount, cfg.StorageContainer)
		if err != nil {
			logrus.Fatalf("Failed to initialize report archive: %v", err)
		}
		archive = azure
	}

	// Initialize remaining collaborators
	notifier := notifications.NewService(cfg)
	auditService := audit.NewService(cfg, platformProviders, store, archive)
	limiter := ratelimit.NewDailyLimiter(cfg.DailyAuditLimit)

	// Start scheduled re-audits and housekeeping
	schedulerService := scheduler.NewService(cfg, auditService, store, notifier, limiter)
	if err := schedulerService.Start(); err != nil {
		logrus.Fatalf("Failed to start scheduler: %v", err)
	}
	defer schedulerService.Stop()

	// Set up HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      server.New(cfg, auditService, limiter, store, notifier).Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AuditTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in a goroutine
	go func() {
		logrus.Infof("HTTP server starting on port %s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
