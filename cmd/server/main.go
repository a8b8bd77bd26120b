package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/broadcast"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/cache"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/config"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/handlers"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/repositories"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/services"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/session"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/store"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/internal/utils"
	"github.com/arunkumarcpv007-tech/smart-classroom-app/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
		gin.SetMode(gin.ReleaseMode)
	} else {
		logger = utils.NewDevelopmentLogger()
	}
	slogger := utils.ToSlogLogger(logger)

	logger.Info("Starting smart classroom service",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"store_backend", cfg.StoreBackend)

	// Storage medium: Redis in deployments, in-memory for local hacking.
	var medium store.Medium
	switch cfg.StoreBackend {
	case "memory":
		medium = store.NewMemoryMedium()
		logger.Warn("Using in-memory store; records will not survive a restart")
	default:
		client, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		medium = store.NewRedisMedium(client, slogger)
	}

	recordStore := store.New(medium, slogger)

	startCtx, startCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := recordStore.Initialize(startCtx); err != nil {
		startCancel()
		logger.Error("Failed to seed record store", "error", err)
		os.Exit(1)
	}
	startCancel()

	var cacheSvc cache.CacheService
	if cfg.StoreBackend == "memory" {
		cacheSvc = cache.NewMemoryCache()
	} else {
		cacheClient, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.Error("Failed to connect to Redis for caching", "error", err)
			os.Exit(1)
		}
		cacheSvc = cache.NewRedisCache(cacheClient, slogger)
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		logger.Error("Failed to create event publisher", "error", err)
		os.Exit(1)
	}

	repo := repositories.New(recordStore)
	sessions := session.NewManager(recordStore, repo.Users(), slogger)
	announcer := broadcast.NewAnnouncer(recordStore, publisher, slogger)
	validator := utils.NewValidator()

	serviceManager := services.NewServiceManager(cfg, repo, sessions, announcer, cacheSvc, publisher, slogger, validator)
	handlerManager := handlers.NewHandlerManager(serviceManager, sessions, validator, logger)

	router := gin.New()
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(gin.Recovery())
	handlerManager.SetupRoutes(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Shutting down", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}

	if err := publisher.Close(); err != nil {
		logger.Error("Failed to close event publisher", "error", err)
	}
	if err := medium.Close(); err != nil {
		logger.Error("Failed to close store medium", "error", err)
	}

	logger.Info("Server stopped")
}
