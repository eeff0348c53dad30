package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/health-risk-server/internal/api"
	"github.com/health-risk-server/internal/cache"
	"github.com/health-risk-server/internal/config"
	"github.com/health-risk-server/internal/domains"
	"github.com/health-risk-server/internal/registry"
)

func main() {
	logger := logrus.New()

	configManager, err := config.NewManager()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	cfg := configManager.GetConfig()

	configureLogger(logger, cfg.Logging)

	// A domain configuration defect is fatal: a misconfigured domain
	// must never serve traffic.
	reg, err := registry.New(domains.All(), logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to build domain registry")
	}

	var resultCache *cache.ResultCache
	if cfg.Cache.Enabled {
		resultCache, err = cache.New(cfg.Cache.LocalSize, cfg.Cache.RedisURL, cfg.Cache.DefaultTTL, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to initialize result cache")
		}
		defer resultCache.Close()
	}

	server := api.NewServer(cfg, reg, resultCache, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.WithError(err).Fatal("Server terminated")
	}
	logger.Info("Server stopped")
}

func configureLogger(logger *logrus.Logger, cfg config.LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
