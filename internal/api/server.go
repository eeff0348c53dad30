// Package api exposes the assessment engine over HTTP: domain listing,
// schema retrieval, assessment and detailed analysis. The transport is
// a thin layer; all semantics live in the engine and registry.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/health-risk-server/internal/cache"
	"github.com/health-risk-server/internal/config"
	"github.com/health-risk-server/internal/registry"
)

// Server is the HTTP front end over the domain registry.
type Server struct {
	cfg      *config.Config
	registry *registry.Registry
	cache    *cache.ResultCache
	logger   logrus.FieldLogger
	router   *gin.Engine
	server   *http.Server
}

// NewServer wires routes and middleware. The cache may be nil, in which
// case every assessment is computed fresh.
func NewServer(cfg *config.Config, reg *registry.Registry, resultCache *cache.ResultCache, logger logrus.FieldLogger) *Server {
	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(accessLogMiddleware(logger))
	if cfg.RateLimit.Enabled {
		router.Use(rateLimitMiddleware(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	s := &Server{
		cfg:      cfg,
		registry: reg,
		cache:    resultCache,
		logger:   logger,
		router:   router,
	}
	s.setupRoutes()
	return s
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server until the context is canceled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server listening")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/domains", s.handleListDomains)
		v1.GET("/domains/:name/fields", s.handleGetSchema)
		v1.POST("/assess", s.handleAssess)
		v1.POST("/analyze", s.handleAnalyze)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"domains": s.registry.Len(),
		"version": "1.0.0",
	})
}
