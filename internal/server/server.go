// Package server provides the HTTP surface for the data-entry layer: form
// definitions and option catalogs out, submissions in, journal and Excel
// export for the back office.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tradeport/formengine/internal/export"
	"github.com/tradeport/formengine/internal/form"
	"github.com/tradeport/formengine/internal/forms"
	"github.com/tradeport/formengine/internal/repository"
)

// Config holds HTTP server configuration
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	ExportDir    string
}

// Server is the HTTP adapter over the form engine
type Server struct {
	config     Config
	httpServer *http.Server
	router     *gin.Engine
	registry   *forms.Registry
	submitter  form.Submitter
	notifier   form.Notifier
	repo       *repository.SubmissionRepository
	exporter   *export.Exporter
	logger     *zap.Logger
}

// New creates the HTTP server with routes and middleware configured
func New(
	config Config,
	registry *forms.Registry,
	submitter form.Submitter,
	notifier form.Notifier,
	repo *repository.SubmissionRepository,
	exporter *export.Exporter,
	logger *zap.Logger,
) *Server {
	router := gin.New()

	s := &Server{
		config:    config,
		router:    router,
		registry:  registry,
		submitter: submitter,
		notifier:  notifier,
		repo:      repo,
		exporter:  exporter,
		logger:    logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())
	s.router.Use(corsMiddleware())
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		s.logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		)
	}
}

// corsMiddleware adds CORS headers for the portal frontend
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1")
	{
		api.GET("/forms", s.handleListForms)
		api.GET("/forms/:id", s.handleGetForm)
		api.POST("/forms/:id/submissions", s.handleSubmit)
		api.GET("/submissions", s.handleListSubmissions)
		api.GET("/submissions/export", s.handleExport)
	}
}

// Start runs the server until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Stop()
	case err := <-errCh:
		return err
	}
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("Stopping HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// Router returns the underlying gin router (for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
