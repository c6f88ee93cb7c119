// Package server exposes the comparison service over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/realestimate/realestimate/internal/config"
	"github.com/realestimate/realestimate/internal/domain"
	"github.com/realestimate/realestimate/internal/output"
	"github.com/realestimate/realestimate/internal/service"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Server serves the comparison API.
type Server struct {
	service *service.ComparisonService
	logger  *zap.Logger
	cfg     config.ServerConfig
	router  *gin.Engine
}

// NewServer builds the router. A nil logger discards log output.
func NewServer(svc *service.ComparisonService, logger *zap.Logger, cfg config.ServerConfig) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		service: svc,
		logger:  logger,
		cfg:     cfg,
		router:  gin.New(),
	}
	s.router.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() {
	s.router.GET("/", s.handleForm)
	s.router.GET("/healthz", s.handleHealth)
	api := s.router.Group("/api/v1")
	api.GET("/formats", s.handleFormats)
	api.POST("/compare", s.handleCompare)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("address", s.cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server exited")
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"formats": output.AvailableFormatterNames(),
		"aliases": output.AvailableFormatAliases(),
	})
}

func (s *Server) handleCompare(c *gin.Context) {
	var in config.ScenarioInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	scenario, err := in.ToScenario()
	if err != nil {
		s.writeError(c, err)
		return
	}

	report, err := s.service.Run(c.Request.Context(), scenario)
	if err != nil {
		s.writeError(c, err)
		return
	}

	format := output.NormalizeFormatName(c.DefaultQuery("format", "json"))
	if format == "json" {
		c.JSON(http.StatusOK, report)
		return
	}
	body, err := output.Render(s.service.Report(*report), format)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType(format), body)
}

func (s *Server) writeError(c *gin.Context, err error) {
	var inputErr *domain.InputError
	switch {
	case errors.As(err, &inputErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": inputErr.Error(),
			"field": inputErr.Field,
			"value": inputErr.Value,
		})
	case errors.Is(err, output.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func contentType(format string) string {
	switch output.FileExtension(format) {
	case "csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	case "pdf":
		return "application/pdf"
	case "yaml":
		return "application/x-yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}
