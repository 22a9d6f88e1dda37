package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/prepnet/internal/adapter/httpapi"
	"github.com/eslsoft/prepnet/internal/infrastructure/config"
)

// Server wraps the echo instance with lifecycle management.
type Server struct {
	config *config.Config
	echo   *echo.Echo
	logger *logrus.Logger
}

// NewServer builds the HTTP server and mounts the API under /api.
func NewServer(cfg *config.Config, logger *logrus.Logger, api *httpapi.API) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(requestLogger(logger))

	api.Register(e.Group("/api"))

	e.GET("/healthz", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "ok")
	})

	return &Server{
		config: cfg,
		echo:   e,
		logger: logger,
	}
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Infof("HTTP server starting on %s", addr)

	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve HTTP: %w", err)
	}
	return nil
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Errorf("Failed to shutdown HTTP server: %v", err)
		return err
	}
	s.logger.Info("Server shutdown complete")
	return nil
}
