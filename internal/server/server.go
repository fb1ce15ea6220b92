// Package server exposes the operational HTTP surface: liveness, readiness,
// and Prometheus metrics. It serves no user-facing traffic; all user
// interaction happens over the chat gateway.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Osisis/discord-feedback-helper/internal/config"
)

// gatewayChecker reports whether the chat gateway connection is established.
type gatewayChecker interface {
	Connected() bool
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	gateway   gatewayChecker
	clock     clockwork.Clock
	startTime time.Time
}

func NewServer(cfg *config.Config, gateway gatewayChecker, clock clockwork.Clock) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	srv := &Server{
		echo:      e,
		config:    cfg,
		gateway:   gateway,
		clock:     clock,
		startTime: clock.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
