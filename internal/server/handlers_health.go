package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Osisis/discord-feedback-helper/internal/version"
)

func (s *Server) handleLiveness(c echo.Context) error {
	uptime := s.clock.Since(s.startTime).Seconds()
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"uptime":  uptime,
		"version": version.Get(),
	})
}

func (s *Server) handleReadiness(c echo.Context) error {
	if !s.gateway.Connected() {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":       "unhealthy",
			"failed_check": "discord_gateway",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
