package httpserver

import (
	"net/http"

	"mflix/pkg/sentry"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
	s.Router.GET("/readyz", s.readinessCheck)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "OK",
	})
}

// readinessCheck godoc
// @Summary Readiness Check
// @Description Check that the movie catalog database is reachable
// @Tags health
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /readyz [get]
func (s *Server) readinessCheck(c echo.Context) error {
	if s.MovieService == nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "movie service not configured"})
	}
	if err := s.MovieService.Ping(c.Request().Context()); err != nil {
		s.Logger.Warnw("readiness check failed", "error", err)
		sentry.WithContext(c).WithTags(map[string]string{"check": "readiness"}).Warningf("database unavailable: %v", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "database unavailable"})
	}
	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "OK",
	})
}
