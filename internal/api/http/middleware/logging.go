package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/secrets-server/internal/logger"
)

// Logging logs each HTTP request with its outcome.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, path, status and duration of each request.
func (l *Logging) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		err := next(c)
		if err != nil {
			// let echo's error handler write the response so the status is final
			c.Error(err)
		}

		status := c.Response().Status
		args := []any{
			"method", req.Method,
			"path", c.Path(),
			"uri", req.RequestURI,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		}
		if err != nil {
			args = append(args, "error", err.Error())
		}

		switch {
		case status >= 500:
			l.logger.Error("HTTP request failed", args...)
		case status >= 400:
			l.logger.Warn("HTTP request rejected", args...)
		default:
			l.logger.Info("HTTP request completed", args...)
		}

		return nil
	}
}
