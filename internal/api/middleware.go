package api

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// Stopwatch logs one line per request with the elapsed handling time.
// It wraps the transport so the ingestion pipeline stays free of
// instrumentation.
func Stopwatch(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			logger.Info("request completed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"elapsed", time.Since(start),
			)
			return err
		}
	}
}
