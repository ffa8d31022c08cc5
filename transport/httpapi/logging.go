package httpapi

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// echoLogger logs one structured line per request through log, in place
// of echo's default Apache-style logger.
func echoLogger(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			fields := logrus.Fields{
				"method":   c.Request().Method,
				"path":     c.Request().URL.Path,
				"status":   c.Response().Status,
				"duration": time.Since(start).String(),
			}
			if err != nil {
				fields["error"] = err.Error()
				log.WithFields(fields).Warn("request failed")
			} else {
				log.WithFields(fields).Info("request handled")
			}
			return err
		}
	}
}
