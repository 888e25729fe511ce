package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RouteLogger logs each request on exit with status, duration and trace ID.
// Entry is logged at debug.
func RouteLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "no-trace-id"
		}
		start := time.Now()
		log.Debug().Str("trace_id", traceID).Str("method", c.Method()).Str("path", c.Path()).Msg("Entering request")

		err := c.Next()

		status := responseStatus(c, err)
		level := zerolog.InfoLevel
		if status >= fiber.StatusInternalServerError {
			level = zerolog.WarnLevel
		}
		log.WithLevel(level).
			Str("trace_id", traceID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Int64("ms", time.Since(start).Milliseconds()).
			Msg("Exiting request")
		return err
	}
}

// responseStatus is the status the client will see. Errors are only turned into
// responses by the app error handler, after the middleware chain has returned.
func responseStatus(c *fiber.Ctx, err error) int {
	if err != nil {
		code, _ := statusOf(err)
		return code
	}
	return c.Response().StatusCode()
}
