package middleware

import (
	"errors"
	"strings"

	"designer-shortlist/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler is the global error handler. Every error leaves as {"success": false, "error": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, message := statusOf(err)
	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("trace_id", GetTraceID(c)).Str("method", c.Method()).Str("path", c.Path()).Msg("Request failed")
	}
	return response.Error(c, code, message)
}

func statusOf(err error) (int, string) {
	var e *fiber.Error
	if !errors.As(err, &e) {
		return fiber.StatusInternalServerError, "Internal server error"
	}
	switch {
	case e.Code == fiber.StatusNotFound && strings.HasPrefix(e.Message, "Cannot "):
		// unmatched route
		return e.Code, "Endpoint not found"
	case e.Code == fiber.StatusMethodNotAllowed:
		return e.Code, "Method not allowed"
	case e.Code >= fiber.StatusInternalServerError:
		return e.Code, "Internal server error"
	}
	return e.Code, e.Message
}
