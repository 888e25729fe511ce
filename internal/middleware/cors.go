package middleware

import (
	"strings"

	"designer-shortlist/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig lists the browser origins allowed to call the API.
// An empty list, or one containing "*", allows any origin.
type CORSConfig struct {
	AllowedOrigins []string
}

func (cfg CORSConfig) allows(origin string) bool {
	if len(cfg.AllowedOrigins) == 0 {
		return true
	}
	for _, o := range cfg.AllowedOrigins {
		if o == "*" || strings.EqualFold(strings.TrimRight(o, "/"), origin) {
			return true
		}
	}
	return false
}

// CORS answers preflights and sets the allow headers for permitted origins.
// Other cross-origin requests get 403.
func CORS(cfg CORSConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		// No origin (same-origin, curl, the Go client): allow
		if origin == "" {
			return c.Next()
		}
		if !cfg.allows(origin) {
			return response.Error(c, fiber.StatusForbidden, "Not allowed by CORS")
		}
		setCORSHeaders(c, origin)
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}

func setCORSHeaders(c *fiber.Ctx, origin string) {
	c.Set("Access-Control-Allow-Origin", origin)
	c.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
	c.Set("Access-Control-Expose-Headers", traceIDHeader)
	c.Vary("Origin")
}
