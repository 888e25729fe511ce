package health

import (
	"context"
	"time"

	healthsvc "designer-shortlist/internal/application/health"
	"designer-shortlist/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const (
	serviceName = "designer-shortlist-api"
	version     = "1.0.0"
)

// Endpoints is the public route list reported by GET /.
var Endpoints = []string{
	"GET /api/designers",
	"GET /api/designers/<id>",
	"POST /api/designers/search",
	"POST /api/shortlist",
	"GET /api/shortlist/<user_id>",
	"GET /api/stats",
	"GET /api/tags",
	"GET /api/locations",
}

// Handlers holds dependencies for health endpoints. Rdb may be nil.
type Handlers struct {
	Rdb            *redis.Client
	DB             healthsvc.DBPinger
	HealthAdminKey string
}

// Status is GET /: service name, status and endpoint list.
func (h *Handlers) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":   "Designer Shortlist API",
		"version":   version,
		"status":    "active",
		"endpoints": Endpoints,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// JSON returns the collected health data.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	result := healthsvc.CollectHealth(context.Background(), h.Rdb, h.DB)
	return c.JSON(fiber.Map{
		"service":      serviceName,
		"status":       result.Status,
		"runtime":      result.Runtime,
		"traffic":      result.Traffic,
		"dependencies": result.Dependencies,
	})
}

// Reset clears health stats in Redis. Requires query key=HEALTH_ADMIN_KEY.
func (h *Handlers) Reset(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" || key != h.HealthAdminKey {
		return response.Error(c, fiber.StatusForbidden, "Unauthorized")
	}
	if h.Rdb == nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "Redis is not configured")
	}
	if err := healthsvc.Reset(context.Background(), h.Rdb); err != nil {
		return err
	}
	return response.Message(c, "Stats reset successfully", nil)
}

// Errors returns the most recent server errors, newest first.
func (h *Handlers) Errors(c *fiber.Ctx) error {
	if h.Rdb == nil {
		return response.Data(c, []interface{}{}, nil)
	}
	entries, err := healthsvc.RecentErrors(context.Background(), h.Rdb)
	if err != nil {
		return err
	}
	return response.Data(c, entries, fiber.Map{"count": len(entries)})
}
