package middleware

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"designer-shortlist/internal/application/health"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// HealthMarker records request stats in Redis (skip /, /health*, favicon).
// Server errors are also pushed to the capped error log.
func HealthMarker(rdb *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if path == "/" || strings.HasPrefix(path, "/health") || strings.HasPrefix(path, "/favicon") {
			return c.Next()
		}

		start := time.Now()
		lastReq := map[string]interface{}{
			"time":   start,
			"ip":     c.IP(),
			"path":   c.OriginalURL(),
			"method": c.Method(),
		}
		b, _ := json.Marshal(lastReq)
		ctx := context.Background()
		_, _ = rdb.Set(ctx, health.KeyLastReq, b, 0).Result()
		_, _ = rdb.Incr(ctx, health.KeyReqTotal).Result()

		err := c.Next()

		ms := time.Since(start).Milliseconds()
		_, _ = rdb.Incr(ctx, health.KeyResCount).Result()
		_, _ = rdb.IncrByFloat(ctx, health.KeyResTime, float64(ms)).Result()
		if status := responseStatus(c, err); status >= fiber.StatusInternalServerError {
			_, _ = rdb.Incr(ctx, health.KeyReqErrors).Result()
			entry := map[string]interface{}{
				"time":     time.Now(),
				"method":   c.Method(),
				"path":     c.OriginalURL(),
				"status":   status,
				"trace_id": GetTraceID(c),
			}
			if err != nil {
				entry["error"] = err.Error()
			}
			eb, _ := json.Marshal(entry)
			pipe := rdb.Pipeline()
			pipe.LPush(ctx, health.KeyErrorLog, eb)
			pipe.LTrim(ctx, health.KeyErrorLog, 0, health.ErrorLogSize-1)
			_, _ = pipe.Exec(ctx)
		}
		return err
	}
}
