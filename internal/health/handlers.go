package health

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Handlers serves the health endpoints.
type Handlers struct {
	Rdb *redis.Client
	DB  DBPinger
}

// Check GET /_health — plain OK.
func (h *Handlers) Check(c *fiber.Ctx) error {
	return c.SendString("OK")
}

// JSON GET /health/json — full report.
func (h *Handlers) JSON(c *fiber.Ctx) error {
	return c.JSON(CollectHealth(c.Context(), h.Rdb, h.DB))
}
