package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tasklist-api/infrastructure/postgres"
	redispkg "tasklist-api/infrastructure/redis"
	"tasklist-api/pkg/logger"
)

type HealthHandler struct {
	db    *gorm.DB
	redis *redispkg.Client
}

func NewHealthHandler(db *gorm.DB, redis *redispkg.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// Health ตอบ liveness + store connectivity; ถ้า database ล่มตอบ 503
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx := c.UserContext()

	status := fiber.StatusOK
	checks := fiber.Map{}

	if err := postgres.Ping(ctx, h.db); err != nil {
		logger.ErrorContext(ctx, "Database health check failed", "error", err)
		checks["database"] = "down"
		status = fiber.StatusServiceUnavailable
	} else {
		checks["database"] = "up"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx); err != nil {
			// cache ล่มไม่ถือว่า service ล่ม (DB เป็น source of truth)
			logger.WarnContext(ctx, "Redis health check failed", "error", err)
			checks["redis"] = "down"
		} else {
			checks["redis"] = "up"
		}
	}

	body := fiber.Map{
		"status": "ok",
		"checks": checks,
	}
	if status != fiber.StatusOK {
		body["status"] = "degraded"
	}

	return c.Status(status).JSON(body)
}
