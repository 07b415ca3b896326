package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tasklist-api/domain/services"
	redispkg "tasklist-api/infrastructure/redis"
	"tasklist-api/pkg/config"
	"tasklist-api/pkg/utils"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService services.UserService
	ListService services.ListService
	TaskService services.TaskService

	GoogleConfig  config.GoogleOAuthConfig
	MaxAvatarSize int64

	// สำหรับ health checks
	DB          *gorm.DB
	RedisClient *redispkg.Client
}

// Handlers contains all HTTP handlers
type Handlers struct {
	AuthHandler   *AuthHandler
	UserHandler   *UserHandler
	ListHandler   *ListHandler
	TaskHandler   *TaskHandler
	HealthHandler *HealthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:   NewAuthHandler(services.UserService, services.GoogleConfig),
		UserHandler:   NewUserHandler(services.UserService, services.MaxAvatarSize),
		ListHandler:   NewListHandler(services.ListService),
		TaskHandler:   NewTaskHandler(services.TaskService),
		HealthHandler: NewHealthHandler(services.DB, services.RedisClient),
	}
}

// serviceErrorResponse maps service-layer errors onto HTTP responses. Not-found
// and not-owned are the same 404 on purpose.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, "")
	case errors.Is(err, services.ErrUnauthorized), errors.Is(err, services.ErrSessionRevoked):
		return utils.UnauthorizedResponse(c, "")
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
