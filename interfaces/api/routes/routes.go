package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasklist-api/domain/services"
	"tasklist-api/interfaces/api/handlers"
	"tasklist-api/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, userService services.UserService, jwtSecret string) {
	SetupHealthRoutes(app, h)

	// API version group
	api := app.Group("/api/v1")

	protected := middleware.Protected(userService, jwtSecret)

	SetupAuthRoutes(api, h, protected)
	SetupUserRoutes(api, h, protected)
	SetupListRoutes(api, h, protected)
	SetupTaskRoutes(api, h, protected)
}
