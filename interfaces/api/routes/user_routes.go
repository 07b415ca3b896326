package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasklist-api/interfaces/api/handlers"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	users := api.Group("/users")
	users.Use(protected)
	users.Get("/me", h.UserHandler.GetMe)
	users.Put("/me", h.UserHandler.UpdateProfile)
	users.Put("/me/avatar", h.UserHandler.UploadAvatar)
}
