package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasklist-api/interfaces/api/handlers"
)

func SetupListRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	lists := api.Group("/lists")
	lists.Use(protected)
	lists.Post("/", h.ListHandler.CreateList)
	lists.Get("/", h.ListHandler.GetLists)
	lists.Get("/:id", h.ListHandler.GetList)
	lists.Delete("/:id", h.ListHandler.DeleteList)
	lists.Get("/:id/tasks", h.ListHandler.GetListTasks)
}
