package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carelinkhq/carelink_backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(api fiber.Router, h *handler.DoctorHandler, authRequired fiber.Handler) {
	group := api.Group("/doctors", authRequired)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	group.Get("/:id", h.Get)
	group.Put("/:id", h.Update)
	group.Patch("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}
