package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/carelinkhq/carelink_backend/internal/api/http/handler"
)

func (r *Router) registerAssignmentRoutes(api fiber.Router, h *handler.AssignmentHandler, authRequired fiber.Handler) {
	group := api.Group("/mappings", authRequired)
	group.Get("/", h.List)
	group.Post("/", h.Create)
	// the static segment must register before ":id"
	group.Get("/by-patient/:patient_id", h.ByPatient)
	group.Get("/:id", h.Get)
	group.Put("/:id", h.Update)
	group.Patch("/:id", h.Update)
	group.Delete("/:id", h.Delete)
}
